package mongo

import (
	"context"
	"errors"

	"testplatform/api/internal/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the document-level primitive every repository is built on.
// Documents are addressed by their own "id" field, never by _id.
type Store[T any] struct {
	col *mongo.Collection
}

func NewStore[T any](col *mongo.Collection) *Store[T] {
	return &Store[T]{col: col}
}

func (s *Store[T]) InsertOne(ctx context.Context, doc *T) error {
	_, err := s.col.InsertOne(ctx, doc)
	return err
}

// Find returns every match ordered by sort; never nil.
func (s *Store[T]) Find(ctx context.Context, filter bson.M, sort bson.D) ([]T, error) {
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	cur, err := s.col.Find(ctx, orEmpty(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindOne maps "no documents" to repositories.ErrNotFound.
func (s *Store[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	if err := s.col.FindOne(ctx, orEmpty(filter)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (s *Store[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.col.CountDocuments(ctx, orEmpty(filter))
}

func orEmpty(filter bson.M) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return filter
}
