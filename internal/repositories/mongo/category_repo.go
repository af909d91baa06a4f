package mongo

import (
	"context"

	"testplatform/api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryRepo struct {
	store *Store[models.Category]
}

func NewCategoryRepo(col *mongo.Collection) *CategoryRepo {
	return &CategoryRepo{store: NewStore[models.Category](col)}
}

func (r *CategoryRepo) Create(ctx context.Context, c *models.Category) error {
	return r.store.InsertOne(ctx, c)
}

// List returns all categories, sort_order ascending.
func (r *CategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	return r.store.Find(ctx, nil, bson.D{{Key: "sort_order", Value: 1}})
}

func (r *CategoryRepo) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, nil)
}
