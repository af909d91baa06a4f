package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CategoriesCollection    = "categories"
	TestTemplatesCollection = "test_templates"
	CustomTestsCollection   = "custom_tests"
	TestResponsesCollection = "test_responses"
)

// Repositories bundles one repository per collection.
type Repositories struct {
	db          *mongo.Database
	Categories  *CategoryRepo
	Templates   *TemplateRepo
	CustomTests *CustomTestRepo
	Responses   *ResponseRepo
}

func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		db:          db,
		Categories:  NewCategoryRepo(db.Collection(CategoriesCollection)),
		Templates:   NewTemplateRepo(db.Collection(TestTemplatesCollection)),
		CustomTests: NewCustomTestRepo(db.Collection(CustomTestsCollection)),
		Responses:   NewResponseRepo(db.Collection(TestResponsesCollection)),
	}
}

// EnsureIndexes adds unique indexes on "id" everywhere and on custom_tests.share_token.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	uniqueID := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, name := range []string{CategoriesCollection, TestTemplatesCollection, CustomTestsCollection, TestResponsesCollection} {
		if _, err := r.db.Collection(name).Indexes().CreateOne(ctx, uniqueID); err != nil {
			return fmt.Errorf("create id index on %s: %w", name, err)
		}
	}

	_, err := r.db.Collection(CustomTestsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "share_token", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create share_token index: %w", err)
	}
	return nil
}
