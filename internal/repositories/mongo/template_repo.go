package mongo

import (
	"context"

	"testplatform/api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TemplateRepo struct {
	store *Store[models.TestTemplate]
}

func NewTemplateRepo(col *mongo.Collection) *TemplateRepo {
	return &TemplateRepo{store: NewStore[models.TestTemplate](col)}
}

func (r *TemplateRepo) Create(ctx context.Context, t *models.TestTemplate) error {
	return r.store.InsertOne(ctx, t)
}

// ListPublic never returns is_public=false templates; newest first.
func (r *TemplateRepo) ListPublic(ctx context.Context, categoryID string) ([]models.TestTemplate, error) {
	filter := bson.M{"is_public": true}
	if categoryID != "" {
		filter["category_id"] = categoryID
	}
	return r.store.Find(ctx, filter, bson.D{{Key: "created_at", Value: -1}})
}

func (r *TemplateRepo) GetByID(ctx context.Context, id string) (*models.TestTemplate, error) {
	return r.store.FindOne(ctx, bson.M{"id": id})
}

func (r *TemplateRepo) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, nil)
}
