package mongo

import (
	"context"

	"testplatform/api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CustomTestRepo struct {
	store *Store[models.CustomTest]
}

func NewCustomTestRepo(col *mongo.Collection) *CustomTestRepo {
	return &CustomTestRepo{store: NewStore[models.CustomTest](col)}
}

func (r *CustomTestRepo) Create(ctx context.Context, t *models.CustomTest) error {
	return r.store.InsertOne(ctx, t)
}

// GetActiveByShareToken treats inactive tests exactly like unknown tokens.
func (r *CustomTestRepo) GetActiveByShareToken(ctx context.Context, token string) (*models.CustomTest, error) {
	return r.store.FindOne(ctx, bson.M{"share_token": token, "is_active": true})
}

func (r *CustomTestRepo) GetByID(ctx context.Context, id string) (*models.CustomTest, error) {
	return r.store.FindOne(ctx, bson.M{"id": id})
}

func (r *CustomTestRepo) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, nil)
}
