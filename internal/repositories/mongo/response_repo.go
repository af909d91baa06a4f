package mongo

import (
	"context"

	"testplatform/api/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ResponseRepo struct {
	store *Store[models.TestResponse]
}

func NewResponseRepo(col *mongo.Collection) *ResponseRepo {
	return &ResponseRepo{store: NewStore[models.TestResponse](col)}
}

// Create does not check that TestID exists.
func (r *ResponseRepo) Create(ctx context.Context, resp *models.TestResponse) error {
	return r.store.InsertOne(ctx, resp)
}

func (r *ResponseRepo) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, nil)
}
