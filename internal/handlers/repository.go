package handlers

import (
	"context"

	"testplatform/api/internal/events"
	"testplatform/api/internal/models"
	"testplatform/api/internal/notifications"
)

type CategoryRepository interface {
	Create(ctx context.Context, c *models.Category) error
	List(ctx context.Context) ([]models.Category, error)
	Count(ctx context.Context) (int64, error)
}

type TemplateRepository interface {
	Create(ctx context.Context, t *models.TestTemplate) error
	ListPublic(ctx context.Context, categoryID string) ([]models.TestTemplate, error)
	GetByID(ctx context.Context, id string) (*models.TestTemplate, error)
	Count(ctx context.Context) (int64, error)
}

type CustomTestRepository interface {
	Create(ctx context.Context, t *models.CustomTest) error
	GetActiveByShareToken(ctx context.Context, token string) (*models.CustomTest, error)
	GetByID(ctx context.Context, id string) (*models.CustomTest, error)
	Count(ctx context.Context) (int64, error)
}

type ResponseRepository interface {
	Create(ctx context.Context, r *models.TestResponse) error
	Count(ctx context.Context) (int64, error)
}

// Notifier must not block the caller.
type Notifier interface {
	Dispatch(notice notifications.CompletionNotice)
}

type EventPublisher interface {
	PublishResponseSubmitted(ctx context.Context, event events.ResponseSubmitted) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}
