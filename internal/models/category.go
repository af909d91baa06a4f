package models

import (
	"time"

	"testplatform/api/internal/utils"
)

const DefaultCategoryColor = "#4F46E5"

type Category struct {
	ID             string    `json:"id" bson:"id"`
	Name           string    `json:"name" bson:"name"`
	Slug           string    `json:"slug" bson:"slug"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	Icon           string    `json:"icon,omitempty" bson:"icon,omitempty"`
	Color          string    `json:"color" bson:"color"`
	SortOrder      int       `json:"sort_order" bson:"sort_order"`
	SEOTitle       string    `json:"seo_title,omitempty" bson:"seo_title,omitempty"`
	SEODescription string    `json:"seo_description,omitempty" bson:"seo_description,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

type CategoryCreate struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

func (r *CategoryCreate) Validate() error {
	return validateStruct(r)
}

// ToCategory derives the slug from the name; uniqueness is not checked.
func (r *CategoryCreate) ToCategory() *Category {
	color := r.Color
	if color == "" {
		color = DefaultCategoryColor
	}
	return &Category{
		ID:          utils.NewID(),
		Name:        r.Name,
		Slug:        utils.Slugify(r.Name),
		Description: r.Description,
		Icon:        r.Icon,
		Color:       color,
		CreatedAt:   utils.Now(),
	}
}
