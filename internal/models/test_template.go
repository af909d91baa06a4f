package models

import (
	"time"

	"testplatform/api/internal/utils"
)

const DefaultEstimatedDuration = 5

// TestTemplate is an admin-authored, publicly listed test.
// CompletionsCount is stored but nothing increments it.
type TestTemplate struct {
	ID                string         `json:"id" bson:"id"`
	Title             string         `json:"title" bson:"title"`
	Description       string         `json:"description" bson:"description"`
	CategoryID        string         `json:"category_id" bson:"category_id"`
	Questions         []Question     `json:"questions" bson:"questions"`
	ResultTemplates   map[string]any `json:"result_templates,omitempty" bson:"result_templates,omitempty"`
	IsPublic          bool           `json:"is_public" bson:"is_public"`
	CreatorID         string         `json:"creator_id,omitempty" bson:"creator_id,omitempty"`
	EstimatedDuration int            `json:"estimated_duration" bson:"estimated_duration"`
	CompletionsCount  int            `json:"completions_count" bson:"completions_count"`
	SEOTitle          string         `json:"seo_title,omitempty" bson:"seo_title,omitempty"`
	SEODescription    string         `json:"seo_description,omitempty" bson:"seo_description,omitempty"`
	CreatedAt         time.Time      `json:"created_at" bson:"created_at"`
}

type TestTemplateCreate struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	CategoryID  string          `json:"category_id" validate:"required"`
	Questions   []QuestionInput `json:"questions" validate:"required,dive"`
}

func (r *TestTemplateCreate) Validate() error {
	return validateStruct(r)
}

// ToTemplate does not check that CategoryID refers to an existing category.
func (r *TestTemplateCreate) ToTemplate() *TestTemplate {
	return &TestTemplate{
		ID:                utils.NewID(),
		Title:             r.Title,
		Description:       r.Description,
		CategoryID:        r.CategoryID,
		Questions:         toQuestions(r.Questions),
		IsPublic:          true,
		EstimatedDuration: DefaultEstimatedDuration,
		CreatedAt:         utils.Now(),
	}
}
