package models

import (
	"time"

	"testplatform/api/internal/utils"
)

// CustomTest is user-authored and reachable only through its share token.
type CustomTest struct {
	ID           string         `json:"id" bson:"id"`
	Title        string         `json:"title" bson:"title"`
	Description  string         `json:"description" bson:"description"`
	CreatorEmail string         `json:"creator_email" bson:"creator_email"`
	Questions    []Question     `json:"questions" bson:"questions"`
	ShareToken   string         `json:"share_token" bson:"share_token"`
	Settings     map[string]any `json:"settings,omitempty" bson:"settings,omitempty"`
	IsActive     bool           `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time      `json:"created_at" bson:"created_at"`
}

type CustomTestCreate struct {
	Title        string          `json:"title" validate:"required"`
	Description  string          `json:"description" validate:"required"`
	CreatorEmail string          `json:"creator_email" validate:"required,email"`
	Questions    []QuestionInput `json:"questions" validate:"required,dive"`
}

func (r *CustomTestCreate) Validate() error {
	return validateStruct(r)
}

func (r *CustomTestCreate) ToCustomTest() (*CustomTest, error) {
	token, err := utils.NewShareToken()
	if err != nil {
		return nil, err
	}
	return &CustomTest{
		ID:           utils.NewID(),
		Title:        r.Title,
		Description:  r.Description,
		CreatorEmail: r.CreatorEmail,
		Questions:    toQuestions(r.Questions),
		ShareToken:   token,
		IsActive:     true,
		CreatedAt:    utils.Now(),
	}, nil
}
