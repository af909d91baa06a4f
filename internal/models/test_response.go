package models

import (
	"time"

	"testplatform/api/internal/utils"
)

type TestType string

const (
	TestTypeTemplate TestType = "template"
	TestTypeCustom   TestType = "custom"
)

// TestResponse references a template or custom test by id; the reference is never verified.
// Answers are keyed by question id, Result is never computed.
type TestResponse struct {
	ID              string         `json:"id" bson:"id"`
	TestID          string         `json:"test_id" bson:"test_id"`
	TestType        TestType       `json:"test_type" bson:"test_type"`
	RespondentEmail string         `json:"respondent_email" bson:"respondent_email"`
	Answers         map[string]any `json:"answers" bson:"answers"`
	Result          map[string]any `json:"result,omitempty" bson:"result,omitempty"`
	CompletedAt     time.Time      `json:"completed_at" bson:"completed_at"`
}

type TestResponseCreate struct {
	TestID          string         `json:"test_id" validate:"required"`
	TestType        TestType       `json:"test_type" validate:"required,oneof=template custom"`
	RespondentEmail string         `json:"respondent_email" validate:"required,email"`
	Answers         map[string]any `json:"answers" validate:"required"`
}

func (r *TestResponseCreate) Validate() error {
	return validateStruct(r)
}

func (r *TestResponseCreate) ToResponse() *TestResponse {
	return &TestResponse{
		ID:              utils.NewID(),
		TestID:          r.TestID,
		TestType:        r.TestType,
		RespondentEmail: r.RespondentEmail,
		Answers:         r.Answers,
		CompletedAt:     utils.Now(),
	}
}
