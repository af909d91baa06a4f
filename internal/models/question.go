package models

import "testplatform/api/internal/utils"

type QuestionType string

const (
	SingleChoice   QuestionType = "single_choice"
	MultipleChoice QuestionType = "multiple_choice"
	Scale          QuestionType = "scale"
	Text           QuestionType = "text"
)

// Question is owned by exactly one template or custom test.
// type decides which of options / min_value / max_value matter; nothing cross-checks them.
type Question struct {
	ID       string       `json:"id" bson:"id"`
	Text     string       `json:"text" bson:"text"`
	Type     QuestionType `json:"type" bson:"type"`
	Options  []string     `json:"options,omitempty" bson:"options,omitempty"`
	MinValue *int         `json:"min_value,omitempty" bson:"min_value,omitempty"`
	MaxValue *int         `json:"max_value,omitempty" bson:"max_value,omitempty"`
	MinLabel string       `json:"min_label,omitempty" bson:"min_label,omitempty"`
	MaxLabel string       `json:"max_label,omitempty" bson:"max_label,omitempty"`
	Required bool         `json:"required" bson:"required"`
	Order    int          `json:"order" bson:"order"`
}

// QuestionInput is the client-supplied form; id and required are optional.
type QuestionInput struct {
	ID       string       `json:"id"`
	Text     string       `json:"text" validate:"required"`
	Type     QuestionType `json:"type" validate:"required,oneof=single_choice multiple_choice scale text"`
	Options  []string     `json:"options"`
	MinValue *int         `json:"min_value"`
	MaxValue *int         `json:"max_value"`
	MinLabel string       `json:"min_label"`
	MaxLabel string       `json:"max_label"`
	Required *bool        `json:"required"`
	Order    int          `json:"order"`
}

func (in QuestionInput) ToQuestion() Question {
	q := Question{
		ID:       in.ID,
		Text:     in.Text,
		Type:     in.Type,
		Options:  in.Options,
		MinValue: in.MinValue,
		MaxValue: in.MaxValue,
		MinLabel: in.MinLabel,
		MaxLabel: in.MaxLabel,
		Required: true,
		Order:    in.Order,
	}
	if q.ID == "" {
		q.ID = utils.NewID()
	}
	if in.Required != nil {
		q.Required = *in.Required
	}
	return q
}

func toQuestions(in []QuestionInput) []Question {
	out := make([]Question, 0, len(in))
	for _, q := range in {
		out = append(out, q.ToQuestion())
	}
	return out
}
