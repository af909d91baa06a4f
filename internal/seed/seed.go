package seed

import (
	"context"
	"fmt"

	"testplatform/api/internal/models"
	"testplatform/api/internal/utils"
)

type CategoryStore interface {
	Create(ctx context.Context, c *models.Category) error
	Count(ctx context.Context) (int64, error)
}

type TemplateStore interface {
	Create(ctx context.Context, t *models.TestTemplate) error
}

// Result reports what Run did. Seeded is false when categories already existed.
type Result struct {
	Seeded            bool
	CategoriesCreated int
}

// Run inserts the starter catalogue unless any category exists.
// Two concurrent calls may both see zero and both insert.
func Run(ctx context.Context, categories CategoryStore, templates TemplateStore) (Result, error) {
	n, err := categories.Count(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("count categories: %w", err)
	}
	if n > 0 {
		return Result{}, nil
	}

	cats := Categories()
	for i := range cats {
		if err := categories.Create(ctx, &cats[i]); err != nil {
			return Result{}, fmt.Errorf("insert category %s: %w", cats[i].Slug, err)
		}
	}

	tpl := StarterTemplate(cats[0].ID)
	if err := templates.Create(ctx, &tpl); err != nil {
		return Result{}, fmt.Errorf("insert starter template: %w", err)
	}

	return Result{Seeded: true, CategoriesCreated: len(cats)}, nil
}

type categorySeed struct {
	name, slug, description, icon, color string
}

var categorySeeds = []categorySeed{
	{"Личность и характер", "personality", "Тесты для определения типа личности и черт характера", "user", "#4F46E5"},
	{"Отношения", "relationships", "Тесты о совместимости и отношениях", "heart", "#EC4899"},
	{"Карьера и профессия", "career", "Профориентационные тесты и тесты для карьеры", "briefcase", "#059669"},
	{"Интеллект и способности", "intelligence", "Тесты на интеллект и когнитивные способности", "brain", "#DC2626"},
	{"Эмоциональное состояние", "emotions", "Тесты на эмоциональное состояние и стрессоустойчивость", "smile", "#7C3AED"},
}

// Categories returns fresh copies of the five built-in categories, sort_order 1..5.
func Categories() []models.Category {
	now := utils.Now()
	out := make([]models.Category, 0, len(categorySeeds))
	for i, s := range categorySeeds {
		out = append(out, models.Category{
			ID:          utils.NewID(),
			Name:        s.name,
			Slug:        s.slug,
			Description: s.description,
			Icon:        s.icon,
			Color:       s.color,
			SortOrder:   i + 1,
			CreatedAt:   now,
		})
	}
	return out
}

// StarterTemplate is the "get to know me" template filed under categoryID.
func StarterTemplate(categoryID string) models.TestTemplate {
	minValue, maxValue := 1, 10
	return models.TestTemplate{
		ID:          utils.NewID(),
		Title:       "Узнай меня лучше",
		Description: "Базовый тест для знакомства с человеком. Узнайте больше о предпочтениях и характере.",
		CategoryID:  categoryID,
		Questions: []models.Question{
			{
				ID:       utils.NewID(),
				Text:     "Какой ваш любимый цвет?",
				Type:     models.SingleChoice,
				Options:  []string{"Красный", "Синий", "Зеленый", "Желтый", "Черный", "Белый"},
				Required: true,
				Order:    1,
			},
			{
				ID:       utils.NewID(),
				Text:     "Как вы предпочитаете проводить выходные?",
				Type:     models.SingleChoice,
				Options:  []string{"Дома с книгой", "С друзьями на природе", "В спортзале", "За творчеством", "За изучением чего-то нового"},
				Required: true,
				Order:    2,
			},
			{
				ID:       utils.NewID(),
				Text:     "Оцените свою общительность по шкале от 1 до 10",
				Type:     models.Scale,
				MinValue: &minValue,
				MaxValue: &maxValue,
				MinLabel: "Интроверт",
				MaxLabel: "Экстраверт",
				Required: true,
				Order:    3,
			},
		},
		IsPublic:          true,
		EstimatedDuration: 3,
		CreatedAt:         utils.Now(),
	}
}
