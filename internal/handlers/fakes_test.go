package handlers_test

import (
	"context"
	"sort"
	"sync"

	"testplatform/api/internal/events"
	"testplatform/api/internal/models"
	"testplatform/api/internal/notifications"
	"testplatform/api/internal/repositories"
)

// memStore backs every fake repository; a set err makes every call fail.
type memStore struct {
	mu          sync.Mutex
	categories  []models.Category
	templates   []models.TestTemplate
	customTests []models.CustomTest
	responses   []models.TestResponse
	err         error
}

type fakeCategoryRepo struct{ s *memStore }

func (f fakeCategoryRepo) Create(_ context.Context, c *models.Category) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.err != nil {
		return f.s.err
	}
	f.s.categories = append(f.s.categories, *c)
	return nil
}

func (f fakeCategoryRepo) List(context.Context) ([]models.Category, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.err != nil {
		return nil, f.s.err
	}
	out := append([]models.Category{}, f.s.categories...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (f fakeCategoryRepo) Count(context.Context) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return int64(len(f.s.categories)), f.s.err
}

type fakeTemplateRepo struct{ s *memStore }

func (f fakeTemplateRepo) Create(_ context.Context, t *models.TestTemplate) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.err != nil {
		return f.s.err
	}
	f.s.templates = append(f.s.templates, *t)
	return nil
}

func (f fakeTemplateRepo) ListPublic(_ context.Context, categoryID string) ([]models.TestTemplate, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.err != nil {
		return nil, f.s.err
	}
	out := []models.TestTemplate{}
	for _, t := range f.s.templates {
		if !t.IsPublic || (categoryID != "" && t.CategoryID != categoryID) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f fakeTemplateRepo) GetByID(_ context.Context, id string) (*models.TestTemplate, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.err != nil {
		return nil, f.s.err
	}
	for _, t := range f.s.templates {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f fakeTemplateRepo) Count(context.Context) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return int64(len(f.s.templates)), f.s.err
}

type fakeCustomTestRepo struct {
	s         *memStore
	getByIDFn func(string) (*models.CustomTest, error)
}

func (f fakeCustomTestRepo) Create(_ context.Context, t *models.CustomTest) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.err != nil {
		return f.s.err
	}
	f.s.customTests = append(f.s.customTests, *t)
	return nil
}

func (f fakeCustomTestRepo) GetActiveByShareToken(_ context.Context, token string) (*models.CustomTest, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.err != nil {
		return nil, f.s.err
	}
	for _, t := range f.s.customTests {
		if t.ShareToken == token && t.IsActive {
			t := t
			return &t, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f fakeCustomTestRepo) GetByID(_ context.Context, id string) (*models.CustomTest, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(id)
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.err != nil {
		return nil, f.s.err
	}
	for _, t := range f.s.customTests {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f fakeCustomTestRepo) Count(context.Context) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return int64(len(f.s.customTests)), f.s.err
}

type fakeResponseRepo struct {
	s        *memStore
	createFn func(*models.TestResponse) error
}

func (f fakeResponseRepo) Create(_ context.Context, r *models.TestResponse) error {
	if f.createFn != nil {
		return f.createFn(r)
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.err != nil {
		return f.s.err
	}
	f.s.responses = append(f.s.responses, *r)
	return nil
}

func (f fakeResponseRepo) Count(context.Context) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return int64(len(f.s.responses)), f.s.err
}

type fakeNotifier struct {
	mu      sync.Mutex
	notices []notifications.CompletionNotice
}

func (f *fakeNotifier) Dispatch(n notifications.CompletionNotice) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, n)
}

type fakePublisher struct {
	published []events.ResponseSubmitted
	err       error
}

func (f *fakePublisher) PublishResponseSubmitted(_ context.Context, e events.ResponseSubmitted) error {
	f.published = append(f.published, e)
	return f.err
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }
