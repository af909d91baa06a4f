package routers

import (
	"net/http"

	"testplatform/api/internal/handlers"
	"testplatform/api/internal/middleware"
	"testplatform/api/internal/models"

	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Category   *handlers.CategoryHandler
	Template   *handlers.TemplateHandler
	CustomTest *handlers.CustomTestHandler
	Response   *handlers.ResponseHandler
	Admin      *handlers.AdminHandler
}

// APIRoutes mounts every public and admin route under /api.
func APIRoutes(r chi.Router, h Handlers, admin *middleware.AdminAuth) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.Health.RootHandler)

		CategoryRoutes(r, h.Category, admin)
		TemplateRoutes(r, h.Template, admin)
		CustomTestRoutes(r, h.CustomTest)
		ResponseRoutes(r, h.Response)
		AdminRoutes(r, h.Admin, admin)
	})
}

func HealthRoutes(r chi.Router, healthHandler *handlers.HealthHandler, metricsHandler http.Handler) {
	r.Get("/healthz", healthHandler.HealthzHandler)
	r.Get("/readyz", healthHandler.ReadyzHandler)
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}
}

// admin check runs before body validation so bad credentials always get a 401
func CategoryRoutes(r chi.Router, h *handlers.CategoryHandler, admin *middleware.AdminAuth) {
	r.Get("/categories", h.ListCategoriesHandler)
	r.With(admin.Middleware, middleware.ValidateRequest[*models.CategoryCreate]()).
		Post("/categories", h.CreateCategoryHandler)
}

func TemplateRoutes(r chi.Router, h *handlers.TemplateHandler, admin *middleware.AdminAuth) {
	r.Route("/test-templates", func(r chi.Router) {
		r.Get("/", h.ListTemplatesHandler)
		r.With(admin.Middleware, middleware.ValidateRequest[*models.TestTemplateCreate]()).
			Post("/", h.CreateTemplateHandler)
		r.Get("/{id}", h.GetTemplateHandler)
	})
}

func CustomTestRoutes(r chi.Router, h *handlers.CustomTestHandler) {
	r.Route("/custom-tests", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.CustomTestCreate]()).
			Post("/", h.CreateCustomTestHandler)
		r.Get("/{share_token}", h.GetCustomTestHandler)
	})
}

func ResponseRoutes(r chi.Router, h *handlers.ResponseHandler) {
	r.With(middleware.ValidateRequest[*models.TestResponseCreate]()).
		Post("/test-responses", h.SubmitResponseHandler)
}

func AdminRoutes(r chi.Router, h *handlers.AdminHandler, admin *middleware.AdminAuth) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(admin.Middleware)
		r.Get("/stats", h.StatsHandler)
		r.Post("/init-data", h.InitDataHandler)
	})
}
