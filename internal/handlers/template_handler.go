package handlers

import (
	"errors"
	"net/http"

	"testplatform/api/internal/middleware"
	"testplatform/api/internal/models"
	"testplatform/api/internal/repositories"
	"testplatform/api/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TemplateHandler struct {
	repo   TemplateRepository
	logger *zap.Logger
}

func NewTemplateHandler(repo TemplateRepository, logger *zap.Logger) *TemplateHandler {
	return &TemplateHandler{repo: repo, logger: logger}
}

// ListTemplatesHandler returns public templates, newest first, optionally filtered by ?category_id=.
func (handler *TemplateHandler) ListTemplatesHandler(writer http.ResponseWriter, request *http.Request) {
	categoryID := request.URL.Query().Get("category_id")

	templates, err := handler.repo.ListPublic(request.Context(), categoryID)
	if err != nil {
		handler.logger.Error("failed to list templates", zap.String("category_id", categoryID), zap.Error(err))
		writeInternal(writer, "Failed to fetch test templates")
		return
	}
	utils.JSON(writer, http.StatusOK, templates)
}

func (handler *TemplateHandler) GetTemplateHandler(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	template, err := handler.repo.GetByID(request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		writeNotFound(writer)
		return
	}
	if err != nil {
		handler.logger.Error("failed to fetch template", zap.String("id", id), zap.Error(err))
		writeInternal(writer, "Failed to fetch test template")
		return
	}
	utils.JSON(writer, http.StatusOK, template)
}

func (handler *TemplateHandler) CreateTemplateHandler(writer http.ResponseWriter, request *http.Request) {
	req := middleware.GetValidatedRequest[*models.TestTemplateCreate](request)
	template := req.ToTemplate()

	if err := handler.repo.Create(request.Context(), template); err != nil {
		handler.logger.Error("failed to create template", zap.Error(err))
		writeInternal(writer, "Failed to create test template")
		return
	}
	utils.JSON(writer, http.StatusOK, template)
}
