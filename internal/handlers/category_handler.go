package handlers

import (
	"net/http"

	"testplatform/api/internal/middleware"
	"testplatform/api/internal/models"
	"testplatform/api/internal/utils"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	repo   CategoryRepository
	logger *zap.Logger
}

func NewCategoryHandler(repo CategoryRepository, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{repo: repo, logger: logger}
}

func (handler *CategoryHandler) ListCategoriesHandler(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.repo.List(request.Context())
	if err != nil {
		handler.logger.Error("failed to list categories", zap.Error(err))
		writeInternal(writer, "Failed to fetch categories")
		return
	}
	utils.JSON(writer, http.StatusOK, categories)
}

// CreateCategoryHandler expects the admin check and ValidateRequest to have run.
func (handler *CategoryHandler) CreateCategoryHandler(writer http.ResponseWriter, request *http.Request) {
	req := middleware.GetValidatedRequest[*models.CategoryCreate](request)
	category := req.ToCategory()

	if err := handler.repo.Create(request.Context(), category); err != nil {
		handler.logger.Error("failed to create category", zap.Error(err))
		writeInternal(writer, "Failed to create category")
		return
	}
	utils.JSON(writer, http.StatusOK, category)
}
