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

type CustomTestHandler struct {
	repo   CustomTestRepository
	logger *zap.Logger
}

func NewCustomTestHandler(repo CustomTestRepository, logger *zap.Logger) *CustomTestHandler {
	return &CustomTestHandler{repo: repo, logger: logger}
}

// CreateCustomTestHandler is public; the response carries the share token.
func (handler *CustomTestHandler) CreateCustomTestHandler(writer http.ResponseWriter, request *http.Request) {
	req := middleware.GetValidatedRequest[*models.CustomTestCreate](request)

	test, err := req.ToCustomTest()
	if err != nil {
		handler.logger.Error("failed to build custom test", zap.Error(err))
		writeInternal(writer, "Failed to create custom test")
		return
	}

	if err := handler.repo.Create(request.Context(), test); err != nil {
		handler.logger.Error("failed to create custom test", zap.Error(err))
		writeInternal(writer, "Failed to create custom test")
		return
	}
	utils.JSON(writer, http.StatusOK, test)
}

// GetCustomTestHandler does not distinguish unknown from deactivated tokens.
func (handler *CustomTestHandler) GetCustomTestHandler(writer http.ResponseWriter, request *http.Request) {
	token := chi.URLParam(request, "share_token")

	test, err := handler.repo.GetActiveByShareToken(request.Context(), token)
	if errors.Is(err, repositories.ErrNotFound) {
		writeNotFound(writer)
		return
	}
	if err != nil {
		handler.logger.Error("failed to fetch custom test", zap.Error(err))
		writeInternal(writer, "Failed to fetch custom test")
		return
	}
	utils.JSON(writer, http.StatusOK, test)
}
