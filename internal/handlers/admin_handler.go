package handlers

import (
	"net/http"

	"testplatform/api/internal/models"
	"testplatform/api/internal/seed"
	"testplatform/api/internal/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	categories  CategoryRepository
	templates   TemplateRepository
	customTests CustomTestRepository
	responses   ResponseRepository
	logger      *zap.Logger
}

func NewAdminHandler(categories CategoryRepository, templates TemplateRepository, customTests CustomTestRepository, responses ResponseRepository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		categories:  categories,
		templates:   templates,
		customTests: customTests,
		responses:   responses,
		logger:      logger,
	}
}

func (handler *AdminHandler) StatsHandler(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	var (
		stats models.StatsResponse
		err   error
	)

	if stats.TotalTemplates, err = handler.templates.Count(ctx); err != nil {
		handler.statsFailed(writer, "test_templates", err)
		return
	}
	if stats.TotalCustomTests, err = handler.customTests.Count(ctx); err != nil {
		handler.statsFailed(writer, "custom_tests", err)
		return
	}
	if stats.TotalResponses, err = handler.responses.Count(ctx); err != nil {
		handler.statsFailed(writer, "test_responses", err)
		return
	}
	if stats.TotalCategories, err = handler.categories.Count(ctx); err != nil {
		handler.statsFailed(writer, "categories", err)
		return
	}

	utils.JSON(writer, http.StatusOK, stats)
}

func (handler *AdminHandler) statsFailed(writer http.ResponseWriter, collection string, err error) {
	handler.logger.Error("failed to count documents", zap.String("collection", collection), zap.Error(err))
	writeInternal(writer, "Failed to fetch statistics")
}

// InitDataHandler seeds the starter catalogue once; later calls are no-ops.
func (handler *AdminHandler) InitDataHandler(writer http.ResponseWriter, request *http.Request) {
	result, err := seed.Run(request.Context(), handler.categories, handler.templates)
	if err != nil {
		handler.logger.Error("failed to seed initial data", zap.Error(err))
		writeInternal(writer, "Failed to initialize data")
		return
	}

	if !result.Seeded {
		utils.JSON(writer, http.StatusOK, models.InitDataResponse{Message: models.MsgAlreadyInitialized})
		return
	}

	handler.logger.Info("initial data created", zap.Int("categories", result.CategoriesCreated))
	utils.JSON(writer, http.StatusOK, models.InitDataResponse{
		Message:           models.MsgInitialized,
		CategoriesCreated: result.CategoriesCreated,
	})
}
