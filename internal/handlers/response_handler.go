package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"testplatform/api/internal/events"
	"testplatform/api/internal/metrics"
	"testplatform/api/internal/middleware"
	"testplatform/api/internal/models"
	"testplatform/api/internal/notifications"
	"testplatform/api/internal/repositories"
	"testplatform/api/internal/utils"

	"go.uber.org/zap"
)

const eventPublishTimeout = 2 * time.Second

type ResponseHandler struct {
	responses   ResponseRepository
	customTests CustomTestRepository
	notifier    Notifier
	events      EventPublisher
	logger      *zap.Logger
}

// NewResponseHandler accepts a nil publisher when events are disabled.
func NewResponseHandler(responses ResponseRepository, customTests CustomTestRepository, notifier Notifier, publisher EventPublisher, logger *zap.Logger) *ResponseHandler {
	return &ResponseHandler{
		responses:   responses,
		customTests: customTests,
		notifier:    notifier,
		events:      publisher,
		logger:      logger,
	}
}

// SubmitResponseHandler stores the response without checking that test_id exists.
// Custom test creators are emailed after the reply is written; nothing that
// happens after the insert can change the status code.
func (handler *ResponseHandler) SubmitResponseHandler(writer http.ResponseWriter, request *http.Request) {
	req := middleware.GetValidatedRequest[*models.TestResponseCreate](request)
	response := req.ToResponse()

	if err := handler.responses.Create(request.Context(), response); err != nil {
		handler.logger.Error("failed to store test response", zap.String("test_id", response.TestID), zap.Error(err))
		writeInternal(writer, "Failed to save answers")
		return
	}
	metrics.ObserveResponse(string(response.TestType))

	var notice *notifications.CompletionNotice
	if response.TestType == models.TestTypeCustom {
		notice = handler.completionNotice(request.Context(), response)
	}

	utils.JSON(writer, http.StatusOK, models.StatusResponse{
		Status:  "success",
		Message: models.MsgAnswersSaved,
	})
	if f, ok := writer.(http.Flusher); ok {
		f.Flush()
	}

	if notice != nil && handler.notifier != nil {
		handler.notifier.Dispatch(*notice)
	}
	handler.publish(request.Context(), response)
}

func (handler *ResponseHandler) completionNotice(ctx context.Context, response *models.TestResponse) *notifications.CompletionNotice {
	test, err := handler.customTests.GetByID(ctx, response.TestID)
	if errors.Is(err, repositories.ErrNotFound) {
		handler.logger.Debug("response references unknown custom test", zap.String("test_id", response.TestID))
		return nil
	}
	if err != nil {
		handler.logger.Warn("custom test lookup failed, skipping notification",
			zap.String("test_id", response.TestID), zap.Error(err))
		return nil
	}
	return &notifications.CompletionNotice{
		CreatorEmail:    test.CreatorEmail,
		TestTitle:       test.Title,
		RespondentEmail: response.RespondentEmail,
		Response:        *response,
	}
}

func (handler *ResponseHandler) publish(ctx context.Context, response *models.TestResponse) {
	if handler.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	err := handler.events.PublishResponseSubmitted(ctx, events.ResponseSubmitted{
		ResponseID:  response.ID,
		TestID:      response.TestID,
		TestType:    string(response.TestType),
		CompletedAt: response.CompletedAt,
	})
	if err != nil {
		handler.logger.Warn("failed to publish response event", zap.String("response_id", response.ID), zap.Error(err))
	}
}
