package handlers

import (
	"context"
	"net/http"
	"time"

	"testplatform/api/internal/utils"
)

const readinessTimeout = 2 * time.Second

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status  string                    `json:"status"` // "ready" | "not_ready"
	Service string                    `json:"service"`
	Checks  map[string]ReadinessCheck `json:"checks"`
}

type HealthHandler struct {
	store Pinger
	// nil when response events are disabled
	events Pinger
}

func NewHealthHandler(store Pinger, events Pinger) *HealthHandler {
	return &HealthHandler{store: store, events: events}
}

func (handler *HealthHandler) RootHandler(writer http.ResponseWriter, request *http.Request) {
	utils.JSON(writer, http.StatusOK, map[string]string{"message": "Test Platform API"})
}

func (handler *HealthHandler) HealthzHandler(writer http.ResponseWriter, request *http.Request) {
	utils.JSON(writer, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "test-platform",
	})
}

func (handler *HealthHandler) ReadyzHandler(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), readinessTimeout)
	defer cancel()

	checks := make(map[string]ReadinessCheck)
	allChecksPass := true

	if handler.store == nil {
		checks["mongo"] = ReadinessCheck{Status: "failed", Message: "store client not initialized"}
		allChecksPass = false
	} else if err := handler.store.Ping(ctx); err != nil {
		checks["mongo"] = ReadinessCheck{Status: "failed", Message: err.Error()}
		allChecksPass = false
	} else {
		checks["mongo"] = ReadinessCheck{Status: "ok"}
	}

	if handler.events != nil {
		if err := handler.events.Ping(ctx); err != nil {
			checks["redis"] = ReadinessCheck{Status: "failed", Message: err.Error()}
			allChecksPass = false
		} else {
			checks["redis"] = ReadinessCheck{Status: "ok"}
		}
	}

	response := ReadinessResponse{Service: "test-platform", Checks: checks}
	if allChecksPass {
		response.Status = "ready"
		utils.JSON(writer, http.StatusOK, response)
	} else {
		response.Status = "not_ready"
		utils.JSON(writer, http.StatusServiceUnavailable, response)
	}
}
