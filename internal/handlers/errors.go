package handlers

import (
	"net/http"

	"testplatform/api/internal/models"
	"testplatform/api/internal/utils"
)

func writeNotFound(writer http.ResponseWriter) {
	utils.JSON(writer, http.StatusNotFound, models.ErrorResponse{
		Code:    "not_found",
		Message: models.MsgTestNotFound,
	})
}

func writeInternal(writer http.ResponseWriter, message string) {
	utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
		Code:    "internal_error",
		Message: message,
	})
}
