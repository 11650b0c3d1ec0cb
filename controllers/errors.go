package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/IsMarshev/we-site/services"

	"github.com/gin-gonic/gin"
)

// ErrorResponse — структура для ответа об ошибке
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError подбирает HTTP-статус по таксономии ошибок сервисов
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	}
	ctx.JSON(status, ErrorResponse{Error: err.Error()})
}

// parseUint — преобразование идентификатора из пути в uint
func parseUint(value string) (uint, bool) {
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(parsed), true
}
