package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/usecase"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses. A blank
// query is the only client error; every other failure collapses into a
// uniform sanitized processing error, with the detail kept in the logs.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrEmptyQuery):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "INVALID_REQUEST",
			Message:    "query text must not be empty",
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "PROCESSING_FAILED",
			Message:    "processing failed",
		}
	}
}

// HandleUsecaseError logs the error detail and sends the sanitized
// mapped response. Raw internal error text never reaches the caller.
func HandleUsecaseError(c *gin.Context, logger *zap.Logger, err error) {
	errResp := MapUsecaseError(err)
	if errResp.StatusCode >= http.StatusInternalServerError {
		logger.Error("request processing failed",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}

// HandleInvalidRequest handles a generic invalid request error.
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "INVALID_REQUEST", message)
}
