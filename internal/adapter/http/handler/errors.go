package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilyassayh/sentiment-analysis-api/internal/domain/service"
	"github.com/ilyassayh/sentiment-analysis-api/internal/usecase"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses. Each error
// category gets its own code so a client can tell whether resubmission makes
// sense: validation errors need a fixed input, model and storage errors a
// later retry.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrEmptyText):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "VALIDATION_ERROR",
			Message:    "text must not be empty",
		}
	case errors.Is(err, service.ErrModelUnavailable):
		return ErrorResponse{
			StatusCode: http.StatusServiceUnavailable,
			Code:       "MODEL_UNAVAILABLE",
			Message:    "classification model unavailable",
		}
	case errors.Is(err, usecase.ErrStorageFailure):
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "STORAGE_ERROR",
			Message:    "failed to store prediction",
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "INTERNAL_ERROR",
			Message:    "internal server error",
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
func HandleUsecaseError(c *gin.Context, err error) {
	errResp := MapUsecaseError(err)
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}

// HandleSchemaError handles a structural request violation: malformed body,
// missing or mistyped field, over-length text. These are detected before any
// business logic runs.
func HandleSchemaError(c *gin.Context, message string) {
	respondError(c, http.StatusUnprocessableEntity, "SCHEMA_ERROR", message)
}
