package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ilyassayh/sentiment-analysis-api/internal/domain/service"
	"github.com/ilyassayh/sentiment-analysis-api/internal/usecase"
)

func TestMapUsecaseError(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedCode       string
		expectedMessage    string
	}{
		{
			name:               "empty text",
			err:                usecase.ErrEmptyText,
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "VALIDATION_ERROR",
			expectedMessage:    "text must not be empty",
		},
		{
			name:               "model unavailable",
			err:                service.ErrModelUnavailable,
			expectedStatusCode: http.StatusServiceUnavailable,
			expectedCode:       "MODEL_UNAVAILABLE",
			expectedMessage:    "classification model unavailable",
		},
		{
			name:               "storage failure",
			err:                usecase.ErrStorageFailure,
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "STORAGE_ERROR",
			expectedMessage:    "failed to store prediction",
		},
		{
			name:               "unknown error",
			err:                errors.New("some unknown error"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INTERNAL_ERROR",
			expectedMessage:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MapUsecaseError(tt.err)

			assert.Equal(t, tt.expectedStatusCode, result.StatusCode)
			assert.Equal(t, tt.expectedCode, result.Code)
			assert.Equal(t, tt.expectedMessage, result.Message)
		})
	}
}

func TestMapUsecaseError_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), usecase.ErrStorageFailure)
	result := MapUsecaseError(wrapped)
	assert.Equal(t, "STORAGE_ERROR", result.Code)

	wrapped = errors.Join(errors.New("warmup failed"), service.ErrModelUnavailable)
	result = MapUsecaseError(wrapped)
	assert.Equal(t, "MODEL_UNAVAILABLE", result.Code)
}

func TestHandleUsecaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
	}{
		{
			name:               "empty text",
			err:                usecase.ErrEmptyText,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "internal error",
			err:                errors.New("internal"),
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleUsecaseError(c, tt.err)

			assert.Equal(t, tt.expectedStatusCode, w.Code)
		})
	}
}

func TestHandleSchemaError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleSchemaError(c, "missing required field \"text\"")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "SCHEMA_ERROR")
	assert.Contains(t, w.Body.String(), "missing required field")
}
