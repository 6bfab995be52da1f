package handler

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/ilyassayh/sentiment-analysis-api/internal/usecase"
)

// PredictionHandler handles sentiment prediction HTTP requests
type PredictionHandler struct {
	predictionUC  usecase.PredictionUsecase
	maxTextLength int
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(predictionUC usecase.PredictionUsecase, maxTextLength int) *PredictionHandler {
	return &PredictionHandler{
		predictionUC:  predictionUC,
		maxTextLength: maxTextLength,
	}
}

// predictRequest binds text through a pointer so a missing field and an
// empty string stay distinguishable: missing is a schema violation, empty
// is a domain rule checked by the usecase.
type predictRequest struct {
	Text *string `json:"text"`
}

// Predict handles POST /predict
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleSchemaError(c, "request body must be a JSON object with a string \"text\" field")
		return
	}
	if req.Text == nil {
		HandleSchemaError(c, "missing required field \"text\"")
		return
	}
	if utf8.RuneCountInString(*req.Text) > h.maxTextLength {
		HandleSchemaError(c, fmt.Sprintf("text exceeds maximum length of %d characters", h.maxTextLength))
		return
	}

	input := &usecase.PredictInput{
		Text:      *req.Text,
		RequestID: c.GetString("request_id"),
	}

	output, err := h.predictionUC.Predict(c.Request.Context(), input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

// ListPredictions handles GET /predictions
func (h *PredictionHandler) ListPredictions(c *gin.Context) {
	output, err := h.predictionUC.ListRecent(c.Request.Context(), ParseLimit(c))
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}
