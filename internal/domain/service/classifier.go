package service

import (
	"context"
	"errors"

	"github.com/ilyassayh/sentiment-analysis-api/internal/domain/entity"
)

// ErrModelUnavailable reports that the classification model cannot produce
// a result, either because its one-time initialization failed or because a
// runtime call failed. It is never retried within a request.
var ErrModelUnavailable = errors.New("classification model unavailable")

// ClassificationResult represents the result of text classification
type ClassificationResult struct {
	// Sentiment is the predicted class, already normalized to the
	// canonical lowercase labels.
	Sentiment entity.Sentiment

	// Score is the probability mass the model assigns to the predicted
	// label. Always within [0, 1], never NaN.
	Score float64

	// ModelVersion identifies the model that produced the result.
	ModelVersion string
}

// Classifier defines the interface for binary sentiment classification.
// Implementations must be deterministic for a fixed model version and input,
// and safe for concurrent use.
type Classifier interface {
	Classify(ctx context.Context, text, requestID string) (*ClassificationResult, error)
}
