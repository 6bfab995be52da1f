package repository

import (
	"context"

	"github.com/ilyassayh/sentiment-analysis-api/internal/domain/entity"
)

// PredictionRepository defines the interface for prediction data operations.
// Predictions are append-only: there are no update or delete operations.
type PredictionRepository interface {
	// Create persists a new prediction
	Create(ctx context.Context, prediction *entity.Prediction) error

	// ListRecent retrieves up to limit predictions, most recent first
	ListRecent(ctx context.Context, limit int) ([]*entity.Prediction, error)

	// Count returns the total number of persisted predictions
	Count(ctx context.Context) (int64, error)
}
