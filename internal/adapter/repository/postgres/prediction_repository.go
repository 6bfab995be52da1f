package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/ilyassayh/sentiment-analysis-api/internal/domain/entity"
	"github.com/ilyassayh/sentiment-analysis-api/internal/domain/repository"
)

type predictionRepository struct {
	db *gorm.DB
}

// NewPredictionRepository creates a new prediction repository
func NewPredictionRepository(db *gorm.DB) repository.PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) Create(ctx context.Context, prediction *entity.Prediction) error {
	return r.db.WithContext(ctx).Create(prediction).Error
}

func (r *predictionRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Prediction, error) {
	var predictions []*entity.Prediction
	// Ties on created_at are broken by id, which is strictly increasing
	// in insertion order.
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

func (r *predictionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Prediction{}).Count(&count).Error
	return count, err
}
