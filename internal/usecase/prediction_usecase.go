package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ilyassayh/sentiment-analysis-api/internal/domain/entity"
	"github.com/ilyassayh/sentiment-analysis-api/internal/domain/repository"
	"github.com/ilyassayh/sentiment-analysis-api/internal/domain/service"
)

// Error definitions for the prediction usecase
var (
	ErrEmptyText      = errors.New("text must not be empty")
	ErrStorageFailure = errors.New("failed to access prediction store")
)

var (
	predictionsStored = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_api_predictions_stored_total",
		Help: "Total number of predictions persisted, by sentiment.",
	}, []string{"sentiment"})
	predictionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentiment_api_predictions_failed_total",
		Help: "Total number of prediction requests that failed after validation.",
	})
	classificationCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentiment_api_classification_cache_hits_total",
		Help: "Total number of classifications served from cache.",
	})
)

// Default bounds applied when no configuration is supplied
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// PredictInput represents the input for a prediction request
type PredictInput struct {
	Text      string
	RequestID string
}

// PredictionOutput represents the public result of one prediction
type PredictionOutput struct {
	Text       string  `json:"text"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Summary    string  `json:"summary"`
}

// StoredPredictionOutput is a persisted prediction as returned by list reads
type StoredPredictionOutput struct {
	ID         uint64  `json:"id"`
	Text       string  `json:"text"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Summary    string  `json:"summary"`
	CreatedAt  string  `json:"created_at"`
}

// PredictionListOutput represents a list of recent predictions
type PredictionListOutput struct {
	Predictions []*StoredPredictionOutput `json:"predictions"`
	Total       int64                     `json:"total"`
	Limit       int                       `json:"limit"`
}

// ClassificationCache caches classification results for identical inputs.
// The classifier contract is deterministic for a fixed model version and
// input, so a cached result is interchangeable with a fresh one.
type ClassificationCache interface {
	Get(ctx context.Context, text string) (*service.ClassificationResult, bool)
	Set(ctx context.Context, text string, result *service.ClassificationResult)
}

// PredictionUsecase defines the interface for prediction business logic
type PredictionUsecase interface {
	Predict(ctx context.Context, input *PredictInput) (*PredictionOutput, error)
	ListRecent(ctx context.Context, limit int) (*PredictionListOutput, error)
}

type predictionUsecase struct {
	repo       repository.PredictionRepository
	classifier service.Classifier
	cache      ClassificationCache

	defaultLimit int
	maxLimit     int
}

// NewPredictionUsecase creates a new prediction usecase. The cache is
// optional and may be nil.
func NewPredictionUsecase(repo repository.PredictionRepository, classifier service.Classifier, cache ClassificationCache, defaultLimit, maxLimit int) PredictionUsecase {
	if defaultLimit <= 0 {
		defaultLimit = DefaultListLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxListLimit
	}
	return &predictionUsecase{
		repo:         repo,
		classifier:   classifier,
		cache:        cache,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Predict runs the full pipeline: domain validation, classification,
// assembly and persistence. A response is only produced once the row is
// durably stored; a storage failure discards the classification result and
// fails the whole request.
func (u *predictionUsecase) Predict(ctx context.Context, input *PredictInput) (*PredictionOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrEmptyText
	}

	result, err := u.classify(ctx, input.Text, input.RequestID)
	if err != nil {
		predictionsFailed.Inc()
		return nil, err
	}

	prediction := entity.NewPrediction(input.Text, result.Sentiment, result.Score)

	if err := u.repo.Create(ctx, prediction); err != nil {
		predictionsFailed.Inc()
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	predictionsStored.WithLabelValues(string(prediction.Sentiment)).Inc()

	return &PredictionOutput{
		Text:       prediction.Text,
		Sentiment:  string(prediction.Sentiment),
		Confidence: prediction.Confidence,
		Summary:    prediction.Summary(),
	}, nil
}

func (u *predictionUsecase) classify(ctx context.Context, text, requestID string) (*service.ClassificationResult, error) {
	if u.cache != nil {
		if result, ok := u.cache.Get(ctx, text); ok {
			classificationCacheHits.Inc()
			return result, nil
		}
	}

	result, err := u.classifier.Classify(ctx, text, requestID)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		u.cache.Set(ctx, text, result)
	}
	return result, nil
}

// ListRecent returns up to limit predictions ordered by recency. The limit
// is clamped to the configured default and ceiling so client input never
// drives an unbounded scan.
func (u *predictionUsecase) ListRecent(ctx context.Context, limit int) (*PredictionListOutput, error) {
	if limit <= 0 {
		limit = u.defaultLimit
	}
	if limit > u.maxLimit {
		limit = u.maxLimit
	}

	predictions, err := u.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	total, err := u.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	outputs := make([]*StoredPredictionOutput, len(predictions))
	for i, p := range predictions {
		outputs[i] = toStoredPredictionOutput(p)
	}

	return &PredictionListOutput{
		Predictions: outputs,
		Total:       total,
		Limit:       limit,
	}, nil
}

func toStoredPredictionOutput(p *entity.Prediction) *StoredPredictionOutput {
	return &StoredPredictionOutput{
		ID:         p.ID,
		Text:       p.Text,
		Sentiment:  string(p.Sentiment),
		Confidence: p.Confidence,
		Summary:    p.Summary(),
		CreatedAt:  p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
