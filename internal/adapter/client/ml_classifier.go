package client

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/ilyassayh/sentiment-analysis-api/internal/domain/entity"
	"github.com/ilyassayh/sentiment-analysis-api/internal/domain/service"
)

// MLClassifier adapts MLClient to the Classifier interface. The first call
// performs a single warmup probe against the model service; the outcome is
// latched for the process lifetime, so a failed warmup is surfaced as
// ErrModelUnavailable on every later call instead of being retried.
type MLClassifier struct {
	client *MLClient

	warmupOnce sync.Once
	warmupErr  error
}

// NewMLClassifier creates a new MLClassifier
func NewMLClassifier(client *MLClient) *MLClassifier {
	return &MLClassifier{client: client}
}

// Classify classifies a single text
func (c *MLClassifier) Classify(ctx context.Context, text, requestID string) (*service.ClassificationResult, error) {
	if err := c.warmup(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrModelUnavailable, err)
	}

	resp, err := c.client.Classify(ctx, text, requestID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrModelUnavailable, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: model reported failure", service.ErrModelUnavailable)
	}

	sentiment, ok := normalizeLabel(resp.Result.Label)
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized label %q", service.ErrModelUnavailable, resp.Result.Label)
	}

	// For a binary classifier the probability of the predicted label is
	// the larger of the two class probabilities.
	score := math.Max(resp.Result.Scores.Positive, resp.Result.Scores.Negative)
	if math.IsNaN(score) || score < 0 || score > 1 {
		return nil, fmt.Errorf("%w: score %v outside [0,1]", service.ErrModelUnavailable, score)
	}

	return &service.ClassificationResult{
		Sentiment:    sentiment,
		Score:        score,
		ModelVersion: resp.ModelVersion,
	}, nil
}

// warmup runs the one-time readiness probe. Concurrent first callers
// serialize behind the Once and all observe the same outcome.
func (c *MLClassifier) warmup(ctx context.Context) error {
	c.warmupOnce.Do(func() {
		c.warmupErr = c.client.Ready(ctx)
	})
	return c.warmupErr
}

// normalizeLabel maps raw model labels to the two canonical classes.
// Handles POSITIVE/NEGATIVE as well as LABEL_1/LABEL_0 style outputs.
func normalizeLabel(raw string) (entity.Sentiment, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "positive", "pos", "label_1", "1":
		return entity.SentimentPositive, true
	case "negative", "neg", "label_0", "0":
		return entity.SentimentNegative, true
	default:
		return "", false
	}
}
