package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ilyassayh/sentiment-analysis-api/internal/domain/entity"
	"github.com/ilyassayh/sentiment-analysis-api/internal/domain/service"
)

// ClassificationCache memoizes model verdicts keyed by input text. The
// model is deterministic for a given version, so a cached verdict is as
// good as a fresh one until the entry expires.
type ClassificationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClassificationCache(client *redis.Client, ttl time.Duration) *ClassificationCache {
	return &ClassificationCache{client: client, ttl: ttl}
}

type cachedResult struct {
	Sentiment    entity.Sentiment `json:"sentiment"`
	Score        float64          `json:"score"`
	ModelVersion string           `json:"model_version"`
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "classification:" + hex.EncodeToString(sum[:])
}

func (c *ClassificationCache) Get(ctx context.Context, text string) (*service.ClassificationResult, bool) {
	data, err := c.client.Get(ctx, cacheKey(text)).Bytes()
	if err != nil {
		return nil, false
	}

	var cached cachedResult
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false
	}
	if !cached.Sentiment.Valid() {
		return nil, false
	}

	return &service.ClassificationResult{
		Sentiment:    cached.Sentiment,
		Score:        cached.Score,
		ModelVersion: cached.ModelVersion,
	}, true
}

// Set stores a verdict best-effort; a cache write failure never fails
// the request.
func (c *ClassificationCache) Set(ctx context.Context, text string, result *service.ClassificationResult) {
	data, err := json.Marshal(cachedResult{
		Sentiment:    result.Sentiment,
		Score:        result.Score,
		ModelVersion: result.ModelVersion,
	})
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKey(text), data, c.ttl)
}
