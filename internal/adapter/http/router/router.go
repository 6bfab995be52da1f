package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ilyassayh/sentiment-analysis-api/internal/adapter/client"
	"github.com/ilyassayh/sentiment-analysis-api/internal/adapter/http/handler"
	"github.com/ilyassayh/sentiment-analysis-api/internal/adapter/http/middleware"
	"github.com/ilyassayh/sentiment-analysis-api/internal/adapter/repository/postgres"
	"github.com/ilyassayh/sentiment-analysis-api/internal/infrastructure/cache"
	"github.com/ilyassayh/sentiment-analysis-api/internal/infrastructure/config"
	"github.com/ilyassayh/sentiment-analysis-api/internal/usecase"
)

// Setup wires repositories, the model classifier and handlers into a gin engine.
func Setup(db *gorm.DB, redisClient *redis.Client, mlClient *client.MLClient, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	healthHandler := handler.NewHealthHandler(db, redisClient, mlClient)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	predictionRepo := postgres.NewPredictionRepository(db)
	classifier := client.NewMLClassifier(mlClient)

	// A typed-nil *cache.ClassificationCache in the interface would defeat
	// the usecase's nil check, so only assign when redis is configured.
	var classificationCache usecase.ClassificationCache
	if redisClient != nil {
		classificationCache = cache.NewClassificationCache(redisClient, cfg.Cache.TTL())
	}

	predictionUC := usecase.NewPredictionUsecase(
		predictionRepo,
		classifier,
		classificationCache,
		cfg.Predict.DefaultLimit,
		cfg.Predict.MaxLimit,
	)
	predictionHandler := handler.NewPredictionHandler(predictionUC, cfg.Predict.MaxTextLength)

	r.POST("/predict", predictionHandler.Predict)
	r.GET("/predictions", predictionHandler.ListPredictions)

	return r
}
