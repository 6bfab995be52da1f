package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ilyassayh/sentiment-analysis-api/internal/adapter/client"
)

// HealthHandler handles liveness and readiness endpoints
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
	ml    *client.MLClient
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, ml *client.MLClient) *HealthHandler {
	return &HealthHandler{
		db:    db,
		redis: redisClient,
		ml:    ml,
	}
}

// ReadyStatus represents the readiness check response
type ReadyStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health. Liveness only: it must answer even when the
// model or the store are down, so it touches neither.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready handles GET /ready. The process is ready when the database pings
// and the model service reports its weights loaded. The cache is optional
// and reported for visibility but never gates readiness.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	ready := true

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			components["database"] = "error: " + err.Error()
			ready = false
		} else if err := sqlDB.PingContext(ctx); err != nil {
			components["database"] = "error: " + err.Error()
			ready = false
		} else {
			components["database"] = "ok"
		}
	} else {
		components["database"] = "not configured"
	}

	if h.ml != nil {
		if err := h.ml.Ready(ctx); err != nil {
			components["model"] = "error: " + err.Error()
			ready = false
		} else {
			components["model"] = "ok"
		}
	} else {
		components["model"] = "not configured"
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["cache"] = "error: " + err.Error()
		} else {
			components["cache"] = "ok"
		}
	} else {
		components["cache"] = "not configured"
	}

	status := "ready"
	httpStatus := http.StatusOK
	if !ready {
		status = "not ready"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, ReadyStatus{
		Status:     status,
		Components: components,
	})
}
