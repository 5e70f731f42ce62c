package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Kenji-One/tikd-api/pkg/database"
	"github.com/Kenji-One/tikd-api/pkg/response"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	db      *database.PostgresDB
	redis   *redis.Client
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB, redisClient *redis.Client, version string) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient, version: version}
}

// Health reports liveness
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(gin.H{
		"status":  "ok",
		"version": h.version,
	}))
}

// Ready reports readiness by checking the backing stores
// GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()

	checks := gin.H{}
	healthy := true

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		checks["postgres"] = gin.H{"status": "down", "error": err.Error()}
		healthy = false
	} else {
		checks["postgres"] = gin.H{"status": "up", "latency_ms": time.Since(start).Milliseconds()}
	}

	start = time.Now()
	if err := h.redis.Ping(ctx).Err(); err != nil {
		checks["redis"] = gin.H{"status": "down", "error": err.Error()}
		healthy = false
	} else {
		checks["redis"] = gin.H{"status": "up", "latency_ms": time.Since(start).Milliseconds()}
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response.Success(gin.H{"checks": checks}))
}
