package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Pinger is an optional dependency whose reachability is part of the health report
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db    *gorm.DB
	cache Pinger
}

// NewHealthHandler creates a new health handler. cache may be nil when view caching is disabled.
func NewHealthHandler(db *gorm.DB, cache Pinger) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cache,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Overall health including database and cache connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services, ok := h.checkDependencies(c.Request.Context(), "healthy", "error: ")

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  services,
	}
	statusCode := http.StatusOK
	if !ok {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check whether the catalog store is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services, ready := h.checkDependencies(c.Request.Context(), "ready", "not ready: ")

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

// checkDependencies pings the database and, when configured, the cache. An unreachable cache
// is reported but does not fail the check since views fall back to the store.
func (h *HealthHandler) checkDependencies(ctx context.Context, okLabel, failPrefix string) (map[string]string, bool) {
	services := make(map[string]string)
	ok := true

	if h.db == nil {
		ok = false
		services["database"] = failPrefix + "not configured"
	} else if sqlDB, err := h.db.DB(); err != nil {
		ok = false
		services["database"] = failPrefix + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		ok = false
		services["database"] = failPrefix + err.Error()
	} else {
		services["database"] = okLabel
	}

	switch {
	case h.cache == nil:
		services["cache"] = "disabled"
	case h.cache.Ping(ctx) != nil:
		services["cache"] = "unreachable"
	default:
		services["cache"] = okLabel
	}

	return services, ok
}
