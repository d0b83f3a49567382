package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/registry"
)

// RuntimeProber checks liveness of the model runtime sidecar
type RuntimeProber interface {
	Ready(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	models  *registry.Registry
	runtime RuntimeProber
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(models *registry.Registry, runtime RuntimeProber) *HealthHandler {
	return &HealthHandler{
		models:  models,
		runtime: runtime,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status string                   `json:"status"`
	Models map[registry.Kind]string `json:"models"`
}

// Health handles GET /health. It triggers loading of every model kind
// and reports the loaded model identifiers, so the first probe doubles
// as a warm-up.
func (h *HealthHandler) Health(c *gin.Context) {
	ids, err := h.models.Identifiers(c.Request.Context())

	status := "healthy"
	httpStatus := http.StatusOK
	if err != nil {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status: status,
		Models: ids,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if h.runtime != nil {
		if err := h.runtime.Ready(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "model runtime unreachable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
