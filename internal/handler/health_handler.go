package handler

import (
	"context"
	"log/slog"
	"net/http"

	"flavour_fusion/internal/database"

	"github.com/gin-gonic/gin"
)

// StoreConnector hands out the shared document store
type StoreConnector interface {
	Connect(ctx context.Context) (database.Store, error)
}

// HealthHandler serves the greeting and the store health check
type HealthHandler struct {
	connector StoreConnector
	logger    *slog.Logger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(connector StoreConnector, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{connector: connector, logger: logger}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "HELLO, WORLD!")
}

func (h *HealthHandler) Health(c *gin.Context) {
	store, err := h.connector.Connect(c.Request.Context())
	if err == nil {
		err = store.Ping(c.Request.Context())
	}
	if err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
}

// RegisterHealthRoutes registers the root and health routes
func (h *HealthHandler) RegisterHealthRoutes(r gin.IRoutes) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
}
