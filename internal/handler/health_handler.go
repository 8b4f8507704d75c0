package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"employee-records/internal/database"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	db *database.MongoDB
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.MongoDB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports process liveness
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports readiness, including store connectivity
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
