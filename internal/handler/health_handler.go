package handler

import (
	"net/http"

	"bga-backend/internal/transport/httpdto"
	"bga-backend/pkg/database"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	db database.Pinger
}

func NewHealthHandler(db database.Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root is the plain-text liveness probe.
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Backend running")
}

// Health reports whether the database answers a ping.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := database.HealthCheck(c.Request.Context(), h.db); err != nil {
		c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse("database unavailable"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
