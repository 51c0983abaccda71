package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zendocod/zendo/internal/server/http/dto"
)

// HealthHandler reports service liveness and database reachability.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Get handles GET /api/health.
func (h *HealthHandler) Get(c *gin.Context) {
	database := "connected"
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		database = "disconnected"
	}
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "OK",
		Database:  database,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
