package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zendocod/zendo/internal/server/http/dto"
)

// AnalyticsHandler records storefront visit events.
type AnalyticsHandler struct {
	facade AnalyticsFacade
}

// NewAnalyticsHandler constructs AnalyticsHandler.
func NewAnalyticsHandler(facade AnalyticsFacade) *AnalyticsHandler {
	return &AnalyticsHandler{facade: facade}
}

// TrackVisit handles POST /api/analytics/track-visit. Tracking is
// best-effort: a storage failure is logged upstream and still acknowledged,
// page views must never break the storefront.
func (h *AnalyticsHandler) TrackVisit(c *gin.Context) {
	var req dto.TrackVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	_ = h.facade.TrackVisit(c.Request.Context(), req.Path)
	c.Status(http.StatusAccepted)
}
