package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/zendocod/zendo/internal/domain/errors"
)

// StatsHandler serves the admin dashboard statistics snapshot.
type StatsHandler struct {
	facade StatsFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(facade StatsFacade) *StatsHandler {
	return &StatsHandler{facade: facade}
}

// Get handles GET /api/admin/stats.
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context(),
		intQuery(c, "days", 0), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, stats)
}
