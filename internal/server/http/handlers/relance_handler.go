package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zendocod/zendo/internal/server/http/dto"
)

// RelanceHandler serves follow-up campaign preparation.
type RelanceHandler struct {
	facade RelanceFacade
}

// NewRelanceHandler constructs RelanceHandler.
func NewRelanceHandler(facade RelanceFacade) *RelanceHandler {
	return &RelanceHandler{facade: facade}
}

// Stats handles GET /api/admin/relance.
func (h *RelanceHandler) Stats(c *gin.Context) {
	count, err := h.facade.RelanceEligibleCount(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.RelanceStatsResponse{EligibleForRelance: count})
}

// Generate handles POST /api/admin/relance. Messages are returned to the
// operator, never sent automatically.
func (h *RelanceHandler) Generate(c *gin.Context) {
	messages, err := h.facade.GenerateRelances(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
