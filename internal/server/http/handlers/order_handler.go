package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/zendocod/zendo/internal/domain/errors"
	"github.com/zendocod/zendo/internal/server/http/dto"
	"github.com/zendocod/zendo/internal/usecase"
)

// OrderHandler manages the customer-facing checkout endpoint.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		Name:        req.Name,
		Phone:       req.Phone,
		City:        req.City,
		Address:     req.Address,
		ProductSlug: req.ProductSlug,
		Quantity:    req.Quantity,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, dto.OrderSummaryResponse{
		ID:          order.ID,
		Name:        order.Name,
		Phone:       order.Phone,
		City:        order.City,
		ProductName: order.Product.Name,
		TotalPrice:  order.TotalPrice,
		CreatedAt:   order.CreatedAt,
	})
}
