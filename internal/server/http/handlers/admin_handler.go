package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/zendocod/zendo/internal/domain/errors"
	"github.com/zendocod/zendo/internal/domain/model"
	"github.com/zendocod/zendo/internal/domain/repository"
	"github.com/zendocod/zendo/internal/server/http/dto"
	"github.com/zendocod/zendo/internal/usecase"
)

// AdminHandler manages the back-office order endpoints.
type AdminHandler struct {
	facade AdminOrderFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminOrderFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// List handles GET /api/admin/orders.
func (h *AdminHandler) List(c *gin.Context) {
	filter, err := parseOrderFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders, total, pages, err := h.facade.ListOrders(c.Request.Context(), filter)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := dto.ListOrdersResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Pagination: dto.Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
			Pages: pages,
		},
	}
	for _, order := range orders {
		response.Orders = append(response.Orders, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}

func parseOrderFilter(c *gin.Context) (repository.OrderFilter, error) {
	filter := repository.OrderFilter{
		Page:   intQuery(c, "page", 1),
		Limit:  intQuery(c, "limit", 50),
		Sort:   repository.OrderSort(c.Query("sort")),
		Search: c.Query("search"),
	}

	if raw := c.Query("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status := model.OrderStatus(strings.TrimSpace(part))
			if status == "" {
				continue
			}
			if !model.ValidStatus(status) {
				return filter, errors.New("unknown status " + string(status))
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	days := intQuery(c, "days", 0)
	if startDate != "" || endDate != "" || days > 0 {
		window, err := usecase.ResolveWindow(timeNow(), days, startDate, endDate)
		if err != nil {
			return filter, errors.New("invalid date window")
		}
		filter.Start = &window.Start
		filter.End = &window.End
	}

	return filter, nil
}

func intQuery(c *gin.Context, key string, def int) int {
	if raw := c.Query(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return def
}

// Get handles GET /api/admin/orders/:id.
func (h *AdminHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Update handles PUT /api/admin/orders/:id.
func (h *AdminHandler) Update(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	in := usecase.UpdateOrderInput{
		Name:       req.Name,
		Phone:      req.Phone,
		City:       req.City,
		Address:    req.Address,
		Quantity:   req.Quantity,
		TotalPrice: req.TotalPrice,
	}
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		in.Status = &status
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatus handles PATCH /api/admin/orders/:id/status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status " + req.Status})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Delete handles DELETE /api/admin/orders/:id.
func (h *AdminHandler) Delete(c *gin.Context) {
	err := h.facade.DeleteOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkDelete handles DELETE /api/admin/orders/bulk.
func (h *AdminHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids are required"})
		return
	}

	result := h.facade.BulkDeleteOrders(c.Request.Context(), req.IDs)
	c.JSON(http.StatusOK, dto.BulkResponse{
		Requested: result.Requested,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
	})
}

// BulkUpdateStatus handles PATCH /api/admin/orders/bulk/status.
func (h *AdminHandler) BulkUpdateStatus(c *gin.Context) {
	var req dto.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids are required"})
		return
	}

	result, err := h.facade.BulkUpdateOrderStatus(c.Request.Context(), req.IDs, model.OrderStatus(req.Status))
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status " + req.Status})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.BulkResponse{
		Requested: result.Requested,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
	})
}
