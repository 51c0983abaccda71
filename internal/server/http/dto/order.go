package dto

import (
	"time"

	"github.com/zendocod/zendo/internal/domain/model"
)

// CreateOrderRequest is the storefront checkout payload.
type CreateOrderRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	Address     string `json:"address"`
	ProductSlug string `json:"productSlug"`
	Quantity    int    `json:"quantity"`
}

// OrderSummaryResponse is the confirmation returned to the customer.
type OrderSummaryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	City        string    `json:"city"`
	ProductName string    `json:"productName"`
	TotalPrice  string    `json:"totalPrice"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OrderResponse is the full admin view of one order.
type OrderResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Phone       string                `json:"phone"`
	City        string                `json:"city"`
	Address     string                `json:"address"`
	ProductSlug string                `json:"productSlug"`
	Quantity    int                   `json:"quantity"`
	TotalPrice  string                `json:"totalPrice"`
	TotalAmount float64               `json:"totalAmount"`
	Status      string                `json:"status"`
	Product     model.ProductSnapshot `json:"product"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}
