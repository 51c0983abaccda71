package handlers

import (
	"time"

	"github.com/zendocod/zendo/internal/domain/model"
	"github.com/zendocod/zendo/internal/server/http/dto"
)

// timeNow is swapped in tests that need a fixed reference date.
var timeNow = time.Now

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          order.ID,
		Name:        order.Name,
		Phone:       order.Phone,
		City:        order.City,
		Address:     order.Address,
		ProductSlug: order.ProductSlug,
		Quantity:    order.Quantity,
		TotalPrice:  order.TotalPrice,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		Product:     order.Product,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

func toProductResponse(product model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		Slug:         product.Slug,
		Name:         product.Name,
		ShortDesc:    product.ShortDesc,
		FullDesc:     product.FullDesc,
		Images:       product.Images,
		Benefits:     product.Benefits,
		Usage:        product.Usage,
		Guarantee:    product.Guarantee,
		DeliveryInfo: product.DeliveryInfo,
		Reviews:      product.Reviews,
		Offers:       product.Offers,
	}
}
