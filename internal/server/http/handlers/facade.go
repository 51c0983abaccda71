package handlers

import (
	"context"

	"github.com/zendocod/zendo/internal/domain/model"
	"github.com/zendocod/zendo/internal/domain/repository"
	"github.com/zendocod/zendo/internal/usecase"
)

// OrderFacade describes the storefront checkout capability.
type OrderFacade interface {
	CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error)
}

// AdminOrderFacade encapsulates back-office order management.
type AdminOrderFacade interface {
	Order(ctx context.Context, id string) (*model.Order, error)
	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, int, error)
	UpdateOrder(ctx context.Context, id string, in usecase.UpdateOrderInput) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	BulkDeleteOrders(ctx context.Context, ids []string) usecase.BulkResult
	BulkUpdateOrderStatus(ctx context.Context, ids []string, status model.OrderStatus) (usecase.BulkResult, error)
}

// ProductFacade provides catalog reads.
type ProductFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, slug string) (*model.Product, error)
}

// AdminProductFacade covers back-office catalog writes.
type AdminProductFacade interface {
	CreateProduct(ctx context.Context, in usecase.SaveProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, slug string, in usecase.SaveProductInput) (*model.Product, error)
}

// StatsFacade computes the dashboard statistics snapshot.
type StatsFacade interface {
	Stats(ctx context.Context, days int, startDate, endDate string) (*model.Stats, error)
}

// AnalyticsFacade records storefront visit events.
type AnalyticsFacade interface {
	TrackVisit(ctx context.Context, path string) error
}

// RelanceFacade prepares follow-up campaigns for stalled orders.
type RelanceFacade interface {
	RelanceEligibleCount(ctx context.Context) (int, error)
	GenerateRelances(ctx context.Context) ([]usecase.RelanceMessage, error)
}

// HealthFacade reports backend connectivity.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	OrderFacade
	AdminOrderFacade
	ProductFacade
	AdminProductFacade
	StatsFacade
	AnalyticsFacade
	RelanceFacade
	HealthFacade
}
