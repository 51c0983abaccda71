package test

import (
	"context"
	"time"

	"github.com/zendocod/zendo/internal/domain/model"
	"github.com/zendocod/zendo/internal/domain/repository"
	"github.com/zendocod/zendo/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for the checkout endpoint.
type OrderFacadeStub struct {
	CreateFn func(context.Context, usecase.CreateOrderInput) (*model.Order, error)
}

// CreateOrder delegates to the provided function or returns a default order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	return &model.Order{
		ID:          "order-1",
		Name:        in.Name,
		Phone:       in.Phone,
		City:        in.City,
		ProductSlug: in.ProductSlug,
		Quantity:    in.Quantity,
		Status:      model.OrderStatusNew,
		CreatedAt:   time.Unix(0, 0),
	}, nil
}

// AdminFacadeStub simulates back-office order operations.
type AdminFacadeStub struct {
	OrderFn            func(context.Context, string) (*model.Order, error)
	ListFn             func(context.Context, repository.OrderFilter) ([]model.Order, int, int, error)
	UpdateFn           func(context.Context, string, usecase.UpdateOrderInput) (*model.Order, error)
	UpdateStatusFn     func(context.Context, string, model.OrderStatus) (*model.Order, error)
	DeleteFn           func(context.Context, string) error
	BulkDeleteFn       func(context.Context, []string) usecase.BulkResult
	BulkUpdateStatusFn func(context.Context, []string, model.OrderStatus) (usecase.BulkResult, error)
}

func (s AdminFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusNew}, nil
}

func (s AdminFacadeStub) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return []model.Order{{ID: "order-1"}}, 1, 1, nil
}

func (s AdminFacadeStub) UpdateOrder(ctx context.Context, id string, in usecase.UpdateOrderInput) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, in)
	}
	return &model.Order{ID: id}, nil
}

func (s AdminFacadeStub) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}

func (s AdminFacadeStub) DeleteOrder(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s AdminFacadeStub) BulkDeleteOrders(ctx context.Context, ids []string) usecase.BulkResult {
	if s.BulkDeleteFn != nil {
		return s.BulkDeleteFn(ctx, ids)
	}
	return usecase.BulkResult{Requested: len(ids), Succeeded: len(ids)}
}

func (s AdminFacadeStub) BulkUpdateOrderStatus(ctx context.Context, ids []string, status model.OrderStatus) (usecase.BulkResult, error) {
	if s.BulkUpdateStatusFn != nil {
		return s.BulkUpdateStatusFn(ctx, ids, status)
	}
	return usecase.BulkResult{Requested: len(ids), Succeeded: len(ids)}, nil
}

// ProductFacadeStub serves a configured catalog.
type ProductFacadeStub struct {
	ListFn func(context.Context) ([]model.Product, error)
	GetFn  func(context.Context, string) (*model.Product, error)
}

func (s ProductFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Product{{Slug: "hismile", Name: "HiSmile"}}, nil
}

func (s ProductFacadeStub) Product(ctx context.Context, slug string) (*model.Product, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, slug)
	}
	return &model.Product{Slug: slug, Name: "HiSmile"}, nil
}

// AdminProductFacadeStub simulates back-office catalog writes.
type AdminProductFacadeStub struct {
	CreateProductFn func(context.Context, usecase.SaveProductInput) (*model.Product, error)
	UpdateProductFn func(context.Context, string, usecase.SaveProductInput) (*model.Product, error)
}

func (s AdminProductFacadeStub) CreateProduct(ctx context.Context, in usecase.SaveProductInput) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, in)
	}
	return &model.Product{Slug: in.Slug, Name: in.Name, Offers: in.Offers}, nil
}

func (s AdminProductFacadeStub) UpdateProduct(ctx context.Context, slug string, in usecase.SaveProductInput) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, slug, in)
	}
	return &model.Product{Slug: slug, Name: in.Name, Offers: in.Offers}, nil
}

// StatsFacadeStub returns configured statistics.
type StatsFacadeStub struct {
	StatsFn func(context.Context, int, string, string) (*model.Stats, error)
}

func (s StatsFacadeStub) Stats(ctx context.Context, days int, startDate, endDate string) (*model.Stats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx, days, startDate, endDate)
	}
	return &model.Stats{Sparkline: []model.SparkPoint{}}, nil
}

// AnalyticsFacadeStub records tracked paths.
type AnalyticsFacadeStub struct {
	TrackFn func(context.Context, string) error
	Paths   []string
}

func (s *AnalyticsFacadeStub) TrackVisit(ctx context.Context, path string) error {
	if s.TrackFn != nil {
		return s.TrackFn(ctx, path)
	}
	s.Paths = append(s.Paths, path)
	return nil
}

// RelanceFacadeStub simulates follow-up campaign preparation.
type RelanceFacadeStub struct {
	CountFn    func(context.Context) (int, error)
	GenerateFn func(context.Context) ([]usecase.RelanceMessage, error)
}

func (s RelanceFacadeStub) RelanceEligibleCount(ctx context.Context) (int, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx)
	}
	return 0, nil
}

func (s RelanceFacadeStub) GenerateRelances(ctx context.Context) ([]usecase.RelanceMessage, error) {
	if s.GenerateFn != nil {
		return s.GenerateFn(ctx)
	}
	return nil, nil
}

// HealthFacadeStub reports configured connectivity.
type HealthFacadeStub struct {
	Err error
}

func (s HealthFacadeStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// StoreFacadeStub aggregates all facade stubs for router level tests.
type StoreFacadeStub struct {
	OrderFacadeStub
	AdminFacadeStub
	ProductFacadeStub
	AdminProductFacadeStub
	StatsFacadeStub
	*AnalyticsFacadeStub
	RelanceFacadeStub
	HealthFacadeStub
}

// NewStoreFacadeStub constructs the aggregate with usable defaults.
func NewStoreFacadeStub() *StoreFacadeStub {
	return &StoreFacadeStub{AnalyticsFacadeStub: &AnalyticsFacadeStub{}}
}
