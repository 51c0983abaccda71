package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/zendocod/zendo/internal/domain/model"
	"github.com/zendocod/zendo/internal/domain/repository"
	"github.com/zendocod/zendo/internal/notify"
	"github.com/zendocod/zendo/internal/usecase"
)

// HealthChecker reports backend connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// StoreFacade aggregates use cases behind the handler-facing interfaces.
type StoreFacade struct {
	orders     *usecase.OrderUseCase
	products   *usecase.ProductUseCase
	stats      *usecase.StatsUseCase
	relance    *usecase.RelanceUseCase
	visits     repository.VisitRepository
	dispatcher *notify.Dispatcher
	health     HealthChecker
	logger     *slog.Logger
}

// NewStoreFacade constructs StoreFacade.
func NewStoreFacade(
	orders *usecase.OrderUseCase,
	products *usecase.ProductUseCase,
	stats *usecase.StatsUseCase,
	relance *usecase.RelanceUseCase,
	visits repository.VisitRepository,
	dispatcher *notify.Dispatcher,
	health HealthChecker,
	logger *slog.Logger,
) *StoreFacade {
	return &StoreFacade{
		orders:     orders,
		products:   products,
		stats:      stats,
		relance:    relance,
		visits:     visits,
		dispatcher: dispatcher,
		health:     health,
		logger:     logger,
	}
}

// CreateOrder persists a new order and fires the chat notification on a
// detached goroutine. The customer response never waits for delivery.
func (f *StoreFacade) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error) {
	order, err := f.orders.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	f.dispatcher.DispatchAsync(notify.OrderSummary{
		Name:    order.Name,
		Phone:   order.Phone,
		Product: order.Product.Name,
		Price:   order.TotalPrice,
		City:    order.City,
	})
	return order, nil
}

func (f *StoreFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *StoreFacade) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, int, error) {
	return f.orders.List(ctx, filter)
}

func (f *StoreFacade) UpdateOrder(ctx context.Context, id string, in usecase.UpdateOrderInput) (*model.Order, error) {
	return f.orders.Update(ctx, id, in)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *StoreFacade) DeleteOrder(ctx context.Context, id string) error {
	return f.orders.Delete(ctx, id)
}

func (f *StoreFacade) BulkDeleteOrders(ctx context.Context, ids []string) usecase.BulkResult {
	return f.orders.BulkDelete(ctx, ids)
}

func (f *StoreFacade) BulkUpdateOrderStatus(ctx context.Context, ids []string, status model.OrderStatus) (usecase.BulkResult, error) {
	return f.orders.BulkUpdateStatus(ctx, ids, status)
}

func (f *StoreFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.List(ctx)
}

func (f *StoreFacade) Product(ctx context.Context, slug string) (*model.Product, error) {
	return f.products.GetBySlug(ctx, slug)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, in usecase.SaveProductInput) (*model.Product, error) {
	return f.products.Create(ctx, in)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, slug string, in usecase.SaveProductInput) (*model.Product, error) {
	return f.products.Update(ctx, slug, in)
}

func (f *StoreFacade) Stats(ctx context.Context, days int, startDate, endDate string) (*model.Stats, error) {
	window, err := usecase.ResolveWindow(time.Now(), days, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return f.stats.Compute(ctx, window)
}

// TrackVisit records a page view. Failures are logged and swallowed:
// analytics must never disturb the storefront.
func (f *StoreFacade) TrackVisit(ctx context.Context, path string) error {
	if err := f.visits.Record(ctx, path); err != nil {
		f.logger.Error("visit tracking failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (f *StoreFacade) RelanceEligibleCount(ctx context.Context) (int, error) {
	return f.relance.EligibleCount(ctx)
}

func (f *StoreFacade) GenerateRelances(ctx context.Context) ([]usecase.RelanceMessage, error) {
	return f.relance.Generate(ctx)
}

func (f *StoreFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
