package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/zendocod/zendo/internal/domain/errors"
	"github.com/zendocod/zendo/internal/domain/model"
	"github.com/zendocod/zendo/internal/domain/repository"
)

// CreateOrderInput carries customer-provided order fields.
type CreateOrderInput struct {
	Name        string
	Phone       string
	City        string
	Address     string
	ProductSlug string
	Quantity    int
}

// UpdateOrderInput carries the editable admin fields. Nil pointers leave the
// corresponding field untouched.
type UpdateOrderInput struct {
	Name       *string
	Phone      *string
	City       *string
	Address    *string
	Quantity   *int
	TotalPrice *string
	Status     *model.OrderStatus
}

// BulkResult reports per-item outcomes of a bulk mutation.
type BulkResult struct {
	Requested int
	Succeeded int
	Failed    int
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products}
}

// priceUnavailable is the display price stored when no offer can price
// the order. It keeps the chat notification and relance texts readable.
const priceUnavailable = "Prix non disponible"

// Create validates input, resolves the total price from the product's offers,
// snapshots product content into the order and persists it with status "new".
// A non-positive quantity is coerced to 1. An unknown product slug does not
// fail the order: the record keeps a placeholder snapshot so the sale is
// never lost to a catalog gap.
func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (*model.Order, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	city := strings.TrimSpace(in.City)
	slug := strings.TrimSpace(in.ProductSlug)
	if name == "" || phone == "" || city == "" || slug == "" {
		return nil, fmt.Errorf("%w: name, phone, city and productSlug are required", domainErrors.ErrValidation)
	}

	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	order := &model.Order{
		ID:          uuid.NewString(),
		Name:        name,
		Phone:       phone,
		City:        city,
		Address:     strings.TrimSpace(in.Address),
		ProductSlug: slug,
		Quantity:    quantity,
		Status:      model.OrderStatusNew,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	product, err := u.products.GetBySlug(ctx, slug)
	switch {
	case err == nil:
		order.TotalAmount = ResolvePrice(product.Offers, quantity)
		order.TotalPrice = FormatFCFA(order.TotalAmount)
		if order.TotalPrice == "" {
			order.TotalPrice = priceUnavailable
		}
		order.Product = product.Snapshot(order.TotalPrice)
	case errors.Is(err, domainErrors.ErrNotFound):
		order.TotalPrice = priceUnavailable
		order.Product = model.ProductSnapshot{
			Name:  fmt.Sprintf("Produit %s", slug),
			Price: priceUnavailable,
		}
	default:
		return nil, err
	}

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Get fetches a single order by identifier.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns a page of orders with the total record and page counts.
func (u *OrderUseCase) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	if filter.Sort == "" {
		filter.Sort = repository.OrderSortCreatedDesc
	}

	orders, total, err := u.orders.List(ctx, filter)
	if err != nil {
		return nil, 0, 0, err
	}
	pages := (total + filter.Limit - 1) / filter.Limit
	return orders, total, pages, nil
}

// Update applies provided admin edits. A status outside the enumeration is
// ignored rather than rejected; trimming matches order creation.
func (u *OrderUseCase) Update(ctx context.Context, id string, in UpdateOrderInput) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		order.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		order.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.City != nil {
		order.City = strings.TrimSpace(*in.City)
	}
	if in.Address != nil {
		order.Address = strings.TrimSpace(*in.Address)
	}
	if in.Quantity != nil {
		order.Quantity = *in.Quantity
		if order.Quantity < 1 {
			order.Quantity = 1
		}
	}
	if in.TotalPrice != nil {
		order.TotalPrice = *in.TotalPrice
	}
	if in.Status != nil && model.ValidStatus(*in.Status) {
		order.Status = *in.Status
	}
	order.UpdatedAt = time.Now().UTC()

	if err := u.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus assigns the target status to an order. Any current status may
// move to any other; assigning the same status twice is a no-op.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidStatus(status) {
		return nil, domainErrors.ErrInvalidStatus
	}
	if err := u.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, id)
}

// Delete permanently removes an order.
func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	return u.orders.Delete(ctx, id)
}

// BulkDelete removes each identifier independently and concurrently.
// A missing or failing record never aborts the rest of the batch.
func (u *OrderUseCase) BulkDelete(ctx context.Context, ids []string) BulkResult {
	return u.bulk(ids, func(id string) error {
		return u.orders.Delete(ctx, id)
	})
}

// BulkUpdateStatus assigns the same target status to each identifier
// independently. Returns ErrInvalidStatus before touching any record when the
// target is outside the enumeration.
func (u *OrderUseCase) BulkUpdateStatus(ctx context.Context, ids []string, status model.OrderStatus) (BulkResult, error) {
	if !model.ValidStatus(status) {
		return BulkResult{}, domainErrors.ErrInvalidStatus
	}
	result := u.bulk(ids, func(id string) error {
		return u.orders.UpdateStatus(ctx, id, status)
	})
	return result, nil
}

func (u *OrderUseCase) bulk(ids []string, op func(string) error) BulkResult {
	var succeeded, failed int64
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := op(id); err != nil {
				atomic.AddInt64(&failed, 1)
				return
			}
			atomic.AddInt64(&succeeded, 1)
		}(id)
	}
	wg.Wait()
	return BulkResult{
		Requested: len(ids),
		Succeeded: int(succeeded),
		Failed:    int(failed),
	}
}
