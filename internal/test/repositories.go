package test

import (
	"context"
	"strings"
	"sync"

	domainErrors "github.com/zendocod/zendo/internal/domain/errors"
	"github.com/zendocod/zendo/internal/domain/model"
	"github.com/zendocod/zendo/internal/domain/repository"
)

// OrderRepositoryStub stores orders in-memory for tests.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	Orders map[string]*model.Order
	Err    error
}

// NewOrderRepositoryStub constructs stub repository with initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
}

// Create stores a copy of the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *order
	s.Orders[order.ID] = &copied
	return nil
}

// GetByID fetches an order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.Orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List applies status and search filtering without pagination semantics
// beyond the limit (enough for use-case level tests).
func (s *OrderRepositoryStub) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []model.Order
	for _, order := range s.Orders {
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, order.Status) {
			continue
		}
		if filter.Search != "" && !matchesSearch(order, filter.Search) {
			continue
		}
		matched = append(matched, *order)
	}

	total := len(matched)
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func containsStatus(statuses []model.OrderStatus, status model.OrderStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

func matchesSearch(order *model.Order, search string) bool {
	needle := strings.ToLower(search)
	for _, field := range []string{order.Name, order.Phone, order.City, order.Product.Name} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Update replaces a stored order.
func (s *OrderRepositoryStub) Update(ctx context.Context, order *model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Orders[order.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	copied := *order
	s.Orders[order.ID] = &copied
	return nil
}

// UpdateStatus assigns the status in place.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Status = status
	return nil
}

// Delete removes the order permanently.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Orders, id)
	return nil
}

// ListByStatuses returns orders in any of the given states.
func (s *OrderRepositoryStub) ListByStatuses(ctx context.Context, statuses []model.OrderStatus) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []model.Order
	for _, order := range s.Orders {
		if containsStatus(statuses, order.Status) {
			matched = append(matched, *order)
		}
	}
	return matched, nil
}

// Aggregate computes totals over stored orders inside the window.
func (s *OrderRepositoryStub) Aggregate(ctx context.Context, window model.StatsWindow) (*repository.OrderAggregate, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	agg := &repository.OrderAggregate{}
	phones := make(map[string]struct{})
	for _, order := range s.Orders {
		if order.CreatedAt.Before(window.Start) || !order.CreatedAt.Before(window.End.AddDate(0, 0, 1)) {
			continue
		}
		agg.Orders++
		agg.Revenue += order.TotalAmount
		if order.Status == model.OrderStatusPending {
			agg.Pending++
		}
		phones[order.Phone] = struct{}{}
	}
	agg.UniqueCustomers = len(phones)
	return agg, nil
}

// DailyCounts buckets stored orders per day inside the window.
func (s *OrderRepositoryStub) DailyCounts(ctx context.Context, window model.StatsWindow) (map[string]int, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for _, order := range s.Orders {
		if order.CreatedAt.Before(window.Start) || !order.CreatedAt.Before(window.End.AddDate(0, 0, 1)) {
			continue
		}
		counts[order.CreatedAt.Format("2006-01-02")]++
	}
	return counts, nil
}

// ProductRepositoryStub serves a configured catalog.
type ProductRepositoryStub struct {
	Products map[string]*model.Product
	Err      error
}

// NewProductRepositoryStub constructs stub with initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[string]*model.Product)}
}

// List returns the full configured catalog.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, product := range s.Products {
		result = append(result, *product)
	}
	return result, nil
}

// GetBySlug fetches one product or returns not found.
func (s *ProductRepositoryStub) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product, ok := s.Products[slug]; ok {
		copied := *product
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Save stores a copy of the product under its slug.
func (s *ProductRepositoryStub) Save(ctx context.Context, product *model.Product) error {
	if s.Err != nil {
		return s.Err
	}
	copied := *product
	s.Products[product.Slug] = &copied
	return nil
}

// VisitRepositoryStub records visit events in-memory.
type VisitRepositoryStub struct {
	mu      sync.Mutex
	Visits  []model.Visit
	Counts  map[string]int
	Total   int
	CountFn func(model.StatsWindow) (int, error)
	Err     error
}

// Record appends a visit event.
func (s *VisitRepositoryStub) Record(ctx context.Context, path string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Visits = append(s.Visits, model.Visit{Path: path})
	return nil
}

// CountInWindow returns the configured total, or delegates to CountFn when
// a test needs different values per window.
func (s *VisitRepositoryStub) CountInWindow(ctx context.Context, window model.StatsWindow) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	if s.CountFn != nil {
		return s.CountFn(window)
	}
	return s.Total, nil
}

// DailyCounts returns the configured day buckets.
func (s *VisitRepositoryStub) DailyCounts(ctx context.Context, window model.StatsWindow) (map[string]int, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Counts == nil {
		return map[string]int{}, nil
	}
	return s.Counts, nil
}
