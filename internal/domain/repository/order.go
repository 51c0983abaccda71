package repository

import (
	"context"
	"time"

	"github.com/zendocod/zendo/internal/domain/model"
)

// OrderSort enumerates supported listing sort orders.
type OrderSort string

const (
	OrderSortCreatedDesc OrderSort = "-createdAt"
	OrderSortCreatedAsc  OrderSort = "createdAt"
	OrderSortNameAsc     OrderSort = "name"
	OrderSortNameDesc    OrderSort = "-name"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	Page     int
	Limit    int
	Sort     OrderSort
	Statuses []model.OrderStatus
	Search   string
	Start    *time.Time
	End      *time.Time
}

// OrderAggregate carries windowed totals computed by the store.
type OrderAggregate struct {
	Orders          int
	Pending         int
	Revenue         float64
	UniqueCustomers int
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, int, error)
	Update(ctx context.Context, order *model.Order) error
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
	Delete(ctx context.Context, id string) error
	ListByStatuses(ctx context.Context, statuses []model.OrderStatus) ([]model.Order, error)
	Aggregate(ctx context.Context, window model.StatsWindow) (*OrderAggregate, error)
	DailyCounts(ctx context.Context, window model.StatsWindow) (map[string]int, error)
}
