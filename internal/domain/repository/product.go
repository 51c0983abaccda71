package repository

import (
	"context"

	"github.com/zendocod/zendo/internal/domain/model"
)

// ProductRepository describes catalog access. Save persists the product
// row and its offer tiers together.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	Save(ctx context.Context, product *model.Product) error
}
