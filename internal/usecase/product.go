package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/zendocod/zendo/internal/domain/errors"
	"github.com/zendocod/zendo/internal/domain/model"
	"github.com/zendocod/zendo/internal/domain/repository"
)

// SaveProductInput carries the admin-editable catalog fields. Offers
// replace the stored price ladder wholesale.
type SaveProductInput struct {
	Slug         string
	Name         string
	ShortDesc    string
	FullDesc     string
	Images       []string
	Benefits     []string
	Usage        string
	Guarantee    string
	DeliveryInfo string
	Offers       []model.Offer
}

// ProductUseCase exposes catalog reads and back-office writes.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// List returns the full catalog.
func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// GetBySlug fetches one product.
func (u *ProductUseCase) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return u.products.GetBySlug(ctx, slug)
}

// Create adds a catalog entry. The slug is derived from the name when not
// provided; a slug already in use is rejected so an accidental re-submit
// never overwrites an existing product.
func (u *ProductUseCase) Create(ctx context.Context, in SaveProductInput) (*model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", domainErrors.ErrValidation)
	}

	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = slugify(name)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: cannot derive a slug from %q", domainErrors.ErrValidation, name)
	}

	_, err := u.products.GetBySlug(ctx, slug)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: product %q already exists", domainErrors.ErrValidation, slug)
	case !errors.Is(err, domainErrors.ErrNotFound):
		return nil, err
	}

	now := time.Now().UTC()
	product := &model.Product{
		Slug:         slug,
		Name:         name,
		ShortDesc:    strings.TrimSpace(in.ShortDesc),
		FullDesc:     in.FullDesc,
		Images:       normalizeList(in.Images),
		Benefits:     normalizeList(in.Benefits),
		Usage:        in.Usage,
		Guarantee:    in.Guarantee,
		DeliveryInfo: in.DeliveryInfo,
		Reviews:      []model.Review{},
		Offers:       sanitizeOffers(in.Offers),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update replaces the editable fields of an existing product. The admin
// form always submits the full record, so fields are overwritten rather
// than merged; a blank name keeps the stored one.
func (u *ProductUseCase) Update(ctx context.Context, slug string, in SaveProductInput) (*model.Product, error) {
	product, err := u.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		product.Name = name
	}
	product.ShortDesc = strings.TrimSpace(in.ShortDesc)
	product.FullDesc = in.FullDesc
	product.Images = normalizeList(in.Images)
	product.Benefits = normalizeList(in.Benefits)
	product.Usage = in.Usage
	product.Guarantee = in.Guarantee
	product.DeliveryInfo = in.DeliveryInfo
	product.Offers = sanitizeOffers(in.Offers)
	product.UpdatedAt = time.Now().UTC()

	if err := u.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// slugify lowercases the name and collapses every non-alphanumeric run
// into a single dash.
func slugify(name string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// sanitizeOffers drops tiers the admin form left blank. Positions follow
// the submitted order.
func sanitizeOffers(offers []model.Offer) []model.Offer {
	result := make([]model.Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.Quantity < 1 || offer.PriceValue <= 0 {
			continue
		}
		result = append(result, offer)
	}
	return result
}

func normalizeList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
