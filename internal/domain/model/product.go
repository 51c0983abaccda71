package model

import "time"

// Offer is a quantity-tier price presented at checkout.
type Offer struct {
	Quantity   int     `json:"qty"`
	Label      string  `json:"label"`
	PriceValue float64 `json:"priceValue"`
}

// Product is a catalog entry sold through the storefront.
type Product struct {
	Slug         string
	Name         string
	ShortDesc    string
	FullDesc     string
	Images       []string
	Benefits     []string
	Usage        string
	Guarantee    string
	DeliveryInfo string
	Reviews      []Review
	Offers       []Offer
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Snapshot returns the denormalized copy embedded into orders.
func (p *Product) Snapshot(displayPrice string) ProductSnapshot {
	return ProductSnapshot{
		Name:         p.Name,
		Price:        displayPrice,
		Images:       p.Images,
		ShortDesc:    p.ShortDesc,
		FullDesc:     p.FullDesc,
		Benefits:     p.Benefits,
		Usage:        p.Usage,
		Guarantee:    p.Guarantee,
		DeliveryInfo: p.DeliveryInfo,
		Reviews:      p.Reviews,
	}
}
