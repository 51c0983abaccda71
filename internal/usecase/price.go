package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zendocod/zendo/internal/domain/model"
)

// ResolvePrice computes the order total for the requested quantity.
// An offer matching the exact quantity wins; otherwise the total falls back
// to quantity times the base unit price (the single-unit offer when present,
// else the first offer prorated by its own quantity).
func ResolvePrice(offers []model.Offer, quantity int) float64 {
	for _, offer := range offers {
		if offer.Quantity == quantity {
			return offer.PriceValue
		}
	}
	return float64(quantity) * baseUnitPrice(offers)
}

func baseUnitPrice(offers []model.Offer) float64 {
	for _, offer := range offers {
		if offer.Quantity == 1 {
			return offer.PriceValue
		}
	}
	if len(offers) > 0 && offers[0].Quantity > 0 {
		return offers[0].PriceValue / float64(offers[0].Quantity)
	}
	return 0
}

// FormatFCFA renders an amount the way the storefront displays prices,
// with comma-separated thousands: 14000 -> "14,000 FCFA".
func FormatFCFA(amount float64) string {
	if amount <= 0 {
		return ""
	}
	digits := strconv.FormatInt(int64(amount), 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return fmt.Sprintf("%s FCFA", strings.Join(groups, ","))
}
