// Package pricing resolves garment unit prices from the catalog configuration.
// Every function is pure; unknown inputs degrade to configured fallbacks
// instead of returning errors.
package pricing

import "yolimar/internal/catalog"

// Fallback unit prices for garment types the configuration does not know.
// Resolving to 0 here would surface a free garment in the storefront.
const (
	fallbackStockPrice  = 55
	fallbackCustomPrice = 60
)

// Quote is the price of one cart line at a given quantity. When the bulk
// discount does not apply, DiscountedPrice equals BasePrice and the discount
// metadata is zero.
type Quote struct {
	BasePrice          float64 `json:"basePrice"`
	DiscountedPrice    float64 `json:"discountedPrice"`
	HasDiscount        bool    `json:"hasDiscount"`
	DiscountPercentage float64 `json:"discountPercentage,omitempty"`
	Savings            float64 `json:"savings,omitempty"`
	MinQuantity        int     `json:"minQuantity,omitempty"`
}

// BasePrice resolves the unit price for a garment type and size. The size maps
// to its price tier (unknown sizes land on "ML"); unknown garment types fall
// back to a non-zero default.
func BasePrice(garmentType, size string, isCustom bool) float64 {
	cfg, ok := catalog.GarmentByType(garmentType, isCustom)
	if !ok {
		return fallbackStockPrice
	}
	group, ok := cfg.PricesByGroup[catalog.GroupForSize(size)]
	if !ok {
		if isCustom {
			return fallbackCustomPrice
		}
		return fallbackStockPrice
	}
	return group.Base
}

// PriceWithDiscount resolves the unit price and applies the garment's bulk
// discount when the quantity reaches the rule's threshold. Savings is the
// per-unit discount times the quantity, the total saved across the line.
//
// An unknown non-custom garment type yields a zero-value Quote: callers must
// treat BasePrice 0 as "no pricing available", which cannot occur for a
// configured garment.
func PriceWithDiscount(garmentType, size string, quantity int, isCustom bool) Quote {
	cfg, ok := catalog.GarmentByType(garmentType, isCustom)
	if !ok {
		return Quote{}
	}

	basePrice := cfg.PricesByGroup[catalog.GroupForSize(size)].Base

	if !cfg.Discount.Enabled || quantity < cfg.Discount.MinQuantity {
		return Quote{BasePrice: basePrice, DiscountedPrice: basePrice}
	}

	discountAmount := basePrice * (cfg.Discount.Percentage / 100)
	return Quote{
		BasePrice:          basePrice,
		DiscountedPrice:    basePrice - discountAmount,
		HasDiscount:        true,
		DiscountPercentage: cfg.Discount.Percentage,
		Savings:            discountAmount * float64(quantity),
		MinQuantity:        cfg.Discount.MinQuantity,
	}
}
