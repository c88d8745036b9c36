// Package catalog holds the read-only storefront configuration: garment
// pricing tiers, discount rules, the product catalog and the designer assets.
// Nothing here is mutated after process start.
package catalog

import "yolimar/internal/domain"

// SizeGroups maps every concrete size label to its price tier.
var SizeGroups = map[string]string{
	"XS":  "S",
	"S":   "S",
	"M":   "ML",
	"L":   "ML",
	"XL":  "XL",
	"XXL": "XL",
}

// GroupForSize resolves a size label to its tier, falling back to the middle
// tier for labels the configuration does not know.
func GroupForSize(size string) string {
	if g, ok := SizeGroups[size]; ok {
		return g
	}
	return "ML"
}

const wholesaleDiscount = "Descuento de 5Bs. por mayor (+3 prendas)."

// Garments is the pricing configuration per stock garment type.
var Garments = map[string]domain.GarmentConfig{
	"polera": {
		ID:    "polera",
		Name:  "Polera",
		Image: "/placeholder.svg",
		Sizes: []string{"XS", "S", "M", "L", "XL", "XXL"},
		PricesByGroup: map[string]domain.PriceGroup{
			"S":  {ID: "pg_polera_s", Base: 55, Label: "Talla S"},
			"ML": {ID: "pg_polera_ml", Base: 55, Label: "Tallas M, L"},
			"XL": {ID: "pg_polera_xl", Base: 60, Label: "Tallas XL, XXL"},
		},
		Discount:    domain.DiscountRule{Enabled: true, Percentage: 8.333, MinQuantity: 3, Description: wholesaleDiscount},
		Description: "Poleras básicas de algodón",
	},
	"saco": {
		ID:    "saco",
		Name:  "Saco",
		Image: "/placeholder.svg",
		Sizes: []string{"S", "M", "L", "XL", "XXL"},
		PricesByGroup: map[string]domain.PriceGroup{
			"S":  {ID: "pg_saco_s", Base: 100, Label: "Talla S"},
			"ML": {ID: "pg_saco_ml", Base: 100, Label: "Tallas M, L"},
			"XL": {ID: "pg_saco_xl", Base: 110, Label: "Tallas XL, XXL"},
		},
		Discount:    domain.DiscountRule{Enabled: true, Percentage: 8.333, MinQuantity: 3, Description: wholesaleDiscount},
		Description: "Abrigos y sacos formales",
	},
	"blusa": {
		ID:    "blusa",
		Name:  "Blusa",
		Image: "/placeholder.svg",
		Sizes: []string{"XS", "S", "M", "L", "XL"},
		PricesByGroup: map[string]domain.PriceGroup{
			"S":  {ID: "pg_blusa_s", Base: 50, Label: "Talla S"},
			"ML": {ID: "pg_blusa_ml", Base: 50, Label: "Tallas M, L"},
			"XL": {ID: "pg_blusa_xl", Base: 55, Label: "Talla XL"},
		},
		Discount:    domain.DiscountRule{Enabled: true, Percentage: 8.333, MinQuantity: 3, Description: wholesaleDiscount},
		Description: "Blusas y tops elegantes",
	},
	"solera": {
		ID:    "solera",
		Name:  "Solera",
		Image: "/placeholder.svg",
		Sizes: []string{"S", "M", "L", "XL"},
		PricesByGroup: map[string]domain.PriceGroup{
			"S":  {ID: "pg_solera_s", Base: 50, Label: "Talla S"},
			"ML": {ID: "pg_solera_ml", Base: 50, Label: "Tallas M, L"},
			"XL": {ID: "pg_solera_xl", Base: 55, Label: "Talla XL"},
		},
		Discount:    domain.DiscountRule{Enabled: true, Percentage: 8.333, MinQuantity: 3, Description: wholesaleDiscount},
		Description: "Prendas tradicionales",
	},
}

// CustomGarment is the pricing configuration of the designer tool garment.
// Its discount threshold is higher than the stock garments'.
var CustomGarment = domain.GarmentConfig{
	ID:    "custom",
	Name:  "Polera Personalizada",
	Image: "/placeholder.svg",
	Sizes: []string{"S", "M", "L", "XL", "XXL"},
	PricesByGroup: map[string]domain.PriceGroup{
		"S":  {ID: "pg_custom_s", Base: 60, Label: "Talla S"},
		"ML": {ID: "pg_custom_ml", Base: 60, Label: "Tallas M, L"},
		"XL": {ID: "pg_custom_xl", Base: 65, Label: "Tallas XL, XXL"},
	},
	Discount:    domain.DiscountRule{Enabled: true, Percentage: 8.333, MinQuantity: 12, Description: "Descuento de 5Bs. a partir de +12 prendas."},
	Description: "Poleras personalizadas del diseñador",
}

// GarmentByType returns the pricing configuration for a garment type, or the
// custom configuration when isCustom is set.
func GarmentByType(garmentType string, isCustom bool) (domain.GarmentConfig, bool) {
	if isCustom {
		return CustomGarment, true
	}
	cfg, ok := Garments[garmentType]
	return cfg, ok
}
