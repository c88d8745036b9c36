package domain

// PriceGroup is one size tier of a garment: sizes map to groups, groups carry
// the base price.
type PriceGroup struct {
	ID    string  `json:"id"`
	Base  float64 `json:"base"`
	Label string  `json:"label"`
}

// DiscountRule is the per-garment bulk discount: a flat percentage off the
// unit price once a single line reaches MinQuantity.
type DiscountRule struct {
	Enabled     bool    `json:"enabled"`
	Percentage  float64 `json:"percentage"`
	MinQuantity int     `json:"minQuantity"`
	Description string  `json:"description"`
}

// GarmentConfig is the pricing configuration of one garment type (or of the
// custom designer garment).
type GarmentConfig struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Image         string                `json:"image"`
	Sizes         []string              `json:"hasSizes"`
	PricesByGroup map[string]PriceGroup `json:"pricesBySizeGroup"`
	Discount      DiscountRule          `json:"discount"`
	Description   string                `json:"description"`
}

type ProductVariant struct {
	Color string  `json:"color" validate:"required,garment_color"`
	Size  string  `json:"size" validate:"required,garment_size"`
	Stock int     `json:"stock" validate:"min=0"`
	Price float64 `json:"price" validate:"required,min=0"`
	SKU   string  `json:"sku" validate:"required,sku"`
}

type Product struct {
	ID          int              `json:"id" validate:"required,min=1"`
	Type        string           `json:"type" validate:"required,max=50"`
	Name        string           `json:"name" validate:"required,min=2,max=255"`
	Code        string           `json:"code" validate:"required,max=20"`
	Description string           `json:"description" validate:"max=500"`
	Material    string           `json:"material" validate:"max=100"`
	Variants    []ProductVariant `json:"variants" validate:"required,min=1,dive"`
	Image       string           `json:"image"`
	Tag         string           `json:"tag,omitempty"`
	Badge       string           `json:"badge,omitempty"`
}

// Design is one printable motif offered by the designer tool.
type Design struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"img"`
	Material string `json:"material"`
}
