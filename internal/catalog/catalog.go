package catalog

import "yolimar/internal/domain"

// ByType filters the catalog by garment type. An empty type returns everything.
func ByType(garmentType string) []domain.Product {
	if garmentType == "" {
		return Products
	}
	out := make([]domain.Product, 0, len(Products))
	for _, p := range Products {
		if p.Type == garmentType {
			out = append(out, p)
		}
	}
	return out
}

// ProductByID returns a product by its identifier.
func ProductByID(id int) (domain.Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// FindVariant returns the variant of a product matching color and size.
func FindVariant(p domain.Product, color, size string) (domain.ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.Color == color && v.Size == size {
			return v, true
		}
	}
	return domain.ProductVariant{}, false
}

// Colors returns the distinct variant colors of a product, in variant order.
func Colors(p domain.Product) []string {
	seen := make(map[string]struct{}, len(p.Variants))
	out := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		if _, ok := seen[v.Color]; ok {
			continue
		}
		seen[v.Color] = struct{}{}
		out = append(out, v.Color)
	}
	return out
}

// Sizes returns the distinct variant sizes of a product, in variant order.
func Sizes(p domain.Product) []string {
	seen := make(map[string]struct{}, len(p.Variants))
	out := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		if _, ok := seen[v.Size]; ok {
			continue
		}
		seen[v.Size] = struct{}{}
		out = append(out, v.Size)
	}
	return out
}

// MinPrice returns the cheapest variant price, or 0 for a product without
// variants.
func MinPrice(p domain.Product) float64 {
	if len(p.Variants) == 0 {
		return 0
	}
	min := p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price < min {
			min = v.Price
		}
	}
	return min
}

// MaxPrice returns the most expensive variant price, or 0 for a product
// without variants.
func MaxPrice(p domain.Product) float64 {
	if len(p.Variants) == 0 {
		return 0
	}
	max := p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price > max {
			max = v.Price
		}
	}
	return max
}

// TotalStock sums the stock across all variants of a product.
func TotalStock(p domain.Product) int {
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}
