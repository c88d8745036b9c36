package domain

import "errors"

// CartItem is one line of the session cart. Custom designer garments carry the
// design fields; stock garments leave them zero.
type CartItem struct {
	ID         int     `json:"id" validate:"required,min=1"`
	Name       string  `json:"name" validate:"required,min=2,max=255"`
	Type       string  `json:"type" validate:"required,max=50"`
	Color      string  `json:"color" validate:"required,garment_color"`
	Size       string  `json:"size" validate:"required,garment_size"`
	Price      float64 `json:"price" validate:"min=0"`
	Quantity   int     `json:"quantity" validate:"min=0"`
	Image      string  `json:"image" validate:"max=255"`
	IsCustom   bool    `json:"isCustom"`
	DesignID   int     `json:"designId,omitempty"`
	DesignName string  `json:"designName,omitempty" validate:"max=255"`
}

// LineKey identifies a cart line. Two items merge into one line only when the
// whole key matches.
type LineKey struct {
	ID       int
	Color    string
	Size     string
	IsCustom bool
	DesignID int
}

func (i *CartItem) Key() LineKey {
	return LineKey{
		ID:       i.ID,
		Color:    i.Color,
		Size:     i.Size,
		IsCustom: i.IsCustom,
		DesignID: i.DesignID,
	}
}

// MatchesSelection matches on (id, color, size) only. Remove and quantity
// updates key on this narrower selection, mirroring the storefront UI.
func (i *CartItem) MatchesSelection(id int, color, size string) bool {
	return i.ID == id && i.Color == color && i.Size == size
}

func (i *CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

func (i *CartItem) Validate() error {
	if i.ID <= 0 {
		return errors.New("cart item id must be positive")
	}
	if i.Name == "" {
		return errors.New("cart item name is required")
	}
	if i.Color == "" || i.Size == "" {
		return errors.New("cart item color and size are required")
	}
	if i.Price < 0 {
		return errors.New("cart item price must not be negative")
	}
	if i.Quantity < 0 {
		return errors.New("cart item quantity must not be negative")
	}
	if i.IsCustom && i.DesignID <= 0 {
		return errors.New("custom cart item requires a design id")
	}
	return nil
}
