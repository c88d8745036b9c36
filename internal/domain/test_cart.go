package domain

import "time"

// CreateTestCartItem builds a valid stock-garment line for tests.
func CreateTestCartItem(id int) CartItem {
	return CartItem{
		ID:       id,
		Name:     "Polera Estampada Anime",
		Type:     "polera",
		Color:    "negro",
		Size:     "M",
		Price:    55,
		Quantity: 1,
		Image:    "/placeholder.svg",
	}
}

// CreateTestCustomItem builds a valid designer-garment line for tests.
func CreateTestCustomItem(id, designID int) CartItem {
	return CartItem{
		ID:         id,
		Name:       "Polera Personalizada",
		Type:       "custom",
		Color:      "blanco",
		Size:       "L",
		Price:      60,
		Quantity:   1,
		Image:      "/placeholder.svg",
		IsCustom:   true,
		DesignID:   designID,
		DesignName: "Dragon Rojo",
	}
}

// CreateTestOrder builds a checkout snapshot with n lines of the stock fixture.
func CreateTestOrder(reference string, n int) Order {
	lines := make([]CartItem, 0, n)
	var total float64
	for i := 0; i < n; i++ {
		item := CreateTestCartItem(i + 1)
		lines = append(lines, item)
		total += item.Subtotal()
	}
	return Order{
		Reference: reference,
		Lines:     lines,
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}
}
