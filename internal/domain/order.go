package domain

import (
	"errors"
	"math"
	"time"
)

// Order is the checkout snapshot of a cart, handed off to the back office.
type Order struct {
	Reference string     `json:"reference" validate:"required,uuid4"`
	Lines     []CartItem `json:"lines" validate:"required,min=1,dive"`
	Total     float64    `json:"total" validate:"min=0"`
	CreatedAt time.Time  `json:"created_at" validate:"required"`
}

func (o *Order) Validate() error {
	if o.Reference == "" {
		return errors.New("order reference is required")
	}
	if len(o.Lines) == 0 {
		return errors.New("order must contain at least 1 line")
	}
	var sum float64
	for i := range o.Lines {
		line := o.Lines[i]
		if err := line.Validate(); err != nil {
			return err
		}
		if line.Quantity < 1 {
			return errors.New("order line quantity must be at least 1")
		}
		sum += line.Subtotal()
	}
	// Totals travel as float json, so compare with a cent of slack.
	if math.Abs(sum-o.Total) > 0.01 {
		return errors.New("order total does not match the sum of its lines")
	}
	return nil
}
