package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownProduct     = errors.New("unknown product")
	ErrUnknownVariant     = errors.New("unknown product variant")
	ErrOutOfStock         = errors.New("variant out of stock")
)
