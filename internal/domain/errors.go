package domain

import "errors"

// Rejections surfaced to the interactive session. None of them leave partial state behind.
var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrEmptyCart        = errors.New("cart is empty")
)
