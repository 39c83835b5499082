package promos

import "errors"

var (
	// ErrNotFound is returned when no promo code matches
	ErrNotFound = errors.New("promo code not found")
	// ErrDuplicateCode is returned when a code is already taken
	ErrDuplicateCode = errors.New("promo code already exists")
	// ErrInUse is returned when deleting a promo code that has been redeemed
	ErrInUse = errors.New("promo code has been used and can only be deactivated")
)
