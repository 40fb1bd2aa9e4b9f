package service

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned when an order is created without items.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError marks input that is well-formed but semantically invalid.
type ValidationError struct {
	Err error
}

func (e ValidationError) Error() string { return e.Err.Error() }
func (e ValidationError) Unwrap() error { return e.Err }

// ProductNotFoundError names the missing product referenced by an order item.
type ProductNotFoundError struct {
	ProductID int64
}

func (e ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %d not found", e.ProductID)
}

// ProviderError wraps a failed payment-provider call.
type ProviderError struct {
	Err error
}

func (e ProviderError) Error() string { return fmt.Sprintf("invalid session ID: %v", e.Err) }
func (e ProviderError) Unwrap() error { return e.Err }
