// internal/services/errors.go
package services

import (
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError reports a missing entity by resource name.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// InsufficientStockError aborts an order placement when a requested line
// asks for more units than the product has in stock.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

// DuplicateReviewError rejects a second review for the same
// (user, product, order) triple.
type DuplicateReviewError struct {
	ProductID uuid.UUID
	OrderID   uuid.UUID
}

func (e *DuplicateReviewError) Error() string {
	return "review already exists for this product and order"
}

// DuplicateCartEntryError rejects adding a product already present in the
// user's cart; duplicates are conflicts, never merged.
type DuplicateCartEntryError struct {
	ProductName string
}

func (e *DuplicateCartEntryError) Error() string {
	return e.ProductName + " is already in the cart"
}

// EmailInUseError rejects registration with an already-registered email.
type EmailInUseError struct {
	Email string
}

func (e *EmailInUseError) Error() string {
	return "email is already registered"
}

// BelowMinimumError rejects decrementing a cart entry already at quantity 1.
type BelowMinimumError struct{}

func (e *BelowMinimumError) Error() string {
	return "quantity cannot be less than 1"
}

// InvalidArgumentError reports an unrecognized request parameter, such as an
// unknown cart quantity scope.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}
