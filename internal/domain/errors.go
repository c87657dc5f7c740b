package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks the normal absence of a record. Repositories wrap it
// with entity context; delivery maps it to 404.
var ErrNotFound = errors.New("not found")

// InvalidReferenceError means a new order referenced a person or item
// that does not exist.
type InvalidReferenceError struct {
	Reference string
}

func (e *InvalidReferenceError) Error() string {
	return e.Reference
}

// InsufficientStockError means an order detail requested more units than
// the item has in stock.
type InsufficientStockError struct {
	ItemName  string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s. Available: %d, Requested: %d",
		e.ItemName, e.Available, e.Requested)
}
