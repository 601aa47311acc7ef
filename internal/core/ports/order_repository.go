package ports

import (
	"context"

	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the order aggregate.
// The aggregate is always loaded and stored whole — status, timestamps, and
// every line item — so the completion invariant is evaluated against a
// consistent view.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// item purchase flags and timestamps.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with all of its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItemID retrieves the order owning the given line item. Line
	// items are separately addressable records, but they resolve back to
	// their aggregate for every mutation.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error)
}
