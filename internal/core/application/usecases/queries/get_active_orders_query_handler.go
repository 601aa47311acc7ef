package queries

import (
	"context"

	"shoplist/internal/core/domain/model/order"
	"shoplist/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists the backlog of orders awaiting
// fulfillment work.
type GetActiveOrdersQueryHandler struct {
	db   *gorm.DB
	gate services.AccessGate
}

// NewGetActiveOrdersQueryHandler creates a handler for the active backlog
// listing.
func NewGetActiveOrdersQueryHandler(db *gorm.DB, gate services.AccessGate) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db, gate: gate}
}

// Handle returns pending and in-progress orders, oldest first, so
// executors pick up work in submission order.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireActiveActor(query.Actor()); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(query.Actor(), services.OpViewActiveOrders, nil); err != nil {
		return nil, err
	}

	return queryOrders(ctx, h.db, "status IN ?", []string{
		order.Pending.String(),
		order.InProgress.String(),
	})
}
