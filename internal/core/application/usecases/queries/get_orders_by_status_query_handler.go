package queries

import (
	"context"

	"shoplist/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler lists orders filtered by workflow status.
type GetOrdersByStatusQueryHandler struct {
	db   *gorm.DB
	gate services.AccessGate
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered
// listings.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB, gate services.AccessGate) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db, gate: gate}
}

// Handle returns every order in the requested status. Gated the same way
// as the active backlog, the board is executor and admin territory.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
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

	return queryOrders(ctx, h.db, "status = ?", query.Status().String())
}
