package queries

import (
	"context"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler lists the requesting customer's own
// orders.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// listings.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns the actor's orders with their items. Only customers and
// admins have a personal order list.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireActiveActor(query.Actor()); err != nil {
		return nil, err
	}

	role := query.Actor().Role()
	if role != actor.Customer && role != actor.Admin {
		return nil, errs.NewForbiddenError("list own orders", "only customers have an order list")
	}

	return queryOrders(ctx, h.db, "customer_id = ?", query.Actor().ID().Bytes())
}
