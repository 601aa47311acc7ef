package queries

import (
	"context"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/order"
	"shoplist/internal/core/domain/services"
	"shoplist/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order view from the database.
type GetOrderQueryHandler struct {
	db   *gorm.DB
	gate services.AccessGate
}

// NewGetOrderQueryHandler creates a handler for single order views.
func NewGetOrderQueryHandler(db *gorm.DB, gate services.AccessGate) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, gate: gate}
}

// Handle fetches the order and checks the actor may see it. An executor
// who is neither the owner nor an admin only sees orders still in the
// active backlog; anything outside it reads as not found.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}
	if err := requireActiveActor(query.Actor()); err != nil {
		return OrderResponse{}, err
	}

	orders, err := queryOrders(ctx, h.db, "id = ?", query.OrderID().Bytes())
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	resp := orders[0]
	if err = h.gate.AuthorizeView(query.Actor(), resp.CustomerID); err != nil {
		return OrderResponse{}, err
	}
	if err = checkExecutorBacklogVisibility(query.Actor(), resp); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

// checkExecutorBacklogVisibility hides finished orders from executors who
// do not own them. The executor backlog only covers active orders, so a
// completed or cancelled order reads as not found rather than forbidden.
func checkExecutorBacklogVisibility(a actor.Actor, resp OrderResponse) error {
	if a.Role() != actor.Executor || a.ID().IsEqual(resp.CustomerID) {
		return nil
	}

	status, err := order.StatusFromString(resp.Status)
	if err != nil {
		return err
	}
	if !status.IsActive() {
		return errs.NewObjectNotFoundError("orderID", resp.ID)
	}
	return nil
}
