package commands

import (
	"context"

	"shoplist/internal/core/domain/model/order"
	"shoplist/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels an order that has not reached a
// terminal status. Ownership is checked against the loaded aggregate, so
// a customer cannot cancel somebody else's order.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.AccessGate
}

// NewCancelOrderCommandHandler creates a handler for cancelling orders.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, gate services.AccessGate) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle loads the order, authorizes the actor against its owner and
// applies the cancellation. Returns the updated aggregate.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireActiveActor(cmd.Actor()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	ownerID := aggregate.CustomerID()
	if err = h.gate.Authorize(cmd.Actor(), services.OpCancelOrder, &ownerID); err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
