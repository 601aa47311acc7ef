package commands

import (
	"context"

	"shoplist/internal/core/domain/model/order"
	"shoplist/internal/core/domain/services"
)

// CompleteOrderCommandHandler explicitly closes an order. The aggregate
// rejects the transition while unpurchased items remain, so a premature
// completion never reaches the database.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.AccessGate
}

// NewCompleteOrderCommandHandler creates a handler for explicit completion.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory, gate services.AccessGate) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle authorizes the actor as an executor, loads the order and applies
// the completion transition. Returns the updated aggregate.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireActiveActor(cmd.Actor()); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(cmd.Actor(), services.OpCompleteOrder, nil); err != nil {
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

	if err = aggregate.Complete(); err != nil {
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
