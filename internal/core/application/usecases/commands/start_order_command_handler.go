package commands

import (
	"context"

	"shoplist/internal/core/domain/model/order"
	"shoplist/internal/core/domain/services"
)

// StartOrderCommandHandler moves a pending order into work on behalf of
// an executor.
type StartOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.AccessGate
}

// NewStartOrderCommandHandler creates a handler for starting orders.
func NewStartOrderCommandHandler(uowFactory OrderUoWFactory, gate services.AccessGate) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle authorizes the actor as an executor, loads the order and applies
// the pending to in-progress transition. Returns the updated aggregate.
func (h StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireActiveActor(cmd.Actor()); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(cmd.Actor(), services.OpStartOrder, nil); err != nil {
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

	if err = aggregate.Start(); err != nil {
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
