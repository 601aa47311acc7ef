package commands

import (
	"context"

	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/core/domain/model/order"
	"shoplist/internal/core/domain/services"
)

// CreateOrderCommandHandler handles order submission. Builds the aggregate
// with its line items and persists everything atomically, so an order with
// a malformed line is never half-created.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.AccessGate
}

// NewCreateOrderCommandHandler creates a handler for order submission.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, gate services.AccessGate) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle authorizes the actor as a customer, constructs the order with its
// items, and persists it in Pending status. Returns the created aggregate.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireActiveActor(cmd.Actor()); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(cmd.Actor(), services.OpCreateOrder, nil); err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		item, err := order.NewItem(kernel.NewUUID(), cmd.OrderID(), line.Name, line.Quantity, line.Note)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Actor().ID(), items)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
