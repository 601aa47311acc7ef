package commands

import (
	"context"

	"shoplist/internal/core/domain/model/order"
	"shoplist/internal/core/domain/services"
)

// PurchaseItemCommandHandler flips the purchase mark on a single item.
// The whole order is loaded and saved inside one transaction, so the
// auto-completion triggered by the last purchase is atomic with the item
// update itself.
type PurchaseItemCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.AccessGate
}

// NewPurchaseItemCommandHandler creates a handler for purchase marks.
func NewPurchaseItemCommandHandler(uowFactory OrderUoWFactory, gate services.AccessGate) PurchaseItemCommandHandler {
	return PurchaseItemCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle authorizes the actor as an executor, resolves the owning order by
// the item and applies the purchase mark. When the mark purchases the last
// remaining item the order completes within the same transaction. Returns
// the updated aggregate.
func (h PurchaseItemCommandHandler) Handle(ctx context.Context, cmd PurchaseItemCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireActiveActor(cmd.Actor()); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(cmd.Actor(), services.OpPurchaseItem, nil); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.SetItemPurchased(cmd.ItemID(), cmd.Purchased(), cmd.Actor().ID()); err != nil {
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
