package commands

import (
	"errors"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/pkg/errs"
	"shoplist/internal/pkg/guard"
)

var ErrPurchaseItemCommandIsNotConstructed = errors.New(
	"PurchaseItemCommand must be created via NewPurchaseItemCommand constructor",
)

// PurchaseItemCommand is a request by an executor to mark a single list
// item as purchased or to revert an earlier purchase mark.
type PurchaseItemCommand struct {
	itemID    kernel.UUID
	actor     actor.Actor
	purchased bool

	guard guard.ConstructorGuard
}

// NewPurchaseItemCommand creates a validated command to flip the purchase
// mark on an item.
func NewPurchaseItemCommand(itemID kernel.UUID, a actor.Actor, purchased bool) (PurchaseItemCommand, error) {
	var cmd PurchaseItemCommand

	err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setActor(a),
	)
	if err != nil {
		return PurchaseItemCommand{}, err
	}

	cmd.purchased = purchased
	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c *PurchaseItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("itemID", err)
	}
	c.itemID = itemID
	return nil
}

func (c *PurchaseItemCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actor = a
	return nil
}

// ItemID returns the item whose purchase mark changes.
func (c PurchaseItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Actor returns the requesting actor.
func (c PurchaseItemCommand) Actor() actor.Actor {
	return c.actor
}

// Purchased reports the desired purchase state.
func (c PurchaseItemCommand) Purchased() bool {
	return c.purchased
}

// Validate checks the command was created through the constructor.
func (c PurchaseItemCommand) Validate() error {
	return c.guard.Validate(ErrPurchaseItemCommandIsNotConstructed)
}
