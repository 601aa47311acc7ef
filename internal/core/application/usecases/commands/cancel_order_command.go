package commands

import (
	"errors"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/pkg/errs"
	"shoplist/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand is a request to cancel an order before it is
// completed. Customers may cancel only their own orders.
type CancelOrderCommand struct {
	orderID kernel.UUID
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a validated command to cancel an order.
func NewCancelOrderCommand(orderID kernel.UUID, a actor.Actor) (CancelOrderCommand, error) {
	var cmd CancelOrderCommand

	err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(a),
	)
	if err != nil {
		return CancelOrderCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actor = a
	return nil
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the requesting actor.
func (c CancelOrderCommand) Actor() actor.Actor {
	return c.actor
}

// Validate checks the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}
