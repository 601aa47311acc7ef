package commands

import (
	"errors"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/pkg/errs"
	"shoplist/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand is a request by an executor to explicitly close an
// order whose items have all been purchased.
type CompleteOrderCommand struct {
	orderID kernel.UUID
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a validated command to complete an order.
func NewCompleteOrderCommand(orderID kernel.UUID, a actor.Actor) (CompleteOrderCommand, error) {
	var cmd CompleteOrderCommand

	err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(a),
	)
	if err != nil {
		return CompleteOrderCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actor = a
	return nil
}

// OrderID returns the order to complete.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the requesting actor.
func (c CompleteOrderCommand) Actor() actor.Actor {
	return c.actor
}

// Validate checks the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}
