package commands

import (
	"errors"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/pkg/errs"
	"shoplist/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand is a request by an executor to take a pending order
// into work.
type StartOrderCommand struct {
	orderID kernel.UUID
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewStartOrderCommand creates a validated command to start an order.
func NewStartOrderCommand(orderID kernel.UUID, a actor.Actor) (StartOrderCommand, error) {
	var cmd StartOrderCommand

	err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(a),
	)
	if err != nil {
		return StartOrderCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c *StartOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	c.orderID = orderID
	return nil
}

func (c *StartOrderCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actor = a
	return nil
}

// OrderID returns the order to start.
func (c StartOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the requesting actor.
func (c StartOrderCommand) Actor() actor.Actor {
	return c.actor
}

// Validate checks the command was created through the constructor.
func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}
