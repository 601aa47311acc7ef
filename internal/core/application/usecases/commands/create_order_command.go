package commands

import (
	"errors"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/pkg/errs"
	"shoplist/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemLine is one requested product line in a create-order request. Name
// and quantity are validated when the domain item is constructed.
type ItemLine struct {
	Name     string
	Quantity int
	Note     string
}

// CreateOrderCommand represents a customer's request to submit a new
// shopping-list order with at least one line.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customer, []ItemLine{
//	    {Name: "Bread", Quantity: 2},
//	    {Name: "Milk", Quantity: 1, Note: "lactose free"},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   actor.Actor
	lines   []ItemLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to submit a new order. It ensures
// the order ID is valid, the actor is constructed, and the line list is
// non-empty; line contents are validated by the domain model.
func NewCreateOrderCommand(orderID kernel.UUID, a actor.Actor, lines []ItemLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(a),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the submitting principal.
func (c CreateOrderCommand) Actor() actor.Actor {
	return c.actor
}

// Lines returns the requested product lines.
func (c CreateOrderCommand) Lines() []ItemLine {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	c.actor = a
	return nil
}

func (c *CreateOrderCommand) setLines(lines []ItemLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order must contain at least one item")
	}
	c.lines = lines
	return nil
}
