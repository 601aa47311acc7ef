package queries

import (
	"errors"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/pkg/errs"
	"shoplist/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items. Customers see their
// own orders, executors see orders that are still in the active backlog,
// admins see everything.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, requester)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order view.
func NewGetOrderQuery(orderID kernel.UUID, a actor.Actor) (GetOrderQuery, error) {
	var q GetOrderQuery

	err := errors.Join(
		q.setOrderID(orderID),
		q.setActor(a),
	)
	if err != nil {
		return GetOrderQuery{}, err
	}

	q.guard = guard.NewConstructorGuard()
	return q, nil
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	q.actor = a
	return nil
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the requesting actor.
func (q GetOrderQuery) Actor() actor.Actor {
	return q.actor
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}
