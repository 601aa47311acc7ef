package queries

import (
	"errors"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/order"
	"shoplist/internal/pkg/errs"
	"shoplist/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves every order in one workflow status, for
// executors reviewing the board.
type GetOrdersByStatusQuery struct {
	actor  actor.Actor
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query filtered by workflow status.
func NewGetOrdersByStatusQuery(a actor.Actor, status order.Status) (GetOrdersByStatusQuery, error) {
	var q GetOrdersByStatusQuery

	err := errors.Join(
		q.setActor(a),
		q.setStatus(status),
	)
	if err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	q.guard = guard.NewConstructorGuard()
	return q, nil
}

func (q *GetOrdersByStatusQuery) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	q.actor = a
	return nil
}

func (q *GetOrdersByStatusQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = status
	return nil
}

// Actor returns the requesting actor.
func (q GetOrdersByStatusQuery) Actor() actor.Actor {
	return q.actor
}

// Status returns the workflow status filter.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}
