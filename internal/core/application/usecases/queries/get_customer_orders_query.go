package queries

import (
	"errors"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/pkg/errs"
	"shoplist/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves every order submitted by the requesting
// customer, newest last.
type GetCustomerOrdersQuery struct {
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the actor's own orders.
func NewGetCustomerOrdersQuery(a actor.Actor) (GetCustomerOrdersQuery, error) {
	if err := a.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return GetCustomerOrdersQuery{
		actor: a,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Actor returns the requesting actor.
func (q GetCustomerOrdersQuery) Actor() actor.Actor {
	return q.actor
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}
