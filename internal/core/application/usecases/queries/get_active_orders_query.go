package queries

import (
	"errors"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/pkg/errs"
	"shoplist/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves the executor backlog: every order still
// in pending or in-progress status.
type GetActiveOrdersQuery struct {
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the active backlog.
func NewGetActiveOrdersQuery(a actor.Actor) (GetActiveOrdersQuery, error) {
	if err := a.Validate(); err != nil {
		return GetActiveOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}

	return GetActiveOrdersQuery{
		actor: a,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Actor returns the requesting actor.
func (q GetActiveOrdersQuery) Actor() actor.Actor {
	return q.actor
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}
