// Package actor models the authenticated principal acting on the workflow.
// The identity provider is an external collaborator: it authenticates the
// request and hands over a stable identifier, a role tag, and an active
// flag. This package only carries that data into the domain; it never
// verifies credentials.
package actor

import (
	"errors"

	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated principal performing a workflow operation.
type Actor struct {
	id       kernel.UUID
	role     Role
	isActive bool

	guard guard.ConstructorGuard
}

// NewActor creates a validated Actor from the identity provider's claims.
func NewActor(id kernel.UUID, role Role, isActive bool) (Actor, error) {
	a := Actor{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setRole(role),
	); err != nil {
		return Actor{}, err
	}

	return a, nil
}

// Validate ensures the Actor was created via NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the principal's stable identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the principal's role tag.
func (a Actor) Role() Role {
	return a.role
}

// IsActive reports whether the account is active. Inactive principals are
// treated as unauthenticated by every workflow operation.
func (a Actor) IsActive() bool {
	return a.isActive
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
