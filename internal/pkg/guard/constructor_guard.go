// Package guard provides a constructor guard for value objects and commands.
// Embedding a ConstructorGuard lets a type detect whether it was created
// through its designated constructor or as a zero value, so validation can
// reject unconstructed instances before they reach business logic.
package guard

import "errors"

// ErrNotConstructed is returned by Validate when no specific error is
// supplied and the guarded object was not created via its constructor.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was properly constructed. Otherwise
// it returns validationError, or ErrNotConstructed when validationError is
// nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrNotConstructed
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
