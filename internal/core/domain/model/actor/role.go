package actor

import (
	"fmt"

	"shoplist/internal/pkg/errs"
)

// Role is the closed enumeration of principal roles the workflow consumes.
// The identity provider supplies the role tag; the workflow trusts it
// without re-validating credentials.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer submits shopping-list orders and may cancel their own.
	Customer

	// Executor physically purchases line items and drives orders to
	// completion.
	Executor

	// Admin is allowed every workflow operation.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Customer:    "customer",
		Executor:    "executor",
		Admin:       "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer: "customer",
		Executor: "executor",
		Admin:    "admin",
	}
}

// RoleFromString parses the role tag supplied by the identity provider.
// Accepted values are "customer", "executor", and "admin".
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks the Role is one of the three known values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the lowercase role tag. Implements fmt.Stringer and is safe
// on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
