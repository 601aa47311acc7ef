// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the codebase.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields describing the failure
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() so errors.Is can classify
//
// The workflow-facing taxonomy maps onto these types directly: missing
// orders and line items unwrap to ErrObjectNotFound, authorization denials
// to ErrForbidden, operations illegal for the current order status to
// ErrInvalidTransition, and malformed input to ErrValueIsRequired,
// ErrValueIsInvalid, or ErrValueIsOutOfRange. Callers branch on the
// sentinels, never on message text.
package errs
