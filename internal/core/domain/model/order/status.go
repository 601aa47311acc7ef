package order

import (
	"fmt"

	"shoplist/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the fulfillment workflow.
//
// State transitions:
//
//	Pending ──┬──> InProgress ──┬──> Completed
//	          │                 │
//	          └──> Cancelled <──┘
//
// Completed and Cancelled are terminal. Status is a value object that
// validates state transitions and provides the string representation used
// in persistence and over HTTP.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status of a freshly submitted order. The
	// shopping list is waiting for an executor to pick it up.
	Pending

	// InProgress indicates an executor has started purchasing items.
	InProgress

	// Completed indicates every line item was purchased. Terminal.
	Completed

	// Cancelled indicates the owning customer withdrew the order before
	// completion. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Pending:       "pending",
		InProgress:    "in_progress",
		Completed:     "completed",
		Cancelled:     "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses the persisted textual representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks the Status is one of the four defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase status tag used in storage and API payloads.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the order can still be worked on. Only Pending
// and InProgress orders accept item mutations and transitions.
func (s Status) IsActive() bool {
	return s == Pending || s == InProgress
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress
//
// Any other current status yields an InvalidTransitionError and a zero
// Status.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("start", s.String())
	}
	return InProgress, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - InProgress -> Cancelled
//
// Completed and Cancelled orders cannot be cancelled; the transition fails
// with an InvalidTransitionError.
func (s Status) Cancel() (Status, error) {
	if !s.IsActive() {
		return 0, errs.NewInvalidTransitionError("cancel", s.String())
	}
	return Cancelled, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Pending -> Completed (every item purchased before the order was started)
//   - InProgress -> Completed
//
// Whether the items actually allow completion is the aggregate's concern;
// this method only rules on the status machine.
func (s Status) Complete() (Status, error) {
	if !s.IsActive() {
		return 0, errs.NewInvalidTransitionError("complete", s.String())
	}
	return Completed, nil
}
