package services

import (
	"fmt"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/pkg/errs"
)

// Operation enumerates the workflow operations the gate rules on.
type Operation int

const (
	// UnknownOperation represents an invalid or undefined operation.
	UnknownOperation Operation = iota

	// OpCreateOrder submits a new shopping-list order.
	OpCreateOrder

	// OpViewOwnOrder reads an order the actor owns (detail or summary).
	OpViewOwnOrder

	// OpCancelOrder withdraws an order the actor owns.
	OpCancelOrder

	// OpStartOrder begins executing a pending order.
	OpStartOrder

	// OpPurchaseItem marks a line item purchased or unpurchased.
	OpPurchaseItem

	// OpCompleteOrder explicitly finishes an order.
	OpCompleteOrder

	// OpViewActiveOrders lists or reads orders from the executor surface.
	OpViewActiveOrders
)

func getOperationStrings() map[Operation]string {
	return map[Operation]string{
		UnknownOperation:   "unknown operation",
		OpCreateOrder:      "create order",
		OpViewOwnOrder:     "view order",
		OpCancelOrder:      "cancel order",
		OpStartOrder:       "start order",
		OpPurchaseItem:     "purchase item",
		OpCompleteOrder:    "complete order",
		OpViewActiveOrders: "view active orders",
	}
}

// String returns the human-readable operation name used in deny reasons.
func (op Operation) String() string {
	if str, ok := getOperationStrings()[op]; ok {
		return str
	}
	return "unknown operation"
}

// AccessGate is the domain service deciding, for every workflow operation,
// whether the acting principal may perform it. All role and ownership checks
// live here — command and query handlers consult the gate instead of
// scattering checks across call sites.
//
// Rules, in priority order:
//  1. Admins are allowed every operation.
//  2. Ownership operations (cancel, view own order) require the order's
//     owning customer.
//  3. Executor operations (start, purchase, complete, view active orders)
//     require the executor role.
//  4. Order creation requires the customer role.
//
// Every denial is an errs.ForbiddenError so callers distinguish "not
// allowed" from "not found" and "not possible in this state".
type AccessGate struct{}

// NewAccessGate creates an AccessGate instance.
func NewAccessGate() AccessGate {
	return AccessGate{}
}

// Authorize returns nil when a may perform op. For ownership operations
// ownerID must carry the target order's owning customer; other operations
// ignore it.
func (g AccessGate) Authorize(a actor.Actor, op Operation, ownerID *kernel.UUID) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if a.Role() == actor.Admin {
		return nil
	}

	switch op {
	case OpCreateOrder:
		if a.Role() != actor.Customer {
			return errs.NewForbiddenError(op.String(), "customer role required")
		}
		return nil

	case OpViewOwnOrder, OpCancelOrder:
		if a.Role() != actor.Customer {
			return errs.NewForbiddenError(op.String(), "customer role required")
		}
		if ownerID == nil || !ownerID.IsEqual(a.ID()) {
			return errs.NewForbiddenError(op.String(), "order belongs to another customer")
		}
		return nil

	case OpStartOrder, OpPurchaseItem, OpCompleteOrder, OpViewActiveOrders:
		if a.Role() != actor.Executor {
			return errs.NewForbiddenError(op.String(), "executor role required")
		}
		return nil

	default:
		return errs.NewForbiddenErrorWithCause(
			op.String(), "operation is not recognized",
			fmt.Errorf("%d is not a known operation", op),
		)
	}
}

// AuthorizeView decides read access to a single order for summary and
// detail endpoints: the owning customer, any executor, and admins may view.
func (g AccessGate) AuthorizeView(a actor.Actor, ownerID kernel.UUID) error {
	if err := a.Validate(); err != nil {
		return err
	}

	switch a.Role() {
	case actor.Admin, actor.Executor:
		return nil
	case actor.Customer:
		o := ownerID
		return g.Authorize(a, OpViewOwnOrder, &o)
	default:
		return errs.NewForbiddenError(OpViewOwnOrder.String(), "role is not recognized")
	}
}
