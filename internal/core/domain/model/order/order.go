package order

import (
	"errors"
	"time"

	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIncomplete is returned by the explicit Complete operation
	// while at least one line item remains unpurchased.
	ErrOrderIncomplete = errors.New("order has unpurchased items")

	// ErrCompletedAtInconsistent indicates persisted data violating the
	// invariant: completedAt is set if and only if the status is Completed.
	ErrCompletedAtInconsistent = errors.New(
		"completion timestamp must be set if and only if the order is completed")
)

// Order is the aggregate root of the fulfillment workflow: a customer's
// shopping list tracked through its status lifecycle. It exclusively owns
// its line items; every mutation of an item or of the status goes through
// the aggregate so invariants hold.
//
// Order maintains these invariants:
//   - At least one line item, fixed at creation time
//   - Status transitions follow the state machine in Status
//   - completedAt is set exactly once, when the order becomes Completed
//   - Item purchase timestamps and purchasers travel with the purchase flag
//
// The transition to Completed happens in exactly one place — complete() —
// whether it is triggered by the explicit Complete operation or by
// purchasing the last open item.
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
	completedAt *time.Time
	items       []*Item

	isConstructed bool
}

// NewOrder creates a pending order owned by customerID with the given line
// items. The item list must be non-empty and every item must belong to this
// order.
func NewOrder(id, customerID kernel.UUID, items []*Item) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Status and the
// completion-timestamp invariant are re-validated so corrupted rows never
// enter the domain.
func RestoreOrder(
	id, customerID kernel.UUID,
	status Status,
	createdAt, updatedAt time.Time,
	completedAt *time.Time,
	items []*Item,
) (*Order, error) {
	o, err := NewOrder(id, customerID, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if (status == Completed) != (completedAt != nil) {
		return nil, ErrCompletedAtInconsistent
	}

	o.status = status
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	o.completedAt = completedAt
	return o, nil
}

// Validate ensures the Order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the instant of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CompletedAt returns the completion instant, or nil while the order is not
// Completed.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Items returns the order's line items in their creation order. The slice
// is a copy; items themselves are mutated only through the aggregate.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the line item with the given identifier, or an
// ObjectNotFoundError.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemId", itemID.String())
}

// IsCompletable reports whether the order qualifies for completion: the
// item set is non-empty and every item is purchased. Pure and independent
// of item order. A true result is a signal; the transition itself happens
// in Complete or inside SetItemPurchased.
func (o *Order) IsCompletable() bool {
	if len(o.items) == 0 {
		return false
	}
	for _, item := range o.items {
		if !item.IsPurchased() {
			return false
		}
	}
	return true
}

// PurchasedCount returns the number of purchased line items.
func (o *Order) PurchasedCount() int {
	count := 0
	for _, item := range o.items {
		if item.IsPurchased() {
			count++
		}
	}
	return count
}

// Start moves a pending order into execution.
//
// Returns an InvalidTransitionError unless the order is Pending.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel terminates the order without fulfillment.
//
// Returns an InvalidTransitionError when the order is already Completed or
// Cancelled. Cancellation is a terminal status, not a removal.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Complete explicitly finishes the order.
//
// Returns an InvalidTransitionError when the order is not active, and
// ErrOrderIncomplete while any item remains unpurchased. When the last item
// purchase already auto-completed the order, a subsequent explicit Complete
// fails the status precondition rather than completing twice.
func (o *Order) Complete() error {
	if _, err := o.status.Complete(); err != nil {
		return err
	}
	if !o.IsCompletable() {
		return ErrOrderIncomplete
	}
	return o.complete()
}

// SetItemPurchased records that the executor identified by actorID bought
// (or returned) the given line item.
//
// A missing item yields an ObjectNotFoundError. Setting the flag to its
// current value is an idempotent no-op: no timestamp changes, no completion
// trigger, and no error even when a previous call already completed the
// order. Any actual change requires the order to be active, otherwise an
// InvalidTransitionError is returned.
//
// Purchasing the last open item auto-completes the order through the same
// transition as the explicit Complete operation.
func (o *Order) SetItemPurchased(itemID kernel.UUID, purchased bool, actorID kernel.UUID) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	if item.IsPurchased() == purchased {
		return nil
	}
	if !o.status.IsActive() {
		return errs.NewInvalidTransitionError("purchase item of", o.status.String())
	}

	var changed bool
	if purchased {
		if err = actorID.Validate(); err != nil {
			return err
		}
		changed = item.markPurchased(actorID, time.Now().UTC())
	} else {
		changed = item.markUnpurchased()
	}
	if !changed {
		return nil
	}

	o.touch()
	if purchased && o.IsCompletable() {
		return o.complete()
	}
	return nil
}

// complete is the single authoritative transition to Completed. The
// completion timestamp is written here and nowhere else, at most once.
func (o *Order) complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.completedAt == nil {
		now := time.Now().UTC()
		o.completedAt = &now
	}
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order must contain at least one item")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.OrderID().IsEqual(o.id) {
			return errs.NewValueIsInvalidError("item does not belong to this order")
		}
	}
	o.items = items
	return nil
}
