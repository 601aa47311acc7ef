package order

import (
	"errors"
	"fmt"
	"time"

	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/pkg/errs"
)

// maxItemQuantity bounds a single requested line. A shopping list asking for
// more units of one product than this is a malformed request, not an order.
const maxItemQuantity = 10000

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrItemPurchaseStateCorrupted indicates persisted purchase data that
	// violates the invariant: purchasedAt and purchasedBy are set together,
	// and only while the purchased flag is true.
	ErrItemPurchaseStateCorrupted = errors.New(
		"item purchase timestamp and purchaser must be set together and only when purchased")
)

// Item is one requested product line inside an order. It carries its own
// purchase tracking: a flag, the purchase instant, and the executor who
// bought it. Items are created together with their owning order and are
// mutated only through the aggregate's SetItemPurchased.
//
// Invariant: purchasedAt and purchasedBy are both set when purchased is
// true and both nil when it is false.
type Item struct {
	id          kernel.UUID
	orderID     kernel.UUID
	name        string
	quantity    int
	note        string
	purchased   bool
	purchasedAt *time.Time
	purchasedBy *kernel.UUID

	isConstructed bool
}

// NewItem creates an unpurchased line item for the order identified by
// orderID. Name must be non-empty and quantity positive.
func NewItem(id, orderID kernel.UUID, name string, quantity int, note string) (*Item, error) {
	item := &Item{
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a line item from persistence, including its
// purchase state. The purchase-tracking invariant is re-checked so corrupted
// rows never enter the domain.
func RestoreItem(
	id, orderID kernel.UUID,
	name string,
	quantity int,
	note string,
	purchased bool,
	purchasedAt *time.Time,
	purchasedBy *kernel.UUID,
) (*Item, error) {
	item, err := NewItem(id, orderID, name, quantity, note)
	if err != nil {
		return nil, err
	}

	if purchased != (purchasedAt != nil) || purchased != (purchasedBy != nil) {
		return nil, ErrItemPurchaseStateCorrupted
	}
	if purchasedBy != nil {
		if err = purchasedBy.Validate(); err != nil {
			return nil, err
		}
	}

	item.purchased = purchased
	item.purchasedAt = purchasedAt
	item.purchasedBy = purchasedBy
	return item, nil
}

// Validate ensures the Item was created via NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// Name returns the product's display name.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the requested number of units.
func (i *Item) Quantity() int {
	return i.quantity
}

// Note returns the customer's free-text note for this line.
func (i *Item) Note() string {
	return i.note
}

// IsPurchased reports whether an executor has bought this line.
func (i *Item) IsPurchased() bool {
	return i.purchased
}

// PurchasedAt returns the purchase instant, or nil while unpurchased.
func (i *Item) PurchasedAt() *time.Time {
	return i.purchasedAt
}

// PurchasedBy returns the purchasing executor's identifier, or nil while
// unpurchased.
func (i *Item) PurchasedBy() *kernel.UUID {
	return i.purchasedBy
}

// markPurchased records the purchase. Returns false without touching state
// when the item is already purchased, so a repeated call never rewrites the
// timestamp or the purchaser.
func (i *Item) markPurchased(by kernel.UUID, at time.Time) bool {
	if i.purchased {
		return false
	}
	i.purchased = true
	i.purchasedAt = &at
	i.purchasedBy = &by
	return true
}

// markUnpurchased clears the purchase flag together with the timestamp and
// the purchaser. Returns false when the item was not purchased.
func (i *Item) markUnpurchased() bool {
	if !i.purchased {
		return false
	}
	i.purchased = false
	i.purchasedAt = nil
	i.purchasedBy = nil
	return true
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 || quantity > maxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

// String is used in log output.
func (i *Item) String() string {
	return fmt.Sprintf("%s x%d", i.name, i.quantity)
}
