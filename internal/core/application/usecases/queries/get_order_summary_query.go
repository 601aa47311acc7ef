package queries

import (
	"errors"
	"time"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/pkg/errs"
	"shoplist/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery retrieves the purchase progress of one order
// without its item details.
type GetOrderSummaryQuery struct {
	orderID kernel.UUID
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for an order progress summary.
func NewGetOrderSummaryQuery(orderID kernel.UUID, a actor.Actor) (GetOrderSummaryQuery, error) {
	var q GetOrderSummaryQuery

	err := errors.Join(
		q.setOrderID(orderID),
		q.setActor(a),
	)
	if err != nil {
		return GetOrderSummaryQuery{}, err
	}

	q.guard = guard.NewConstructorGuard()
	return q, nil
}

func (q *GetOrderSummaryQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	q.orderID = orderID
	return nil
}

func (q *GetOrderSummaryQuery) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	q.actor = a
	return nil
}

// OrderID returns the requested order.
func (q GetOrderSummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the requesting actor.
func (q GetOrderSummaryQuery) Actor() actor.Actor {
	return q.actor
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderSummaryResponse is the purchase progress of one order. IsCompletable
// reports whether every product has been purchased.
type OrderSummaryResponse struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	Status            string
	CreatedAt         time.Time
	TotalProducts     int
	PurchasedProducts int
	IsCompletable     bool
}
