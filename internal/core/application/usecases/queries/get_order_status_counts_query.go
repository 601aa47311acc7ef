package queries

import (
	"errors"

	"shoplist/internal/pkg/guard"
)

var ErrGetOrderStatusCountsQueryIsNotConstructed = errors.New(
	"GetOrderStatusCountsQuery must be created via NewGetOrderStatusCountsQuery constructor",
)

// GetOrderStatusCountsQuery retrieves the number of orders per workflow
// status. Used by the backlog report job.
type GetOrderStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatusCountsQuery creates a query for per-status order counts.
func NewGetOrderStatusCountsQuery() GetOrderStatusCountsQuery {
	return GetOrderStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusCountsQueryIsNotConstructed)
}

// OrderStatusCount is the number of orders currently in one status.
type OrderStatusCount struct {
	Status string
	Count  int64
}
