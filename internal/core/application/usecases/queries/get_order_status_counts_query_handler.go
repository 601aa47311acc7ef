package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderStatusCountsQueryHandler aggregates the order table by status.
type GetOrderStatusCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusCountsQueryHandler creates a handler for per-status
// counts.
func NewGetOrderStatusCountsQueryHandler(db *gorm.DB) GetOrderStatusCountsQueryHandler {
	return GetOrderStatusCountsQueryHandler{db: db}
}

// Handle returns one row per status present in the orders table.
func (h GetOrderStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusCountsQuery,
) ([]OrderStatusCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make([]OrderStatusCount, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c OrderStatusCount
		if err = rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
