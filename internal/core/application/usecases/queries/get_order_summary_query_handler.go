package queries

import (
	"context"
	"database/sql"
	"errors"

	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/core/domain/services"
	"shoplist/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler computes an order's purchase progress with a
// single aggregating query.
type GetOrderSummaryQueryHandler struct {
	db   *gorm.DB
	gate services.AccessGate
}

// NewGetOrderSummaryQueryHandler creates a handler for order summaries.
func NewGetOrderSummaryQueryHandler(db *gorm.DB, gate services.AccessGate) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db, gate: gate}
}

// Handle fetches the summary row and checks the actor may see it.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderSummaryResponse{}, err
	}
	if err := requireActiveActor(query.Actor()); err != nil {
		return OrderSummaryResponse{}, err
	}

	var (
		id         uuid.UUID
		customerID uuid.UUID
		resp       OrderSummaryResponse
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.status,
			o.created_at,
			COUNT(p.id),
			COUNT(p.id) FILTER (WHERE p.purchased)
		FROM orders o
		LEFT JOIN products p ON p.order_id = o.id
		WHERE o.id = ?
		GROUP BY o.id, o.customer_id, o.status, o.created_at
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &customerID, &resp.Status, &resp.CreatedAt, &resp.TotalProducts, &resp.PurchasedProducts)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderSummaryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderSummaryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderSummaryResponse{}, err
	}
	resp.IsCompletable = resp.TotalProducts > 0 && resp.PurchasedProducts == resp.TotalProducts

	// unlike the detail view, the summary stays readable to executors in
	// every status, so progress can be checked after completion
	if err = h.gate.AuthorizeView(query.Actor(), resp.CustomerID); err != nil {
		return OrderSummaryResponse{}, err
	}

	return resp, nil
}
