// Package queries contains the workflow's read operations. Handlers run
// raw SQL against the read side of the database and return plain response
// structs, bypassing the domain model.
package queries

import (
	"context"
	"time"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// requireActiveActor rejects unconstructed and inactive principals, the
// same way the write side does: an inactive account reads as unknown.
func requireActiveActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.IsActive() {
		return errs.NewObjectNotFoundError("actor", a.ID().String())
	}
	return nil
}

// OrderResponse is the full order view returned by the read side,
// including every line item.
type OrderResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
	Items       []ItemResponse
}

// ItemResponse is one line item in an order view.
type ItemResponse struct {
	ID          kernel.UUID
	Name        string
	Quantity    int
	Note        string
	Purchased   bool
	PurchasedAt *time.Time
	PurchasedBy *kernel.UUID
}

// queryOrders fetches order rows matching cond together with their items,
// ordered by creation time. cond is a SQL fragment for the WHERE clause
// with ? placeholders bound to args.
func queryOrders(ctx context.Context, db *gorm.DB, cond string, args ...any) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			created_at,
			updated_at,
			completed_at
		FROM orders
		WHERE `+cond+`
		ORDER BY created_at, id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[uuid.UUID]int)
	rawIDs := make([]uuid.UUID, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			customerID uuid.UUID
			resp       OrderResponse
		)

		err = rows.Scan(&id, &customerID, &resp.Status, &resp.CreatedAt, &resp.UpdatedAt, &resp.CompletedAt)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}

		resp.Items = make([]ItemResponse, 0)
		index[id] = len(orders)
		rawIDs = append(rawIDs, id)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = attachItems(ctx, db, rawIDs, index, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads the products of the given orders and distributes them
// into the matching responses.
func attachItems(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []uuid.UUID,
	index map[uuid.UUID]int,
	orders []OrderResponse,
) error {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			name,
			quantity,
			notes,
			purchased,
			purchased_at,
			purchased_by
		FROM products
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			orderID     uuid.UUID
			purchasedBy *uuid.UUID
			item        ItemResponse
		)

		err = rows.Scan(
			&id,
			&orderID,
			&item.Name,
			&item.Quantity,
			&item.Note,
			&item.Purchased,
			&item.PurchasedAt,
			&purchasedBy,
		)
		if err != nil {
			return err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		if purchasedBy != nil {
			by, byErr := kernel.UUIDFromBytes(purchasedBy[:])
			if byErr != nil {
				return byErr
			}
			item.PurchasedBy = &by
		}

		pos, ok := index[orderID]
		if !ok {
			continue
		}
		orders[pos].Items = append(orders[pos].Items, item)
	}

	return rows.Err()
}
