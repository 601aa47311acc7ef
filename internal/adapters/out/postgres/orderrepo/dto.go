// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and their database rows.
package orderrepo

import (
	"time"

	"shoplist/internal/core/domain/model/kernel"
	"shoplist/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Timestamps are owned by the domain model, so GORM's automatic
// time tracking is disabled.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index"`
	Status      string    `gorm:"type:text;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
	CompletedAt *time.Time
	Items       []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one product row of an order. The purchase state spans
// three columns kept consistent by the domain model: purchased,
// purchased_at and purchased_by are set and cleared together.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Quantity    int
	Notes       string
	Purchased   bool
	PurchasedAt *time.Time
	PurchasedBy *uuid.UUID `gorm:"type:uuid"`
}

// TableName overrides GORM's default naming convention to use "products".
func (ItemDTO) TableName() string {
	return "products"
}

// fromDomain converts an order aggregate to its database representation,
// items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, itemFromDomain(item))
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		CompletedAt: aggregate.CompletedAt(),
		Items:       itemDTOs,
	}
}

func itemFromDomain(item *order.Item) ItemDTO {
	var purchasedBy *uuid.UUID
	if by := item.PurchasedBy(); by != nil {
		raw := by.Bytes()
		purchasedBy = &raw
	}

	return ItemDTO{
		ID:          item.ID().Bytes(),
		OrderID:     item.OrderID().Bytes(),
		Name:        item.Name(),
		Quantity:    item.Quantity(),
		Notes:       item.Note(),
		Purchased:   item.IsPurchased(),
		PurchasedAt: item.PurchasedAt(),
		PurchasedBy: purchasedBy,
	}
}

// toDomain converts a database DTO to an order aggregate. Reconstruction
// goes through the restore constructors, so corrupted rows are rejected.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, status, dto.CreatedAt, dto.UpdatedAt, dto.CompletedAt, items)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var purchasedBy *kernel.UUID
	if dto.PurchasedBy != nil {
		by, byErr := kernel.UUIDFromBytes(dto.PurchasedBy[:])
		if byErr != nil {
			return nil, byErr
		}
		purchasedBy = &by
	}

	return order.RestoreItem(
		id,
		orderID,
		dto.Name,
		dto.Quantity,
		dto.Notes,
		dto.Purchased,
		dto.PurchasedAt,
		purchasedBy,
	)
}
