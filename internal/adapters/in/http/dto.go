package http

import (
	"time"

	"shoplist/internal/core/application/usecases/queries"
	"shoplist/internal/core/domain/model/order"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the request body validator.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate runs struct tag validation on a bound request body.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Products []CreateProductRequest `json:"products" validate:"required,min=1,dive"`
}

// CreateProductRequest is one product line in an order submission.
type CreateProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1,lte=10000"`
	Notes    string `json:"notes"`
}

// PurchaseRequest is the body of PUT /executor/products/:productID/purchase.
type PurchaseRequest struct {
	Purchased *bool `json:"purchased" validate:"required"`
}

// OrderView is the full order representation returned to clients.
type OrderView struct {
	ID          uuid.UUID     `json:"id"`
	CustomerID  uuid.UUID     `json:"customer_id"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	Products    []ProductView `json:"products"`
}

// ProductView is one product line in an order representation.
type ProductView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Quantity    int        `json:"quantity"`
	Notes       string     `json:"notes,omitempty"`
	Purchased   bool       `json:"purchased"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
	PurchasedBy *uuid.UUID `json:"purchased_by,omitempty"`
}

// SummaryView is the purchase progress representation of one order.
type SummaryView struct {
	ID                uuid.UUID `json:"id"`
	CustomerID        uuid.UUID `json:"customer_id"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	TotalProducts     int       `json:"total_products"`
	PurchasedProducts int       `json:"purchased_products"`
	IsCompletable     bool      `json:"is_completable"`
}

// orderViewFromDomain renders a mutated aggregate back to the client.
func orderViewFromDomain(aggregate *order.Order) OrderView {
	items := aggregate.Items()
	products := make([]ProductView, 0, len(items))
	for _, item := range items {
		var purchasedBy *uuid.UUID
		if by := item.PurchasedBy(); by != nil {
			raw := by.Bytes()
			purchasedBy = &raw
		}
		products = append(products, ProductView{
			ID:          item.ID().Bytes(),
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			Notes:       item.Note(),
			Purchased:   item.IsPurchased(),
			PurchasedAt: item.PurchasedAt(),
			PurchasedBy: purchasedBy,
		})
	}

	return OrderView{
		ID:          aggregate.ID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		CompletedAt: aggregate.CompletedAt(),
		Products:    products,
	}
}

// orderViewFromQuery renders a read-side response.
func orderViewFromQuery(resp queries.OrderResponse) OrderView {
	products := make([]ProductView, 0, len(resp.Items))
	for _, item := range resp.Items {
		var purchasedBy *uuid.UUID
		if item.PurchasedBy != nil {
			raw := item.PurchasedBy.Bytes()
			purchasedBy = &raw
		}
		products = append(products, ProductView{
			ID:          item.ID.Bytes(),
			Name:        item.Name,
			Quantity:    item.Quantity,
			Notes:       item.Note,
			Purchased:   item.Purchased,
			PurchasedAt: item.PurchasedAt,
			PurchasedBy: purchasedBy,
		})
	}

	return OrderView{
		ID:          resp.ID.Bytes(),
		CustomerID:  resp.CustomerID.Bytes(),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
		CompletedAt: resp.CompletedAt,
		Products:    products,
	}
}

func summaryViewFromQuery(resp queries.OrderSummaryResponse) SummaryView {
	return SummaryView{
		ID:                resp.ID.Bytes(),
		CustomerID:        resp.CustomerID.Bytes(),
		Status:            resp.Status,
		CreatedAt:         resp.CreatedAt,
		TotalProducts:     resp.TotalProducts,
		PurchasedProducts: resp.PurchasedProducts,
		IsCompletable:     resp.IsCompletable,
	}
}
