package models

import "time"

type Sale struct {
	ID            int64      `json:"id"`
	CustomerID    *int64     `json:"customer_id,omitempty"`
	Date          time.Time  `json:"date"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"payment_method"`
	Status        SaleStatus `json:"status"`
	Items         []SaleItem `json:"items"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type SaleItem struct {
	ID        int64   `json:"id"`
	SaleID    int64   `json:"sale_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
	Discount  float64 `json:"discount"`
	Subtotal  float64 `json:"subtotal"`
}

// CheckoutRequest is one cart handed to the checkout workflow. A nil
// CustomerID is a walk-in sale. Duplicate product IDs stay separate lines.
type CheckoutRequest struct {
	CustomerID    *int64         `json:"customer_id,omitempty"`
	PaymentMethod string         `json:"payment_method" validate:"required,min=2,max=40"`
	Items         []CheckoutItem `json:"items" validate:"required,min=1,dive"`
}

type CheckoutItem struct {
	ProductID int64   `json:"product_id" validate:"required"`
	Quantity  int64   `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"gte=0"`
	Discount  float64 `json:"discount" validate:"gte=0"`
}

// Subtotal is price*quantity-discount. Checkout rejects a discount larger
// than the line value before this runs, so the result is never negative.
func (i CheckoutItem) Subtotal() float64 {
	return i.Price*float64(i.Quantity) - i.Discount
}
