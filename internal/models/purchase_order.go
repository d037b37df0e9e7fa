package models

import "time"

type PurchaseOrder struct {
	ID                   int64               `json:"id"`
	SupplierID           int64               `json:"supplier_id"`
	Date                 time.Time           `json:"date"`
	ExpectedDeliveryDate *time.Time          `json:"expected_delivery_date,omitempty"`
	Status               PurchaseOrderStatus `json:"status"`
	TotalCost            float64             `json:"total_cost"`
	Remarks              string              `json:"remarks,omitempty"`
	Items                []PurchaseOrderItem `json:"items"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

type PurchaseOrderItem struct {
	ID               int64                   `json:"id"`
	PurchaseOrderID  int64                   `json:"purchase_order_id"`
	ProductID        int64                   `json:"product_id"`
	Quantity         int64                   `json:"quantity"`
	Price            float64                 `json:"price"`
	ReceivedQuantity *int64                  `json:"received_quantity,omitempty"`
	Status           PurchaseOrderItemStatus `json:"status"`
}

type CreatePurchaseOrderRequest struct {
	SupplierID           int64                    `json:"supplier_id" validate:"required"`
	Date                 time.Time                `json:"date"`
	ExpectedDeliveryDate *time.Time               `json:"expected_delivery_date,omitempty"`
	Remarks              string                   `json:"remarks,omitempty" validate:"omitempty,max=500"`
	Items                []PurchaseOrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type PurchaseOrderItemInput struct {
	ProductID int64   `json:"product_id" validate:"required"`
	Quantity  int64   `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// UpdatePurchaseOrderRequest edits a pending order. Items, when present,
// replace the existing lines wholesale.
type UpdatePurchaseOrderRequest struct {
	SupplierID           *int64                   `json:"supplier_id,omitempty"`
	Date                 *time.Time               `json:"date,omitempty"`
	ExpectedDeliveryDate *time.Time               `json:"expected_delivery_date,omitempty"`
	Remarks              *string                  `json:"remarks,omitempty" validate:"omitempty,max=500"`
	Items                []PurchaseOrderItemInput `json:"items,omitempty" validate:"omitempty,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status PurchaseOrderStatus `json:"status" validate:"required,oneof=completed cancelled"`
}
