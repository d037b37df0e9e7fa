package models

type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

type PurchaseOrderStatus string

const (
	OrderStatusPending   PurchaseOrderStatus = "pending"
	OrderStatusCompleted PurchaseOrderStatus = "completed"
	OrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

type PurchaseOrderItemStatus string

const (
	ItemStatusPending     PurchaseOrderItemStatus = "pending"
	ItemStatusReceived    PurchaseOrderItemStatus = "received"
	ItemStatusBackordered PurchaseOrderItemStatus = "backordered"
)

// IsTerminal reports whether no further status transition is permitted.
func (s PurchaseOrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}
