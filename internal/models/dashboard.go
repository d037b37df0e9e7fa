package models

import "time"

// DashboardSummary is the pre-aggregated snapshot served to the admin
// console landing page. It is cached and refreshed periodically.
type DashboardSummary struct {
	ProductCount      int64     `json:"product_count"`
	LowStockCount     int64     `json:"low_stock_count"`
	SalesToday        int64     `json:"sales_today"`
	RevenueToday      float64   `json:"revenue_today"`
	PendingOrderCount int64     `json:"pending_order_count"`
	CustomerCount     int64     `json:"customer_count"`
	GeneratedAt       time.Time `json:"generated_at"`
}
