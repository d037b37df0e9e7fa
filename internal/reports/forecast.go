package reports

import (
	"github.com/storekeeperhq/pos-platform/internal/models"
)

// StockForecast projects how long a product's current stock lasts at the
// recent rate of sale.
type StockForecast struct {
	ProductID         int64   `json:"product_id"`
	ProductName       string  `json:"product_name"`
	Stock             int64   `json:"stock"`
	DailySalesRate    float64 `json:"daily_sales_rate"`
	DaysUntilStockout float64 `json:"days_until_stockout"`
	HasSales          bool    `json:"has_sales"`
}

// DaysUntilStockout is a linear projection: stock divided by average units
// sold per day over the window. ok is false when nothing sold in the window,
// in which case no stockout can be projected.
func DaysUntilStockout(stock, unitsSold int64, windowDays int) (float64, bool) {

	if windowDays <= 0 || unitsSold <= 0 {
		return 0, false
	}

	rate := float64(unitsSold) / float64(windowDays)

	return float64(stock) / rate, true
}

// Forecast builds a per-product stockout projection. soldByProduct maps
// product ID to units sold over the window.
func Forecast(products []models.Product, soldByProduct map[int64]int64, windowDays int) []StockForecast {

	out := make([]StockForecast, 0, len(products))

	for _, p := range products {

		sold := soldByProduct[p.ID]

		f := StockForecast{
			ProductID:   p.ID,
			ProductName: p.Name,
			Stock:       p.Stock,
		}

		if days, ok := DaysUntilStockout(p.Stock, sold, windowDays); ok {
			f.DailySalesRate = float64(sold) / float64(windowDays)
			f.DaysUntilStockout = days
			f.HasSales = true
		}

		out = append(out, f)
	}

	return out
}
