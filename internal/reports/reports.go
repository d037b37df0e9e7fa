// Package reports provides pure in-memory query views over already-loaded
// records. Nothing here touches the database; callers load a slice, shape it
// with these functions and render the result.
package reports

import (
	"sort"
	"strings"
	"time"

	"github.com/storekeeperhq/pos-platform/internal/models"
)

// Search keeps the items for which every whitespace-separated query token
// matches at least one of the item's searchable fields, case-insensitively.
// An empty query keeps everything.
func Search[T any](items []T, query string, fieldsOf func(T) []string) []T {

	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return items
	}

	var out []T

	for _, item := range items {

		fields := fieldsOf(item)
		for i, f := range fields {
			fields[i] = strings.ToLower(f)
		}

		if matchesAll(fields, tokens) {
			out = append(out, item)
		}
	}

	return out
}

func matchesAll(fields []string, tokens []string) bool {

	for _, token := range tokens {

		hit := false

		for _, field := range fields {
			if strings.Contains(field, token) {
				hit = true

				break
			}
		}

		if !hit {
			return false
		}
	}

	return true
}

// OrderSearchFields builds the searchable fields of a purchase order. Product
// and supplier names live outside the order rows, so the caller passes lookup
// maps keyed by ID.
func OrderSearchFields(productNames map[int64]string, supplierNames map[int64]string) func(models.PurchaseOrder) []string {
	return func(o models.PurchaseOrder) []string {

		fields := []string{supplierNames[o.SupplierID], string(o.Status), o.Remarks}

		for _, item := range o.Items {
			fields = append(fields, productNames[item.ProductID])
		}

		return fields
	}
}

func FilterOrdersBySupplier(orders []models.PurchaseOrder, supplierID int64) []models.PurchaseOrder {

	var out []models.PurchaseOrder

	for _, o := range orders {
		if o.SupplierID == supplierID {
			out = append(out, o)
		}
	}

	return out
}

// FilterOrdersByDateRange keeps orders dated within [from, to], inclusive on
// both ends. A zero bound is open.
func FilterOrdersByDateRange(orders []models.PurchaseOrder, from, to time.Time) []models.PurchaseOrder {

	var out []models.PurchaseOrder

	for _, o := range orders {
		if inRange(o.Date, from, to) {
			out = append(out, o)
		}
	}

	return out
}

func FilterSalesByDateRange(sales []models.Sale, from, to time.Time) []models.Sale {

	var out []models.Sale

	for _, s := range sales {
		if inRange(s.Date, from, to) {
			out = append(out, s)
		}
	}

	return out
}

func inRange(t, from, to time.Time) bool {

	if !from.IsZero() && t.Before(from) {
		return false
	}

	if !to.IsZero() && t.After(to) {
		return false
	}

	return true
}

// SortState tracks which column a view is sorted on. Selecting the same key
// again flips the direction; selecting a new key resets to ascending.
type SortState struct {
	Key        string
	Descending bool
}

func (s *SortState) Toggle(key string) {

	if s.Key == key {
		s.Descending = !s.Descending

		return
	}

	s.Key = key
	s.Descending = false
}

// SortBy orders items by the given less function, stably, honoring the
// direction in state.
func SortBy[T any](items []T, state SortState, less func(a, b T) bool) {

	sort.SliceStable(items, func(i, j int) bool {
		if state.Descending {
			return less(items[j], items[i])
		}

		return less(items[i], items[j])
	})
}

// SalesTotals aggregates a slice of sales into count and summed revenue.
// Only completed sales count.
func SalesTotals(sales []models.Sale) (int, float64) {

	count := 0
	revenue := 0.0

	for _, s := range sales {
		if s.Status != models.SaleStatusCompleted {
			continue
		}

		count++
		revenue += s.Total
	}

	return count, revenue
}
