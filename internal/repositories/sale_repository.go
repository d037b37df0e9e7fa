package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/models"
	"github.com/storekeeperhq/pos-platform/internal/utils"
)

type SaleRepository interface {
	CreateSale(ctx context.Context, sale *models.Sale) error
	GetSaleByID(ctx context.Context, id int64) (*models.Sale, error)
	ListSales(ctx context.Context, page, size int) ([]models.Sale, int, error)
	DeleteSale(ctx context.Context, id int64) error
	SalesSince(ctx context.Context, since time.Time) (int64, float64, error)
	UnitsSoldSince(ctx context.Context, since time.Time) (map[int64]int64, error)
}

type saleRepository struct {
	DB *sql.DB
}

func NewSaleRepo(db *sql.DB) SaleRepository {
	return &saleRepository{DB: db}
}

// CreateSale persists the sale header, its line items and the per-line stock
// debits in one transaction. Either the whole checkout lands or none of it
// does: a header without items, or a stock debit without a matching sale,
// cannot be observed by any other connection.
func (r *saleRepository) CreateSale(ctx context.Context, sale *models.Sale) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("beginning checkout transaction: %w", err)
	}

	defer tx.Rollback()

	query := `
		INSERT INTO sales (customer_id, date, total, payment_method, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query, sale.CustomerID, sale.Date, sale.Total, sale.PaymentMethod, sale.Status).Scan(&sale.ID, &sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		return mapConstraintError(fmt.Errorf("inserting sale: %w", err), "Sale")
	}

	itemQuery := `
		INSERT INTO sale_items (sale_id, product_id, quantity, price, discount, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	for i := range sale.Items {
		item := &sale.Items[i]
		item.SaleID = sale.ID

		err := tx.QueryRowContext(dbCtx, itemQuery, item.SaleID, item.ProductID, item.Quantity, item.Price, item.Discount, item.Subtotal).Scan(&item.ID)
		if err != nil {
			return mapConstraintError(fmt.Errorf("inserting sale item: %w", err), "Sale item")
		}

		// Debit stock inside the same transaction; an insufficient-stock
		// failure on any line rolls back everything above.
		if _, err := adjustStock(dbCtx, tx, item.ProductID, -item.Quantity); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing checkout: %w", err)
	}

	return nil
}

func (r *saleRepository) GetSaleByID(ctx context.Context, id int64) (*models.Sale, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	sale := &models.Sale{}

	query := `
		SELECT id, customer_id, date, total, payment_method, status, created_at, updated_at
		FROM sales
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&sale.ID, &sale.CustomerID, &sale.Date, &sale.Total, &sale.PaymentMethod, &sale.Status, &sale.CreatedAt, &sale.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundError("Sale not found")
	}

	if err != nil {
		return nil, fmt.Errorf("querying sale: %w", err)
	}

	items, err := r.saleItems(dbCtx, sale.ID)
	if err != nil {
		return nil, err
	}

	sale.Items = items

	return sale, nil
}

func (r *saleRepository) saleItems(ctx context.Context, saleID int64) ([]models.SaleItem, error) {

	query := `
		SELECT id, product_id, quantity, price, discount, subtotal
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("querying sale items: %w", err)
	}

	defer rows.Close()

	var items []models.SaleItem

	for rows.Next() {
		var item models.SaleItem

		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.Price, &item.Discount, &item.Subtotal); err != nil {
			return nil, err
		}

		item.SaleID = saleID

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *saleRepository) ListSales(ctx context.Context, page, size int) ([]models.Sale, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM sales`).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `
		SELECT id, customer_id, date, total, payment_method, status, created_at, updated_at
		FROM sales
		ORDER BY date DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var sales []models.Sale

	for rows.Next() {
		var sale models.Sale

		if err := rows.Scan(&sale.ID, &sale.CustomerID, &sale.Date, &sale.Total, &sale.PaymentMethod, &sale.Status, &sale.CreatedAt, &sale.UpdatedAt); err != nil {
			return nil, 0, err
		}

		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range sales {
		items, err := r.saleItems(dbCtx, sales[i].ID)
		if err != nil {
			return nil, 0, err
		}

		sales[i].Items = items
	}

	return sales, total, nil
}

// DeleteSale removes the sale and its items together; a sale owns its lines.
func (r *saleRepository) DeleteSale(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("beginning delete transaction: %w", err)
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(dbCtx, `DELETE FROM sale_items WHERE sale_id = $1`, id); err != nil {
		return fmt.Errorf("deleting sale items: %w", err)
	}

	result, err := tx.ExecContext(dbCtx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting sale: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return apperrors.NotFoundError("Sale not found")
	}

	return tx.Commit()
}

// SalesSince returns the count and summed total of completed sales on or
// after the given instant; the dashboard uses it for today's figures.
func (r *saleRepository) SalesSince(ctx context.Context, since time.Time) (int64, float64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int64
	var revenue float64

	query := `SELECT COUNT(*), COALESCE(SUM(total), 0) FROM sales WHERE status = 'completed' AND date >= $1`

	err := r.DB.QueryRowContext(dbCtx, query, since).Scan(&count, &revenue)

	return count, revenue, err
}

// UnitsSoldSince sums completed sale quantities per product on or after the
// given instant; the stockout forecast feeds on it.
func (r *saleRepository) UnitsSoldSince(ctx context.Context, since time.Time) (map[int64]int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT si.product_id, COALESCE(SUM(si.quantity), 0)
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE s.status = 'completed' AND s.date >= $1
		GROUP BY si.product_id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, since)
	if err != nil {
		return nil, fmt.Errorf("querying units sold: %w", err)
	}

	defer rows.Close()

	sold := make(map[int64]int64)

	for rows.Next() {
		var productID, quantity int64

		if err := rows.Scan(&productID, &quantity); err != nil {
			return nil, err
		}

		sold[productID] = quantity
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sold, nil
}
