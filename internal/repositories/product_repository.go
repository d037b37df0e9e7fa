package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	apperrors "github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/models"
	"github.com/storekeeperhq/pos-platform/internal/utils"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error)
	AllProducts(ctx context.Context) ([]models.Product, error)
	AdjustStock(ctx context.Context, productID, delta int64) (*models.Product, error)
	CountProducts(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context, threshold int64) (int64, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, name, category_id, supplier_id, price, stock, barcode, created_at, updated_at`

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, p *models.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.CategoryID, &p.SupplierID, &p.Price, &p.Stock, &p.Barcode, &p.CreatedAt, &p.UpdatedAt)
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (name, category_id, supplier_id, price, stock, barcode)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, product.Name, product.CategoryID, product.SupplierID, product.Price, product.Stock, product.Barcode).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return mapConstraintError(err, "Product")
	}

	return nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id), product)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundError("Product not found")
	}

	if err != nil {
		return nil, fmt.Errorf("querying product: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET name = $1, category_id = $2, supplier_id = $3, price = $4, barcode = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, product.Name, product.CategoryID, product.SupplierID, product.Price, product.Barcode, product.ID).Scan(&product.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFoundError("Product not found")
	}

	return mapConstraintError(err, "Product")
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return apperrors.NotFoundError("Product not found")
	}

	return nil
}

func (r *productRepository) ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `SELECT ` + productColumns + ` FROM products ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var products []models.Product

	for rows.Next() {
		var product models.Product

		if err := scanProduct(rows, &product); err != nil {
			return nil, 0, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// AllProducts loads the whole catalog without pagination; the forecast view
// projects every product at once.
func (r *productRepository) AllProducts(ctx context.Context) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}

	defer rows.Close()

	var products []models.Product

	for rows.Next() {
		var product models.Product

		if err := scanProduct(rows, &product); err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// The stock ledger primitive. The delta is applied in a single conditional
// UPDATE so concurrent mutations of the same product cannot lose an update,
// and a debit below zero matches no row and applies nothing. Computing the
// new stock value on the client and writing it back is NOT an acceptable
// substitute: two concurrent checkouts would both read the same stock and
// the later write would silently overwrite the earlier one.
const adjustStockQuery = `
	UPDATE products
	SET stock = stock + $1, updated_at = NOW()
	WHERE id = $2 AND stock + $1 >= 0
	RETURNING ` + productColumns

// queryRower lets adjustStock run on *sql.DB or inside a *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func adjustStock(ctx context.Context, q queryRower, productID, delta int64) (*models.Product, error) {

	product := &models.Product{}

	err := scanProduct(q.QueryRowContext(ctx, adjustStockQuery, delta, productID), product)
	if errors.Is(err, sql.ErrNoRows) {

		// No row matched: either the product is gone or the debit would
		// have driven stock negative.
		var exists bool
		if err := q.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("checking product existence: %w", err)
		}

		if !exists {
			return nil, apperrors.NotFoundError("Product not found")
		}

		return nil, apperrors.InsufficientStockError(fmt.Sprintf("Insufficient stock for product %d", productID))
	}

	if err != nil {
		return nil, fmt.Errorf("adjusting stock: %w", err)
	}

	return product, nil
}

func (r *productRepository) AdjustStock(ctx context.Context, productID, delta int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return adjustStock(dbCtx, r.DB, productID, delta)
}

func (r *productRepository) CountProducts(ctx context.Context) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int64

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products`).Scan(&count)

	return count, err
}

func (r *productRepository) CountLowStock(ctx context.Context, threshold int64) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int64

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products WHERE stock <= $1`, threshold).Scan(&count)

	return count, err
}
