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

type SupplierRepository interface {
	CreateSupplier(ctx context.Context, supplier *models.Supplier) error
	GetSupplierByID(ctx context.Context, id int64) (*models.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier *models.Supplier) error
	DeleteSupplier(ctx context.Context, id int64) error
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
}

type supplierRepository struct {
	DB *sql.DB
}

func NewSupplierRepo(db *sql.DB) SupplierRepository {
	return &supplierRepository{DB: db}
}

func (r *supplierRepository) CreateSupplier(ctx context.Context, supplier *models.Supplier) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO suppliers (name, contact)
			  VALUES ($1, $2)
			  RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, supplier.Name, supplier.Contact).Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return mapConstraintError(err, "Supplier")
	}

	return nil
}

func (r *supplierRepository) GetSupplierByID(ctx context.Context, id int64) (*models.Supplier, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	supplier := &models.Supplier{}

	query := `SELECT id, name, contact, created_at, updated_at FROM suppliers WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&supplier.ID, &supplier.Name, &supplier.Contact, &supplier.CreatedAt, &supplier.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundError("Supplier not found")
	}

	if err != nil {
		return nil, fmt.Errorf("querying supplier: %w", err)
	}

	return supplier, nil
}

func (r *supplierRepository) UpdateSupplier(ctx context.Context, supplier *models.Supplier) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE suppliers SET name = $1, contact = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, supplier.Name, supplier.Contact, supplier.ID).Scan(&supplier.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFoundError("Supplier not found")
	}

	return mapConstraintError(err, "Supplier")
}

func (r *supplierRepository) DeleteSupplier(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting supplier: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return apperrors.NotFoundError("Supplier not found")
	}

	return nil
}

func (r *supplierRepository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT id, name, contact, created_at, updated_at FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var suppliers []models.Supplier

	for rows.Next() {
		var supplier models.Supplier

		if err := rows.Scan(&supplier.ID, &supplier.Name, &supplier.Contact, &supplier.CreatedAt, &supplier.UpdatedAt); err != nil {
			return nil, err
		}

		suppliers = append(suppliers, supplier)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return suppliers, nil
}
