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

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	AddLoyaltyPoints(ctx context.Context, id, points int64) error
	CountCustomers(ctx context.Context) (int64, error)
}

type customerRepository struct {
	DB *sql.DB
}

func NewCustomerRepo(db *sql.DB) CustomerRepository {
	return &customerRepository{DB: db}
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO customers (name, email, phone)
			  VALUES ($1, $2, $3)
			  RETURNING id, loyalty_points, created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, customer.Name, customer.Email, customer.Phone).Scan(&customer.ID, &customer.LoyaltyPoints, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return mapConstraintError(err, "Customer")
	}

	return nil
}

func (r *customerRepository) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	customer := &models.Customer{}

	query := `SELECT id, name, email, phone, loyalty_points, created_at, updated_at FROM customers WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Phone, &customer.LoyaltyPoints, &customer.CreatedAt, &customer.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundError("Customer not found")
	}

	if err != nil {
		return nil, fmt.Errorf("querying customer: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE customers SET name = $1, email = $2, phone = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, customer.Name, customer.Email, customer.Phone, customer.ID).Scan(&customer.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFoundError("Customer not found")
	}

	return mapConstraintError(err, "Customer")
}

func (r *customerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return apperrors.NotFoundError("Customer not found")
	}

	return nil
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT id, name, email, phone, loyalty_points, created_at, updated_at FROM customers ORDER BY name`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var customers []models.Customer

	for rows.Next() {
		var customer models.Customer

		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Phone, &customer.LoyaltyPoints, &customer.CreatedAt, &customer.UpdatedAt); err != nil {
			return nil, err
		}

		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

// AddLoyaltyPoints increments in place so concurrent checkouts for the same
// customer cannot lose an accrual.
func (r *customerRepository) AddLoyaltyPoints(ctx context.Context, id, points int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE customers SET loyalty_points = loyalty_points + $1, updated_at = NOW() WHERE id = $2`, points, id)
	if err != nil {
		return fmt.Errorf("adding loyalty points: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return apperrors.NotFoundError("Customer not found")
	}

	return nil
}

func (r *customerRepository) CountCustomers(ctx context.Context) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int64

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM customers`).Scan(&count)

	return count, err
}
