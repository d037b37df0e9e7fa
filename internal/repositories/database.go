package repository

import (
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/storekeeperhq/pos-platform/internal/config"

	_ "github.com/lib/pq"
)

// Repositories bundles every store-backed repository behind one DB handle.
type Repositories struct {
	DB *sql.DB

	User          UserRepository
	Product       ProductRepository
	Category      CategoryRepository
	Supplier      SupplierRepository
	Customer      CustomerRepository
	Sale          SaleRepository
	PurchaseOrder PurchaseOrderRepository
}

func New(cfg *config.Config) (*Repositories, error) {

	// The handle is opened through otelsql so every query carries a span.
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:            db,
		User:          NewUserRepo(db),
		Product:       NewProductRepo(db),
		Category:      NewCategoryRepo(db),
		Supplier:      NewSupplierRepo(db),
		Customer:      NewCustomerRepo(db),
		Sale:          NewSaleRepo(db),
		PurchaseOrder: NewPurchaseOrderRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
