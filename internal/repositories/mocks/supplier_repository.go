package mocks

import (
	"context"

	"github.com/storekeeperhq/pos-platform/internal/models"
	"github.com/stretchr/testify/mock"
)

type SupplierRepository struct {
	mock.Mock
}

func (m *SupplierRepository) CreateSupplier(ctx context.Context, supplier *models.Supplier) error {
	args := m.Called(ctx, supplier)

	return args.Error(0)
}

func (m *SupplierRepository) GetSupplierByID(ctx context.Context, id int64) (*models.Supplier, error) {
	args := m.Called(ctx, id)

	if s, ok := args.Get(0).(*models.Supplier); ok {
		return s, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *SupplierRepository) UpdateSupplier(ctx context.Context, supplier *models.Supplier) error {
	args := m.Called(ctx, supplier)

	return args.Error(0)
}

func (m *SupplierRepository) DeleteSupplier(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *SupplierRepository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	args := m.Called(ctx)

	if s, ok := args.Get(0).([]models.Supplier); ok {
		return s, args.Error(1)
	}

	return nil, args.Error(1)
}
