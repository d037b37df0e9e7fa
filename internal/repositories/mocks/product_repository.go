package mocks

import (
	"context"

	"github.com/storekeeperhq/pos-platform/internal/models"
	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *ProductRepository) ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error) {
	args := m.Called(ctx, page, size)

	if p, ok := args.Get(0).([]models.Product); ok {
		return p, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *ProductRepository) AllProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)

	if p, ok := args.Get(0).([]models.Product); ok {
		return p, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) AdjustStock(ctx context.Context, productID, delta int64) (*models.Product, error) {
	args := m.Called(ctx, productID, delta)

	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepository) CountLowStock(ctx context.Context, threshold int64) (int64, error) {
	args := m.Called(ctx, threshold)

	return args.Get(0).(int64), args.Error(1)
}
