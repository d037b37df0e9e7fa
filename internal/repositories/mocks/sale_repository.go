package mocks

import (
	"context"
	"time"

	"github.com/storekeeperhq/pos-platform/internal/models"
	"github.com/stretchr/testify/mock"
)

type SaleRepository struct {
	mock.Mock
}

func (m *SaleRepository) CreateSale(ctx context.Context, sale *models.Sale) error {
	args := m.Called(ctx, sale)

	return args.Error(0)
}

func (m *SaleRepository) GetSaleByID(ctx context.Context, id int64) (*models.Sale, error) {
	args := m.Called(ctx, id)

	if s, ok := args.Get(0).(*models.Sale); ok {
		return s, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *SaleRepository) ListSales(ctx context.Context, page, size int) ([]models.Sale, int, error) {
	args := m.Called(ctx, page, size)

	if s, ok := args.Get(0).([]models.Sale); ok {
		return s, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *SaleRepository) DeleteSale(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *SaleRepository) SalesSince(ctx context.Context, since time.Time) (int64, float64, error) {
	args := m.Called(ctx, since)

	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}

func (m *SaleRepository) UnitsSoldSince(ctx context.Context, since time.Time) (map[int64]int64, error) {
	args := m.Called(ctx, since)

	if sold, ok := args.Get(0).(map[int64]int64); ok {
		return sold, args.Error(1)
	}

	return nil, args.Error(1)
}
