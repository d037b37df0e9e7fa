package mocks

import (
	"context"

	"github.com/storekeeperhq/pos-platform/internal/models"
	"github.com/stretchr/testify/mock"
)

type PurchaseOrderRepository struct {
	mock.Mock
}

func (m *PurchaseOrderRepository) CreateOrder(ctx context.Context, order *models.PurchaseOrder) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *PurchaseOrderRepository) GetOrderByID(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	args := m.Called(ctx, id)

	if o, ok := args.Get(0).(*models.PurchaseOrder); ok {
		return o, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PurchaseOrderRepository) ListOrders(ctx context.Context, page, size int) ([]models.PurchaseOrder, int, error) {
	args := m.Called(ctx, page, size)

	if o, ok := args.Get(0).([]models.PurchaseOrder); ok {
		return o, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *PurchaseOrderRepository) UpdateOrder(ctx context.Context, order *models.PurchaseOrder) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *PurchaseOrderRepository) ReceiveOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	args := m.Called(ctx, id)

	if o, ok := args.Get(0).(*models.PurchaseOrder); ok {
		return o, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PurchaseOrderRepository) CancelOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	args := m.Called(ctx, id)

	if o, ok := args.Get(0).(*models.PurchaseOrder); ok {
		return o, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PurchaseOrderRepository) DeleteOrder(ctx context.Context, id int64) (models.PurchaseOrderStatus, error) {
	args := m.Called(ctx, id)

	if s, ok := args.Get(0).(models.PurchaseOrderStatus); ok {
		return s, args.Error(1)
	}

	return "", args.Error(1)
}

func (m *PurchaseOrderRepository) CountPendingOrders(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}
