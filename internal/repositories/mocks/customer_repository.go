package mocks

import (
	"context"

	"github.com/storekeeperhq/pos-platform/internal/models"
	"github.com/stretchr/testify/mock"
)

type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)

	return args.Error(0)
}

func (m *CustomerRepository) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	args := m.Called(ctx, id)

	if c, ok := args.Get(0).(*models.Customer); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CustomerRepository) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)

	return args.Error(0)
}

func (m *CustomerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *CustomerRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)

	if c, ok := args.Get(0).([]models.Customer); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CustomerRepository) AddLoyaltyPoints(ctx context.Context, id, points int64) error {
	args := m.Called(ctx, id, points)

	return args.Error(0)
}

func (m *CustomerRepository) CountCustomers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}
