// Package mocks holds testify mocks of the service interfaces, used by the
// handler tests.
package mocks

import (
	"context"

	"github.com/storekeeperhq/pos-platform/internal/models"
	"github.com/storekeeperhq/pos-platform/internal/reports"
	"github.com/stretchr/testify/mock"
)

type UserService struct {
	mock.Mock
}

func (m *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)

	if r, ok := args.Get(0).(*models.LoginResponse); ok {
		return r, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)

	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}

	return nil, args.Error(1)
}

type ProductService struct {
	mock.Mock
}

func (m *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)

	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)

	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *ProductService) ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error) {
	args := m.Called(ctx, page, size)

	if p, ok := args.Get(0).([]models.Product); ok {
		return p, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *ProductService) AdjustStock(ctx context.Context, id, delta int64) (*models.Product, error) {
	args := m.Called(ctx, id, delta)

	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}

	return nil, args.Error(1)
}

type CategoryService struct {
	mock.Mock
}

func (m *CategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)

	if c, ok := args.Get(0).(*models.Category); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CategoryService) UpdateCategory(ctx context.Context, id int64, req *models.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, id, req)

	if c, ok := args.Get(0).(*models.Category); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)

	if c, ok := args.Get(0).([]models.Category); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

type SupplierService struct {
	mock.Mock
}

func (m *SupplierService) CreateSupplier(ctx context.Context, req *models.CreateSupplierRequest) (*models.Supplier, error) {
	args := m.Called(ctx, req)

	if s, ok := args.Get(0).(*models.Supplier); ok {
		return s, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *SupplierService) UpdateSupplier(ctx context.Context, id int64, req *models.UpdateSupplierRequest) (*models.Supplier, error) {
	args := m.Called(ctx, id, req)

	if s, ok := args.Get(0).(*models.Supplier); ok {
		return s, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *SupplierService) DeleteSupplier(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *SupplierService) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	args := m.Called(ctx)

	if s, ok := args.Get(0).([]models.Supplier); ok {
		return s, args.Error(1)
	}

	return nil, args.Error(1)
}

type CustomerService struct {
	mock.Mock
}

func (m *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	args := m.Called(ctx, req)

	if c, ok := args.Get(0).(*models.Customer); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CustomerService) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	args := m.Called(ctx, id)

	if c, ok := args.Get(0).(*models.Customer); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CustomerService) UpdateCustomer(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	args := m.Called(ctx, id, req)

	if c, ok := args.Get(0).(*models.Customer); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *CustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)

	if c, ok := args.Get(0).([]models.Customer); ok {
		return c, args.Error(1)
	}

	return nil, args.Error(1)
}

type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Sale, error) {
	args := m.Called(ctx, req)

	if s, ok := args.Get(0).(*models.Sale); ok {
		return s, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) GetSaleByID(ctx context.Context, id int64) (*models.Sale, error) {
	args := m.Called(ctx, id)

	if s, ok := args.Get(0).(*models.Sale); ok {
		return s, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) ListSales(ctx context.Context, page, size int) ([]models.Sale, int, error) {
	args := m.Called(ctx, page, size)

	if s, ok := args.Get(0).([]models.Sale); ok {
		return s, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *CheckoutService) DeleteSale(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type PurchaseOrderService struct {
	mock.Mock
}

func (m *PurchaseOrderService) CreateOrder(ctx context.Context, req *models.CreatePurchaseOrderRequest) (*models.PurchaseOrder, error) {
	args := m.Called(ctx, req)

	if o, ok := args.Get(0).(*models.PurchaseOrder); ok {
		return o, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PurchaseOrderService) GetOrderByID(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	args := m.Called(ctx, id)

	if o, ok := args.Get(0).(*models.PurchaseOrder); ok {
		return o, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PurchaseOrderService) ListOrders(ctx context.Context, page, size int) ([]models.PurchaseOrder, int, error) {
	args := m.Called(ctx, page, size)

	if o, ok := args.Get(0).([]models.PurchaseOrder); ok {
		return o, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *PurchaseOrderService) UpdateOrder(ctx context.Context, id int64, req *models.UpdatePurchaseOrderRequest) (*models.PurchaseOrder, error) {
	args := m.Called(ctx, id, req)

	if o, ok := args.Get(0).(*models.PurchaseOrder); ok {
		return o, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PurchaseOrderService) UpdateStatus(ctx context.Context, id int64, status models.PurchaseOrderStatus) (*models.PurchaseOrder, error) {
	args := m.Called(ctx, id, status)

	if o, ok := args.Get(0).(*models.PurchaseOrder); ok {
		return o, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PurchaseOrderService) ReceiveOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	args := m.Called(ctx, id)

	if o, ok := args.Get(0).(*models.PurchaseOrder); ok {
		return o, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PurchaseOrderService) CancelOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	args := m.Called(ctx, id)

	if o, ok := args.Get(0).(*models.PurchaseOrder); ok {
		return o, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PurchaseOrderService) DeleteOrder(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type DashboardService struct {
	mock.Mock
}

func (m *DashboardService) GetSummary(ctx context.Context) (*models.DashboardSummary, error) {
	args := m.Called(ctx)

	if s, ok := args.Get(0).(*models.DashboardSummary); ok {
		return s, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *DashboardService) StartRefresher(ctx context.Context) {
	m.Called(ctx)
}

type LowStockNotifier struct {
	mock.Mock
}

func (m *LowStockNotifier) NotifyLowStock(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

type ReportService struct {
	mock.Mock
}

func (m *ReportService) Forecast(ctx context.Context, windowDays int) ([]reports.StockForecast, error) {
	args := m.Called(ctx, windowDays)

	if f, ok := args.Get(0).([]reports.StockForecast); ok {
		return f, args.Error(1)
	}

	return nil, args.Error(1)
}
