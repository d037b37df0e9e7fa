package service_test

import (
	"testing"

	apperrors "github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/models"
	repomocks "github.com/storekeeperhq/pos-platform/internal/repositories/mocks"
	service "github.com/storekeeperhq/pos-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func productFixture() (*repomocks.ProductRepository, *repomocks.CategoryRepository, *repomocks.SupplierRepository, service.ProductService) {
	repo := new(repomocks.ProductRepository)
	categoryRepo := new(repomocks.CategoryRepository)
	supplierRepo := new(repomocks.SupplierRepository)

	svc := service.NewProductService(repo, categoryRepo, supplierRepo)

	return repo, categoryRepo, supplierRepo, svc
}

func TestCreateProduct(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, categoryRepo, supplierRepo, svc := productFixture()

		req := &models.CreateProductRequest{
			Name:       "Widget",
			CategoryID: 1,
			SupplierID: 2,
			Price:      9.99,
			Stock:      100,
			Barcode:    "123456",
		}

		categoryRepo.On("GetCategoryByID", mock.Anything, int64(1)).Return(&models.Category{ID: 1}, nil).Once()
		supplierRepo.On("GetSupplierByID", mock.Anything, int64(2)).Return(&models.Supplier{ID: 2}, nil).Once()
		repo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil).Once()

		// Act
		product, err := svc.CreateProduct(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Widget", product.Name)
		assert.Equal(t, int64(100), product.Stock)
		repo.AssertExpectations(t)
	})

	t.Run("Name Is Sanitized", func(t *testing.T) {
		// Arrange
		repo, categoryRepo, supplierRepo, svc := productFixture()

		req := &models.CreateProductRequest{
			Name:       "<script>alert(1)</script>Widget",
			CategoryID: 1,
			SupplierID: 2,
			Price:      1,
		}

		categoryRepo.On("GetCategoryByID", mock.Anything, int64(1)).Return(&models.Category{ID: 1}, nil).Once()
		supplierRepo.On("GetSupplierByID", mock.Anything, int64(2)).Return(&models.Supplier{ID: 2}, nil).Once()
		repo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil).Once()

		// Act
		product, err := svc.CreateProduct(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Widget", product.Name)
	})

	t.Run("Duplicate Barcode Keeps Its Code", func(t *testing.T) {
		// Arrange: the repository already mapped the unique violation; the
		// service must not flatten it into a database error.
		repo, categoryRepo, supplierRepo, svc := productFixture()

		categoryRepo.On("GetCategoryByID", mock.Anything, int64(1)).Return(&models.Category{ID: 1}, nil).Once()
		supplierRepo.On("GetSupplierByID", mock.Anything, int64(2)).Return(&models.Supplier{ID: 2}, nil).Once()
		repo.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).
			Return(apperrors.DuplicateEntryError("Product already exists")).Once()

		// Act
		product, err := svc.CreateProduct(ctx, &models.CreateProductRequest{Name: "Widget", CategoryID: 1, SupplierID: 2, Price: 1, Barcode: "123456"})

		// Assert
		assert.Nil(t, product)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeDuplicateEntry, appErr.Code)
	})

	t.Run("Unknown Category", func(t *testing.T) {
		// Arrange
		repo, categoryRepo, _, svc := productFixture()

		categoryRepo.On("GetCategoryByID", mock.Anything, int64(99)).
			Return(nil, apperrors.NotFoundError("Category not found")).Once()

		// Act
		product, err := svc.CreateProduct(ctx, &models.CreateProductRequest{Name: "Widget", CategoryID: 99, SupplierID: 2})

		// Assert
		assert.Nil(t, product)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
		repo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := t.Context()

	t.Run("Partial Update", func(t *testing.T) {
		// Arrange: only the price changes; everything else is preserved.
		repo, _, _, svc := productFixture()

		existing := &models.Product{ID: 7, Name: "Widget", CategoryID: 1, SupplierID: 2, Price: 9.99, Stock: 50}

		repo.On("GetProductByID", mock.Anything, int64(7)).Return(existing, nil).Once()
		repo.On("UpdateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil).Once()

		price := 12.50

		// Act
		product, err := svc.UpdateProduct(ctx, 7, &models.UpdateProductRequest{Price: &price})

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, 12.50, product.Price, 0.001)
		assert.Equal(t, "Widget", product.Name)
		assert.Equal(t, int64(50), product.Stock, "Stock is never writable through product updates")
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		repo, _, _, svc := productFixture()

		repo.On("GetProductByID", mock.Anything, int64(404)).
			Return(nil, apperrors.NotFoundError("Product not found")).Once()

		// Act
		product, err := svc.UpdateProduct(ctx, 404, &models.UpdateProductRequest{})

		// Assert
		require.Error(t, err)
		assert.Nil(t, product)
	})
}

func TestAdjustStockService(t *testing.T) {
	ctx := t.Context()

	t.Run("Zero Delta Rejected", func(t *testing.T) {
		// Arrange
		repo, _, _, svc := productFixture()

		// Act
		product, err := svc.AdjustStock(ctx, 7, 0)

		// Assert
		assert.Nil(t, product)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
		repo.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Conflict Passes Through", func(t *testing.T) {
		// Arrange
		repo, _, _, svc := productFixture()

		repo.On("AdjustStock", mock.Anything, int64(7), int64(-500)).
			Return(nil, apperrors.InsufficientStockError("Insufficient stock")).Once()

		// Act
		_, err := svc.AdjustStock(ctx, 7, -500)

		// Assert
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeInsufficientStock, appErr.Code)
	})

	t.Run("Credit Returns Updated Row", func(t *testing.T) {
		// Arrange
		repo, _, _, svc := productFixture()

		repo.On("AdjustStock", mock.Anything, int64(7), int64(25)).
			Return(&models.Product{ID: 7, Stock: 125}, nil).Once()

		// Act
		product, err := svc.AdjustStock(ctx, 7, 25)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(125), product.Stock)
	})
}
