package service_test

import (
	"testing"
	"time"

	apperrors "github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/models"
	repomocks "github.com/storekeeperhq/pos-platform/internal/repositories/mocks"
	service "github.com/storekeeperhq/pos-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderFixture() (*repomocks.PurchaseOrderRepository, *repomocks.SupplierRepository, *repomocks.ProductRepository, service.PurchaseOrderService) {
	repo := new(repomocks.PurchaseOrderRepository)
	supplierRepo := new(repomocks.SupplierRepository)
	productRepo := new(repomocks.ProductRepository)

	svc := service.NewPurchaseOrderService(repo, supplierRepo, productRepo)

	return repo, supplierRepo, productRepo, svc
}

func TestCreatePurchaseOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Total Computed Server-Side", func(t *testing.T) {
		// Arrange
		repo, supplierRepo, productRepo, svc := orderFixture()

		req := &models.CreatePurchaseOrderRequest{
			SupplierID: 3,
			Items: []models.PurchaseOrderItemInput{
				{ProductID: 1, Quantity: 5, Price: 8},
				{ProductID: 2, Quantity: 2, Price: 12.50},
			},
		}

		supplierRepo.On("GetSupplierByID", mock.Anything, int64(3)).Return(&models.Supplier{ID: 3}, nil).Once()
		productRepo.On("GetProductByID", mock.Anything, int64(1)).Return(&models.Product{ID: 1}, nil).Once()
		productRepo.On("GetProductByID", mock.Anything, int64(2)).Return(&models.Product{ID: 2}, nil).Once()
		repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.PurchaseOrder")).Return(nil).Once()

		// Act
		order, err := svc.CreateOrder(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.InDelta(t, 65.0, order.TotalCost, 0.001, "5*8 + 2*12.50")
		require.Len(t, order.Items, 2)
		assert.Equal(t, models.ItemStatusPending, order.Items[0].Status)
		assert.False(t, order.Date.IsZero(), "An omitted date defaults to now")
		repo.AssertExpectations(t)
	})

	t.Run("Unknown Supplier", func(t *testing.T) {
		// Arrange
		repo, supplierRepo, _, svc := orderFixture()

		supplierRepo.On("GetSupplierByID", mock.Anything, int64(99)).
			Return(nil, apperrors.NotFoundError("Supplier not found")).Once()

		// Act
		order, err := svc.CreateOrder(ctx, &models.CreatePurchaseOrderRequest{SupplierID: 99})

		// Assert
		require.Error(t, err)
		assert.Nil(t, order)
		repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Product", func(t *testing.T) {
		// Arrange
		repo, supplierRepo, productRepo, svc := orderFixture()

		req := &models.CreatePurchaseOrderRequest{
			SupplierID: 3,
			Items: []models.PurchaseOrderItemInput{
				{ProductID: 404, Quantity: 1, Price: 1},
			},
		}

		supplierRepo.On("GetSupplierByID", mock.Anything, int64(3)).Return(&models.Supplier{ID: 3}, nil).Once()
		productRepo.On("GetProductByID", mock.Anything, int64(404)).
			Return(nil, apperrors.NotFoundError("Product not found")).Once()

		// Act
		_, err := svc.CreateOrder(ctx, req)

		// Assert
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
		repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})
}

func TestUpdatePurchaseOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("Completed Order Is Locked", func(t *testing.T) {
		// Arrange
		repo, _, _, svc := orderFixture()

		repo.On("GetOrderByID", mock.Anything, int64(7)).
			Return(&models.PurchaseOrder{ID: 7, Status: models.OrderStatusCompleted}, nil).Once()

		remarks := "late edit"

		// Act
		order, err := svc.UpdateOrder(ctx, 7, &models.UpdatePurchaseOrderRequest{Remarks: &remarks})

		// Assert
		assert.Nil(t, order)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeOrderLocked, appErr.Code)
		repo.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything)
	})

	t.Run("Replacing Items Recomputes Total", func(t *testing.T) {
		// Arrange
		repo, _, productRepo, svc := orderFixture()

		existing := &models.PurchaseOrder{
			ID:         7,
			SupplierID: 3,
			Date:       time.Now(),
			Status:     models.OrderStatusPending,
			TotalCost:  65,
			Items: []models.PurchaseOrderItem{
				{ProductID: 1, Quantity: 5, Price: 8},
			},
		}

		repo.On("GetOrderByID", mock.Anything, int64(7)).Return(existing, nil).Once()
		productRepo.On("GetProductByID", mock.Anything, int64(2)).Return(&models.Product{ID: 2}, nil).Once()
		repo.On("UpdateOrder", mock.Anything, mock.AnythingOfType("*models.PurchaseOrder")).Return(nil).Once()

		req := &models.UpdatePurchaseOrderRequest{
			Items: []models.PurchaseOrderItemInput{
				{ProductID: 2, Quantity: 4, Price: 2.50},
			},
		}

		// Act
		order, err := svc.UpdateOrder(ctx, 7, req)

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, 10.0, order.TotalCost, 0.001)
		require.Len(t, order.Items, 1)
		assert.Equal(t, int64(2), order.Items[0].ProductID)
		repo.AssertExpectations(t)
	})

	t.Run("Lost Race Surfaces Repository Conflict", func(t *testing.T) {
		// Arrange: the order was pending when read but got received before the
		// guarded update ran.
		repo, _, _, svc := orderFixture()

		repo.On("GetOrderByID", mock.Anything, int64(7)).
			Return(&models.PurchaseOrder{ID: 7, Status: models.OrderStatusPending}, nil).Once()
		repo.On("UpdateOrder", mock.Anything, mock.AnythingOfType("*models.PurchaseOrder")).
			Return(apperrors.OrderLockedError("Only pending purchase orders can be edited")).Once()

		remarks := "too late"

		// Act
		_, err := svc.UpdateOrder(ctx, 7, &models.UpdatePurchaseOrderRequest{Remarks: &remarks})

		// Assert
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeOrderLocked, appErr.Code)
	})
}

func TestUpdatePurchaseOrderStatus(t *testing.T) {
	ctx := t.Context()

	t.Run("Completed Dispatches To Receive", func(t *testing.T) {
		// Arrange
		repo, _, _, svc := orderFixture()

		repo.On("ReceiveOrder", mock.Anything, int64(7)).
			Return(&models.PurchaseOrder{ID: 7, Status: models.OrderStatusCompleted}, nil).Once()

		// Act
		order, err := svc.UpdateStatus(ctx, 7, models.OrderStatusCompleted)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCompleted, order.Status)
		repo.AssertExpectations(t)
	})

	t.Run("Cancelled Dispatches To Cancel", func(t *testing.T) {
		// Arrange
		repo, _, _, svc := orderFixture()

		repo.On("CancelOrder", mock.Anything, int64(7)).
			Return(&models.PurchaseOrder{ID: 7, Status: models.OrderStatusCancelled}, nil).Once()

		// Act
		order, err := svc.UpdateStatus(ctx, 7, models.OrderStatusCancelled)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, order.Status)
		repo.AssertExpectations(t)
	})

	t.Run("Pending Is Not A Requestable Target", func(t *testing.T) {
		// Arrange
		repo, _, _, svc := orderFixture()

		// Act
		_, err := svc.UpdateStatus(ctx, 7, models.OrderStatusPending)

		// Assert
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeInvalidStateTransition, appErr.Code)
		repo.AssertNotCalled(t, "ReceiveOrder", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "CancelOrder", mock.Anything, mock.Anything)
	})
}

func TestDeletePurchaseOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("Deletes Regardless Of Status", func(t *testing.T) {
		// Arrange
		repo, _, _, svc := orderFixture()

		repo.On("DeleteOrder", mock.Anything, int64(7)).Return(models.OrderStatusCompleted, nil).Once()

		// Act
		err := svc.DeleteOrder(ctx, 7)

		// Assert
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Not Found Passes Through", func(t *testing.T) {
		// Arrange
		repo, _, _, svc := orderFixture()

		repo.On("DeleteOrder", mock.Anything, int64(404)).
			Return(models.PurchaseOrderStatus(""), apperrors.NotFoundError("Purchase order not found")).Once()

		// Act
		err := svc.DeleteOrder(ctx, 404)

		// Assert
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	})
}
