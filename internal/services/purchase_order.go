package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/storekeeperhq/pos-platform/internal/api/middleware"
	"github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/models"
	repository "github.com/storekeeperhq/pos-platform/internal/repositories"
	"github.com/storekeeperhq/pos-platform/internal/utils"
)

type PurchaseOrderService interface {
	CreateOrder(ctx context.Context, req *models.CreatePurchaseOrderRequest) (*models.PurchaseOrder, error)
	GetOrderByID(ctx context.Context, id int64) (*models.PurchaseOrder, error)
	ListOrders(ctx context.Context, page, size int) ([]models.PurchaseOrder, int, error)
	UpdateOrder(ctx context.Context, id int64, req *models.UpdatePurchaseOrderRequest) (*models.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id int64, status models.PurchaseOrderStatus) (*models.PurchaseOrder, error)
	ReceiveOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error)
	CancelOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type purchaseOrderService struct {
	repo         repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

func NewPurchaseOrderService(repo repository.PurchaseOrderRepository, supplierRepo repository.SupplierRepository, productRepo repository.ProductRepository) PurchaseOrderService {
	return &purchaseOrderService{repo: repo, supplierRepo: supplierRepo, productRepo: productRepo}
}

func (s *purchaseOrderService) CreateOrder(ctx context.Context, req *models.CreatePurchaseOrderRequest) (*models.PurchaseOrder, error) {

	if _, err := s.supplierRepo.GetSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, errors.ValidationError("Supplier does not exist").WithError(err)
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, errors.ValidationError("Line quantity must be positive")
		}

		if _, err := s.productRepo.GetProductByID(ctx, item.ProductID); err != nil {
			return nil, errors.ValidationError("Product does not exist").WithError(err)
		}
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	order := &models.PurchaseOrder{
		SupplierID:           req.SupplierID,
		Date:                 date,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		Status:               models.OrderStatusPending,
		Remarks:              utils.SanitizeText(req.Remarks),
	}

	// The total is computed here, never trusted from the caller.
	for _, item := range req.Items {
		order.TotalCost += float64(item.Quantity) * item.Price

		order.Items = append(order.Items, models.PurchaseOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Status:    models.ItemStatusPending,
		})
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.DatabaseError("Failed to create purchase order").WithError(err)
	}

	return order, nil
}

func (s *purchaseOrderService) GetOrderByID(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *purchaseOrderService) ListOrders(ctx context.Context, page, size int) ([]models.PurchaseOrder, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 20
	}

	orders, total, err := s.repo.ListOrders(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch purchase orders").WithError(err)
	}

	return orders, total, nil
}

// UpdateOrder edits a pending order. A completed order is immutable and a
// cancelled one stays cancelled; both fail with OrderLocked.
func (s *purchaseOrderService) UpdateOrder(ctx context.Context, id int64, req *models.UpdatePurchaseOrderRequest) (*models.PurchaseOrder, error) {

	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusPending {
		return nil, errors.OrderLockedError("Only pending purchase orders can be edited")
	}

	if req.SupplierID != nil {
		if _, err := s.supplierRepo.GetSupplierByID(ctx, *req.SupplierID); err != nil {
			return nil, errors.ValidationError("Supplier does not exist").WithError(err)
		}

		order.SupplierID = *req.SupplierID
	}

	if req.Date != nil {
		order.Date = *req.Date
	}

	if req.ExpectedDeliveryDate != nil {
		order.ExpectedDeliveryDate = req.ExpectedDeliveryDate
	}

	if req.Remarks != nil {
		order.Remarks = utils.SanitizeText(*req.Remarks)
	}

	if len(req.Items) > 0 {

		order.Items = order.Items[:0]
		order.TotalCost = 0

		for _, item := range req.Items {
			if item.Quantity <= 0 {
				return nil, errors.ValidationError("Line quantity must be positive")
			}

			if _, err := s.productRepo.GetProductByID(ctx, item.ProductID); err != nil {
				return nil, errors.ValidationError("Product does not exist").WithError(err)
			}

			order.TotalCost += float64(item.Quantity) * item.Price

			order.Items = append(order.Items, models.PurchaseOrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Status:    models.ItemStatusPending,
			})
		}
	}

	if err := s.repo.UpdateOrder(ctx, order); err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.DatabaseError("Failed to update purchase order").WithError(err)
	}

	return order, nil
}

// UpdateStatus drives the PATCH status route: the only transitions a caller
// can request are the two terminal ones.
func (s *purchaseOrderService) UpdateStatus(ctx context.Context, id int64, status models.PurchaseOrderStatus) (*models.PurchaseOrder, error) {

	switch status {
	case models.OrderStatusCompleted:
		return s.ReceiveOrder(ctx, id)
	case models.OrderStatusCancelled:
		return s.CancelOrder(ctx, id)
	default:
		return nil, errors.InvalidStateTransitionError("Purchase orders can only move to completed or cancelled")
	}
}

func (s *purchaseOrderService) ReceiveOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error) {

	order, err := s.repo.ReceiveOrder(ctx, id)
	if err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.DatabaseError("Failed to receive purchase order").WithError(err)
	}

	return order, nil
}

func (s *purchaseOrderService) CancelOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error) {

	order, err := s.repo.CancelOrder(ctx, id)
	if err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.DatabaseError("Failed to cancel purchase order").WithError(err)
	}

	return order, nil
}

// DeleteOrder is an administrative override: it works in any status, but
// removing a completed order is unusual enough to flag.
func (s *purchaseOrderService) DeleteOrder(ctx context.Context, id int64) error {

	status, err := s.repo.DeleteOrder(ctx, id)
	if err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return err
		}

		return errors.DatabaseError("Failed to delete purchase order").WithError(err)
	}

	if status == models.OrderStatusCompleted {
		middleware.LoggerFromContext(ctx).Warn("Completed purchase order deleted", slog.Int64("orderId", id))
	}

	return nil
}
