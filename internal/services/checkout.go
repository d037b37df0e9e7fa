package service

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/storekeeperhq/pos-platform/internal/api/middleware"
	"github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/models"
	repository "github.com/storekeeperhq/pos-platform/internal/repositories"
)

type CheckoutService interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Sale, error)
	GetSaleByID(ctx context.Context, id int64) (*models.Sale, error)
	ListSales(ctx context.Context, page, size int) ([]models.Sale, int, error)
	DeleteSale(ctx context.Context, id int64) error
}

type checkoutService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	notifier     LowStockNotifier
	threshold    int64
}

func NewCheckoutService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, customerRepo repository.CustomerRepository, notifier LowStockNotifier, lowStockThreshold int64) CheckoutService {
	return &checkoutService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
		threshold:    lowStockThreshold,
	}
}

// Checkout converts a cart into a persisted completed sale. The sale header,
// its line items and the per-line stock debits land in a single transaction,
// so a failed line leaves no trace of the attempt.
func (s *checkoutService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Sale, error) {

	logger := middleware.LoggerFromContext(ctx)

	if len(req.Items) == 0 {
		return nil, errors.ValidationError("Cannot check out an empty cart")
	}

	if req.CustomerID != nil {
		if _, err := s.customerRepo.GetCustomerByID(ctx, *req.CustomerID); err != nil {
			return nil, errors.NotFoundError("Customer not found").WithError(err)
		}
	}

	// Reject obviously doomed carts before touching anything. The stock
	// check here is advisory only; the transaction below is authoritative
	// under concurrency.
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, errors.ValidationError("Line quantity must be positive")
		}

		if item.Discount > item.Price*float64(item.Quantity) {
			return nil, errors.ValidationError("Line discount cannot exceed the line value")
		}

		product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		if product.Stock < item.Quantity {
			return nil, errors.InsufficientStockError("Insufficient stock for product: " + product.Name)
		}
	}

	sale := &models.Sale{
		CustomerID:    req.CustomerID,
		Date:          time.Now(),
		PaymentMethod: req.PaymentMethod,
		Status:        models.SaleStatusCompleted,
	}

	// Identical products in separate cart lines stay separate; the UI
	// coalesces duplicates before calling checkout if it wants to.
	for _, item := range req.Items {
		subtotal := item.Subtotal()
		sale.Total += subtotal

		sale.Items = append(sale.Items, models.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Discount:  item.Discount,
			Subtotal:  subtotal,
		})
	}

	if err := s.saleRepo.CreateSale(ctx, sale); err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.DatabaseError("Failed to persist sale").WithError(err)
	}

	// Everything past this point is best-effort: the sale is committed and
	// must be returned to the caller regardless.
	if req.CustomerID != nil {
		points := int64(math.Floor(sale.Total))
		if points > 0 {
			if err := s.customerRepo.AddLoyaltyPoints(ctx, *req.CustomerID, points); err != nil {
				logger.Error("Failed to credit loyalty points", slog.Int64("customerId", *req.CustomerID), slog.Any("error", err))
			}
		}
	}

	s.alertLowStock(ctx, sale)

	return sale, nil
}

func (s *checkoutService) alertLowStock(ctx context.Context, sale *models.Sale) {

	if s.notifier == nil {
		return
	}

	logger := middleware.LoggerFromContext(ctx)

	seen := make(map[int64]bool)

	for _, item := range sale.Items {
		if seen[item.ProductID] {
			continue
		}
		seen[item.ProductID] = true

		product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			logger.Warn("Could not check stock level for alert", slog.Int64("productId", item.ProductID), slog.Any("error", err))
			continue
		}

		if product.Stock <= s.threshold {
			if err := s.notifier.NotifyLowStock(ctx, product); err != nil {
				logger.Error("Low stock alert failed", slog.Int64("productId", product.ID), slog.Any("error", err))
			}
		}
	}
}

func (s *checkoutService) GetSaleByID(ctx context.Context, id int64) (*models.Sale, error) {
	return s.saleRepo.GetSaleByID(ctx, id)
}

func (s *checkoutService) ListSales(ctx context.Context, page, size int) ([]models.Sale, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 20
	}

	sales, total, err := s.saleRepo.ListSales(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch sales").WithError(err)
	}

	return sales, total, nil
}

func (s *checkoutService) DeleteSale(ctx context.Context, id int64) error {
	return s.saleRepo.DeleteSale(ctx, id)
}
