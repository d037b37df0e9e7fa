package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/storekeeperhq/pos-platform/internal/api/middleware"
	"github.com/storekeeperhq/pos-platform/internal/cache"
	"github.com/storekeeperhq/pos-platform/internal/config"
	"github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/models"
	repository "github.com/storekeeperhq/pos-platform/internal/repositories"
)

const dashboardCacheKey = "dashboard:summary"

type DashboardService interface {
	GetSummary(ctx context.Context) (*models.DashboardSummary, error)
	StartRefresher(ctx context.Context)
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	orderRepo    repository.PurchaseOrderRepository
	customerRepo repository.CustomerRepository
	cache        cache.Cache
	cfg          *config.Config
	logger       *slog.Logger
}

func NewDashboardService(productRepo repository.ProductRepository, saleRepo repository.SaleRepository, orderRepo repository.PurchaseOrderRepository, customerRepo repository.CustomerRepository, c cache.Cache, cfg *config.Config, logger *slog.Logger) DashboardService {
	return &dashboardService{
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		cache:        c,
		cfg:          cfg,
		logger:       logger,
	}
}

// GetSummary serves the cached snapshot when one exists and falls back to a
// live aggregation on a cache miss. A cache read error is logged and treated
// as a miss.
func (s *dashboardService) GetSummary(ctx context.Context) (*models.DashboardSummary, error) {

	if s.cache != nil {
		var summary models.DashboardSummary

		found, err := s.cache.Get(ctx, dashboardCacheKey, &summary)
		if err != nil {
			s.logger.Warn("Dashboard cache read failed", slog.Any("error", err))
		}

		if found {
			return &summary, nil
		}
	}

	summary, err := s.buildSummary(ctx)
	if err != nil {
		return nil, err
	}

	s.storeSummary(ctx, summary)

	return summary, nil
}

// StartRefresher rebuilds the cached snapshot on a fixed interval until the
// context is cancelled. Call it in its own goroutine at startup; the caller
// seeds ctx with the worker's logger.
func (s *dashboardService) StartRefresher(ctx context.Context) {

	if s.cache == nil {
		return
	}

	logger := middleware.LoggerFromContext(ctx)

	interval := s.cfg.Cache.RefreshInterval
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Dashboard refresher stopped")

			return
		case <-ticker.C:
			summary, err := s.buildSummary(ctx)
			if err != nil {
				logger.Error("Dashboard refresh failed", slog.Any("error", err))

				continue
			}

			s.storeSummary(ctx, summary)
		}
	}
}

func (s *dashboardService) buildSummary(ctx context.Context) (*models.DashboardSummary, error) {

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	productCount, err := s.productRepo.CountProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count products").WithError(err)
	}

	lowStockCount, err := s.productRepo.CountLowStock(ctx, s.cfg.Alerts.LowStockThreshold)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count low stock products").WithError(err)
	}

	salesToday, revenueToday, err := s.saleRepo.SalesSince(ctx, midnight)
	if err != nil {
		return nil, errors.DatabaseError("Failed to aggregate today's sales").WithError(err)
	}

	pendingOrders, err := s.orderRepo.CountPendingOrders(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count pending purchase orders").WithError(err)
	}

	customerCount, err := s.customerRepo.CountCustomers(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count customers").WithError(err)
	}

	return &models.DashboardSummary{
		ProductCount:      productCount,
		LowStockCount:     lowStockCount,
		SalesToday:        salesToday,
		RevenueToday:      revenueToday,
		PendingOrderCount: pendingOrders,
		CustomerCount:     customerCount,
		GeneratedAt:       now,
	}, nil
}

func (s *dashboardService) storeSummary(ctx context.Context, summary *models.DashboardSummary) {

	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, dashboardCacheKey, summary, s.cfg.Cache.DefaultTTL); err != nil {
		s.logger.Warn("Dashboard cache write failed", slog.Any("error", err))
	}
}
