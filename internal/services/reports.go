package service

import (
	"context"
	"time"

	"github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/reports"
	repository "github.com/storekeeperhq/pos-platform/internal/repositories"
)

const (
	defaultForecastWindowDays = 7
	maxForecastWindowDays     = 90
)

type ReportService interface {
	Forecast(ctx context.Context, windowDays int) ([]reports.StockForecast, error)
}

type reportService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

func NewReportService(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) ReportService {
	return &reportService{productRepo: productRepo, saleRepo: saleRepo}
}

// Forecast projects days-until-stockout for every product from completed
// sales over the trailing window. A non-positive window falls back to the
// default; oversized windows are clamped.
func (s *reportService) Forecast(ctx context.Context, windowDays int) ([]reports.StockForecast, error) {

	if windowDays <= 0 {
		windowDays = defaultForecastWindowDays
	}

	if windowDays > maxForecastWindowDays {
		windowDays = maxForecastWindowDays
	}

	products, err := s.productRepo.AllProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	since := time.Now().AddDate(0, 0, -windowDays)

	sold, err := s.saleRepo.UnitsSoldSince(ctx, since)
	if err != nil {
		return nil, errors.DatabaseError("Failed to aggregate sold units").WithError(err)
	}

	return reports.Forecast(products, sold, windowDays), nil
}
