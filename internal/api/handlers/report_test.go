package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storekeeperhq/pos-platform/internal/api/handlers"
	appErrors "github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/reports"
	"github.com/storekeeperhq/pos-platform/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestForecastHandler(t *testing.T) {
	mockReportService := new(mocks.ReportService)
	reportHandler := handlers.NewReportHandler(mockReportService)

	forecast := []reports.StockForecast{
		{ProductID: 1, ProductName: "Espresso Beans", Stock: 50, DailySalesRate: 10, DaysUntilStockout: 5, HasSales: true},
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/api/v1/reports/forecast?days=14", nil)

		mockReportService.On("Forecast", mock.Anything, 14).Return(forecast, nil).Once()

		// Act
		handler := reportHandler.Forecast()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"days_until_stockout":5`)
		mockReportService.AssertExpectations(t)
	})

	t.Run("Missing Days Parameter Passes Zero", func(t *testing.T) {
		// Arrange: the service applies its own default window.
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/api/v1/reports/forecast", nil)

		mockReportService.On("Forecast", mock.Anything, 0).Return(forecast, nil).Once()

		// Act
		handler := reportHandler.Forecast()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockReportService.AssertExpectations(t)
	})

	t.Run("Service Error", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/api/v1/reports/forecast", nil)

		mockReportService.On("Forecast", mock.Anything, 0).
			Return(nil, appErrors.DatabaseError("aggregation failed")).Once()

		// Act
		handler := reportHandler.Forecast()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeDatabaseError)
		mockReportService.AssertExpectations(t)
	})
}
