package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storekeeperhq/pos-platform/internal/api/handlers"
	appErrors "github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/models"
	"github.com/storekeeperhq/pos-platform/internal/services/mocks"
	"github.com/storekeeperhq/pos-platform/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestRequest -> creates a request with context containing a logger
func newTestRequest(method, target string, body []byte) *http.Request {
	return testutils.CreateTestRequestWithoutContext(method, target, bytes.NewReader(body), nil)
}

func TestCreateProductHandler(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService)

	t.Run("Success - Product Created", func(t *testing.T) {
		// Arrange
		reqBody := models.CreateProductRequest{
			Name:       "Test Product",
			CategoryID: 1,
			SupplierID: 2,
			Price:      9.99,
			Stock:      100,
			Barcode:    "123456",
		}
		reqBodyBytes, _ := json.Marshal(reqBody)

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/products", reqBodyBytes)
		req.Header.Set("Content-Type", "application/json")

		expectedProduct := &models.Product{ID: 7, Name: reqBody.Name, Stock: reqBody.Stock}

		mockProductService.On("CreateProduct", mock.Anything, &reqBody).Return(expectedProduct, nil).Once()

		// Act
		handler := productHandler.CreateProduct()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"Test Product"`)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Invalid Input - Bad JSON", func(t *testing.T) {
		// Arrange
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService)

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/products", []byte("{invalid json"))
		req.Header.Set("Content-Type", "application/json")

		// Act
		handler := productHandler.CreateProduct()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Input - Validation Error", func(t *testing.T) {
		// Arrange: missing name
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService)

		reqBodyBytes, _ := json.Marshal(models.CreateProductRequest{CategoryID: 1, SupplierID: 2})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/products", reqBodyBytes)
		req.Header.Set("Content-Type", "application/json")

		// Act
		handler := productHandler.CreateProduct()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeValidation)
		mockProductService.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Service Error", func(t *testing.T) {
		// Arrange
		reqBody := models.CreateProductRequest{Name: "Test Product", CategoryID: 1, SupplierID: 2, Price: 9.99}
		reqBodyBytes, _ := json.Marshal(reqBody)

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/products", reqBodyBytes)
		req.Header.Set("Content-Type", "application/json")

		mockProductService.On("CreateProduct", mock.Anything, &reqBody).Return(nil, appErrors.DatabaseError("DB Connection Failed")).Once()

		// Act
		handler := productHandler.CreateProduct()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeDatabaseError)
		mockProductService.AssertExpectations(t)
	})
}

func TestGetProductHandler(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/api/v1/products/7", nil)
		req.SetPathValue("id", "7")

		mockProductService.On("GetProductByID", mock.Anything, int64(7)).
			Return(&models.Product{ID: 7, Name: "Fetched Product", Stock: 5}, nil).Once()

		// Act
		handler := productHandler.GetProduct()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"Fetched Product"`)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Invalid ID Format", func(t *testing.T) {
		// Arrange
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService)

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/api/v1/products/not-a-number", nil)
		req.SetPathValue("id", "not-a-number")

		// Act
		handler := productHandler.GetProduct()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
	})

	t.Run("Product Not Found", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/api/v1/products/404", nil)
		req.SetPathValue("id", "404")

		mockProductService.On("GetProductByID", mock.Anything, int64(404)).
			Return(nil, appErrors.NotFoundError("Product not found")).Once()

		// Act
		handler := productHandler.GetProduct()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeNotFound)
		mockProductService.AssertExpectations(t)
	})
}

func TestListProductsHandler(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService)

	t.Run("Success - Default Pagination", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/api/v1/products", nil)

		products := []models.Product{
			{ID: 1, Name: "Product 1"},
			{ID: 2, Name: "Product 2"},
		}

		mockProductService.On("ListProducts", mock.Anything, 1, 20).Return(products, 25, nil).Once()

		// Act
		handler := productHandler.ListProducts()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"total":25`)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Success - Custom Pagination", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/api/v1/products?page=2&page_size=5", nil)

		mockProductService.On("ListProducts", mock.Anything, 2, 5).Return([]models.Product{}, 8, nil).Once()

		// Act
		handler := productHandler.ListProducts()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Invalid Pagination Falls Back To Defaults", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/api/v1/products?page=abc&page_size=9999", nil)

		mockProductService.On("ListProducts", mock.Anything, 1, 20).Return([]models.Product{}, 0, nil).Once()

		// Act
		handler := productHandler.ListProducts()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockProductService.AssertExpectations(t)
	})
}

func TestAdjustStockHandler(t *testing.T) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService)

	t.Run("Success - Debit", func(t *testing.T) {
		// Arrange
		reqBodyBytes, _ := json.Marshal(models.AdjustStockRequest{QuantityToAdd: -3})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPatch, "/api/v1/products/7/stock", reqBodyBytes)
		req.Header.Set("Content-Type", "application/json")
		req.SetPathValue("id", "7")

		mockProductService.On("AdjustStock", mock.Anything, int64(7), int64(-3)).
			Return(&models.Product{ID: 7, Stock: 97}, nil).Once()

		// Act
		handler := productHandler.AdjustStock()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Data models.Product `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(97), resp.Data.Stock)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Insufficient Stock Returns Conflict", func(t *testing.T) {
		// Arrange
		reqBodyBytes, _ := json.Marshal(models.AdjustStockRequest{QuantityToAdd: -500})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPatch, "/api/v1/products/7/stock", reqBodyBytes)
		req.Header.Set("Content-Type", "application/json")
		req.SetPathValue("id", "7")

		mockProductService.On("AdjustStock", mock.Anything, int64(7), int64(-500)).
			Return(nil, appErrors.InsufficientStockError("Insufficient stock")).Once()

		// Act
		handler := productHandler.AdjustStock()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeInsufficientStock)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Zero Delta Fails Validation", func(t *testing.T) {
		// Arrange
		mockProductService := new(mocks.ProductService)
		productHandler := handlers.NewProductHandler(mockProductService)

		reqBodyBytes, _ := json.Marshal(models.AdjustStockRequest{QuantityToAdd: 0})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPatch, "/api/v1/products/7/stock", reqBodyBytes)
		req.Header.Set("Content-Type", "application/json")
		req.SetPathValue("id", "7")

		// Act
		handler := productHandler.AdjustStock()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
	})
}
