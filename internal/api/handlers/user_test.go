package handlers_test

import (
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
)

func TestLoginHandler(t *testing.T) {
	mockUserService := new(mocks.UserService)
	userHandler := handlers.NewUserHandler(mockUserService)

	loginBody := func() []byte {
		b, _ := json.Marshal(models.LoginRequest{Username: "cashier", Password: "correct-horse"})

		return b
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/users/login", loginBody())
		req.Header.Set("Content-Type", "application/json")

		mockUserService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{Success: true, Token: "signed.jwt.token", ExpiresIn: 3600}, nil).Once()

		// Act
		handler := userHandler.Login()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "signed.jwt.token")
		mockUserService.AssertExpectations(t)
	})

	t.Run("Bad Credentials Return Unauthorized", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/users/login", loginBody())
		req.Header.Set("Content-Type", "application/json")

		mockUserService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{Success: false, Message: "Invalid username or password", RemainingTries: 3}, nil).Once()

		// Act
		handler := userHandler.Login()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid username or password")
		mockUserService.AssertExpectations(t)
	})

	t.Run("Throttled Login Returns Too Many Requests", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/users/login", loginBody())
		req.Header.Set("Content-Type", "application/json")

		mockUserService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{Success: false, Message: "Too many login attempts. Please try again later.", RetryAfter: 120}, nil).Once()

		// Act
		handler := userHandler.Login()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Contains(t, rr.Body.String(), `"retry_after":120`)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Short Password Fails Validation", func(t *testing.T) {
		// Arrange
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		b, _ := json.Marshal(models.LoginRequest{Username: "cashier", Password: "short"})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/users/login", b)
		req.Header.Set("Content-Type", "application/json")

		// Act
		handler := userHandler.Login()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUserService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestProfileHandler(t *testing.T) {
	mockUserService := new(mocks.UserService)
	userHandler := handlers.NewUserHandler(mockUserService)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/profile", nil, 1, models.RoleUser, nil)

		mockUserService.On("GetUserByID", mock.Anything, int64(1)).
			Return(&models.User{ID: 1, Username: "cashier", Role: models.RoleUser}, nil).Once()

		// Act
		handler := userHandler.Profile()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"cashier"`)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Missing Claims", func(t *testing.T) {
		// Arrange
		mockUserService := new(mocks.UserService)
		userHandler := handlers.NewUserHandler(mockUserService)

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/api/v1/users/profile", nil)

		// Act
		handler := userHandler.Profile()
		handler.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeUnauthorized)
		mockUserService.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})
}
