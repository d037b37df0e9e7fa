package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/storekeeperhq/pos-platform/internal/api/middleware"
	"github.com/storekeeperhq/pos-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

func createTestToken(userID int64, username string, role models.UserRole, duration time.Duration, key []byte, method jwt.SigningMethod) (string, error) {
	claims := &models.Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(method, claims)

	return token.SignedString(key)
}

func withBaseLogger(req *http.Request) *http.Request {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

func TestAuthenticate(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)

	mockNextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		require.True(t, ok, "User claims should be in context")
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "cashier", claims.Username)

		logger := middleware.LoggerFromContext(r.Context())
		require.NotNil(t, logger)

		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name: "Success - Valid Token",
			authHeader: func() string {
				token, err := createTestToken(1, "cashier", models.RoleUser, time.Hour, testJwtKey, jwt.SigningMethodHS256)
				require.NoError(t, err)

				return "Bearer " + token
			}(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing Authorization Header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid Header Format",
			authHeader:     "InvalidTokenFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Malformed Token",
			authHeader:     "Bearer not.a.valid.token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Wrong Signing Key",
			authHeader: func() string {
				token, err := createTestToken(1, "cashier", models.RoleUser, time.Hour, []byte("different-secret-key-0987654321"), jwt.SigningMethodHS256)
				require.NoError(t, err)

				return "Bearer " + token
			}(),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Expired Token",
			authHeader: func() string {
				token, err := createTestToken(1, "cashier", models.RoleUser, -time.Hour, testJwtKey, jwt.SigningMethodHS256)
				require.NoError(t, err)

				return "Bearer " + token
			}(),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			req := withBaseLogger(httptest.NewRequest(http.MethodGet, "/", nil))
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			rr := httptest.NewRecorder()
			handlerToTest := authMiddleware.Authenticate(mockNextHandler)

			// Act
			handlerToTest.ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true

		w.WriteHeader(http.StatusOK)
	})

	t.Run("Admin Passes", func(t *testing.T) {
		// Arrange
		nextCalled = false
		req := withBaseLogger(httptest.NewRequest(http.MethodDelete, "/", nil))

		claims := &models.Claims{UserID: 1, Username: "boss", Role: models.RoleAdmin}
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, claims))

		rr := httptest.NewRecorder()

		// Act
		authMiddleware.RequireAdmin(next).ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, nextCalled)
	})

	t.Run("Non-Admin Forbidden", func(t *testing.T) {
		// Arrange
		nextCalled = false
		req := withBaseLogger(httptest.NewRequest(http.MethodDelete, "/", nil))

		claims := &models.Claims{UserID: 2, Username: "cashier", Role: models.RoleUser}
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, claims))

		rr := httptest.NewRecorder()

		// Act
		authMiddleware.RequireAdmin(next).ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.False(t, nextCalled)
	})

	t.Run("Missing Claims Forbidden", func(t *testing.T) {
		// Arrange
		nextCalled = false
		req := withBaseLogger(httptest.NewRequest(http.MethodDelete, "/", nil))
		rr := httptest.NewRecorder()

		// Act
		authMiddleware.RequireAdmin(next).ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.False(t, nextCalled)
	})
}
