package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storekeeperhq/pos-platform/internal/api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	t.Run("Generates Correlation ID", func(t *testing.T) {
		// Arrange
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		rr := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := middleware.LoggerFromContext(r.Context())
			require.NotNil(t, logger)

			w.WriteHeader(http.StatusNoContent)
		})

		// Act
		middleware.Logging(next).ServeHTTP(rr, req)

		// Assert
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Preserves Caller Correlation ID", func(t *testing.T) {
		// Arrange
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		req.Header.Set("X-Request-ID", "req-42")

		rr := httptest.NewRecorder()
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

		// Act
		middleware.Logging(next).ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))
	})
}

func TestContextWithLogger(t *testing.T) {
	// Background workers seed their context the way the request middleware
	// does, so log lines written through the context carry their tags.
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil)).With(slog.String("component", "dashboard-refresher"))

	ctx := middleware.ContextWithLogger(context.Background(), logger)

	got := middleware.LoggerFromContext(ctx)
	require.Same(t, logger, got)

	got.Info("refreshed")
	assert.Contains(t, buf.String(), `"component":"dashboard-refresher"`)
}

func TestLoggerFromContextFallsBack(t *testing.T) {
	// An unseeded context still yields a usable logger.
	logger := middleware.LoggerFromContext(context.Background())
	require.NotNil(t, logger)
}
