package service_test

import (
	"context"
	"testing"

	"github.com/storekeeperhq/pos-platform/internal/models"
	service "github.com/storekeeperhq/pos-platform/internal/services"
	"github.com/storekeeperhq/pos-platform/pkg/sendgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type emailServiceMock struct {
	mock.Mock
}

func (m *emailServiceMock) Send(ctx context.Context, email *sendgrid.Email) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

func TestNotifyLowStock(t *testing.T) {
	ctx := t.Context()
	product := &models.Product{ID: 7, Name: "Widget", Barcode: "123456", Stock: 3}

	t.Run("Sends Alert Email", func(t *testing.T) {
		// Arrange
		email := new(emailServiceMock)
		notifier := service.NewEmailLowStockNotifier(email, "ops@example.com")

		email.On("Send", mock.Anything, mock.MatchedBy(func(e *sendgrid.Email) bool {
			return e.To == "ops@example.com" && e.Subject == "Low stock: Widget"
		})).Return(nil).Once()

		// Act
		err := notifier.NotifyLowStock(ctx, product)

		// Assert
		require.NoError(t, err)
		email.AssertExpectations(t)
	})

	t.Run("No Recipient Configured", func(t *testing.T) {
		// Arrange
		email := new(emailServiceMock)
		notifier := service.NewEmailLowStockNotifier(email, "")

		// Act
		err := notifier.NotifyLowStock(ctx, product)

		// Assert
		require.NoError(t, err)
		email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Delivery Failure Propagates", func(t *testing.T) {
		// Arrange
		email := new(emailServiceMock)
		notifier := service.NewEmailLowStockNotifier(email, "ops@example.com")

		email.On("Send", mock.Anything, mock.AnythingOfType("*sendgrid.Email")).Return(assert.AnError).Once()

		// Act
		err := notifier.NotifyLowStock(ctx, product)

		// Assert
		require.Error(t, err)
	})
}
