package service

import (
	"context"
	"fmt"

	"github.com/storekeeperhq/pos-platform/internal/models"
	"github.com/storekeeperhq/pos-platform/pkg/sendgrid"
)

// LowStockNotifier is told about products whose stock fell to or below the
// configured threshold after a checkout. Implementations are best-effort.
type LowStockNotifier interface {
	NotifyLowStock(ctx context.Context, product *models.Product) error
}

type emailLowStockNotifier struct {
	email     sendgrid.EmailService
	recipient string
}

func NewEmailLowStockNotifier(email sendgrid.EmailService, recipient string) LowStockNotifier {
	return &emailLowStockNotifier{email: email, recipient: recipient}
}

func (n *emailLowStockNotifier) NotifyLowStock(ctx context.Context, product *models.Product) error {

	if n.recipient == "" {
		return nil
	}

	return n.email.Send(ctx, &sendgrid.Email{
		To:      n.recipient,
		Subject: fmt.Sprintf("Low stock: %s", product.Name),
		Content: fmt.Sprintf("Product %q (barcode %s) is down to %d units. Consider raising a purchase order.", product.Name, product.Barcode, product.Stock),
	})
}
