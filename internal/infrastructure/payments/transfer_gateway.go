package payments

import (
	"context"
	"fmt"
	"strings"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrTransferNotConfigured = fmt.Errorf("%w: transfer deep link missing", interfaces.ErrGatewayNotConfigured)

// TransferGateway is the manual peer-to-peer route: CreateCheckout hands
// back a deep link plus the invoice id as payment reference, and nothing
// confirms automatically. The service stays pending and the invoice unpaid
// until an administrator marks the payment received.
type TransferGateway struct {
	settings interfaces.ISettingsRepository
	logger   *zap.Logger
}

var _ interfaces.IPaymentGateway = (*TransferGateway)(nil)

func NewTransferGateway(settings interfaces.ISettingsRepository, logger *zap.Logger) *TransferGateway {
	return &TransferGateway{settings: settings, logger: logger}
}

func (g *TransferGateway) Method() entities.PaymentMethod {
	return entities.PaymentMethodTransfer
}

func (g *TransferGateway) CreateCheckout(ctx context.Context, service entities.Service, invoice entities.Invoice) (entities.CheckoutSession, error) {
	st, err := g.settings.Get(ctx)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if st.Transfer.DeepLink == "" {
		return entities.CheckoutSession{}, ErrTransferNotConfigured
	}

	link := fmt.Sprintf("%s/%s", strings.TrimRight(st.Transfer.DeepLink, "/"), trimTrailingZeros(invoice.Amount))

	g.logger.Info("transfer checkout issued",
		zap.String("service_id", service.ID),
		zap.String("invoice_id", invoice.ID))

	return entities.CheckoutSession{Reference: invoice.ID, URL: link, Manual: true}, nil
}

func trimTrailingZeros(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
