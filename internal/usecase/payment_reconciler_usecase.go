package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrSignatureInvalid = errors.New("webhook signature invalid")

// IPaymentReconcilerUseCase converges payment confirmations from gateway
// webhooks and from manual administrative action onto one capture routine.

type IPaymentReconcilerUseCase interface {
	OnGatewayEvent(ctx context.Context, gatewayName string, payload []byte, sig entities.WebhookSignature) error
	ConfirmManualPayment(ctx context.Context, serviceID string) (entities.Service, error)
}

type PaymentReconcilerUseCase struct {
	webhookGateways map[string]interfaces.IWebhookGateway
	serviceRepo     interfaces.IServiceRepository
	invoiceRepo     interfaces.IInvoiceRepository
	mailer          interfaces.IMailer
	logger          *zap.Logger
}

var _ IPaymentReconcilerUseCase = (*PaymentReconcilerUseCase)(nil)

func NewPaymentReconcilerUseCase(
	webhookGateways map[string]interfaces.IWebhookGateway,
	serviceRepo interfaces.IServiceRepository,
	invoiceRepo interfaces.IInvoiceRepository,
	mailer interfaces.IMailer,
	logger *zap.Logger,
) *PaymentReconcilerUseCase {
	return &PaymentReconcilerUseCase{
		webhookGateways: webhookGateways,
		serviceRepo:     serviceRepo,
		invoiceRepo:     invoiceRepo,
		mailer:          mailer,
		logger:          logger,
	}
}

// OnGatewayEvent processes one webhook delivery.
//
// Deliveries are at-least-once: anything the sender cannot fix by retrying
// (non-capture types, missing correlation, unknown service) is acknowledged
// with a nil return, and the conditional invoice flip makes replays of a
// capture a no-op.
func (u *PaymentReconcilerUseCase) OnGatewayEvent(ctx context.Context, gatewayName string, payload []byte, sig entities.WebhookSignature) error {
	gatewayName = strings.TrimSpace(gatewayName)
	gw, ok := u.webhookGateways[gatewayName]
	if !ok {
		return fmt.Errorf("%w: unknown gateway %q", ErrInvalidRequest, gatewayName)
	}

	event, err := gw.VerifyEvent(ctx, payload, sig)
	if err != nil {
		if errors.Is(err, interfaces.ErrBadSignature) {
			u.logger.Warn("webhook rejected",
				zap.String("gateway", gatewayName),
				zap.Error(err))
			return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
		}
		if errors.Is(err, interfaces.ErrGatewayNotConfigured) {
			return fmt.Errorf("%w: %v", ErrNotConfigured, err)
		}
		if isDependencyTimeout(err) {
			return fmt.Errorf("%w: %v", ErrDependencyTimeout, err)
		}
		return fmt.Errorf("failed to verify webhook event: %w", err)
	}

	if !event.Captured {
		u.logger.Debug("webhook event ignored",
			zap.String("gateway", gatewayName),
			zap.String("type", event.Type))
		return nil
	}
	if event.ServiceID == "" {
		u.logger.Warn("captured payment without service correlation",
			zap.String("gateway", gatewayName),
			zap.String("type", event.Type),
			zap.String("reference", event.Reference))
		return nil
	}

	_, err = u.capture(ctx, event.ServiceID, event.Reference)
	return err
}

// ConfirmManualPayment is the administrative confirmation for the manual
// transfer route. It runs the same capture routine the webhooks use.
func (u *PaymentReconcilerUseCase) ConfirmManualPayment(ctx context.Context, serviceID string) (entities.Service, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Service{}, fmt.Errorf("%w: service id is required", ErrInvalidRequest)
	}

	svc, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Service{}, err
	}
	if svc.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	u.logger.Info("manual payment confirmation", zap.String("service_id", serviceID))
	return u.capture(ctx, serviceID, "manual")
}

// capture flips the service's invoice to paid and the service to active.
// The conditional invoice update reports whether this call performed the
// flip; only the flipping call sends the payment-received mail.
func (u *PaymentReconcilerUseCase) capture(ctx context.Context, serviceID, reference string) (entities.Service, error) {
	var (
		invoice entities.Invoice
		changed bool
	)

	inv, err := u.invoiceRepo.GetByServiceID(ctx, serviceID)
	if err != nil {
		return entities.Service{}, fmt.Errorf("failed to load invoice for service %s: %w", serviceID, err)
	}
	if inv.ID == "" {
		u.logger.Warn("captured payment for service without invoice",
			zap.String("service_id", serviceID),
			zap.String("reference", reference))
	} else {
		invoice, changed, err = u.invoiceRepo.MarkPaid(ctx, inv.ID, time.Now().UTC())
		if err != nil {
			return entities.Service{}, fmt.Errorf("failed to mark invoice %s paid: %w", inv.ID, err)
		}
	}

	svc, err := u.serviceRepo.UpdateStatus(ctx, serviceID, entities.ServiceStatusActive)
	if err != nil {
		return entities.Service{}, fmt.Errorf("failed to activate service %s: %w", serviceID, err)
	}
	if svc.ID == "" {
		u.logger.Warn("captured payment for unknown service",
			zap.String("service_id", serviceID),
			zap.String("reference", reference))
		return entities.Service{}, nil
	}

	if changed {
		u.sendPaymentMail(ctx, invoice)
		u.logger.Info("payment captured",
			zap.String("service_id", serviceID),
			zap.String("invoice_id", invoice.ID),
			zap.String("reference", reference))
	} else {
		u.logger.Info("payment capture replayed, no state change",
			zap.String("service_id", serviceID),
			zap.String("reference", reference))
	}
	return svc, nil
}

func (u *PaymentReconcilerUseCase) sendPaymentMail(ctx context.Context, inv entities.Invoice) {
	if inv.Customer.Email == "" {
		return
	}
	mail := entities.Mail{
		To:      inv.Customer.Email,
		Subject: "Payment received",
		Type:    entities.MailTypePaymentReceived,
		Payload: map[string]string{
			"invoice_id": inv.ID,
			"service_id": inv.ServiceID,
			"amount":     fmt.Sprintf("%.2f", inv.Amount),
		},
	}
	if err := u.mailer.Send(ctx, mail); err != nil {
		u.logger.Warn("payment mail failed",
			zap.String("invoice_id", inv.ID),
			zap.Error(err))
	}
}
