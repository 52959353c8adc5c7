package interfaces

import (
	"context"
	"errors"

	"nimbushost/internal/domain/entities"
)

// ErrBadSignature is returned by VerifyEvent when the delivery fails
// authentication. Any other error from VerifyEvent is a dependency
// failure, not a rejection.
var ErrBadSignature = errors.New("webhook signature verification failed")

// ErrGatewayNotConfigured is wrapped by every gateway whose settings block
// is missing the credentials it needs to operate.
var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

// IPaymentGateway abstracts external payment providers (Stripe, Mercado
// Pago, manual transfer).
//
// CreateCheckout builds a checkout session for one unpaid invoice and must
// not mutate service or invoice state; transitions belong to the payment
// reconciler or explicit administrative action.
type IPaymentGateway interface {
	Method() entities.PaymentMethod
	CreateCheckout(ctx context.Context, service entities.Service, invoice entities.Invoice) (entities.CheckoutSession, error)
}

// IWebhookGateway is implemented by the automatic-capture providers that
// confirm payment asynchronously. VerifyEvent authenticates one delivery
// and normalizes it into a GatewayEvent; the manual transfer route has no
// webhook and does not implement this.
type IWebhookGateway interface {
	IPaymentGateway
	VerifyEvent(ctx context.Context, payload []byte, sig entities.WebhookSignature) (entities.GatewayEvent, error)
}
