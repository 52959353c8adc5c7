package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

var ErrStripeNotConfigured = fmt.Errorf("%w: stripe secret key missing", interfaces.ErrGatewayNotConfigured)

const stripeCallTimeout = 10 * time.Second

// StripeGateway drives hosted Checkout in payment mode. The session carries
// the correlation metadata (user_id, plan_id, service_id) the reconciler
// reads back out of checkout.session.completed deliveries.
//
// The secret key is read from the settings document per call and installed
// on the SDK before each request, so rotation applies on the next call.
type StripeGateway struct {
	settings interfaces.ISettingsRepository
	logger   *zap.Logger
}

var _ interfaces.IWebhookGateway = (*StripeGateway)(nil)

func NewStripeGateway(settings interfaces.ISettingsRepository, logger *zap.Logger) *StripeGateway {
	return &StripeGateway{settings: settings, logger: logger}
}

func (g *StripeGateway) Method() entities.PaymentMethod {
	return entities.PaymentMethodStripe
}

func (g *StripeGateway) CreateCheckout(ctx context.Context, service entities.Service, invoice entities.Invoice) (entities.CheckoutSession, error) {
	st, err := g.settings.Get(ctx)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if st.Stripe.SecretKey == "" {
		return entities.CheckoutSession{}, ErrStripeNotConfigured
	}
	stripe.Key = st.Stripe.SecretKey

	ctx, cancel := context.WithTimeout(ctx, stripeCallTimeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("usd"),
					UnitAmount: stripe.Int64(minorUnits(invoice.Amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(service.PlanName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(st.Stripe.SuccessURL),
		CancelURL:         stripe.String(st.Stripe.CancelURL),
		ClientReferenceID: stripe.String(service.ID),
	}
	params.Context = ctx
	params.AddMetadata("user_id", service.OwnerUserID)
	params.AddMetadata("plan_id", service.PlanID)
	params.AddMetadata("service_id", service.ID)

	g.logger.Info("stripe checkout start",
		zap.String("service_id", service.ID),
		zap.String("invoice_id", invoice.ID))

	sess, err := checkoutsession.New(params)
	if err != nil {
		g.logger.Error("stripe checkout session failed",
			zap.String("service_id", service.ID), zap.Error(err))
		return entities.CheckoutSession{}, fmt.Errorf("stripe checkout session: %w", err)
	}

	g.logger.Info("stripe checkout created",
		zap.String("service_id", service.ID),
		zap.String("session_id", sess.ID))

	return entities.CheckoutSession{Reference: sess.ID, URL: sess.URL}, nil
}

// VerifyEvent authenticates the delivery with the installation's signing
// secret. Only checkout.session.completed with payment_status=paid becomes
// a capture event; everything else passes through acknowledged-ignored.
func (g *StripeGateway) VerifyEvent(ctx context.Context, payload []byte, sig entities.WebhookSignature) (entities.GatewayEvent, error) {
	st, err := g.settings.Get(ctx)
	if err != nil {
		return entities.GatewayEvent{}, err
	}
	if st.Stripe.WebhookSecret == "" {
		return entities.GatewayEvent{}, ErrStripeNotConfigured
	}

	event, err := webhook.ConstructEvent(payload, sig.Header, st.Stripe.WebhookSecret)
	if err != nil {
		return entities.GatewayEvent{}, fmt.Errorf("%w: %v", interfaces.ErrBadSignature, err)
	}

	if event.Type != "checkout.session.completed" {
		return entities.GatewayEvent{Type: string(event.Type)}, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return entities.GatewayEvent{}, fmt.Errorf("unmarshal checkout session: %w", err)
	}

	ge := entities.GatewayEvent{
		Type:      string(event.Type),
		Captured:  sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		ServiceID: sess.Metadata["service_id"],
		UserID:    sess.Metadata["user_id"],
		PlanID:    sess.Metadata["plan_id"],
		Reference: sess.ID,
	}
	if ge.ServiceID == "" {
		ge.ServiceID = sess.ClientReferenceID
	}
	return ge, nil
}

// minorUnits converts a decimal amount to the cent representation Stripe
// expects.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
