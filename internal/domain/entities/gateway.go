package entities

// PaymentMethod selects the gateway backend for an order.
//
// stripe and mercadopago confirm asynchronously through webhooks; transfer
// is a manual route confirmed by an administrator.

type PaymentMethod string

const (
	PaymentMethodStripe      PaymentMethod = "stripe"
	PaymentMethodMercadoPago PaymentMethod = "mercadopago"
	PaymentMethodTransfer    PaymentMethod = "transfer"
)

// ValidPaymentMethod reports whether m names a supported gateway.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodStripe, PaymentMethodMercadoPago, PaymentMethodTransfer:
		return true
	}
	return false
}

// CheckoutSession is what a gateway hands back for one unpaid invoice:
// either a hosted checkout to redirect the buyer to, or (Manual=true) a
// deep link plus reference the buyer settles out of band.
//
// Creating a session never mutates service or invoice state; transitions
// belong to the payment reconciler or explicit administrative action.
type CheckoutSession struct {
	Reference string `json:"reference"`
	URL       string `json:"url"`
	Manual    bool   `json:"manual"`
}

// GatewayEvent is the normalized form of one webhook delivery after
// signature verification.
//
// Captured is true only for the event type signaling successful payment
// capture; every other type is acknowledged and ignored. The correlation
// ids echo the metadata attached at checkout-session creation and may be
// empty when the sender stripped it.
type GatewayEvent struct {
	Type      string `json:"type"`
	Captured  bool   `json:"captured"`
	ServiceID string `json:"service_id"`
	UserID    string `json:"user_id"`
	PlanID    string `json:"plan_id"`
	Reference string `json:"reference"`
}

// WebhookSignature carries the authenticity material of one delivery.
// Header is the gateway's signature header value; RequestID is the
// delivery id some gateways fold into the signed manifest.
type WebhookSignature struct {
	Header    string
	RequestID string
}
