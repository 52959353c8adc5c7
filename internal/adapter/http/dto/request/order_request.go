package request

import "strings"

// OrderCreateRequest is the payload for placing an order.
//
// payment_method must name one of the supported gateways; casing is
// normalized here so "Stripe" and "stripe" select the same backend.

type OrderCreateRequest struct {
	PlanID        string `json:"plan_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

func (r OrderCreateRequest) ResolvePlanID() string {
	return strings.TrimSpace(r.PlanID)
}

func (r OrderCreateRequest) ResolvePaymentMethod() string {
	return strings.ToLower(strings.TrimSpace(r.PaymentMethod))
}
