package request

import "testing"

func TestOrderCreateRequest_Resolvers(t *testing.T) {
	r := OrderCreateRequest{PlanID: " p1 ", PaymentMethod: " Stripe "}
	if got := r.ResolvePlanID(); got != "p1" {
		t.Fatalf("expected p1, got %q", got)
	}
	if got := r.ResolvePaymentMethod(); got != "stripe" {
		t.Fatalf("expected stripe, got %q", got)
	}

	r2 := OrderCreateRequest{}
	if got := r2.ResolvePlanID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
