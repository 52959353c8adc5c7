package response

import "nimbushost/internal/domain/entities"

// CheckoutResponse carries what the buyer needs to settle an invoice:
// a hosted checkout URL for redirect gateways, or (manual=true) a deep
// link plus reference for the transfer route.

type CheckoutResponse struct {
	Reference string `json:"reference"`
	URL       string `json:"url"`
	Manual    bool   `json:"manual"`
}

func FromCheckout(cs entities.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{
		Reference: cs.Reference,
		URL:       cs.URL,
		Manual:    cs.Manual,
	}
}
