package entities

// Mail is one outbound notification hand-off: a recipient, a subject, a
// template type understood by the relay, and the template payload.
type Mail struct {
	To      string            `json:"to"`
	Subject string            `json:"subject"`
	Type    string            `json:"type"`
	Payload map[string]string `json:"payload"`
}

// Mail template types dispatched by the workflow.
const (
	MailTypeOrderPlaced     = "order_placed"
	MailTypePaymentReceived = "payment_received"
	MailTypeProvisioned     = "subdomain_provisioned"
)
