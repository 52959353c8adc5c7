package entities

import "time"

// InvoiceStatus represents the settlement state of an invoice.
//
// An invoice is created unpaid (or paid outright for zero-price orders) and
// flips to paid exactly once; there is no reverse transition.

type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// Invoice is the billing record for one service, fixed at creation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_id-index): service_id
//
// Monetary representation:
//   - Amount is copied from the plan price at order time and never changes,
//     even if the catalog entry is edited later.
//
// Company and Customer carry the billing-company settings and the buyer's
// profile as they stood when the invoice was issued, so historical invoices
// stay stable under reconfiguration.
type Invoice struct {
	ID          string        `json:"id"`
	ServiceID   string        `json:"service_id"`
	OwnerUserID string        `json:"owner_user_id"`
	Amount      float64       `json:"amount"`
	Status      InvoiceStatus `json:"status"`
	InvoiceDate time.Time     `json:"invoice_date"`
	DueDate     time.Time     `json:"due_date"`
	PaidAt      *time.Time    `json:"paid_at,omitempty"`

	Company  InvoiceCompany  `json:"company"`
	Customer InvoiceCustomer `json:"customer"`
}

// InvoiceCompany is the denormalized billing-company block on an invoice.
type InvoiceCompany struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
}

// InvoiceCustomer is the denormalized buyer block on an invoice.
type InvoiceCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
