package response

import (
	"time"

	"nimbushost/internal/domain/entities"
)

type InvoiceCompanyResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
}

type InvoiceCustomerResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type InvoiceResponse struct {
	ID          string     `json:"id"`
	ServiceID   string     `json:"service_id"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	InvoiceDate time.Time  `json:"invoice_date"`
	DueDate     time.Time  `json:"due_date"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`

	Company  InvoiceCompanyResponse  `json:"company"`
	Customer InvoiceCustomerResponse `json:"customer"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID,
		ServiceID:   inv.ServiceID,
		Amount:      inv.Amount,
		Status:      string(inv.Status),
		InvoiceDate: inv.InvoiceDate,
		DueDate:     inv.DueDate,
		PaidAt:      inv.PaidAt,
		Company: InvoiceCompanyResponse{
			Name:    inv.Company.Name,
			Address: inv.Company.Address,
			TaxID:   inv.Company.TaxID,
			Email:   inv.Company.Email,
		},
		Customer: InvoiceCustomerResponse{
			Name:    inv.Customer.Name,
			Email:   inv.Customer.Email,
			Address: inv.Customer.Address,
		},
	}
}
