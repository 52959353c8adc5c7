package response

import (
	"time"

	"nimbushost/internal/domain/entities"
)

type ServiceResponse struct {
	ID            string    `json:"id"`
	PlanID        string    `json:"plan_id"`
	PlanName      string    `json:"plan_name"`
	Price         float64   `json:"price"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	Subdomain     string    `json:"subdomain,omitempty"`
	PanelUsername string    `json:"panel_username,omitempty"`
	OrderDate     time.Time `json:"order_date"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:            s.ID,
		PlanID:        s.PlanID,
		PlanName:      s.PlanName,
		Price:         s.Price,
		PaymentMethod: string(s.PaymentMethod),
		Status:        string(s.Status),
		Subdomain:     s.Subdomain,
		PanelUsername: s.PanelUsername,
		OrderDate:     s.OrderDate,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
