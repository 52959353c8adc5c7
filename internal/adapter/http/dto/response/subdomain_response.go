package response

import (
	"time"

	"nimbushost/internal/domain/entities"
)

type SubdomainResponse struct {
	ID        string    `json:"id"`
	FQDN      string    `json:"fqdn"`
	Label     string    `json:"label"`
	ServiceID string    `json:"service_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromSubdomain(sd entities.Subdomain) SubdomainResponse {
	return SubdomainResponse{
		ID:        sd.ID,
		FQDN:      sd.FQDN,
		Label:     sd.Label,
		ServiceID: sd.ServiceID,
		CreatedAt: sd.CreatedAt,
	}
}

func FromSubdomains(sds []entities.Subdomain) []SubdomainResponse {
	out := make([]SubdomainResponse, 0, len(sds))
	for _, sd := range sds {
		out = append(out, FromSubdomain(sd))
	}
	return out
}
