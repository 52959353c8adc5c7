package entities

import "time"

// Subdomain is a reservation of a hostname under the platform root domain.
//
// Storage model (DynamoDB):
//   - PK: fqdn (global uniqueness enforced with a conditional put)
//   - GSI1 (owner_user_id-index): owner_user_id
//
// At most one subdomain references a given service.
type Subdomain struct {
	ID          string    `json:"id"`
	FQDN        string    `json:"fqdn"`
	Label       string    `json:"label"`
	OwnerUserID string    `json:"owner_user_id"`
	ServiceID   string    `json:"service_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
