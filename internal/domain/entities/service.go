package entities

import "time"

// ServiceStatus represents the lifecycle of a hosting service.
//
// Domain notes:
//   - The workflow creates services as pending (paid plans) or active (free plans).
//   - The payment reconciler flips pending -> active on confirmed capture.
//   - suspended/terminated/banned are administrative targets; terminal states
//     persist, a service record is never deleted.

type ServiceStatus string

const (
	ServiceStatusPending    ServiceStatus = "pending"
	ServiceStatusActive     ServiceStatus = "active"
	ServiceStatusSuspended  ServiceStatus = "suspended"
	ServiceStatusTerminated ServiceStatus = "terminated"
	ServiceStatusBanned     ServiceStatus = "banned"
)

// ValidServiceStatus reports whether s is one of the legal lifecycle states.
func ValidServiceStatus(s ServiceStatus) bool {
	switch s {
	case ServiceStatusPending, ServiceStatusActive, ServiceStatusSuspended,
		ServiceStatusTerminated, ServiceStatusBanned:
		return true
	}
	return false
}

// Service is a user's instance of a hosting plan.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_user_id-index): owner_user_id
//
// Plan fields are snapshotted at order time (PlanName, Price): later catalog
// edits must not retroactively alter already-ordered services.
//
// Subdomain and PanelUsername are set by the provisioner once the user claims
// a hostname. The secret half of the credential bundle lives only in the
// side channel, never on this record.
type Service struct {
	ID            string        `json:"id"`
	OwnerUserID   string        `json:"owner_user_id"`
	PlanID        string        `json:"plan_id"`
	PlanName      string        `json:"plan_name"`
	Price         float64       `json:"price"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        ServiceStatus `json:"status"`
	Subdomain     string        `json:"subdomain,omitempty"`
	PanelUsername string        `json:"panel_username,omitempty"`
	OrderDate     time.Time     `json:"order_date"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
