package request

import "strings"

// ServiceStatusOverrideRequest is the payload for the administrative
// status override route.

type ServiceStatusOverrideRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ServiceStatusOverrideRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
