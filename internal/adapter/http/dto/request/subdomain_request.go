package request

import "strings"

// SubdomainCreateRequest is the payload for claiming a hostname.
//
// service_id is optional: when present the subdomain is bound to that
// service and provisioning activates it.

type SubdomainCreateRequest struct {
	Label     string `json:"label" binding:"required"`
	ServiceID string `json:"service_id"`
}

func (r SubdomainCreateRequest) ResolveLabel() string {
	return strings.ToLower(strings.TrimSpace(r.Label))
}

func (r SubdomainCreateRequest) ResolveServiceID() string {
	return strings.TrimSpace(r.ServiceID)
}
