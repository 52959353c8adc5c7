package entities

import "time"

// PanelCredential is the ephemeral secret bundle granting access to the
// external hosting control panel.
//
// It is never persisted with the service: the bundle lives in the side
// channel keyed by username, with a TTL matching ExpiresAt, and each
// issuance overwrites the previous bundle for that username.
type PanelCredential struct {
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the bundle is past its validity window at now.
func (c PanelCredential) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
