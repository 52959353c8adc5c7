package response

import (
	"time"

	"nimbushost/internal/domain/entities"
)

// PanelCredentialResponse is the one place panel secrets cross the API
// boundary; they are never readable again after this response.

type PanelCredentialResponse struct {
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromPanelCredential(c entities.PanelCredential) PanelCredentialResponse {
	return PanelCredentialResponse{
		Username:  c.Username,
		Password:  c.Password,
		Token:     c.Token,
		ExpiresAt: c.ExpiresAt,
	}
}
