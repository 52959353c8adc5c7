package interfaces

import (
	"context"

	"nimbushost/internal/domain/entities"
)

// ICredentialStore is the side channel the external control panel reads
// panel credentials from.
//
// Put overwrites any prior bundle stored under the same username; the
// entry expires with the bundle, so stale sessions vanish on their own.
type ICredentialStore interface {
	Put(ctx context.Context, cred entities.PanelCredential) error
}
