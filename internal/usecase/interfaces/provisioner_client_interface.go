package interfaces

import (
	"context"
	"errors"

	"nimbushost/internal/domain/entities"
)

// ErrProvisionerUnavailable is returned when the provisioning host is
// being skipped because too many recent calls failed (open breaker).
var ErrProvisionerUnavailable = errors.New("provisioning api unavailable")

// IProvisionerClient talks to the external API that physically creates the
// subdomain and its directory on the hosting infrastructure.
//
// The credentials block is passed per call: it comes from the settings
// document read at call time, so operators can repoint the API live.
type IProvisionerClient interface {
	CreateSite(ctx context.Context, cfg entities.ProvisioningSettings, label, rootDomain string) error
}
