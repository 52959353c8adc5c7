package interfaces

import (
	"context"

	"nimbushost/internal/domain/entities"
)

// ISettingsRepository reads the platform settings document.
//
// Get must hit the store on every call: the workflow reads configuration
// at call time so operators can reconfigure without a redeploy.
type ISettingsRepository interface {
	Get(ctx context.Context) (entities.PlatformSettings, error)
}
