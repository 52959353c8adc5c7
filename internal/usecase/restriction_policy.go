package usecase

import (
	"context"
	"errors"
	"fmt"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"
)

var ErrLimitExceeded = errors.New("free plan limit exceeded")

// FreeOrderPolicy enforces the one-free-service-per-user restriction.
//
// The check counts zero-price snapshots across every lifecycle state:
// terminating or suspending a free service does not free the slot.
type FreeOrderPolicy struct {
	serviceRepo interfaces.IServiceRepository
}

func NewFreeOrderPolicy(serviceRepo interfaces.IServiceRepository) *FreeOrderPolicy {
	return &FreeOrderPolicy{serviceRepo: serviceRepo}
}

// AllowFreeOrder reports whether userID may place another order at planPrice
// under the current settings. Paid plans and a disabled limit always pass.
//
// The read and the later service write are not atomic; two concurrent free
// orders can both pass. That window is accepted, not closed.
func (p *FreeOrderPolicy) AllowFreeOrder(ctx context.Context, userID string, planPrice float64, settings entities.PlatformSettings) error {
	if planPrice != 0 || !settings.FreeUserLimitEnabled {
		return nil
	}

	owned, err := p.serviceRepo.ListByOwnerID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list services for free-limit check: %w", err)
	}
	for _, s := range owned {
		if s.Price == 0 {
			return fmt.Errorf("%w: user %s already holds a free service", ErrLimitExceeded, userID)
		}
	}
	return nil
}
