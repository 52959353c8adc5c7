package interfaces

import (
	"context"
	"errors"

	"nimbushost/internal/domain/entities"
)

// ErrSubdomainExists is returned by Create when the FQDN key is already
// committed; the caller lost the race.
var ErrSubdomainExists = errors.New("subdomain already exists")

// ISubdomainRepository abstracts DynamoDB persistence for Subdomain.
//
// Create must be conditional on the FQDN key not existing yet; a concurrent
// winner surfaces as ErrSubdomainExists so at most one record per FQDN can
// ever be committed.

type ISubdomainRepository interface {
	Create(ctx context.Context, sd entities.Subdomain) (entities.Subdomain, error)
	GetByFQDN(ctx context.Context, fqdn string) (entities.Subdomain, error)
	GetByServiceID(ctx context.Context, serviceID string) (entities.Subdomain, error)
	ListByOwnerID(ctx context.Context, ownerUserID string) ([]entities.Subdomain, error)
}
