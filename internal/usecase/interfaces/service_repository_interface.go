package interfaces

import (
	"context"
	"nimbushost/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for Service.
//
// The workflow must be able to:
//   - create a service when an order is placed
//   - read one service and list a user's services (free-limit policy, panel checks)
//   - flip status on payment capture or administrative override
//   - attach the subdomain and panel username once provisioning succeeds

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	ListByOwnerID(ctx context.Context, ownerUserID string) ([]entities.Service, error)
	UpdateStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.Service, error)
	UpdateProvisioned(ctx context.Context, id, subdomain, panelUsername string) (entities.Service, error)
}
