package interfaces

import (
	"context"
	"nimbushost/internal/domain/entities"
)

// IPlanRepository abstracts DynamoDB persistence for the plan catalog.
// The workflow only reads it; catalog administration lives elsewhere.

type IPlanRepository interface {
	GetByID(ctx context.Context, id string) (entities.Plan, error)
	List(ctx context.Context) ([]entities.Plan, error)
}
