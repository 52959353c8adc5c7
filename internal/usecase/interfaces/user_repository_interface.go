package interfaces

import (
	"context"

	"nimbushost/internal/domain/entities"
)

// IUserRepository reads user profiles. The workflow never writes them:
// it denormalizes customer details into invoices and addresses email.
type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.UserProfile, error)
}
