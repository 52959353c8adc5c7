package interfaces

import (
	"context"

	"nimbushost/internal/domain/entities"
)

// IMailer dispatches outbound notification email.
//
// Callers treat it as fire-and-forget: a failed send is logged and never
// blocks or fails the primary response.
type IMailer interface {
	Send(ctx context.Context, mail entities.Mail) error
}
