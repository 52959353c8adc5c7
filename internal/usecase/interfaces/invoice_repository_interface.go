package interfaces

import (
	"context"
	"time"

	"nimbushost/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// MarkPaid performs the exactly-once flip: it reports changed=false when the
// invoice was already paid, so webhook replays stay no-ops.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByServiceID(ctx context.Context, serviceID string) (entities.Invoice, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (entities.Invoice, bool, error)
}
