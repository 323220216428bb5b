package interfaces

import (
	"context"

	"repasse_imoveis/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// GetByID returns a zero Invoice (empty ID) when nothing is stored under id.
// Update writes only if the stored version equals inv.Version and returns the invoice
// with the incremented version; a mismatch yields ErrVersionConflict.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
}
