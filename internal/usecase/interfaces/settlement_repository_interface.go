package interfaces

import (
	"context"

	"repasse_imoveis/internal/domain/entities"
)

// ISettlementRepository abstracts DynamoDB persistence for SettlementRecord and its
// OwnerPayout rows.
//
// The multi-item writes are atomic: either every item is written or none is. Each one
// is conditional on the versions carried by its arguments and fails with
// ErrVersionConflict when another writer got there first.

type ISettlementRepository interface {
	GetByID(ctx context.Context, id string) (entities.SettlementRecord, error)
	GetByInvoiceID(ctx context.Context, invoiceID string) (entities.SettlementRecord, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.SettlementRecord, error)

	// RecordPayment stores the paid invoice together with its freshly computed settlement.
	RecordPayment(ctx context.Context, inv entities.Invoice, rec entities.SettlementRecord, stale []entities.OwnerPayout) (entities.Invoice, entities.SettlementRecord, error)
	// Replace swaps the retained values and payouts of a pending settlement. The write
	// is guarded by the invoice still being PAGA at inv.Version.
	Replace(ctx context.Context, inv entities.Invoice, rec entities.SettlementRecord, stale []entities.OwnerPayout) (entities.SettlementRecord, error)
	// Book stores the booked invoice and the advanced settlement.
	Book(ctx context.Context, inv entities.Invoice, rec entities.SettlementRecord) (entities.Invoice, entities.SettlementRecord, error)

	// ConfirmPayout marks one payout row REALIZADO if it is still PENDENTE.
	ConfirmPayout(ctx context.Context, p entities.OwnerPayout) error
	// MarkTransferred moves a PROCESSADA settlement to REPASSADA at rec.Version.
	MarkTransferred(ctx context.Context, rec entities.SettlementRecord) (entities.SettlementRecord, error)
}
