package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/domain/entities"
	"repasse_imoveis/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ISettlementUseCase exposes prestação de contas operations.
//
//   - POST /api/prestacoes-contas => CreateOrRecompute()
//   - GET /api/prestacoes-contas?contrato_id= => ListByContractID()
//   - PATCH /api/prestacoes-contas/{id}/repasses/{owner_id} => ConfirmPayout()

type ISettlementUseCase interface {
	CreateOrRecompute(ctx context.Context, invoiceID string) (entities.SettlementRecord, error)
	GetByID(ctx context.Context, id string) (entities.SettlementRecord, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.SettlementRecord, error)
	ConfirmPayout(ctx context.Context, settlementID, ownerID, reference string, paidAt time.Time) (entities.SettlementRecord, error)
}

type SettlementUseCase struct {
	repos    Repositories
	verifier interfaces.IPayoutVerifier
	guard    invoiceGuard
	metrics  interfaces.IMetricsRecorder
	log      *zap.Logger
	now      func() time.Time
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

// NewSettlementUseCase builds the use case. verifier may be nil, in which case receipt
// references are accepted without checking them with the provider.
func NewSettlementUseCase(repos Repositories, verifier interfaces.IPayoutVerifier, locker interfaces.ILocker, lockTTL time.Duration, metrics interfaces.IMetricsRecorder, logger *zap.Logger) *SettlementUseCase {
	metrics = metricsOrNoop(metrics)
	logger = loggerOrNop(logger)
	return &SettlementUseCase{
		repos:    repos,
		verifier: verifier,
		guard:    invoiceGuard{locker: locker, ttl: lockTTL, metrics: metrics, log: logger},
		metrics:  metrics,
		log:      logger,
		now:      time.Now,
	}
}

// CreateOrRecompute computes the settlement of a paid boleto. An existing pending
// settlement has its retained values and payouts replaced atomically; a settlement
// that was already booked is never recomputed.
func (u *SettlementUseCase) CreateOrRecompute(ctx context.Context, invoiceID string) (entities.SettlementRecord, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.SettlementRecord{}, ErrInvalidInvoiceID
	}
	u.log.Info("[settlement][usecase] compute start", zap.String("invoice_id", invoiceID))

	var out entities.SettlementRecord
	err := u.guard.withLock(ctx, invoiceID, func() error {
		inv, err := u.repos.Invoices.GetByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		if inv.ID == "" {
			return ErrInvoiceNotFound
		}

		started := time.Now()
		in, err := loadSettlementInputs(ctx, u.repos, inv)
		if err != nil {
			return err
		}
		rec, err := billing.ComputeSettlement(inv, in.config, in.owners, in.existing, u.now())
		u.metrics.SettlementComputed(outcomeOf(err), time.Since(started))
		if err != nil {
			return err
		}

		out, err = u.repos.Settlements.Replace(ctx, inv, rec, stalePayouts(in.existing))
		if err != nil {
			return conflict(u.metrics, resourceSettlement, rec.ID, err)
		}
		return nil
	})
	if err != nil {
		u.log.Info("[settlement][usecase] compute failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		return entities.SettlementRecord{}, err
	}
	u.log.Info("[settlement][usecase] compute success",
		zap.String("invoice_id", invoiceID),
		zap.String("settlement_id", out.ID),
		zap.String("total_retained", out.TotalRetained.StringFixed(2)),
		zap.String("total_payout", out.TotalPayout.StringFixed(2)),
		zap.Int("payouts", len(out.Payouts)),
	)
	return out, nil
}

func (u *SettlementUseCase) GetByID(ctx context.Context, id string) (entities.SettlementRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SettlementRecord{}, ErrInvalidSettlementID
	}
	rec, err := u.repos.Settlements.GetByID(ctx, id)
	if err != nil {
		return entities.SettlementRecord{}, err
	}
	if rec.ID == "" {
		return entities.SettlementRecord{}, ErrSettlementNotFound
	}
	return rec, nil
}

func (u *SettlementUseCase) ListByContractID(ctx context.Context, contractID string) ([]entities.SettlementRecord, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, ErrInvalidContractID
	}
	return u.repos.Settlements.ListByContractID(ctx, contractID)
}

// ConfirmPayout marks one owner's transfer REALIZADO.
//
// Confirmations of different owners on the same settlement run independently: each
// touches only its own payout row. Re-confirming with the same reference is a no-op.
// When the last pending payout is confirmed the settlement becomes REPASSADA.
func (u *SettlementUseCase) ConfirmPayout(ctx context.Context, settlementID, ownerID, reference string, paidAt time.Time) (entities.SettlementRecord, error) {
	rec, err := u.GetByID(ctx, settlementID)
	if err != nil {
		return entities.SettlementRecord{}, err
	}
	if paidAt.IsZero() {
		paidAt = u.now()
	}
	ownerID = strings.TrimSpace(ownerID)

	c, err := billing.ConfirmPayout(rec, ownerID, reference, paidAt)
	if err != nil {
		return entities.SettlementRecord{}, err
	}
	if !c.Changed {
		u.log.Info("[settlement][usecase] payout already confirmed", zap.String("settlement_id", rec.ID), zap.String("owner_id", ownerID))
		return rec, nil
	}

	if err := u.verifyReceipt(ctx, c.Payout); err != nil {
		u.log.Info("[settlement][usecase] receipt rejected", zap.String("settlement_id", rec.ID), zap.String("owner_id", ownerID), zap.Error(err))
		return entities.SettlementRecord{}, err
	}

	if err := u.repos.Settlements.ConfirmPayout(ctx, c.Payout); err != nil {
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.SettlementRecord{}, err
		}
		// Lost to a concurrent confirmation of the same owner: fine if it carried the
		// same receipt. The winner may have stopped before closing the settlement.
		current, gerr := u.GetByID(ctx, rec.ID)
		if gerr != nil {
			return entities.SettlementRecord{}, gerr
		}
		if _, cerr := billing.ConfirmPayout(current, ownerID, reference, paidAt); cerr != nil {
			return entities.SettlementRecord{}, cerr
		}
		return u.completeIfAllConfirmed(ctx, rec.ID)
	}
	u.log.Info("[settlement][usecase] payout confirmed", zap.String("settlement_id", rec.ID), zap.String("owner_id", ownerID), zap.String("value", c.Payout.Value.StringFixed(2)))

	return u.completeIfAllConfirmed(ctx, rec.ID)
}

// completeIfAllConfirmed re-reads the settlement after a payout confirmation and closes
// it when nothing is pending anymore.
func (u *SettlementUseCase) completeIfAllConfirmed(ctx context.Context, settlementID string) (entities.SettlementRecord, error) {
	for attempt := 0; attempt < 2; attempt++ {
		current, err := u.GetByID(ctx, settlementID)
		if err != nil {
			return entities.SettlementRecord{}, err
		}
		done, ok := billing.CompleteTransfer(current)
		if !ok {
			return current, nil
		}
		saved, err := u.repos.Settlements.MarkTransferred(ctx, done)
		if err == nil {
			u.log.Info("[settlement][usecase] settlement transferred", zap.String("settlement_id", settlementID))
			return saved, nil
		}
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.SettlementRecord{}, err
		}
		u.metrics.ConcurrentModification(resourceSettlement)
	}
	return u.GetByID(ctx, settlementID)
}

func (u *SettlementUseCase) verifyReceipt(ctx context.Context, p entities.OwnerPayout) error {
	if u.verifier == nil {
		return nil
	}
	receipt, err := u.verifier.VerifyReceipt(ctx, p.ReceiptReference, p.Value)
	if err != nil {
		return err
	}
	if receipt.Status != entities.ReceiptStatusApproved {
		return ErrReceiptNotApproved
	}
	if !receipt.Amount.IsZero() && !receipt.Amount.Equal(p.Value) {
		return ErrReceiptAmountDiffers
	}
	return nil
}
