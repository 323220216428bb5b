package usecase

import (
	"context"
	"errors"
	"time"

	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/domain/entities"
	"repasse_imoveis/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInvoiceID     = errors.New("invalid boleto id")
	ErrInvalidContractID    = errors.New("invalid contrato id")
	ErrInvalidSettlementID  = errors.New("invalid prestacao id")
	ErrInvoiceNotFound      = errors.New("boleto not found")
	ErrInvoiceAlreadyExists = errors.New("boleto already exists for this contract and period")
	ErrContractNotFound     = errors.New("contract not found")
	ErrSettlementNotFound   = errors.New("prestacao de contas not found")
	ErrReceiptNotApproved   = errors.New("pix receipt not approved by the payment provider")
	ErrReceiptAmountDiffers = errors.New("pix receipt amount differs from payout value")
)

const (
	resourceInvoice    = "boleto"
	resourceSettlement = "prestacao_contas"

	outcomeSuccess = "success"
	outcomeError   = "error"

	defaultLockTTL = 30 * time.Second
)

// Repositories groups the persistence ports shared by the billing use cases.
type Repositories struct {
	Invoices          interfaces.IInvoiceRepository
	Settlements       interfaces.ISettlementRepository
	Contracts         interfaces.IContractRepository
	Owners            interfaces.IOwnerRepository
	RetentionConfigs  interfaces.IRetentionConfigRepository
	CorrectionIndexes interfaces.ICorrectionIndexRepository
}

type noopMetrics struct{}

func (noopMetrics) SettlementComputed(string, time.Duration) {}
func (noopMetrics) InvoiceAction(string, string)             {}
func (noopMetrics) ConcurrentModification(string)            {}

func metricsOrNoop(m interfaces.IMetricsRecorder) interfaces.IMetricsRecorder {
	if m == nil {
		return noopMetrics{}
	}
	return m
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func outcomeOf(err error) string {
	if err != nil {
		return outcomeError
	}
	return outcomeSuccess
}

// invoiceGuard serializes mutations of one invoice across requests and instances.
type invoiceGuard struct {
	locker  interfaces.ILocker
	ttl     time.Duration
	metrics interfaces.IMetricsRecorder
	log     *zap.Logger
}

func (g invoiceGuard) withLock(ctx context.Context, invoiceID string, fn func() error) error {
	if g.locker == nil {
		return fn()
	}
	ttl := g.ttl
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	release, err := g.locker.Acquire(ctx, "boleto:"+invoiceID, ttl)
	if errors.Is(err, interfaces.ErrLockHeld) {
		g.log.Info("[invoice][lock] busy", zap.String("invoice_id", invoiceID))
		g.metrics.ConcurrentModification(resourceInvoice)
		return &billing.ConcurrentModificationError{Resource: resourceInvoice, ID: invoiceID}
	}
	if err != nil {
		return err
	}
	defer func() {
		if rerr := release(context.WithoutCancel(ctx)); rerr != nil {
			g.log.Warn("[invoice][lock] release failed", zap.String("invoice_id", invoiceID), zap.Error(rerr))
		}
	}()
	return fn()
}

// conflict translates a failed conditional write into the error callers retry on.
func conflict(m interfaces.IMetricsRecorder, resource, id string, err error) error {
	if errors.Is(err, interfaces.ErrVersionConflict) || errors.Is(err, interfaces.ErrAlreadyExists) {
		m.ConcurrentModification(resource)
		return &billing.ConcurrentModificationError{Resource: resource, ID: id}
	}
	return err
}

// settlementInputs is everything a settlement computation reads besides the invoice.
type settlementInputs struct {
	config   *entities.RetentionConfig
	owners   []entities.Owner
	existing *entities.SettlementRecord
}

// loadSettlementInputs reads the retention configuration, the owners and any previous
// settlement of inv concurrently.
func loadSettlementInputs(ctx context.Context, repos Repositories, inv entities.Invoice) (settlementInputs, error) {
	var in settlementInputs
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cfg, err := resolveRetentionConfig(gctx, repos.RetentionConfigs, inv.ContractID)
		in.config = cfg
		return err
	})
	g.Go(func() error {
		owners, err := repos.Owners.ListByContractID(gctx, inv.ContractID)
		in.owners = owners
		return err
	})
	g.Go(func() error {
		rec, err := repos.Settlements.GetByInvoiceID(gctx, inv.ID)
		if err == nil && rec.ID != "" {
			in.existing = &rec
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return settlementInputs{}, err
	}
	return in, nil
}

// resolveRetentionConfig prefers an active contract-specific record over the default
// one. It returns nil when neither exists, and an inactive record when that is all
// there is, so the engine can report it.
func resolveRetentionConfig(ctx context.Context, repo interfaces.IRetentionConfigRepository, contractID string) (*entities.RetentionConfig, error) {
	var found *entities.RetentionConfig
	for _, id := range []string{contractID, entities.DefaultRetentionConfigID} {
		if id == "" {
			continue
		}
		cfg, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if cfg.ID == "" {
			continue
		}
		if cfg.Active {
			return &cfg, nil
		}
		if found == nil {
			found = &cfg
		}
	}
	return found, nil
}

func stalePayouts(rec *entities.SettlementRecord) []entities.OwnerPayout {
	if rec == nil {
		return nil
	}
	return rec.Payouts
}
