package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/domain/entities"
	"repasse_imoveis/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GenerateInvoiceCommand asks for the boleto of one contract and period. DueDate
// overrides the contract's due day when set.
type GenerateInvoiceCommand struct {
	ContractID string
	Period     entities.Period
	DueDate    *time.Time
	Entries    []billing.AdHocEntry
	Notes      string
}

// RecomputeResult is an invoice after its surcharge was recomputed.
type RecomputeResult struct {
	Invoice       entities.Invoice
	PreviousTotal decimal.Decimal
	Warnings      []billing.Warning
}

// PaymentResult is a paid invoice and the settlement created with it.
type PaymentResult struct {
	Invoice    entities.Invoice
	Settlement entities.SettlementRecord
	Warnings   []billing.Warning
}

// InvoiceDocument is what the boleto document is rendered from.
type InvoiceDocument struct {
	Invoice        entities.Invoice
	AllowedActions []billing.Action
	GeneratedAt    time.Time
}

// IInvoiceUseCase exposes the boleto lifecycle.
//
// Every mutation runs under the invoice lock and is persisted with an optimistic
// version check, so two concurrent requests for the same boleto never interleave.

type IInvoiceUseCase interface {
	Generate(ctx context.Context, cmd GenerateInvoiceCommand) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, filter billing.InvoiceFilter) (billing.InvoicePage, error)
	Issue(ctx context.Context, id string) (entities.Invoice, error)
	MarkOverdue(ctx context.Context, id string, asOf time.Time) (RecomputeResult, error)
	RecomputeSurcharge(ctx context.Context, id string, index entities.IndexName, asOf *time.Time) (RecomputeResult, error)
	EditComponents(ctx context.Context, id string, entries []billing.AdHocEntry, notes *string) (RecomputeResult, error)
	RegisterPayment(ctx context.Context, id string, paidAt time.Time) (PaymentResult, error)
	Book(ctx context.Context, id string) (entities.Invoice, entities.SettlementRecord, error)
	Cancel(ctx context.Context, id string, reason string) (entities.Invoice, error)
	GenerateDocument(ctx context.Context, id string) (InvoiceDocument, error)
}

type InvoiceUseCase struct {
	repos   Repositories
	calc    billing.LateFeeCalculator
	guard   invoiceGuard
	metrics interfaces.IMetricsRecorder
	log     *zap.Logger
	now     func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repos Repositories, calc billing.LateFeeCalculator, locker interfaces.ILocker, lockTTL time.Duration, metrics interfaces.IMetricsRecorder, logger *zap.Logger) *InvoiceUseCase {
	metrics = metricsOrNoop(metrics)
	logger = loggerOrNop(logger)
	return &InvoiceUseCase{
		repos:   repos,
		calc:    calc,
		guard:   invoiceGuard{locker: locker, ttl: lockTTL, metrics: metrics, log: logger},
		metrics: metrics,
		log:     logger,
		now:     time.Now,
	}
}

func (u *InvoiceUseCase) Generate(ctx context.Context, cmd GenerateInvoiceCommand) (entities.Invoice, error) {
	contractID := strings.TrimSpace(cmd.ContractID)
	if contractID == "" {
		return entities.Invoice{}, ErrInvalidContractID
	}
	u.log.Info("[invoice][usecase] generate start", zap.String("contract_id", contractID), zap.String("period", cmd.Period.Key()))

	contract, err := u.loadContract(ctx, contractID)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv, err := billing.BuildInvoice(contract, cmd.Period, cmd.Entries)
	if err != nil {
		u.log.Info("[invoice][usecase] generate rejected", zap.String("contract_id", contractID), zap.Error(err))
		return entities.Invoice{}, err
	}

	if existing, err := u.repos.Invoices.GetByID(ctx, inv.ID); err != nil {
		return entities.Invoice{}, err
	} else if existing.ID != "" {
		return entities.Invoice{}, ErrInvoiceAlreadyExists
	}

	owners, err := u.repos.Owners.ListByContractID(ctx, contractID)
	if err != nil {
		return entities.Invoice{}, err
	}
	for _, o := range billing.ActiveOwners(owners) {
		inv.OwnerIDs = append(inv.OwnerIDs, o.ID)
	}
	if cmd.DueDate != nil {
		y, m, d := cmd.DueDate.Date()
		inv.DueDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	now := u.now().UTC()
	inv.Notes = strings.TrimSpace(cmd.Notes)
	inv.GeneratedAt = now
	inv.UpdatedAt = now

	created, err := u.repos.Invoices.Create(ctx, inv)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Invoice{}, ErrInvoiceAlreadyExists
		}
		u.log.Error("[invoice][usecase] create failed", zap.String("invoice_id", inv.ID), zap.Error(err))
		return entities.Invoice{}, err
	}
	u.log.Info("[invoice][usecase] generate success", zap.String("invoice_id", created.ID), zap.String("total", created.Total.StringFixed(2)))
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.repos.Invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, filter billing.InvoiceFilter) (billing.InvoicePage, error) {
	var (
		all []entities.Invoice
		err error
	)
	if filter.ContractID != "" {
		all, err = u.repos.Invoices.ListByContractID(ctx, filter.ContractID)
	} else {
		all, err = u.repos.Invoices.List(ctx)
	}
	if err != nil {
		return billing.InvoicePage{}, err
	}
	return billing.QueryInvoices(all, filter), nil
}

func (u *InvoiceUseCase) Issue(ctx context.Context, id string) (entities.Invoice, error) {
	return u.mutate(ctx, id, billing.ActionEmitir, nil)
}

func (u *InvoiceUseCase) Cancel(ctx context.Context, id string, reason string) (entities.Invoice, error) {
	return u.mutate(ctx, id, billing.ActionCancelar, func(inv *entities.Invoice) error {
		if reason = strings.TrimSpace(reason); reason != "" {
			inv.Notes = strings.TrimSpace(inv.Notes + "\n" + reason)
		}
		return nil
	})
}

// MarkOverdue moves a pending boleto to EM_ATRASO once asOf is past its due date and
// brings its surcharge up to asOf.
func (u *InvoiceUseCase) MarkOverdue(ctx context.Context, id string, asOf time.Time) (RecomputeResult, error) {
	var res RecomputeResult
	inv, err := u.mutate(ctx, id, billing.ActionMarcarAtraso, func(inv *entities.Invoice) error {
		if billing.DaysLate(inv.DueDate, asOf) == 0 {
			return &billing.InvalidTransitionError{From: string(entities.InvoiceStatusPendente), Action: string(billing.ActionMarcarAtraso)}
		}
		res.PreviousTotal = inv.Total
		w, err := u.recompute(ctx, inv, asOf)
		res.Warnings = w
		return err
	})
	res.Invoice = inv
	return res, err
}

// RecomputeSurcharge refreshes the late fees as of asOf (now when nil). A non-empty
// index replaces the contract's correction index for this boleto from now on.
func (u *InvoiceUseCase) RecomputeSurcharge(ctx context.Context, id string, index entities.IndexName, asOf *time.Time) (RecomputeResult, error) {
	if index != "" && !index.IsValid() {
		return RecomputeResult{}, billing.NewValidationError("indice_correcao must be IGPM or IPCA")
	}
	at := u.now()
	if asOf != nil {
		at = *asOf
	}

	var res RecomputeResult
	inv, err := u.mutate(ctx, id, billing.ActionRecalcularAcrescimos, func(inv *entities.Invoice) error {
		res.PreviousTotal = inv.Total
		if index != "" {
			inv.IndexOverride = index
		}
		w, err := u.recompute(ctx, inv, at)
		res.Warnings = w
		return err
	})
	res.Invoice = inv
	return res, err
}

// EditComponents replaces the ad-hoc entries of an open boleto. Recurring values are
// rebuilt from the contract and the surcharge is brought up to date.
func (u *InvoiceUseCase) EditComponents(ctx context.Context, id string, entries []billing.AdHocEntry, notes *string) (RecomputeResult, error) {
	var res RecomputeResult
	inv, err := u.mutate(ctx, id, billing.ActionEditarComponentes, func(inv *entities.Invoice) error {
		contract, err := u.loadContract(ctx, inv.ContractID)
		if err != nil {
			return err
		}
		rebuilt, err := billing.BuildInvoice(contract, inv.Period, entries)
		if err != nil {
			return err
		}
		res.PreviousTotal = inv.Total
		inv.Components = rebuilt.Components
		if notes != nil {
			inv.Notes = strings.TrimSpace(*notes)
		}
		w, err := u.recomputeWith(ctx, inv, contract, u.now())
		res.Warnings = w
		return err
	})
	res.Invoice = inv
	return res, err
}

// RegisterPayment freezes the surcharge at paidAt, marks the boleto PAGA and stores its
// prestação de contas in the same transaction. Nothing is written when the settlement
// cannot be computed.
func (u *InvoiceUseCase) RegisterPayment(ctx context.Context, id string, paidAt time.Time) (PaymentResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PaymentResult{}, ErrInvalidInvoiceID
	}
	if paidAt.IsZero() {
		paidAt = u.now()
	}
	paidAt = paidAt.UTC()

	var res PaymentResult
	err := u.guard.withLock(ctx, id, func() error {
		inv, err := u.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := billing.Apply(&inv, billing.ActionRegistrarPagamento); err != nil {
			return err
		}
		warnings, err := u.recompute(ctx, &inv, paidAt)
		if err != nil {
			return err
		}
		inv.PaidAt = &paidAt
		inv.UpdatedAt = u.now().UTC()

		started := time.Now()
		in, err := loadSettlementInputs(ctx, u.repos, inv)
		if err != nil {
			return err
		}
		rec, err := billing.ComputeSettlement(inv, in.config, in.owners, in.existing, u.now())
		u.metrics.SettlementComputed(outcomeOf(err), time.Since(started))
		if err != nil {
			u.log.Info("[invoice][usecase] settlement rejected", zap.String("invoice_id", id), zap.Error(err))
			return err
		}

		savedInv, savedRec, err := u.repos.Settlements.RecordPayment(ctx, inv, rec, stalePayouts(in.existing))
		if err != nil {
			return conflict(u.metrics, resourceInvoice, id, err)
		}
		res = PaymentResult{Invoice: savedInv, Settlement: savedRec, Warnings: warnings}
		return nil
	})
	u.metrics.InvoiceAction(string(billing.ActionRegistrarPagamento), outcomeOf(err))
	if err != nil {
		return PaymentResult{}, err
	}
	u.log.Info("[invoice][usecase] payment registered",
		zap.String("invoice_id", id),
		zap.String("settlement_id", res.Settlement.ID),
		zap.String("total", res.Invoice.Total.StringFixed(2)),
		zap.String("total_payout", res.Settlement.TotalPayout.StringFixed(2)),
	)
	return res, nil
}

// Book closes a paid boleto (lançamento) and advances its settlement.
func (u *InvoiceUseCase) Book(ctx context.Context, id string) (entities.Invoice, entities.SettlementRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, entities.SettlementRecord{}, ErrInvalidInvoiceID
	}

	var (
		outInv entities.Invoice
		outRec entities.SettlementRecord
	)
	err := u.guard.withLock(ctx, id, func() error {
		inv, err := u.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := billing.Apply(&inv, billing.ActionLancar); err != nil {
			return err
		}
		rec, err := u.repos.Settlements.GetByInvoiceID(ctx, id)
		if err != nil {
			return err
		}
		if rec.ID == "" {
			return ErrSettlementNotFound
		}
		now := u.now().UTC()
		rec, err = billing.BookSettlement(rec, now)
		if err != nil {
			return err
		}
		inv.UpdatedAt = now
		outInv, outRec, err = u.repos.Settlements.Book(ctx, inv, rec)
		if err != nil {
			return conflict(u.metrics, resourceInvoice, id, err)
		}
		return nil
	})
	u.metrics.InvoiceAction(string(billing.ActionLancar), outcomeOf(err))
	if err != nil {
		return entities.Invoice{}, entities.SettlementRecord{}, err
	}
	u.log.Info("[invoice][usecase] booked", zap.String("invoice_id", id), zap.String("settlement_status", string(outRec.Status)))
	return outInv, outRec, nil
}

// GenerateDocument is permitted in every status.
func (u *InvoiceUseCase) GenerateDocument(ctx context.Context, id string) (InvoiceDocument, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return InvoiceDocument{}, err
	}
	if _, err := billing.Transition(inv.Status, billing.ActionGerarBoleto); err != nil {
		return InvoiceDocument{}, err
	}
	u.metrics.InvoiceAction(string(billing.ActionGerarBoleto), outcomeSuccess)
	return InvoiceDocument{
		Invoice:        inv,
		AllowedActions: billing.AllowedActions(inv.Status),
		GeneratedAt:    u.now().UTC(),
	}, nil
}

// mutate runs one state-machine action against a stored invoice under its lock and
// persists the result at the version that was read.
func (u *InvoiceUseCase) mutate(ctx context.Context, id string, action billing.Action, fn func(inv *entities.Invoice) error) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	u.log.Info("[invoice][usecase] action start", zap.String("invoice_id", id), zap.String("action", string(action)))

	var out entities.Invoice
	err := u.guard.withLock(ctx, id, func() error {
		inv, err := u.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := billing.Apply(&inv, action); err != nil {
			return err
		}
		if fn != nil {
			if err := fn(&inv); err != nil {
				return err
			}
		}
		inv.UpdatedAt = u.now().UTC()
		out, err = u.repos.Invoices.Update(ctx, inv)
		if err != nil {
			return conflict(u.metrics, resourceInvoice, id, err)
		}
		return nil
	})
	u.metrics.InvoiceAction(string(action), outcomeOf(err))
	if err != nil {
		u.log.Info("[invoice][usecase] action failed", zap.String("invoice_id", id), zap.String("action", string(action)), zap.Error(err))
		return entities.Invoice{}, err
	}
	u.log.Info("[invoice][usecase] action success", zap.String("invoice_id", id), zap.String("action", string(action)), zap.String("status", string(out.Status)))
	return out, nil
}

func (u *InvoiceUseCase) recompute(ctx context.Context, inv *entities.Invoice, asOf time.Time) ([]billing.Warning, error) {
	var contract entities.Contract
	if inv.IndexOverride == "" {
		c, err := u.loadContract(ctx, inv.ContractID)
		if err != nil {
			return nil, err
		}
		contract = c
	}
	return u.recomputeWith(ctx, inv, contract, asOf)
}

func (u *InvoiceUseCase) recomputeWith(ctx context.Context, inv *entities.Invoice, contract entities.Contract, asOf time.Time) ([]billing.Warning, error) {
	name := inv.IndexOverride
	if name == "" {
		name = contract.CorrectionIndex
	}
	var index *entities.CorrectionIndex
	if name != "" {
		idx, err := u.repos.CorrectionIndexes.Get(ctx, name, entities.PeriodOf(inv.DueDate))
		if err != nil {
			return nil, err
		}
		if idx.Name != "" {
			index = &idx
		}
	}
	out, warnings := u.calc.Recompute(*inv, asOf, index)
	*inv = out
	for _, w := range warnings {
		u.log.Warn("[invoice][usecase] surcharge warning", zap.String("invoice_id", inv.ID), zap.String("code", string(w.Code)), zap.String("message", w.Message))
	}
	return warnings, nil
}

func (u *InvoiceUseCase) loadContract(ctx context.Context, id string) (entities.Contract, error) {
	c, err := u.repos.Contracts.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}
