package billing

import (
	"strings"
	"time"

	"repasse_imoveis/internal/domain/entities"
)

const actionPrestarContas = "CALCULAR_PRESTACAO"

// ComputeSettlement builds the settlement of a paid invoice: retention first, then the
// split of what is left. When previous is given (recomputation) its identity and version
// are kept but its retained values and payouts are replaced, never appended to.
func ComputeSettlement(inv entities.Invoice, cfg *entities.RetentionConfig, owners []entities.Owner, previous *entities.SettlementRecord, now time.Time) (entities.SettlementRecord, error) {
	if inv.Status != entities.InvoiceStatusPaga {
		return entities.SettlementRecord{}, &InvalidTransitionError{From: string(inv.Status), Action: actionPrestarContas}
	}
	if previous != nil && previous.Status != entities.SettlementStatusPendente {
		return entities.SettlementRecord{}, &InvalidTransitionError{From: "PRESTACAO_" + string(previous.Status), Action: actionPrestarContas}
	}
	if err := CheckOwnership(inv.ContractID, owners); err != nil {
		return entities.SettlementRecord{}, err
	}

	retention, err := ComputeRetention(inv.Total, cfg, PayoutRecipients(owners))
	if err != nil {
		return entities.SettlementRecord{}, err
	}
	net := inv.Total.Sub(retention.Total)
	if net.IsNegative() {
		return entities.SettlementRecord{}, NewConfigurationError("retained amount %s exceeds invoice total %s", retention.Total.StringFixed(2), inv.Total.StringFixed(2))
	}

	payouts, err := SplitPayouts(inv.ContractID, net, owners)
	if err != nil {
		return entities.SettlementRecord{}, err
	}

	rec := entities.SettlementRecord{
		ID:             SettlementID(inv.ID),
		InvoiceID:      inv.ID,
		ContractID:     inv.ContractID,
		Period:         inv.Period,
		InvoiceTotal:   inv.Total,
		TotalSurcharge: inv.TotalSurcharge,
		TotalRetained:  retention.Total,
		TotalPayout:    net,
		Status:         entities.SettlementStatusPendente,
		RetainedValues: retention.Values,
		OwnersSnapshot: ActiveOwners(owners),
		CreatedAt:      now.UTC(),
	}
	if previous != nil {
		rec.ID = previous.ID
		rec.CreatedAt = previous.CreatedAt
		rec.Version = previous.Version
	}
	for i := range payouts {
		payouts[i].SettlementID = rec.ID
		// a zero share has nothing to transfer and is settled on creation
		if payouts[i].Value.IsZero() {
			t := now.UTC()
			payouts[i].Status = entities.PayoutStatusRealizado
			payouts[i].PaidAt = &t
		}
	}
	rec.Payouts = payouts
	return rec, nil
}

// BookSettlement moves a settlement forward when its invoice is booked (lançada). It
// becomes PROCESSADA, or REPASSADA right away when no payout carries money to transfer.
func BookSettlement(rec entities.SettlementRecord, now time.Time) (entities.SettlementRecord, error) {
	if rec.Status != entities.SettlementStatusPendente {
		return rec, &InvalidTransitionError{From: "PRESTACAO_" + string(rec.Status), Action: string(ActionLancar)}
	}
	rec.Status = entities.SettlementStatusProcessada
	if rec.AllPayoutsConfirmed() {
		rec.Status = entities.SettlementStatusRepassada
		t := now.UTC()
		rec.TransferredAt = &t
	}
	return rec, nil
}

// PayoutConfirmation is the outcome of confirming one owner's transfer.
type PayoutConfirmation struct {
	Payout  entities.OwnerPayout
	Changed bool
}

// ConfirmPayout marks one payout REALIZADO. Confirming again with the same receipt is a
// no-op; a different receipt for an executed payout is rejected. Payouts can only be
// confirmed after the settlement was booked.
func ConfirmPayout(rec entities.SettlementRecord, ownerID, reference string, paidAt time.Time) (PayoutConfirmation, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return PayoutConfirmation{}, NewValidationError("pix receipt reference is required")
	}
	p, ok := rec.Payout(ownerID)
	if !ok {
		return PayoutConfirmation{}, ErrPayoutNotFound
	}
	if p.Status == entities.PayoutStatusRealizado {
		if p.ReceiptReference == reference {
			return PayoutConfirmation{Payout: p}, nil
		}
		return PayoutConfirmation{}, &InvalidTransitionError{From: "REPASSE_" + string(p.Status), Action: "CONFIRMAR_REPASSE"}
	}
	if rec.Status != entities.SettlementStatusProcessada {
		return PayoutConfirmation{}, &InvalidTransitionError{From: "PRESTACAO_" + string(rec.Status), Action: "CONFIRMAR_REPASSE"}
	}
	t := paidAt.UTC()
	p.Status = entities.PayoutStatusRealizado
	p.ReceiptReference = reference
	p.PaidAt = &t
	return PayoutConfirmation{Payout: p, Changed: true}, nil
}

// CompleteTransfer closes a booked settlement whose payouts were all confirmed. ok is
// false, and rec unchanged, while anything is still pending.
func CompleteTransfer(rec entities.SettlementRecord) (out entities.SettlementRecord, ok bool) {
	if rec.Status != entities.SettlementStatusProcessada || !rec.AllPayoutsConfirmed() {
		return rec, false
	}
	rec.Status = entities.SettlementStatusRepassada
	rec.TransferredAt = latestPaidAt(rec.Payouts)
	return rec, true
}

func latestPaidAt(payouts []entities.OwnerPayout) *time.Time {
	var latest *time.Time
	for _, p := range payouts {
		if p.PaidAt != nil && (latest == nil || p.PaidAt.After(*latest)) {
			t := *p.PaidAt
			latest = &t
		}
	}
	return latest
}
