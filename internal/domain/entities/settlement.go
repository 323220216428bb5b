package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementStatus represents the lifecycle of a prestação de contas.
type SettlementStatus string

const (
	SettlementStatusPendente   SettlementStatus = "PENDENTE"
	SettlementStatusProcessada SettlementStatus = "PROCESSADA"
	SettlementStatusRepassada  SettlementStatus = "REPASSADA"
)

// PayoutStatus represents whether the transfer to an owner was executed.
type PayoutStatus string

const (
	PayoutStatusPendente  PayoutStatus = "PENDENTE"
	PayoutStatusRealizado PayoutStatus = "REALIZADO"
)

// OwnerPayout (repasse ao proprietário) is the share of one settlement sent to one owner.
//
// Storage model (DynamoDB):
//   - PK: settlement_id
//   - SK: owner_id
//
// Value and OwnerID never change after creation; only the confirmation fields do.
type OwnerPayout struct {
	SettlementID     string          `json:"prestacao_id"`
	OwnerID          string          `json:"proprietario_id"`
	OwnerName        string          `json:"proprietario_nome"`
	OwnershipPercent decimal.Decimal `json:"percentual_participacao"`
	Value            decimal.Decimal `json:"valor"`
	PaidAt           *time.Time      `json:"data_repasse,omitempty"`
	ReceiptReference string          `json:"comprovante_pix,omitempty"`
	Status           PayoutStatus    `json:"status"`
}

// SettlementRecord (prestação de contas) ties one paid invoice to what was withheld and
// how the remainder was split among the owners.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
//   - GSI2 (contract_id-index): contract_id
//
// RetainedValues and OwnersSnapshot are embedded; Payouts live in their own table so each
// owner's confirmation is written independently.
type SettlementRecord struct {
	ID             string           `json:"id"`
	InvoiceID      string           `json:"boleto_id"`
	ContractID     string           `json:"contrato_id"`
	Period         Period           `json:"competencia"`
	InvoiceTotal   decimal.Decimal  `json:"valor_boleto"`
	TotalSurcharge decimal.Decimal  `json:"valor_acrescimos"`
	TotalRetained  decimal.Decimal  `json:"valor_total_retido"`
	TotalPayout    decimal.Decimal  `json:"valor_total_repasse"`
	Status         SettlementStatus `json:"status"`
	RetainedValues []RetainedValue  `json:"valores_retidos"`
	Payouts        []OwnerPayout    `json:"repasses"`
	OwnersSnapshot []Owner          `json:"proprietarios"`
	CreatedAt      time.Time        `json:"data_criacao"`
	TransferredAt  *time.Time       `json:"data_repasse,omitempty"`
	Version        int              `json:"versao"`
}

// AllPayoutsConfirmed reports whether every payout was executed.
func (s SettlementRecord) AllPayoutsConfirmed() bool {
	if len(s.Payouts) == 0 {
		return false
	}
	for _, p := range s.Payouts {
		if p.Status != PayoutStatusRealizado {
			return false
		}
	}
	return true
}

// Payout returns the payout for ownerID, if any.
func (s SettlementRecord) Payout(ownerID string) (OwnerPayout, bool) {
	for _, p := range s.Payouts {
		if p.OwnerID == ownerID {
			return p, true
		}
	}
	return OwnerPayout{}, false
}
