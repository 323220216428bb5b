package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle of a boleto.
//
// Domain notes:
//   - ABERTA/PENDENTE/EM_ATRASO accept edits, surcharge recomputation and payment.
//   - PAGA, LANCADA and CANCELADA freeze the invoice content.
type InvoiceStatus string

const (
	InvoiceStatusAberta    InvoiceStatus = "ABERTA"
	InvoiceStatusPendente  InvoiceStatus = "PENDENTE"
	InvoiceStatusEmAtraso  InvoiceStatus = "EM_ATRASO"
	InvoiceStatusPaga      InvoiceStatus = "PAGA"
	InvoiceStatusLancada   InvoiceStatus = "LANCADA"
	InvoiceStatusCancelada InvoiceStatus = "CANCELADA"
)

// InvoiceStatuses lists every status in lifecycle order.
var InvoiceStatuses = []InvoiceStatus{
	InvoiceStatusAberta,
	InvoiceStatusPendente,
	InvoiceStatusEmAtraso,
	InvoiceStatusPaga,
	InvoiceStatusLancada,
	InvoiceStatusCancelada,
}

func (s InvoiceStatus) IsValid() bool {
	for _, st := range InvoiceStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// IsFrozen reports whether the invoice content can no longer change.
func (s InvoiceStatus) IsFrozen() bool {
	return s == InvoiceStatusPaga || s == InvoiceStatusLancada || s == InvoiceStatusCancelada
}

// InvoiceComponent (componente do boleto) is one itemized charge.
//
// For surchargeable components FinalValue = OriginalValue + Interest + Penalty + Correction.
// Non-surchargeable components always keep FinalValue == OriginalValue.
type InvoiceComponent struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"boleto_id"`
	Kind          ChargeKind      `json:"tipo"`
	Description   string          `json:"descricao"`
	OriginalValue decimal.Decimal `json:"valor_original"`
	FinalValue    decimal.Decimal `json:"valor_final"`
	Surchargeable bool            `json:"incide_acrescimo"`
	Interest      decimal.Decimal `json:"juros"`
	Penalty       decimal.Decimal `json:"multa"`
	Correction    decimal.Decimal `json:"correcao"`
	DaysLate      int             `json:"dias_atraso"`
	AdHoc         bool            `json:"avulso"`
}

// Surcharge is the sum of the three stored surcharge sub-amounts.
func (c InvoiceComponent) Surcharge() decimal.Decimal {
	return c.Interest.Add(c.Penalty).Add(c.Correction)
}

// Invoice (boleto) is one monthly billing document for a contract.
//
// Storage model (DynamoDB):
//   - PK: id (UUIDv5 of contract id + period, so one invoice per contract/period)
//   - GSI1 (contract_id-index): contract_id
//
// Version is used for optimistic concurrency at the persistence boundary.
type Invoice struct {
	ID             string             `json:"id"`
	ContractID     string             `json:"contrato_id"`
	PropertyLabel  string             `json:"imovel_descricao"`
	TenantName     string             `json:"inquilino_nome"`
	OwnerIDs       []string           `json:"proprietario_ids"`
	Period         Period             `json:"competencia"`
	DueDate        time.Time          `json:"data_vencimento"`
	PaidAt         *time.Time         `json:"data_pagamento,omitempty"`
	GeneratedAt    time.Time          `json:"data_geracao"`
	Total          decimal.Decimal    `json:"valor_total"`
	TotalSurcharge decimal.Decimal    `json:"valor_acrescimos"`
	DaysLate       int                `json:"dias_atraso"`
	Status         InvoiceStatus      `json:"status"`
	Notes          string             `json:"observacoes"`
	IndexOverride  IndexName          `json:"indice_correcao,omitempty"`
	Components     []InvoiceComponent `json:"componentes"`
	Version        int                `json:"versao"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// Clone returns a deep copy so pure functions never alias the caller's slices.
func (inv Invoice) Clone() Invoice {
	out := inv
	out.Components = append([]InvoiceComponent(nil), inv.Components...)
	out.OwnerIDs = append([]string(nil), inv.OwnerIDs...)
	if inv.PaidAt != nil {
		paid := *inv.PaidAt
		out.PaidAt = &paid
	}
	return out
}
