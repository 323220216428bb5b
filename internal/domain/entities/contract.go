package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeKind identifies what a recurring value or invoice component charges for.
type ChargeKind string

const (
	ChargeKindAluguel        ChargeKind = "aluguel"
	ChargeKindIPTU           ChargeKind = "iptu"
	ChargeKindSeguroFianca   ChargeKind = "seguro_fianca"
	ChargeKindSeguroIncendio ChargeKind = "seguro_incendio"
	ChargeKindCondominio     ChargeKind = "condominio"
	ChargeKindAgua           ChargeKind = "agua"
	ChargeKindLuz            ChargeKind = "luz"
	ChargeKindGas            ChargeKind = "gas"
	ChargeKindTaxaExtra      ChargeKind = "taxa_extra"
	ChargeKindDesconto       ChargeKind = "desconto"
)

// IsValid reports whether k is a known charge kind.
func (k ChargeKind) IsValid() bool {
	switch k {
	case ChargeKindAluguel, ChargeKindIPTU, ChargeKindSeguroFianca, ChargeKindSeguroIncendio,
		ChargeKindCondominio, ChargeKindAgua, ChargeKindLuz, ChargeKindGas,
		ChargeKindTaxaExtra, ChargeKindDesconto:
		return true
	}
	return false
}

// SurchargeableByDefault reports whether late fees apply to the kind unless the
// contract says otherwise. Insurance and discounts never accrue surcharge.
func (k ChargeKind) SurchargeableByDefault() bool {
	switch k {
	case ChargeKindAluguel, ChargeKindIPTU, ChargeKindCondominio,
		ChargeKindAgua, ChargeKindLuz, ChargeKindGas, ChargeKindTaxaExtra:
		return true
	}
	return false
}

// RecurringCharge is one monthly value configured on a contract.
type RecurringCharge struct {
	Kind          ChargeKind      `json:"tipo"`
	Description   string          `json:"descricao"`
	Value         decimal.Decimal `json:"valor"`
	Surchargeable bool            `json:"incide_acrescimo"`
}

// Contract is the read-only view of a lease that the billing engine needs.
//
// Contracts are registered by the CRUD application; this service never writes them.
//
// Storage model (DynamoDB):
//   - PK: id
type Contract struct {
	ID              string            `json:"id"`
	PropertyID      string            `json:"imovel_id"`
	PropertyLabel   string            `json:"imovel_descricao"`
	TenantName      string            `json:"inquilino_nome"`
	StartDate       time.Time         `json:"data_inicio"`
	EndDate         *time.Time        `json:"data_fim,omitempty"`
	DueDay          int               `json:"dia_vencimento"`
	CorrectionIndex IndexName         `json:"indice_correcao"`
	MonthlyCharges  []RecurringCharge `json:"valores_mensais"`
	Active          bool              `json:"ativo"`
}

// Covers reports whether the billing period falls inside the contract's active range.
func (c Contract) Covers(p Period) bool {
	if !c.Active {
		return false
	}
	start := PeriodOf(c.StartDate)
	if p.Before(start) {
		return false
	}
	if c.EndDate != nil && PeriodOf(*c.EndDate).Before(p) {
		return false
	}
	return true
}
