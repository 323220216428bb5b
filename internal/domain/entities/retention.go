package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRetentionConfigID is the tenant-wide configuration record. A record keyed by a
// contract id overrides it for that contract.
const DefaultRetentionConfigID = "default"

// RetentionConfig (configuração de retenções) holds what the platform withholds from
// every paid invoice before payout.
type RetentionConfig struct {
	ID           string          `json:"id"`
	AdminPercent decimal.Decimal `json:"percentual_admin"`
	BoletoFee    decimal.Decimal `json:"taxa_boleto"`
	TransferFee  decimal.Decimal `json:"taxa_transferencia"`
	Active       bool            `json:"ativo"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RetentionKind classifies a withheld amount.
type RetentionKind string

const (
	RetentionKindAdmin    RetentionKind = "TAXA_ADMINISTRACAO"
	RetentionKindBoleto   RetentionKind = "TAXA_BOLETO"
	RetentionKindTransfer RetentionKind = "TAXA_TRANSFERENCIA"
)

// RetainedValue (valor retido) is one withheld line of a settlement.
type RetainedValue struct {
	Kind        RetentionKind    `json:"tipo"`
	Description string           `json:"descricao"`
	Value       decimal.Decimal  `json:"valor"`
	Percent     *decimal.Decimal `json:"percentual,omitempty"`
}
