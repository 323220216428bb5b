package entities

import "github.com/shopspring/decimal"

// Owner (proprietário) of a property under a contract.
//
// Owners are registered upstream; the billing engine only reads them and keeps a
// snapshot inside each settlement.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contract_id-index): contract_id
type Owner struct {
	ID               string          `json:"id"`
	ContractID       string          `json:"contrato_id"`
	Name             string          `json:"nome"`
	TaxID            string          `json:"cpf_cnpj"`
	Email            string          `json:"email,omitempty"`
	Phone            string          `json:"telefone,omitempty"`
	OwnershipPercent decimal.Decimal `json:"percentual_participacao"`
	PixKey           string          `json:"chave_pix,omitempty"`
	BankAccount      string          `json:"conta_bancaria,omitempty"`
	Active           bool            `json:"ativo"`
}
