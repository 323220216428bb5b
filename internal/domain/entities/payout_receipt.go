package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptStatus is the provider-side state of a transfer.
type ReceiptStatus string

const (
	ReceiptStatusApproved ReceiptStatus = "approved"
	ReceiptStatusPending  ReceiptStatus = "pending"
	ReceiptStatusRejected ReceiptStatus = "rejected"
)

// PayoutReceipt is what the payment provider reports for a PIX receipt reference.
//
// Amount is zero when the provider does not report it.
// RawPayload keeps the provider response body for traceability.
type PayoutReceipt struct {
	Reference  string          `json:"referencia"`
	Status     ReceiptStatus   `json:"status"`
	Amount     decimal.Decimal `json:"valor"`
	ApprovedAt *time.Time      `json:"data_aprovacao,omitempty"`

	RawPayload json.RawMessage `json:"payload,omitempty"`
}
