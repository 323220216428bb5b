package interfaces

import (
	"context"
	"errors"

	"repasse_imoveis/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrReceiptNotFound     = errors.New("pix receipt not found at the payment provider")
	ErrVerifierUnavailable = errors.New("payment provider unavailable")
)

// IPayoutVerifier abstracts the payment provider used to check PIX transfer receipts
// (e.g. Mercado Pago) before a payout is marked REALIZADO.

type IPayoutVerifier interface {
	VerifyReceipt(ctx context.Context, reference string, amount decimal.Decimal) (entities.PayoutReceipt, error)
}
