package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"repasse_imoveis/internal/domain/entities"
	appconfig "repasse_imoveis/internal/infrastructure/config"
	"repasse_imoveis/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/mperror"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const defaultTimeout = 5 * time.Second

// paymentGetter is the slice of the Mercado Pago payment client the verifier uses.
type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoVerifier looks PIX receipt references up as Mercado Pago payments.
type MercadoPagoVerifier struct {
	client   paymentGetter
	cb       *gobreaker.CircuitBreaker
	timeout  time.Duration
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IPayoutVerifier = (*MercadoPagoVerifier)(nil)

func NewMercadoPagoVerifier(cfg appconfig.MercadoPagoConfig, log *zap.Logger) (*MercadoPagoVerifier, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Mock {
		log.Info("[payment][verifier] mock mode enabled")
		return &MercadoPagoVerifier{mockMode: true, log: log}, nil
	}
	if cfg.AccessToken == "" {
		log.Error("[payment][verifier] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		log.Error("[payment][verifier] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][verifier] Mercado Pago client initialized")
	return newVerifier(payment.NewClient(sdkCfg), cfg.Timeout, log), nil
}

func newVerifier(client paymentGetter, timeout time.Duration, log *zap.Logger) *MercadoPagoVerifier {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &MercadoPagoVerifier{
		client:  client,
		cb:      newBreaker("mercadopago"),
		timeout: timeout,
		log:     log,
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		// an unknown receipt is an answer, not a provider failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, interfaces.ErrReceiptNotFound)
		},
	})
}

// VerifyReceipt fetches the payment behind reference. Unknown references yield
// ErrReceiptNotFound; transport failures and an open breaker yield
// ErrVerifierUnavailable.
func (v *MercadoPagoVerifier) VerifyReceipt(ctx context.Context, reference string, amount decimal.Decimal) (entities.PayoutReceipt, error) {
	if v.mockMode {
		now := time.Now().UTC()
		v.log.Info("[payment][verifier] mock receipt approved", zap.String("reference", reference))
		return entities.PayoutReceipt{
			Reference:  reference,
			Status:     entities.ReceiptStatusApproved,
			Amount:     amount,
			ApprovedAt: &now,
		}, nil
	}

	id, err := strconv.Atoi(strings.TrimSpace(reference))
	if err != nil || id <= 0 {
		v.log.Info("[payment][verifier] reference is not a payment id", zap.String("reference", reference))
		return entities.PayoutReceipt{}, interfaces.ErrReceiptNotFound
	}

	res, err := v.cb.Execute(func() (any, error) {
		callCtx, cancel := context.WithTimeout(ctx, v.timeout)
		defer cancel()
		resp, err := v.client.Get(callCtx, id)
		if isNotFound(err) {
			return nil, interfaces.ErrReceiptNotFound
		}
		return resp, err
	})
	if errors.Is(err, interfaces.ErrReceiptNotFound) {
		v.log.Info("[payment][verifier] receipt not found", zap.String("reference", reference))
		return entities.PayoutReceipt{}, err
	}
	if err != nil {
		v.log.Warn("[payment][verifier] provider call failed", zap.String("reference", reference), zap.Error(err))
		return entities.PayoutReceipt{}, fmt.Errorf("%w: %v", interfaces.ErrVerifierUnavailable, err)
	}

	resp, _ := res.(*payment.Response)
	if resp == nil {
		return entities.PayoutReceipt{}, interfaces.ErrReceiptNotFound
	}
	receipt := toReceipt(reference, resp)
	v.log.Info("[payment][verifier] receipt fetched",
		zap.String("reference", reference),
		zap.String("provider_status", resp.Status),
		zap.String("amount", receipt.Amount.String()),
	)
	return receipt, nil
}

func isNotFound(err error) bool {
	var re *mperror.ResponseError
	return errors.As(err, &re) && re.StatusCode == http.StatusNotFound
}

func toReceipt(reference string, resp *payment.Response) entities.PayoutReceipt {
	receipt := entities.PayoutReceipt{
		Reference: reference,
		Status:    receiptStatus(resp.Status),
		Amount:    decimal.NewFromFloat(resp.TransactionAmount).Round(2),
	}
	if !resp.DateApproved.IsZero() {
		approved := resp.DateApproved.UTC()
		receipt.ApprovedAt = &approved
	}
	if b, err := json.Marshal(resp); err == nil {
		receipt.RawPayload = b
	}
	return receipt
}

func receiptStatus(providerStatus string) entities.ReceiptStatus {
	switch providerStatus {
	case "approved":
		return entities.ReceiptStatusApproved
	case "pending", "in_process", "authorized":
		return entities.ReceiptStatusPending
	default:
		return entities.ReceiptStatusRejected
	}
}
