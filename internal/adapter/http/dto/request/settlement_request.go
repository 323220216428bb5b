package request

import (
	"strings"
	"time"

	"repasse_imoveis/internal/domain/billing"

	"github.com/shopspring/decimal"
)

type CreateSettlementRequest struct {
	InvoiceID string `json:"boleto_id" binding:"required"`
}

type ConfirmPayoutRequest struct {
	Reference string `json:"comprovante_pix" binding:"required"`
	PaidAt    string `json:"data_repasse" binding:"omitempty,datetime=2006-01-02"`
}

func (r ConfirmPayoutRequest) ResolvePaidAt() time.Time {
	if d := parseDate(r.PaidAt); d != nil {
		return *d
	}
	return time.Time{}
}

type PrestacaoEntryRequest struct {
	Description string  `json:"descricao"`
	Value       float64 `json:"valor"`
	Kind        string  `json:"tipo"`
}

// PrestacaoRequest carries no binding rules. The calculator checks it so every problem,
// malformed dates included, is reported at once.
type PrestacaoRequest struct {
	ContractID      string                  `json:"contrato_id"`
	MoveIn          string                  `json:"data_entrada"`
	MoveOut         string                  `json:"data_saida"`
	Type            string                  `json:"tipo_calculo"`
	MonthlyValues   map[string]float64      `json:"valores_mensais"`
	DiscountPercent float64                 `json:"percentual_desconto"`
	PenaltyPercent  float64                 `json:"percentual_multa"`
	Entries         []PrestacaoEntryRequest `json:"lancamentos"`
}

func (r PrestacaoRequest) ToInput() billing.PrestacaoInput {
	in := billing.PrestacaoInput{
		ContractID:      strings.TrimSpace(r.ContractID),
		Type:            billing.CalculationType(strings.ToLower(strings.TrimSpace(r.Type))),
		MonthlyValues:   make(map[string]decimal.Decimal, len(r.MonthlyValues)),
		DiscountPercent: decimal.NewFromFloat(r.DiscountPercent),
		PenaltyPercent:  decimal.NewFromFloat(r.PenaltyPercent),
	}
	var msg string
	if in.MoveIn, msg = parseDateField("data_entrada", r.MoveIn); msg != "" {
		in.Malformed = append(in.Malformed, msg)
	}
	if in.MoveOut, msg = parseDateField("data_saida", r.MoveOut); msg != "" {
		in.Malformed = append(in.Malformed, msg)
	}
	for k, v := range r.MonthlyValues {
		in.MonthlyValues[strings.TrimSpace(k)] = decimal.NewFromFloat(v)
	}
	for _, e := range r.Entries {
		in.Entries = append(in.Entries, billing.PrestacaoEntry{
			Description: e.Description,
			Value:       decimal.NewFromFloat(e.Value),
			Kind:        billing.EntryKind(strings.ToLower(strings.TrimSpace(e.Kind))),
		})
	}
	return in
}
