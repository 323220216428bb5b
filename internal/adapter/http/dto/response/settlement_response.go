package response

import (
	"time"

	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/domain/entities"
)

type RetainedValueResponse struct {
	Kind        string   `json:"tipo"`
	Description string   `json:"descricao"`
	Value       float64  `json:"valor"`
	Percent     *float64 `json:"percentual,omitempty"`
}

type PayoutResponse struct {
	OwnerID          string  `json:"proprietario_id"`
	OwnerName        string  `json:"proprietario_nome"`
	OwnershipPercent float64 `json:"percentual_participacao"`
	Value            float64 `json:"valor"`
	Status           string  `json:"status"`
	PaidAt           *string `json:"data_repasse,omitempty"`
	ReceiptReference string  `json:"comprovante_pix,omitempty"`
}

type SettlementResponse struct {
	ID             string                  `json:"id"`
	InvoiceID      string                  `json:"boleto_id"`
	ContractID     string                  `json:"contrato_id"`
	Month          int                     `json:"mes"`
	Year           int                     `json:"ano"`
	InvoiceTotal   float64                 `json:"valor_boleto"`
	TotalSurcharge float64                 `json:"valor_acrescimos"`
	TotalRetained  float64                 `json:"valor_total_retido"`
	TotalPayout    float64                 `json:"valor_total_repasse"`
	Status         string                  `json:"status"`
	RetainedValues []RetainedValueResponse `json:"valores_retidos"`
	Payouts        []PayoutResponse        `json:"repasses"`
	CreatedAt      time.Time               `json:"data_criacao"`
	TransferredAt  *time.Time              `json:"data_repasse,omitempty"`
	Version        int                     `json:"versao"`
}

func FromSettlement(s entities.SettlementRecord) SettlementResponse {
	res := SettlementResponse{
		ID:             s.ID,
		InvoiceID:      s.InvoiceID,
		ContractID:     s.ContractID,
		Month:          s.Period.Month,
		Year:           s.Period.Year,
		InvoiceTotal:   s.InvoiceTotal.InexactFloat64(),
		TotalSurcharge: s.TotalSurcharge.InexactFloat64(),
		TotalRetained:  s.TotalRetained.InexactFloat64(),
		TotalPayout:    s.TotalPayout.InexactFloat64(),
		Status:         string(s.Status),
		RetainedValues: make([]RetainedValueResponse, len(s.RetainedValues)),
		Payouts:        make([]PayoutResponse, len(s.Payouts)),
		CreatedAt:      s.CreatedAt,
		TransferredAt:  s.TransferredAt,
		Version:        s.Version,
	}
	for i, r := range s.RetainedValues {
		rv := RetainedValueResponse{Kind: string(r.Kind), Description: r.Description, Value: r.Value.InexactFloat64()}
		if r.Percent != nil {
			pct := r.Percent.InexactFloat64()
			rv.Percent = &pct
		}
		res.RetainedValues[i] = rv
	}
	for i, p := range s.Payouts {
		pr := PayoutResponse{
			OwnerID:          p.OwnerID,
			OwnerName:        p.OwnerName,
			OwnershipPercent: p.OwnershipPercent.InexactFloat64(),
			Value:            p.Value.InexactFloat64(),
			Status:           string(p.Status),
			ReceiptReference: p.ReceiptReference,
		}
		if p.PaidAt != nil {
			paid := formatDate(*p.PaidAt)
			pr.PaidAt = &paid
		}
		res.Payouts[i] = pr
	}
	return res
}

func FromSettlements(in []entities.SettlementRecord) []SettlementResponse {
	out := make([]SettlementResponse, len(in))
	for i, s := range in {
		out[i] = FromSettlement(s)
	}
	return out
}

type PrestacaoLineResponse struct {
	Month        string  `json:"mes"`
	MonthlyValue float64 `json:"valor_mensal"`
	OccupiedDays int     `json:"dias_ocupados"`
	DaysInMonth  int     `json:"dias_no_mes"`
	Charged      float64 `json:"valor_cobrado"`
}

type PrestacaoResponse struct {
	Type     string                  `json:"tipo_calculo"`
	Lines    []PrestacaoLineResponse `json:"meses"`
	Subtotal float64                 `json:"subtotal"`
	Discount float64                 `json:"desconto"`
	Penalty  float64                 `json:"multa"`
	Debits   float64                 `json:"debitos"`
	Credits  float64                 `json:"creditos"`
	Total    float64                 `json:"total"`
}

func FromPrestacao(r billing.PrestacaoResult) PrestacaoResponse {
	res := PrestacaoResponse{
		Type:     string(r.Type),
		Lines:    make([]PrestacaoLineResponse, len(r.Lines)),
		Subtotal: r.Subtotal.InexactFloat64(),
		Discount: r.Discount.InexactFloat64(),
		Penalty:  r.Penalty.InexactFloat64(),
		Debits:   r.Debits.InexactFloat64(),
		Credits:  r.Credits.InexactFloat64(),
		Total:    r.Total.InexactFloat64(),
	}
	for i, l := range r.Lines {
		res.Lines[i] = PrestacaoLineResponse{
			Month:        l.Month,
			MonthlyValue: l.MonthlyValue.InexactFloat64(),
			OccupiedDays: l.OccupiedDays,
			DaysInMonth:  l.DaysInMonth,
			Charged:      l.Charged.InexactFloat64(),
		}
	}
	return res
}
