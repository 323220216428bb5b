package response

import (
	"time"

	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/domain/entities"
	"repasse_imoveis/internal/usecase"
)

type ComponentResponse struct {
	ID            string  `json:"id"`
	Kind          string  `json:"tipo"`
	Description   string  `json:"descricao"`
	OriginalValue float64 `json:"valor_original"`
	FinalValue    float64 `json:"valor_final"`
	Surchargeable bool    `json:"incide_acrescimo"`
	Interest      float64 `json:"juros"`
	Penalty       float64 `json:"multa"`
	Correction    float64 `json:"correcao"`
	DaysLate      int     `json:"dias_atraso"`
	AdHoc         bool    `json:"avulso"`
}

type InvoiceResponse struct {
	ID             string              `json:"id"`
	ContractID     string              `json:"contrato_id"`
	PropertyLabel  string              `json:"imovel"`
	TenantName     string              `json:"inquilino"`
	OwnerIDs       []string            `json:"proprietario_ids"`
	Month          int                 `json:"mes"`
	Year           int                 `json:"ano"`
	DueDate        string              `json:"data_vencimento"`
	PaidAt         *string             `json:"data_pagamento,omitempty"`
	GeneratedAt    time.Time           `json:"data_geracao"`
	Total          float64             `json:"valor_total"`
	TotalSurcharge float64             `json:"valor_acrescimos"`
	DaysLate       int                 `json:"dias_atraso"`
	Status         string              `json:"status"`
	Notes          string              `json:"observacoes,omitempty"`
	IndexOverride  string              `json:"indice_correcao,omitempty"`
	Components     []ComponentResponse `json:"componentes"`
	AllowedActions []string            `json:"acoes_permitidas"`
	Version        int                 `json:"versao"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type WarningResponse struct {
	Code    string `json:"codigo"`
	Message string `json:"mensagem"`
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func actions(in []billing.Action) []string {
	out := make([]string, len(in))
	for i, a := range in {
		out[i] = string(a)
	}
	return out
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	res := InvoiceResponse{
		ID:             inv.ID,
		ContractID:     inv.ContractID,
		PropertyLabel:  inv.PropertyLabel,
		TenantName:     inv.TenantName,
		OwnerIDs:       inv.OwnerIDs,
		Month:          inv.Period.Month,
		Year:           inv.Period.Year,
		DueDate:        formatDate(inv.DueDate),
		GeneratedAt:    inv.GeneratedAt,
		Total:          inv.Total.InexactFloat64(),
		TotalSurcharge: inv.TotalSurcharge.InexactFloat64(),
		DaysLate:       inv.DaysLate,
		Status:         string(inv.Status),
		Notes:          inv.Notes,
		IndexOverride:  string(inv.IndexOverride),
		Components:     make([]ComponentResponse, len(inv.Components)),
		AllowedActions: actions(billing.AllowedActions(inv.Status)),
		Version:        inv.Version,
		UpdatedAt:      inv.UpdatedAt,
	}
	if res.OwnerIDs == nil {
		res.OwnerIDs = []string{}
	}
	if inv.PaidAt != nil {
		paid := formatDate(*inv.PaidAt)
		res.PaidAt = &paid
	}
	for i, c := range inv.Components {
		res.Components[i] = ComponentResponse{
			ID:            c.ID,
			Kind:          string(c.Kind),
			Description:   c.Description,
			OriginalValue: c.OriginalValue.InexactFloat64(),
			FinalValue:    c.FinalValue.InexactFloat64(),
			Surchargeable: c.Surchargeable,
			Interest:      c.Interest.InexactFloat64(),
			Penalty:       c.Penalty.InexactFloat64(),
			Correction:    c.Correction.InexactFloat64(),
			DaysLate:      c.DaysLate,
			AdHoc:         c.AdHoc,
		}
	}
	return res
}

func FromWarnings(in []billing.Warning) []WarningResponse {
	out := make([]WarningResponse, len(in))
	for i, w := range in {
		out[i] = WarningResponse{Code: string(w.Code), Message: w.Message}
	}
	return out
}

// RecomputeResponse is returned by every operation that recomputes the surcharge.
type RecomputeResponse struct {
	Invoice       InvoiceResponse   `json:"boleto"`
	PreviousTotal float64           `json:"valor_anterior"`
	NewTotal      float64           `json:"valor_atualizado"`
	Warnings      []WarningResponse `json:"avisos"`
}

func FromRecompute(r usecase.RecomputeResult) RecomputeResponse {
	return RecomputeResponse{
		Invoice:       FromInvoice(r.Invoice),
		PreviousTotal: r.PreviousTotal.InexactFloat64(),
		NewTotal:      r.Invoice.Total.InexactFloat64(),
		Warnings:      FromWarnings(r.Warnings),
	}
}

type PaymentResponse struct {
	Invoice    InvoiceResponse    `json:"boleto"`
	Settlement SettlementResponse `json:"prestacao_contas"`
	Warnings   []WarningResponse  `json:"avisos"`
}

func FromPayment(r usecase.PaymentResult) PaymentResponse {
	return PaymentResponse{
		Invoice:    FromInvoice(r.Invoice),
		Settlement: FromSettlement(r.Settlement),
		Warnings:   FromWarnings(r.Warnings),
	}
}

type BookResponse struct {
	Invoice    InvoiceResponse    `json:"boleto"`
	Settlement SettlementResponse `json:"prestacao_contas"`
}

type DocumentResponse struct {
	Invoice     InvoiceResponse `json:"boleto"`
	GeneratedAt time.Time       `json:"gerado_em"`
}

func FromDocument(d usecase.InvoiceDocument) DocumentResponse {
	res := DocumentResponse{Invoice: FromInvoice(d.Invoice), GeneratedAt: d.GeneratedAt}
	res.Invoice.AllowedActions = actions(d.AllowedActions)
	return res
}

type StatusStatsResponse struct {
	Count int     `json:"quantidade"`
	Total float64 `json:"valor_total"`
}

type InvoicePageResponse struct {
	Items      []InvoiceResponse              `json:"itens"`
	Page       int                            `json:"pagina"`
	PageSize   int                            `json:"por_pagina"`
	TotalItems int                            `json:"total_itens"`
	TotalPages int                            `json:"total_paginas"`
	Stats      map[string]StatusStatsResponse `json:"estatisticas"`
}

func FromInvoicePage(p billing.InvoicePage) InvoicePageResponse {
	res := InvoicePageResponse{
		Items:      make([]InvoiceResponse, len(p.Items)),
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
		Stats:      make(map[string]StatusStatsResponse, len(p.Stats)),
	}
	for i, inv := range p.Items {
		res.Items[i] = FromInvoice(inv)
	}
	for st, s := range p.Stats {
		res.Stats[string(st)] = StatusStatsResponse{Count: s.Count, Total: s.Total.InexactFloat64()}
	}
	return res
}
