package request

import (
	"strings"
	"time"

	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/domain/entities"
	"repasse_imoveis/internal/usecase"

	"github.com/shopspring/decimal"
)

// EntryRequest is an ad-hoc débito or crédito informed when generating or editing a boleto.
type EntryRequest struct {
	Description   string  `json:"descricao" binding:"required"`
	Value         float64 `json:"valor" binding:"gte=0"`
	Kind          string  `json:"tipo" binding:"required,oneof=debito credito"`
	ChargeKind    string  `json:"categoria"`
	Surchargeable bool    `json:"incide_acrescimo"`
}

func toEntries(in []EntryRequest) []billing.AdHocEntry {
	if len(in) == 0 {
		return nil
	}
	out := make([]billing.AdHocEntry, len(in))
	for i, e := range in {
		out[i] = billing.AdHocEntry{
			Description:   e.Description,
			Value:         e.Value,
			Kind:          billing.EntryKind(e.Kind),
			ChargeKind:    entities.ChargeKind(e.ChargeKind),
			Surchargeable: e.Surchargeable,
		}
	}
	return out
}

type GenerateInvoiceRequest struct {
	ContractID string         `json:"contrato_id" binding:"required"`
	Month      int            `json:"mes" binding:"required,min=1,max=12"`
	Year       int            `json:"ano" binding:"required,min=1900"`
	DueDate    string         `json:"data_vencimento" binding:"omitempty,datetime=2006-01-02"`
	Entries    []EntryRequest `json:"lancamentos" binding:"omitempty,dive"`
	Notes      string         `json:"observacoes"`
}

func (r GenerateInvoiceRequest) ToCommand() usecase.GenerateInvoiceCommand {
	return usecase.GenerateInvoiceCommand{
		ContractID: strings.TrimSpace(r.ContractID),
		Period:     entities.Period{Month: r.Month, Year: r.Year},
		DueDate:    parseDate(r.DueDate),
		Entries:    toEntries(r.Entries),
		Notes:      r.Notes,
	}
}

// ReferenceDateRequest carries the date late fees are computed at; empty means today.
type ReferenceDateRequest struct {
	ReferenceDate string `json:"data_referencia" binding:"omitempty,datetime=2006-01-02"`
}

func (r ReferenceDateRequest) ResolveDate(now time.Time) time.Time {
	if d := parseDate(r.ReferenceDate); d != nil {
		return *d
	}
	return now
}

type RecomputeSurchargeRequest struct {
	Index         string `json:"indice_correcao" binding:"omitempty,oneof=IGPM IPCA"`
	ReferenceDate string `json:"data_referencia" binding:"omitempty,datetime=2006-01-02"`
}

func (r RecomputeSurchargeRequest) ResolveIndex() entities.IndexName {
	return entities.IndexName(r.Index)
}

func (r RecomputeSurchargeRequest) ResolveDate() *time.Time {
	return parseDate(r.ReferenceDate)
}

type EditComponentsRequest struct {
	Entries []EntryRequest `json:"lancamentos" binding:"omitempty,dive"`
	Notes   *string        `json:"observacoes"`
}

func (r EditComponentsRequest) ToEntries() []billing.AdHocEntry {
	return toEntries(r.Entries)
}

type RegisterPaymentRequest struct {
	PaidAt string `json:"data_pagamento" binding:"omitempty,datetime=2006-01-02"`
}

// ResolvePaidAt returns the zero time when no date was informed; the use case then
// uses the current time.
func (r RegisterPaymentRequest) ResolvePaidAt() time.Time {
	if d := parseDate(r.PaidAt); d != nil {
		return *d
	}
	return time.Time{}
}

type CancelInvoiceRequest struct {
	Reason string `json:"motivo"`
}

// InvoiceListQuery is bound from the query string of the invoice listing.
// status may be repeated or comma separated.
type InvoiceListQuery struct {
	ContractID string   `form:"contrato_id"`
	Status     []string `form:"status"`
	OwnerID    string   `form:"proprietario_id"`
	Month      int      `form:"mes" binding:"omitempty,min=1,max=12"`
	Year       int      `form:"ano" binding:"omitempty,min=1900"`
	MinTotal   *float64 `form:"valor_min" binding:"omitempty,gte=0"`
	MaxTotal   *float64 `form:"valor_max" binding:"omitempty,gte=0"`
	DueFrom    string   `form:"vencimento_de" binding:"omitempty,datetime=2006-01-02"`
	DueTo      string   `form:"vencimento_ate" binding:"omitempty,datetime=2006-01-02"`
	Search     string   `form:"busca"`
	SortBy     string   `form:"ordenar_por" binding:"omitempty,oneof=data_vencimento valor_total competencia inquilino status"`
	Order      string   `form:"ordem" binding:"omitempty,oneof=asc desc"`
	Page       int      `form:"pagina" binding:"omitempty,min=1"`
	PageSize   int      `form:"por_pagina" binding:"omitempty,min=1,max=100"`
}

// ToFilter converts the query. Unknown status values are returned separately so the
// handler can reject them.
func (q InvoiceListQuery) ToFilter() (billing.InvoiceFilter, []string) {
	f := billing.InvoiceFilter{
		ContractID: strings.TrimSpace(q.ContractID),
		OwnerID:    strings.TrimSpace(q.OwnerID),
		Month:      q.Month,
		Year:       q.Year,
		DueFrom:    parseDate(q.DueFrom),
		DueTo:      parseDate(q.DueTo),
		Search:     q.Search,
		SortBy:     q.SortBy,
		Descending: q.Order == "desc",
		Page:       q.Page,
		PageSize:   q.PageSize,
	}
	if q.MinTotal != nil {
		v := decimal.NewFromFloat(*q.MinTotal)
		f.MinTotal = &v
	}
	if q.MaxTotal != nil {
		v := decimal.NewFromFloat(*q.MaxTotal)
		f.MaxTotal = &v
	}

	var invalid []string
	for _, raw := range q.Status {
		for _, s := range strings.Split(raw, ",") {
			st := entities.InvoiceStatus(strings.ToUpper(strings.TrimSpace(s)))
			if st == "" {
				continue
			}
			if !st.IsValid() {
				invalid = append(invalid, "status "+string(st)+" is unknown")
				continue
			}
			f.Statuses = append(f.Statuses, st)
		}
	}
	return f, invalid
}
