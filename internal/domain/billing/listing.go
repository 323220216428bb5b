package billing

import (
	"sort"
	"strings"
	"time"

	"repasse_imoveis/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Sort keys accepted by QueryInvoices.
const (
	SortByDueDate = "data_vencimento"
	SortByTotal   = "valor_total"
	SortByPeriod  = "competencia"
	SortByTenant  = "inquilino"
	SortByStatus  = "status"
)

// InvoiceFilter narrows and orders an invoice listing. Zero values mean "any".
type InvoiceFilter struct {
	ContractID string
	Statuses   []entities.InvoiceStatus
	OwnerID    string
	Month      int
	Year       int
	MinTotal   *decimal.Decimal
	MaxTotal   *decimal.Decimal
	DueFrom    *time.Time
	DueTo      *time.Time
	Search     string
	SortBy     string
	Descending bool
	Page       int
	PageSize   int
}

// StatusStats aggregates the filtered invoices of one status.
type StatusStats struct {
	Count int
	Total decimal.Decimal
}

// InvoicePage is one page of a listing plus aggregates over every matching invoice.
type InvoicePage struct {
	Items      []entities.Invoice
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
	Stats      map[entities.InvoiceStatus]StatusStats
}

// Normalize fills defaults and clamps paging.
func (f InvoiceFilter) Normalize() InvoiceFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	switch f.SortBy {
	case SortByDueDate, SortByTotal, SortByPeriod, SortByTenant, SortByStatus:
	default:
		f.SortBy = SortByDueDate
	}
	f.Search = strings.ToLower(strings.TrimSpace(f.Search))
	return f
}

func (f InvoiceFilter) matches(inv entities.Invoice) bool {
	if f.ContractID != "" && inv.ContractID != f.ContractID {
		return false
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if inv.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.OwnerID != "" && !containsString(inv.OwnerIDs, f.OwnerID) {
		return false
	}
	if f.Month != 0 && inv.Period.Month != f.Month {
		return false
	}
	if f.Year != 0 && inv.Period.Year != f.Year {
		return false
	}
	if f.MinTotal != nil && inv.Total.LessThan(*f.MinTotal) {
		return false
	}
	if f.MaxTotal != nil && inv.Total.GreaterThan(*f.MaxTotal) {
		return false
	}
	if f.DueFrom != nil && dateOnly(inv.DueDate).Before(dateOnly(*f.DueFrom)) {
		return false
	}
	if f.DueTo != nil && dateOnly(inv.DueDate).After(dateOnly(*f.DueTo)) {
		return false
	}
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(inv.TenantName), f.Search) &&
		!strings.Contains(strings.ToLower(inv.PropertyLabel), f.Search) {
		return false
	}
	return true
}

// QueryInvoices filters, sorts and pages invoices in memory. Ties on the sort key are
// broken by invoice id so pages are stable.
func QueryInvoices(all []entities.Invoice, f InvoiceFilter) InvoicePage {
	f = f.Normalize()

	matched := make([]entities.Invoice, 0, len(all))
	stats := make(map[entities.InvoiceStatus]StatusStats)
	for _, inv := range all {
		if !f.matches(inv) {
			continue
		}
		matched = append(matched, inv)
		s := stats[inv.Status]
		s.Count++
		s.Total = s.Total.Add(inv.Total)
		stats[inv.Status] = s
	}

	sort.SliceStable(matched, func(i, j int) bool {
		c := compareInvoices(matched[i], matched[j], f.SortBy)
		if c == 0 {
			return matched[i].ID < matched[j].ID
		}
		if f.Descending {
			return c > 0
		}
		return c < 0
	})

	page := InvoicePage{
		Page:       f.Page,
		PageSize:   f.PageSize,
		TotalItems: len(matched),
		TotalPages: (len(matched) + f.PageSize - 1) / f.PageSize,
		Stats:      stats,
	}
	start := (f.Page - 1) * f.PageSize
	if start >= len(matched) {
		page.Items = []entities.Invoice{}
		return page
	}
	end := start + f.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	page.Items = matched[start:end]
	return page
}

func compareInvoices(a, b entities.Invoice, by string) int {
	switch by {
	case SortByTotal:
		return a.Total.Cmp(b.Total)
	case SortByPeriod:
		switch {
		case a.Period.Before(b.Period):
			return -1
		case b.Period.Before(a.Period):
			return 1
		}
		return 0
	case SortByTenant:
		return strings.Compare(strings.ToLower(a.TenantName), strings.ToLower(b.TenantName))
	case SortByStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	}
	return a.DueDate.Compare(b.DueDate)
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
