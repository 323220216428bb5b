package billing

import (
	"math"
	"strconv"
	"strings"
	"time"

	"repasse_imoveis/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind is the direction of an ad-hoc entry.
type EntryKind string

const (
	EntryKindDebito  EntryKind = "debito"
	EntryKindCredito EntryKind = "credito"
)

// AdHocEntry is a one-off charge (débito) or discount (crédito) for a single period.
// Value is always informed as a non-negative amount; Kind gives the sign.
type AdHocEntry struct {
	Description   string
	Value         float64
	Kind          EntryKind
	ChargeKind    entities.ChargeKind
	Surchargeable bool
}

var invoiceNamespace = uuid.MustParse("6f1c9a52-7c1e-4c57-9e0b-3c3f0d1e8a41")

// InvoiceID is deterministic per contract and period so the same period can never be
// billed twice.
func InvoiceID(contractID string, p entities.Period) string {
	return uuid.NewSHA1(invoiceNamespace, []byte(contractID+"|"+p.Key())).String()
}

// SettlementID is deterministic per invoice: one prestação de contas per boleto.
func SettlementID(invoiceID string) string {
	return uuid.NewSHA1(invoiceNamespace, []byte("prestacao|"+invoiceID)).String()
}

func componentID(invoiceID string, idx int) string {
	return uuid.NewSHA1(invoiceNamespace, []byte(invoiceID+"|"+strconv.Itoa(idx))).String()
}

// DueDateFor returns the due date of a period for the contract's due day, clamped to
// the last day of short months.
func DueDateFor(c entities.Contract, p entities.Period) time.Time {
	day := c.DueDay
	if day < 1 {
		day = 1
	}
	last := p.FirstDay().AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(p.Year, time.Month(p.Month), day, 0, 0, 0, 0, time.UTC)
}

// BuildInvoice assembles the ordered components of a period from the contract's monthly
// values followed by the ad-hoc entries. It is pure: persistence belongs to the caller.
func BuildInvoice(c entities.Contract, p entities.Period, entries []AdHocEntry) (entities.Invoice, error) {
	var v violations
	if strings.TrimSpace(c.ID) == "" {
		v.add("contract id is required")
	}
	if !p.IsValid() {
		v.add("period %d/%d is invalid", p.Month, p.Year)
	} else if !c.Covers(p) {
		v.add("period %s is outside the active range of contract %s", p.Key(), c.ID)
	}
	for i, e := range entries {
		validateEntry(&v, i, e)
	}
	if err := v.err(); err != nil {
		return entities.Invoice{}, err
	}

	id := InvoiceID(c.ID, p)
	inv := entities.Invoice{
		ID:            id,
		ContractID:    c.ID,
		PropertyLabel: c.PropertyLabel,
		TenantName:    c.TenantName,
		Period:        p,
		DueDate:       DueDateFor(c, p),
		Status:        entities.InvoiceStatusAberta,
	}

	for _, rc := range c.MonthlyCharges {
		if rc.Value.IsZero() {
			continue
		}
		value := rc.Value
		surchargeable := rc.Surchargeable
		if rc.Kind == entities.ChargeKindDesconto {
			value = value.Abs().Neg()
			surchargeable = false
		}
		inv.Components = append(inv.Components, newComponent(id, len(inv.Components), rc.Kind, rc.Description, value, surchargeable, false))
	}

	for _, e := range entries {
		value := decimal.NewFromFloat(e.Value)
		kind := e.ChargeKind
		surchargeable := e.Surchargeable
		if e.Kind == EntryKindCredito {
			kind = entities.ChargeKindDesconto
			value = value.Neg()
			surchargeable = false
		} else if kind == "" || kind == entities.ChargeKindDesconto {
			kind = entities.ChargeKindTaxaExtra
		}
		inv.Components = append(inv.Components, newComponent(id, len(inv.Components), kind, strings.TrimSpace(e.Description), value, surchargeable, true))
	}

	if len(inv.Components) == 0 {
		return entities.Invoice{}, NewValidationError("invoice has no components for period " + p.Key())
	}
	Totalize(&inv)
	if inv.Total.IsNegative() {
		return entities.Invoice{}, NewValidationError("invoice total cannot be negative: " + inv.Total.StringFixed(2))
	}
	return inv, nil
}

func validateEntry(v *violations, i int, e AdHocEntry) {
	if strings.TrimSpace(e.Description) == "" {
		v.add("entry %d: description is required", i+1)
	}
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
		v.add("entry %d: value must be a finite number", i+1)
		return
	}
	if e.Value < 0 {
		v.add("entry %d: value must not be negative", i+1)
	}
	if !hasAtMostCents(decimal.NewFromFloat(e.Value)) {
		v.add("entry %d: value must have at most two decimal places", i+1)
	}
	if e.Kind != EntryKindDebito && e.Kind != EntryKindCredito {
		v.add("entry %d: kind must be %s or %s", i+1, EntryKindDebito, EntryKindCredito)
	}
	if e.ChargeKind != "" && !e.ChargeKind.IsValid() {
		v.add("entry %d: unknown charge kind %q", i+1, e.ChargeKind)
	}
}

func newComponent(invoiceID string, idx int, kind entities.ChargeKind, desc string, value decimal.Decimal, surchargeable, adHoc bool) entities.InvoiceComponent {
	if value.IsNegative() {
		surchargeable = false
	}
	return entities.InvoiceComponent{
		ID:            componentID(invoiceID, idx),
		InvoiceID:     invoiceID,
		Kind:          kind,
		Description:   desc,
		OriginalValue: value,
		FinalValue:    value,
		Surchargeable: surchargeable,
		Interest:      decimal.Zero,
		Penalty:       decimal.Zero,
		Correction:    decimal.Zero,
		AdHoc:         adHoc,
	}
}

// Totalize recomputes the invoice-level totals from its components.
func Totalize(inv *entities.Invoice) {
	total := decimal.Zero
	surcharge := decimal.Zero
	days := 0
	for _, c := range inv.Components {
		total = total.Add(c.FinalValue)
		surcharge = surcharge.Add(c.Surcharge())
		if c.DaysLate > days {
			days = c.DaysLate
		}
	}
	inv.Total = total
	inv.TotalSurcharge = surcharge
	inv.DaysLate = days
}
