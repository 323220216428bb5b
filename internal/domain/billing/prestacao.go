package billing

import (
	"sort"
	"strings"
	"time"

	"repasse_imoveis/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CalculationType selects how partial months are charged.
type CalculationType string

const (
	CalculationProporcional CalculationType = "proporcional"
	CalculationIntegral     CalculationType = "integral"
)

// PrestacaoEntry is an extra line of a move-in/move-out statement.
type PrestacaoEntry struct {
	Description string
	Value       decimal.Decimal
	Kind        EntryKind
}

// PrestacaoInput describes a statement. MonthlyValues is keyed by YYYY-MM. MoveIn and
// MoveOut bound the occupation; when omitted the months are fully occupied. Malformed
// lists fields the caller could not decode; they are reported with every other violation.
type PrestacaoInput struct {
	ContractID      string
	Type            CalculationType
	MonthlyValues   map[string]decimal.Decimal
	MoveIn          *time.Time
	MoveOut         *time.Time
	DiscountPercent decimal.Decimal
	PenaltyPercent  decimal.Decimal
	Entries         []PrestacaoEntry
	Malformed       []string
}

// PrestacaoLine is the charge of one month.
type PrestacaoLine struct {
	Month        string
	MonthlyValue decimal.Decimal
	OccupiedDays int
	DaysInMonth  int
	Charged      decimal.Decimal
}

// PrestacaoResult is the computed statement. Nothing about it is persisted.
type PrestacaoResult struct {
	Type     CalculationType
	Lines    []PrestacaoLine
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Penalty  decimal.Decimal
	Debits   decimal.Decimal
	Credits  decimal.Decimal
	Total    decimal.Decimal
}

// CalculatePrestacao computes a move-in/move-out statement.
//
// total = subtotal - discount + penalty + debits - credits, where discount and penalty
// are percentages of the subtotal. Every amount is rounded to cents.
func CalculatePrestacao(in PrestacaoInput) (PrestacaoResult, error) {
	var v violations
	for _, m := range in.Malformed {
		v.add("%s", m)
	}
	if strings.TrimSpace(in.ContractID) == "" {
		v.add("contrato_id is required")
	}
	if in.Type != CalculationProporcional && in.Type != CalculationIntegral {
		v.add("tipo_calculo must be %s or %s", CalculationProporcional, CalculationIntegral)
	}
	if len(in.MonthlyValues) == 0 {
		v.add("at least one month is required")
	}
	if in.MoveIn != nil && in.MoveOut != nil && !dateOnly(*in.MoveOut).After(dateOnly(*in.MoveIn)) {
		v.add("data_saida must be after data_entrada")
	}
	if in.DiscountPercent.IsNegative() || in.DiscountPercent.GreaterThan(hundred) {
		v.add("percentual_desconto must be between 0 and 100")
	}
	if in.PenaltyPercent.IsNegative() {
		v.add("percentual_multa must not be negative")
	}

	positive := false
	keys := make([]string, 0, len(in.MonthlyValues))
	periods := make(map[string]entities.Period, len(in.MonthlyValues))
	for key, value := range in.MonthlyValues {
		p, err := entities.ParsePeriodKey(key)
		if err != nil {
			v.add("%s", err.Error())
			continue
		}
		if value.IsNegative() {
			v.add("month %s: value must not be negative", key)
		}
		if value.IsPositive() {
			positive = true
		}
		keys = append(keys, key)
		periods[key] = p
	}
	if len(in.MonthlyValues) > 0 && !positive {
		v.add("at least one monthly value must be positive")
	}
	for i, e := range in.Entries {
		if strings.TrimSpace(e.Description) == "" {
			v.add("lancamento %d: descricao is required", i+1)
		}
		if e.Value.IsNegative() {
			v.add("lancamento %d: valor must not be negative", i+1)
		}
		if e.Kind != EntryKindDebito && e.Kind != EntryKindCredito {
			v.add("lancamento %d: tipo must be %s or %s", i+1, EntryKindDebito, EntryKindCredito)
		}
	}
	if err := v.err(); err != nil {
		return PrestacaoResult{}, err
	}
	sort.Strings(keys)

	out := PrestacaoResult{
		Type:     in.Type,
		Subtotal: decimal.Zero,
		Debits:   decimal.Zero,
		Credits:  decimal.Zero,
	}
	for _, key := range keys {
		line := chargeMonth(in, periods[key], in.MonthlyValues[key])
		line.Month = key
		out.Lines = append(out.Lines, line)
		out.Subtotal = out.Subtotal.Add(line.Charged)
	}
	for _, e := range in.Entries {
		if e.Kind == EntryKindCredito {
			out.Credits = out.Credits.Add(RoundCents(e.Value))
		} else {
			out.Debits = out.Debits.Add(RoundCents(e.Value))
		}
	}
	out.Discount = percentOf(out.Subtotal, in.DiscountPercent)
	out.Penalty = percentOf(out.Subtotal, in.PenaltyPercent)
	out.Total = out.Subtotal.Sub(out.Discount).Add(out.Penalty).Add(out.Debits).Sub(out.Credits)
	return out, nil
}

func chargeMonth(in PrestacaoInput, p entities.Period, value decimal.Decimal) PrestacaoLine {
	first := p.FirstDay()
	last := first.AddDate(0, 1, -1)
	days := last.Day()
	line := PrestacaoLine{MonthlyValue: value, DaysInMonth: days, OccupiedDays: days}

	if in.Type == CalculationIntegral {
		line.Charged = RoundCents(value)
		return line
	}

	from, to := first, last
	if in.MoveIn != nil && dateOnly(*in.MoveIn).After(from) {
		from = dateOnly(*in.MoveIn)
	}
	if in.MoveOut != nil && dateOnly(*in.MoveOut).Before(to) {
		to = dateOnly(*in.MoveOut)
	}
	occupied := 0
	if !to.Before(from) {
		occupied = int(to.Sub(from).Hours()/24) + 1
	}
	line.OccupiedDays = occupied
	line.Charged = RoundCents(value.Mul(decimal.NewFromInt(int64(occupied))).Div(decimal.NewFromInt(int64(days))))
	return line
}
