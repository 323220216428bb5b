package billing

import (
	"fmt"
	"time"

	"repasse_imoveis/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// LateFeeRates are the contractual late-payment rates.
//
// Interest accrues simply (no compounding) at DailyInterestRate per day late. The
// penalty is a flat percentage applied once when the invoice is late at all.
type LateFeeRates struct {
	DailyInterestRate decimal.Decimal
	PenaltyRate       decimal.Decimal
}

// DefaultLateFeeRates is 1% a month of interest (÷30 per day) and a 2% penalty.
func DefaultLateFeeRates() LateFeeRates {
	return NewLateFeeRates(decimal.RequireFromString("0.01"), decimal.RequireFromString("0.02"))
}

// NewLateFeeRates derives the daily rate from a monthly one.
func NewLateFeeRates(monthlyInterest, penalty decimal.Decimal) LateFeeRates {
	return LateFeeRates{
		DailyInterestRate: monthlyInterest.Div(thirty),
		PenaltyRate:       penalty,
	}
}

// LateFeeCalculator recomputes surcharge for every surchargeable component.
type LateFeeCalculator struct {
	rates LateFeeRates
}

func NewLateFeeCalculator(rates LateFeeRates) LateFeeCalculator {
	return LateFeeCalculator{rates: rates}
}

// DaysLate counts whole calendar days from due to asOf, never below zero.
func DaysLate(due, asOf time.Time) int {
	d := dateOnly(due)
	a := dateOnly(asOf)
	if !a.After(d) {
		return 0
	}
	return int(a.Sub(d).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Recompute returns a copy of inv whose surcharge fields reflect asOf and index.
//
// Surcharge is always derived from OriginalValue, so repeated calls with the same
// inputs give identical results and a new asOf replaces the previous surcharge. index
// is the publication for the invoice's due month; nil means none was found, in which
// case correction is zero and a warning is returned.
func (c LateFeeCalculator) Recompute(inv entities.Invoice, asOf time.Time, index *entities.CorrectionIndex) (entities.Invoice, []Warning) {
	out := inv.Clone()
	days := DaysLate(inv.DueDate, asOf)

	var warnings []Warning
	if days > 0 && index == nil && hasSurchargeable(out) {
		warnings = append(warnings, Warning{
			Code:    WarningMissingCorrectionIndex,
			Message: fmt.Sprintf("no correction index for %s; correction treated as zero", entities.PeriodOf(inv.DueDate).Key()),
		})
	}

	for i := range out.Components {
		out.Components[i] = c.surcharge(out.Components[i], days, index)
	}
	Totalize(&out)
	return out, warnings
}

func (c LateFeeCalculator) surcharge(comp entities.InvoiceComponent, days int, index *entities.CorrectionIndex) entities.InvoiceComponent {
	comp.Interest = decimal.Zero
	comp.Penalty = decimal.Zero
	comp.Correction = decimal.Zero
	comp.DaysLate = 0
	comp.FinalValue = comp.OriginalValue
	if !comp.Surchargeable || days == 0 || !comp.OriginalValue.IsPositive() {
		return comp
	}

	orig := comp.OriginalValue
	if index != nil {
		comp.Correction = percentOf(orig, index.Percentage)
	}
	comp.Interest = RoundCents(orig.Mul(c.rates.DailyInterestRate).Mul(decimal.NewFromInt(int64(days))))
	comp.Penalty = RoundCents(orig.Mul(c.rates.PenaltyRate))
	comp.DaysLate = days
	comp.FinalValue = orig.Add(comp.Correction).Add(comp.Interest).Add(comp.Penalty)
	return comp
}

func hasSurchargeable(inv entities.Invoice) bool {
	for _, comp := range inv.Components {
		if comp.Surchargeable && comp.OriginalValue.IsPositive() {
			return true
		}
	}
	return false
}
