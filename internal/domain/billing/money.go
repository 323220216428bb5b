package billing

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	thirty  = decimal.NewFromInt(30)
)

// RoundCents rounds to two decimal places, half away from zero.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// percentOf returns value * percent / 100 rounded to cents.
func percentOf(value, percent decimal.Decimal) decimal.Decimal {
	return RoundCents(value.Mul(percent).Div(hundred))
}

// hasAtMostCents reports whether d has no more than two decimal places.
func hasAtMostCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}
