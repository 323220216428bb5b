package entities

import (
	"fmt"
	"time"
)

// Period is a billing month (competência).
type Period struct {
	Month int `json:"mes"`
	Year  int `json:"ano"`
}

// PeriodOf returns the billing period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

func (p Period) IsValid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= 1900
}

// Before reports whether p is strictly earlier than o.
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}

// FirstDay returns midnight UTC of the first day of the period.
func (p Period) FirstDay() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// Key renders the period as YYYY-MM.
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// ParsePeriodKey parses a YYYY-MM key.
func ParsePeriodKey(key string) (Period, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: expected YYYY-MM", key)
	}
	return PeriodOf(t), nil
}
