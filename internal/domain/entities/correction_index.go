package entities

import "github.com/shopspring/decimal"

// IndexName is a published inflation index used to correct overdue amounts.
type IndexName string

const (
	IndexIGPM IndexName = "IGPM"
	IndexIPCA IndexName = "IPCA"
)

func (n IndexName) IsValid() bool {
	return n == IndexIGPM || n == IndexIPCA
}

// CorrectionIndex (índice de correção) is one monthly index publication.
//
// Storage model (DynamoDB):
//   - PK: id ("<name>#<YYYY-MM>"), one record per (index, month, year)
type CorrectionIndex struct {
	Name       IndexName       `json:"nome"`
	Period     Period          `json:"competencia"`
	Percentage decimal.Decimal `json:"percentual"`
	Source     string          `json:"fonte"`
}

// CorrectionIndexKey builds the storage key for an index publication.
func CorrectionIndexKey(name IndexName, p Period) string {
	return string(name) + "#" + p.Key()
}
