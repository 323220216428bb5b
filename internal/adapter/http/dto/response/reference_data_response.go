package response

import (
	"time"

	"repasse_imoveis/internal/domain/entities"
)

type RetentionConfigResponse struct {
	ID           string    `json:"id"`
	AdminPercent float64   `json:"percentual_admin"`
	BoletoFee    float64   `json:"taxa_boleto"`
	TransferFee  float64   `json:"taxa_transferencia"`
	Active       bool      `json:"ativo"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromRetentionConfig(c entities.RetentionConfig) RetentionConfigResponse {
	return RetentionConfigResponse{
		ID:           c.ID,
		AdminPercent: c.AdminPercent.InexactFloat64(),
		BoletoFee:    c.BoletoFee.InexactFloat64(),
		TransferFee:  c.TransferFee.InexactFloat64(),
		Active:       c.Active,
		UpdatedAt:    c.UpdatedAt,
	}
}

type CorrectionIndexResponse struct {
	Name       string  `json:"nome"`
	Month      int     `json:"mes"`
	Year       int     `json:"ano"`
	Percentage float64 `json:"percentual"`
	Source     string  `json:"fonte,omitempty"`
}

func FromCorrectionIndex(idx entities.CorrectionIndex) CorrectionIndexResponse {
	return CorrectionIndexResponse{
		Name:       string(idx.Name),
		Month:      idx.Period.Month,
		Year:       idx.Period.Year,
		Percentage: idx.Percentage.InexactFloat64(),
		Source:     idx.Source,
	}
}

func FromCorrectionIndexes(in []entities.CorrectionIndex) []CorrectionIndexResponse {
	out := make([]CorrectionIndexResponse, len(in))
	for i, idx := range in {
		out[i] = FromCorrectionIndex(idx)
	}
	return out
}
