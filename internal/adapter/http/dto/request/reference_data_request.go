package request

import (
	"strings"

	"repasse_imoveis/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type RetentionConfigRequest struct {
	ID           string  `json:"id"`
	AdminPercent float64 `json:"percentual_admin" binding:"gte=0,lte=50"`
	BoletoFee    float64 `json:"taxa_boleto" binding:"gte=0"`
	TransferFee  float64 `json:"taxa_transferencia" binding:"gte=0"`
	Active       *bool   `json:"ativo"`
}

// ToEntity defaults ativo to true.
func (r RetentionConfigRequest) ToEntity() entities.RetentionConfig {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return entities.RetentionConfig{
		ID:           strings.TrimSpace(r.ID),
		AdminPercent: decimal.NewFromFloat(r.AdminPercent),
		BoletoFee:    decimal.NewFromFloat(r.BoletoFee),
		TransferFee:  decimal.NewFromFloat(r.TransferFee),
		Active:       active,
	}
}

type CorrectionIndexRequest struct {
	Name       string  `json:"nome" binding:"required,oneof=IGPM IPCA"`
	Month      int     `json:"mes" binding:"required,min=1,max=12"`
	Year       int     `json:"ano" binding:"required,min=1900"`
	Percentage float64 `json:"percentual" binding:"gte=-100,lte=100"`
	Source     string  `json:"fonte"`
}

func (r CorrectionIndexRequest) ToEntity() entities.CorrectionIndex {
	return entities.CorrectionIndex{
		Name:       entities.IndexName(r.Name),
		Period:     entities.Period{Month: r.Month, Year: r.Year},
		Percentage: decimal.NewFromFloat(r.Percentage),
		Source:     r.Source,
	}
}
