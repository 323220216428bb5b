package billing

import (
	"repasse_imoveis/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var maxAdminPercent = decimal.NewFromInt(100)

// Retention is what the platform keeps from one paid invoice.
type Retention struct {
	Values []entities.RetainedValue
	Total  decimal.Decimal
}

// ComputeRetention applies the active configuration to a finalized invoice total.
// transfers is the number of owners that will receive a payout; each one costs a
// transfer fee. Zero-valued lines are omitted.
func ComputeRetention(invoiceTotal decimal.Decimal, cfg *entities.RetentionConfig, transfers int) (Retention, error) {
	if cfg == nil || !cfg.Active {
		return Retention{}, NewConfigurationError("no active retention configuration")
	}
	if cfg.AdminPercent.IsNegative() || cfg.AdminPercent.GreaterThanOrEqual(maxAdminPercent) {
		return Retention{}, NewConfigurationError("percentual_admin %s is outside [0, 100)", cfg.AdminPercent.String())
	}
	if cfg.BoletoFee.IsNegative() || cfg.TransferFee.IsNegative() {
		return Retention{}, NewConfigurationError("retention fees must not be negative")
	}
	if transfers < 0 {
		transfers = 0
	}

	admin := percentOf(invoiceTotal, cfg.AdminPercent)
	boleto := RoundCents(cfg.BoletoFee)
	transfer := RoundCents(cfg.TransferFee.Mul(decimal.NewFromInt(int64(transfers))))

	pct := cfg.AdminPercent
	lines := []entities.RetainedValue{
		{Kind: entities.RetentionKindAdmin, Description: "Taxa de administração", Value: admin, Percent: &pct},
		{Kind: entities.RetentionKindBoleto, Description: "Taxa de emissão do boleto", Value: boleto},
		{Kind: entities.RetentionKindTransfer, Description: "Taxa de transferência", Value: transfer},
	}

	out := Retention{Total: decimal.Zero}
	for _, l := range lines {
		if l.Value.IsZero() {
			continue
		}
		out.Values = append(out.Values, l)
		out.Total = out.Total.Add(l.Value)
	}
	return out, nil
}
