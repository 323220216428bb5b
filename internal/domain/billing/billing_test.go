package billing

import (
	"time"

	"repasse_imoveis/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func owner(id, pct string) entities.Owner {
	return entities.Owner{ID: id, Name: "Proprietário " + id, ContractID: "ctr-1", OwnershipPercent: d(pct), Active: true}
}

func rentContract(rent string) entities.Contract {
	return entities.Contract{
		ID:            "ctr-1",
		PropertyID:    "imv-1",
		PropertyLabel: "Rua das Flores, 100",
		TenantName:    "Maria Souza",
		StartDate:     date(2023, time.January, 1),
		DueDay:        10,
		Active:        true,
		MonthlyCharges: []entities.RecurringCharge{
			{Kind: entities.ChargeKindAluguel, Description: "Aluguel", Value: d(rent), Surchargeable: true},
		},
	}
}

func retentionConfig(admin, boleto, transfer string) *entities.RetentionConfig {
	return &entities.RetentionConfig{
		ID:           entities.DefaultRetentionConfigID,
		AdminPercent: d(admin),
		BoletoFee:    d(boleto),
		TransferFee:  d(transfer),
		Active:       true,
	}
}

func money(got decimal.Decimal) string {
	return got.StringFixed(2)
}
