package usecase

import (
	"context"
	"testing"
	"time"

	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/domain/entities"
	mock_interfaces "repasse_imoveis/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, time.May, 5, 9, 30, 0, 0, time.UTC)

type repoMocks struct {
	invoices    *mock_interfaces.MockIInvoiceRepository
	settlements *mock_interfaces.MockISettlementRepository
	contracts   *mock_interfaces.MockIContractRepository
	owners      *mock_interfaces.MockIOwnerRepository
	retention   *mock_interfaces.MockIRetentionConfigRepository
	indexes     *mock_interfaces.MockICorrectionIndexRepository
}

func newRepoMocks(ctrl *gomock.Controller) (repoMocks, Repositories) {
	m := repoMocks{
		invoices:    mock_interfaces.NewMockIInvoiceRepository(ctrl),
		settlements: mock_interfaces.NewMockISettlementRepository(ctrl),
		contracts:   mock_interfaces.NewMockIContractRepository(ctrl),
		owners:      mock_interfaces.NewMockIOwnerRepository(ctrl),
		retention:   mock_interfaces.NewMockIRetentionConfigRepository(ctrl),
		indexes:     mock_interfaces.NewMockICorrectionIndexRepository(ctrl),
	}
	return m, Repositories{
		Invoices:          m.invoices,
		Settlements:       m.settlements,
		Contracts:         m.contracts,
		Owners:            m.owners,
		RetentionConfigs:  m.retention,
		CorrectionIndexes: m.indexes,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testContract() entities.Contract {
	return entities.Contract{
		ID:              "ctr-1",
		PropertyLabel:   "Rua das Flores, 100",
		TenantName:      "Maria Souza",
		StartDate:       time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		DueDay:          10,
		CorrectionIndex: entities.IndexIGPM,
		Active:          true,
		MonthlyCharges: []entities.RecurringCharge{
			{Kind: entities.ChargeKindAluguel, Description: "Aluguel", Value: dec("1500.00"), Surchargeable: true},
		},
	}
}

func testOwners(pcts ...string) []entities.Owner {
	out := make([]entities.Owner, len(pcts))
	for i, p := range pcts {
		out[i] = entities.Owner{ID: "o" + string(rune('1'+i)), ContractID: "ctr-1", Name: "Proprietário", OwnershipPercent: dec(p), Active: true}
	}
	return out
}

func testRetention() entities.RetentionConfig {
	return entities.RetentionConfig{ID: entities.DefaultRetentionConfigID, AdminPercent: dec("10"), BoletoFee: dec("0"), TransferFee: dec("10.00"), Active: true}
}

// testInvoice is the May 2024 boleto of testContract in the given status.
func testInvoice(t *testing.T, status entities.InvoiceStatus) entities.Invoice {
	t.Helper()
	inv, err := billing.BuildInvoice(testContract(), entities.Period{Month: 5, Year: 2024}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inv.Status = status
	inv.Version = 2
	return inv
}

func expectSettlementInputs(m repoMocks, inv entities.Invoice, owners []entities.Owner, existing entities.SettlementRecord) {
	m.retention.EXPECT().GetByID(gomock.Any(), inv.ContractID).Return(entities.RetentionConfig{}, nil)
	m.retention.EXPECT().GetByID(gomock.Any(), entities.DefaultRetentionConfigID).Return(testRetention(), nil)
	m.owners.EXPECT().ListByContractID(gomock.Any(), inv.ContractID).Return(owners, nil)
	m.settlements.EXPECT().GetByInvoiceID(gomock.Any(), inv.ID).Return(existing, nil)
}

func releaseNoop(context.Context) error { return nil }
