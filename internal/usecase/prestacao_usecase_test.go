package usecase

import (
	"context"
	"errors"
	"testing"

	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/domain/entities"
	mock_interfaces "repasse_imoveis/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func integralInput() billing.PrestacaoInput {
	return billing.PrestacaoInput{
		ContractID:    "ctr-1",
		Type:          billing.CalculationIntegral,
		MonthlyValues: map[string]decimal.Decimal{"2024-01": dec("1500"), "2024-02": dec("1500")},
	}
}

func TestPrestacaoUseCase_Calculate(t *testing.T) {
	t.Run("validation happens before any lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewPrestacaoUseCase(contracts, nil)

		_, err := uc.Calculate(context.Background(), billing.PrestacaoInput{})
		if !errors.Is(err, billing.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("contract not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewPrestacaoUseCase(contracts, nil)

		contracts.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(entities.Contract{}, nil)

		_, err := uc.Calculate(context.Background(), integralInput())
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewPrestacaoUseCase(contracts, nil)

		contracts.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(testContract(), nil)

		res, err := uc.Calculate(context.Background(), integralInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Total.StringFixed(2) != "3000.00" || len(res.Lines) != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("without contract repository", func(t *testing.T) {
		uc := NewPrestacaoUseCase(nil, nil)
		if _, err := uc.Calculate(context.Background(), integralInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
