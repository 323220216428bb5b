package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/domain/entities"
	"repasse_imoveis/internal/usecase/interfaces"
	mock_interfaces "repasse_imoveis/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSettlementUseCase(repos Repositories, verifier interfaces.IPayoutVerifier) *SettlementUseCase {
	uc := NewSettlementUseCase(repos, verifier, nil, time.Second, nil, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func bookedSettlement() entities.SettlementRecord {
	return entities.SettlementRecord{
		ID:         "set-1",
		InvoiceID:  "inv-1",
		ContractID: "ctr-1",
		Status:     entities.SettlementStatusProcessada,
		Version:    3,
		Payouts: []entities.OwnerPayout{
			{SettlementID: "set-1", OwnerID: "o1", Value: dec("798.00"), Status: entities.PayoutStatusPendente},
			{SettlementID: "set-1", OwnerID: "o2", Value: dec("532.00"), Status: entities.PayoutStatusPendente},
		},
	}
}

func TestSettlementUseCase_CreateOrRecompute(t *testing.T) {
	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		uc := newSettlementUseCase(repos, nil)

		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-x").Return(entities.Invoice{}, nil)

		_, err := uc.CreateOrRecompute(context.Background(), "inv-x")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("unpaid invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		uc := newSettlementUseCase(repos, nil)

		inv := testInvoice(t, entities.InvoiceStatusEmAtraso)
		m.invoices.EXPECT().GetByID(gomock.Any(), inv.ID).Return(inv, nil)
		expectSettlementInputs(m, inv, testOwners("100"), entities.SettlementRecord{})

		_, err := uc.CreateOrRecompute(context.Background(), inv.ID)
		if !errors.Is(err, billing.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("missing retention configuration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		uc := newSettlementUseCase(repos, nil)

		inv := testInvoice(t, entities.InvoiceStatusPaga)
		m.invoices.EXPECT().GetByID(gomock.Any(), inv.ID).Return(inv, nil)
		m.retention.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.RetentionConfig{}, nil).Times(2)
		m.owners.EXPECT().ListByContractID(gomock.Any(), "ctr-1").Return(testOwners("100"), nil)
		m.settlements.EXPECT().GetByInvoiceID(gomock.Any(), inv.ID).Return(entities.SettlementRecord{}, nil)

		_, err := uc.CreateOrRecompute(context.Background(), inv.ID)
		if !errors.Is(err, billing.ErrConfiguration) {
			t.Fatalf("expected ErrConfiguration, got %v", err)
		}
	})

	t.Run("contract specific configuration wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		uc := newSettlementUseCase(repos, nil)

		inv := testInvoice(t, entities.InvoiceStatusPaga)
		special := entities.RetentionConfig{ID: "ctr-1", AdminPercent: dec("8"), BoletoFee: dec("3.50"), Active: true}
		m.invoices.EXPECT().GetByID(gomock.Any(), inv.ID).Return(inv, nil)
		m.retention.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(special, nil)
		m.owners.EXPECT().ListByContractID(gomock.Any(), "ctr-1").Return(testOwners("100"), nil)
		m.settlements.EXPECT().GetByInvoiceID(gomock.Any(), inv.ID).Return(entities.SettlementRecord{}, nil)
		m.settlements.EXPECT().Replace(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, _ entities.Invoice, rec entities.SettlementRecord, _ []entities.OwnerPayout) (entities.SettlementRecord, error) {
				return rec, nil
			},
		)

		rec, err := uc.CreateOrRecompute(context.Background(), inv.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 8% of 1500 = 120.00 plus 3.50 boleto fee
		if rec.TotalRetained.StringFixed(2) != "123.50" || rec.TotalPayout.StringFixed(2) != "1376.50" {
			t.Fatalf("unexpected totals: %s / %s", rec.TotalRetained, rec.TotalPayout)
		}
		if rec.ID != billing.SettlementID(inv.ID) {
			t.Fatalf("expected deterministic settlement id")
		}
	})

	t.Run("recompute replaces previous payouts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		uc := newSettlementUseCase(repos, nil)

		inv := testInvoice(t, entities.InvoiceStatusPaga)
		previous := entities.SettlementRecord{
			ID:        billing.SettlementID(inv.ID),
			InvoiceID: inv.ID,
			Status:    entities.SettlementStatusPendente,
			Version:   4,
			CreatedAt: fixedNow.Add(-time.Hour),
			Payouts:   []entities.OwnerPayout{{OwnerID: "old", Value: dec("1330.00")}},
		}
		m.invoices.EXPECT().GetByID(gomock.Any(), inv.ID).Return(inv, nil)
		expectSettlementInputs(m, inv, testOwners("50", "50"), previous)
		m.settlements.EXPECT().Replace(gomock.Any(), gomock.Any(), gomock.Any(), previous.Payouts).DoAndReturn(
			func(_ context.Context, _ entities.Invoice, rec entities.SettlementRecord, _ []entities.OwnerPayout) (entities.SettlementRecord, error) {
				if rec.Version != 4 || !rec.CreatedAt.Equal(previous.CreatedAt) {
					t.Fatalf("expected identity of previous record to be kept: %+v", rec)
				}
				return rec, nil
			},
		)

		rec, err := uc.CreateOrRecompute(context.Background(), inv.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rec.Payouts) != 2 || rec.Payouts[0].Value.StringFixed(2) != "665.00" {
			t.Fatalf("unexpected payouts: %+v", rec.Payouts)
		}
	})

	t.Run("booked settlement is never recomputed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		uc := newSettlementUseCase(repos, nil)

		inv := testInvoice(t, entities.InvoiceStatusPaga)
		m.invoices.EXPECT().GetByID(gomock.Any(), inv.ID).Return(inv, nil)
		expectSettlementInputs(m, inv, testOwners("100"), bookedSettlement())

		_, err := uc.CreateOrRecompute(context.Background(), inv.ID)
		if !errors.Is(err, billing.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("concurrent replace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		uc := NewSettlementUseCase(repos, nil, nil, 0, metrics, nil)

		inv := testInvoice(t, entities.InvoiceStatusPaga)
		m.invoices.EXPECT().GetByID(gomock.Any(), inv.ID).Return(inv, nil)
		expectSettlementInputs(m, inv, testOwners("100"), entities.SettlementRecord{})
		metrics.EXPECT().SettlementComputed("success", gomock.Any())
		metrics.EXPECT().ConcurrentModification("prestacao_contas")
		m.settlements.EXPECT().Replace(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.SettlementRecord{}, interfaces.ErrVersionConflict)

		_, err := uc.CreateOrRecompute(context.Background(), inv.ID)
		if !errors.Is(err, billing.ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestSettlementUseCase_Reads(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := newSettlementUseCase(Repositories{}, nil)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidSettlementID) {
			t.Fatalf("expected ErrInvalidSettlementID, got %v", err)
		}
		if _, err := uc.ListByContractID(context.Background(), ""); !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		uc := newSettlementUseCase(repos, nil)

		m.settlements.EXPECT().GetByID(gomock.Any(), "set-x").Return(entities.SettlementRecord{}, nil)

		if _, err := uc.GetByID(context.Background(), "set-x"); !errors.Is(err, ErrSettlementNotFound) {
			t.Fatalf("expected ErrSettlementNotFound, got %v", err)
		}
	})

	t.Run("list by contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		uc := newSettlementUseCase(repos, nil)

		m.settlements.EXPECT().ListByContractID(gomock.Any(), "ctr-1").Return([]entities.SettlementRecord{bookedSettlement()}, nil)

		out, err := uc.ListByContractID(context.Background(), " ctr-1 ")
		if err != nil || len(out) != 1 {
			t.Fatalf("unexpected result err=%v len=%d", err, len(out))
		}
	})
}

func TestSettlementUseCase_ConfirmPayout(t *testing.T) {
	paidAt := time.Date(2024, time.May, 20, 14, 0, 0, 0, time.UTC)

	t.Run("unknown owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		uc := newSettlementUseCase(repos, nil)

		m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(bookedSettlement(), nil)

		_, err := uc.ConfirmPayout(context.Background(), "set-1", "o9", "E123", paidAt)
		if !errors.Is(err, billing.ErrPayoutNotFound) {
			t.Fatalf("expected ErrPayoutNotFound, got %v", err)
		}
	})

	t.Run("settlement not booked yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		uc := newSettlementUseCase(repos, nil)

		rec := bookedSettlement()
		rec.Status = entities.SettlementStatusPendente
		m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(rec, nil)

		_, err := uc.ConfirmPayout(context.Background(), "set-1", "o1", "E123", paidAt)
		if !errors.Is(err, billing.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("same receipt twice is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		verifier := mock_interfaces.NewMockIPayoutVerifier(ctrl)
		uc := newSettlementUseCase(repos, verifier)

		rec := bookedSettlement()
		rec.Payouts[0].Status = entities.PayoutStatusRealizado
		rec.Payouts[0].ReceiptReference = "E123"
		m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(rec, nil)

		out, err := uc.ConfirmPayout(context.Background(), "set-1", "o1", "E123", paidAt)
		if err != nil || out.Version != 3 {
			t.Fatalf("unexpected result err=%v out=%+v", err, out)
		}
	})

	t.Run("receipt not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		verifier := mock_interfaces.NewMockIPayoutVerifier(ctrl)
		uc := newSettlementUseCase(repos, verifier)

		m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(bookedSettlement(), nil)
		verifier.EXPECT().VerifyReceipt(gomock.Any(), "E123", dec("798.00")).
			Return(entities.PayoutReceipt{Reference: "E123", Status: entities.ReceiptStatusPending}, nil)

		_, err := uc.ConfirmPayout(context.Background(), "set-1", "o1", "E123", paidAt)
		if !errors.Is(err, ErrReceiptNotApproved) {
			t.Fatalf("expected ErrReceiptNotApproved, got %v", err)
		}
	})

	t.Run("receipt amount differs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		verifier := mock_interfaces.NewMockIPayoutVerifier(ctrl)
		uc := newSettlementUseCase(repos, verifier)

		m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(bookedSettlement(), nil)
		verifier.EXPECT().VerifyReceipt(gomock.Any(), "E123", gomock.Any()).
			Return(entities.PayoutReceipt{Reference: "E123", Status: entities.ReceiptStatusApproved, Amount: dec("700.00")}, nil)

		_, err := uc.ConfirmPayout(context.Background(), "set-1", "o1", "E123", paidAt)
		if !errors.Is(err, ErrReceiptAmountDiffers) {
			t.Fatalf("expected ErrReceiptAmountDiffers, got %v", err)
		}
	})

	t.Run("confirms one payout and keeps settlement processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		verifier := mock_interfaces.NewMockIPayoutVerifier(ctrl)
		uc := newSettlementUseCase(repos, verifier)

		after := bookedSettlement()
		after.Payouts[0].Status = entities.PayoutStatusRealizado
		after.Payouts[0].ReceiptReference = "E123"

		gomock.InOrder(
			m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(bookedSettlement(), nil),
			verifier.EXPECT().VerifyReceipt(gomock.Any(), "E123", dec("798.00")).
				Return(entities.PayoutReceipt{Reference: "E123", Status: entities.ReceiptStatusApproved, Amount: dec("798.00")}, nil),
			m.settlements.EXPECT().ConfirmPayout(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p entities.OwnerPayout) error {
					if p.OwnerID != "o1" || p.Status != entities.PayoutStatusRealizado || p.PaidAt == nil || !p.PaidAt.Equal(paidAt) {
						t.Fatalf("unexpected payout: %+v", p)
					}
					return nil
				},
			),
			m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(after, nil),
		)

		out, err := uc.ConfirmPayout(context.Background(), "set-1", "o1", " E123 ", paidAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.SettlementStatusProcessada {
			t.Fatalf("expected PROCESSADA, got %s", out.Status)
		}
	})

	t.Run("last confirmation closes the settlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		uc := newSettlementUseCase(repos, nil)

		before := bookedSettlement()
		first := paidAt.Add(-time.Hour)
		before.Payouts[0].Status = entities.PayoutStatusRealizado
		before.Payouts[0].ReceiptReference = "E1"
		before.Payouts[0].PaidAt = &first
		after := before
		after.Payouts = append([]entities.OwnerPayout(nil), before.Payouts...)
		after.Payouts[1].Status = entities.PayoutStatusRealizado
		after.Payouts[1].ReceiptReference = "E2"
		after.Payouts[1].PaidAt = &paidAt

		gomock.InOrder(
			m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(before, nil),
			m.settlements.EXPECT().ConfirmPayout(gomock.Any(), gomock.Any()).Return(nil),
			m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(after, nil),
			m.settlements.EXPECT().MarkTransferred(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, rec entities.SettlementRecord) (entities.SettlementRecord, error) {
					if rec.Status != entities.SettlementStatusRepassada || rec.TransferredAt == nil || !rec.TransferredAt.Equal(paidAt) {
						t.Fatalf("unexpected record: %+v", rec)
					}
					rec.Version++
					return rec, nil
				},
			),
		)

		out, err := uc.ConfirmPayout(context.Background(), "set-1", "o2", "E2", paidAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.SettlementStatusRepassada || out.Version != 4 {
			t.Fatalf("unexpected result: %+v", out)
		}
	})

	t.Run("lost race to a confirmation with the same receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		uc := newSettlementUseCase(repos, nil)

		winner := bookedSettlement()
		winner.Payouts[0].Status = entities.PayoutStatusRealizado
		winner.Payouts[0].ReceiptReference = "E123"

		gomock.InOrder(
			m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(bookedSettlement(), nil),
			m.settlements.EXPECT().ConfirmPayout(gomock.Any(), gomock.Any()).Return(interfaces.ErrVersionConflict),
			m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(winner, nil),
			m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(winner, nil),
		)

		out, err := uc.ConfirmPayout(context.Background(), "set-1", "o1", "E123", paidAt)
		if err != nil || out.Payouts[0].ReceiptReference != "E123" || out.Status != entities.SettlementStatusProcessada {
			t.Fatalf("unexpected result err=%v out=%+v", err, out)
		}
	})

	t.Run("lost race closes a settlement the winner left open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		uc := newSettlementUseCase(repos, nil)

		before := bookedSettlement()
		before.Payouts[0].Status = entities.PayoutStatusRealizado
		before.Payouts[0].ReceiptReference = "E1"
		before.Payouts[0].PaidAt = &paidAt
		winner := before
		winner.Payouts = append([]entities.OwnerPayout(nil), before.Payouts...)
		winner.Payouts[1].Status = entities.PayoutStatusRealizado
		winner.Payouts[1].ReceiptReference = "E2"
		winner.Payouts[1].PaidAt = &paidAt

		gomock.InOrder(
			m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(before, nil),
			m.settlements.EXPECT().ConfirmPayout(gomock.Any(), gomock.Any()).Return(interfaces.ErrVersionConflict),
			m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(winner, nil),
			m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(winner, nil),
			m.settlements.EXPECT().MarkTransferred(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, rec entities.SettlementRecord) (entities.SettlementRecord, error) {
					rec.Version++
					return rec, nil
				},
			),
		)

		out, err := uc.ConfirmPayout(context.Background(), "set-1", "o2", "E2", paidAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.SettlementStatusRepassada || out.Version != 4 {
			t.Fatalf("unexpected result: %+v", out)
		}
	})

	t.Run("lost race to a different receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newRepoMocks(ctrl)
		uc := newSettlementUseCase(repos, nil)

		winner := bookedSettlement()
		winner.Payouts[0].Status = entities.PayoutStatusRealizado
		winner.Payouts[0].ReceiptReference = "E999"

		gomock.InOrder(
			m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(bookedSettlement(), nil),
			m.settlements.EXPECT().ConfirmPayout(gomock.Any(), gomock.Any()).Return(interfaces.ErrVersionConflict),
			m.settlements.EXPECT().GetByID(gomock.Any(), "set-1").Return(winner, nil),
		)

		_, err := uc.ConfirmPayout(context.Background(), "set-1", "o1", "E123", paidAt)
		if !errors.Is(err, billing.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}
