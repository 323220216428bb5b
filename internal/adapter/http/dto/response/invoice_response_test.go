package response

import (
	"testing"
	"time"

	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/domain/entities"
	"repasse_imoveis/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromInvoice(t *testing.T) {
	paid := time.Date(2024, time.May, 9, 15, 0, 0, 0, time.UTC)
	inv := entities.Invoice{
		ID:      "inv-1",
		Period:  entities.Period{Month: 5, Year: 2024},
		DueDate: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
		PaidAt:  &paid,
		Total:   decimal.RequireFromString("1025.00"),
		Status:  entities.InvoiceStatusPaga,
		Components: []entities.InvoiceComponent{
			{ID: "c1", Kind: entities.ChargeKindAluguel, OriginalValue: decimal.RequireFromString("1000"), FinalValue: decimal.RequireFromString("1025"), Interest: decimal.RequireFromString("5"), Penalty: decimal.RequireFromString("20")},
		},
	}

	res := FromInvoice(inv)
	if res.DueDate != "2024-05-10" || res.PaidAt == nil || *res.PaidAt != "2024-05-09" {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.Total != 1025 || res.Components[0].Interest != 5 || res.Components[0].Penalty != 20 {
		t.Fatalf("unexpected values: %+v", res)
	}
	if len(res.AllowedActions) != 2 || res.AllowedActions[0] != "GERAR_BOLETO" || res.AllowedActions[1] != "LANCAR" {
		t.Fatalf("unexpected actions: %v", res.AllowedActions)
	}
	if res.OwnerIDs == nil {
		t.Fatalf("owner ids must serialize as an empty list")
	}
}

func TestFromRecompute(t *testing.T) {
	res := FromRecompute(usecase.RecomputeResult{
		Invoice:       entities.Invoice{Total: decimal.RequireFromString("1537.50"), Status: entities.InvoiceStatusEmAtraso},
		PreviousTotal: decimal.RequireFromString("1500"),
		Warnings:      []billing.Warning{{Code: billing.WarningMissingCorrectionIndex, Message: "x"}},
	})
	if res.PreviousTotal != 1500 || res.NewTotal != 1537.5 {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Code != "INDICE_CORRECAO_AUSENTE" {
		t.Fatalf("unexpected warnings: %+v", res.Warnings)
	}
}

func TestFromInvoicePage(t *testing.T) {
	page := billing.InvoicePage{
		Items:      []entities.Invoice{{ID: "a", Status: entities.InvoiceStatusAberta}},
		Page:       1,
		PageSize:   20,
		TotalItems: 1,
		TotalPages: 1,
		Stats: map[entities.InvoiceStatus]billing.StatusStats{
			entities.InvoiceStatusAberta: {Count: 1, Total: decimal.RequireFromString("10.50")},
		},
	}
	res := FromInvoicePage(page)
	if len(res.Items) != 1 || res.Stats["ABERTA"].Count != 1 || res.Stats["ABERTA"].Total != 10.5 {
		t.Fatalf("unexpected page: %+v", res)
	}
}

func TestFromDocument(t *testing.T) {
	doc := FromDocument(usecase.InvoiceDocument{
		Invoice:        entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusCancelada},
		AllowedActions: []billing.Action{billing.ActionGerarBoleto},
	})
	if len(doc.Invoice.AllowedActions) != 1 || doc.Invoice.AllowedActions[0] != "GERAR_BOLETO" {
		t.Fatalf("unexpected actions: %v", doc.Invoice.AllowedActions)
	}
}
