package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"repasse_imoveis/internal/adapter/http/handlers/mocks"
	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/domain/entities"
	"repasse_imoveis/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func paidInvoice() entities.Invoice {
	return entities.Invoice{
		ID:      "inv-1",
		Period:  entities.Period{Month: 5, Year: 2024},
		DueDate: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
		Total:   decimal.RequireFromString("1500.00"),
		Status:  entities.InvoiceStatusPaga,
	}
}

func TestInvoiceHandler_GenerateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload lists every problem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/boletos/gerar", h.GenerateInvoice)

		w := doRequest(r, http.MethodPost, "/api/boletos/gerar", `{"mes":13}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		details, _ := body["details"].([]any)
		if body["code"] != "INVALID_REQUEST" || len(details) != 3 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/boletos/gerar", h.GenerateInvoice)

		uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, usecase.ErrInvoiceAlreadyExists)

		w := doRequest(r, http.MethodPost, "/api/boletos/gerar", `{"contrato_id":"ctr-1","mes":5,"ano":2024}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/boletos/gerar", h.GenerateInvoice)

		uc.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.GenerateInvoiceCommand) (entities.Invoice, error) {
				if cmd.ContractID != "ctr-1" || cmd.Period.Month != 5 || len(cmd.Entries) != 1 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				inv := paidInvoice()
				inv.Status = entities.InvoiceStatusAberta
				return inv, nil
			},
		)

		w := doRequest(r, http.MethodPost, "/api/boletos/gerar",
			`{"contrato_id":"ctr-1","mes":5,"ano":2024,"lancamentos":[{"descricao":"Reparo","valor":120,"tipo":"debito"}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		actions, _ := body["acoes_permitidas"].([]any)
		if body["id"] != "inv-1" || body["status"] != "ABERTA" || len(actions) != 6 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_StatusActions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/boletos/:id", h.GetInvoice)

		uc.EXPECT().GetByID(gomock.Any(), "inv-x").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		w := doRequest(r, http.MethodGet, "/api/boletos/inv-x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.PATCH("/api/boletos/:id/cancelar", h.CancelInvoice)

		uc.EXPECT().Cancel(gomock.Any(), "inv-1", "").
			Return(entities.Invoice{}, &billing.InvalidTransitionError{From: "PAGA", Action: "CANCELAR"})

		w := doRequest(r, http.MethodPatch, "/api/boletos/inv-1/cancelar", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "INVALID_TRANSITION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("concurrent modification is retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.PATCH("/api/boletos/:id/emitir", h.IssueInvoice)

		uc.EXPECT().Issue(gomock.Any(), "inv-1").
			Return(entities.Invoice{}, &billing.ConcurrentModificationError{Resource: "boleto", ID: "inv-1"})

		w := doRequest(r, http.MethodPatch, "/api/boletos/inv-1/emitir", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if decodeBody(t, w)["retryable"] != true {
			t.Fatalf("expected retryable flag: %s", w.Body.String())
		}
	})

	t.Run("mark overdue uses the informed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.PATCH("/api/boletos/:id/marcar-atraso", h.MarkOverdue)

		asOf := time.Date(2024, time.May, 25, 0, 0, 0, 0, time.UTC)
		inv := paidInvoice()
		inv.Status = entities.InvoiceStatusEmAtraso
		inv.Total = decimal.RequireFromString("1537.50")
		uc.EXPECT().MarkOverdue(gomock.Any(), "inv-1", asOf).Return(usecase.RecomputeResult{
			Invoice:       inv,
			PreviousTotal: decimal.RequireFromString("1500"),
			Warnings:      []billing.Warning{{Code: billing.WarningMissingCorrectionIndex, Message: "sem índice"}},
		}, nil)

		w := doRequest(r, http.MethodPatch, "/api/boletos/inv-1/marcar-atraso", `{"data_referencia":"2024-05-25"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		warnings, _ := body["avisos"].([]any)
		if body["valor_anterior"] != 1500.0 || body["valor_atualizado"] != 1537.5 || len(warnings) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("recompute rejects unknown index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/boletos/:id/recalcular", h.RecomputeSurcharge)

		w := doRequest(r, http.MethodPost, "/api/boletos/inv-1/recalcular", `{"indice_correcao":"SELIC"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("recompute without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/boletos/:id/recalcular", h.RecomputeSurcharge)

		uc.EXPECT().RecomputeSurcharge(gomock.Any(), "inv-1", entities.IndexName(""), gomock.Nil()).
			Return(usecase.RecomputeResult{Invoice: paidInvoice()}, nil)

		w := doRequest(r, http.MethodPost, "/api/boletos/inv-1/recalcular", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("edit components validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.PUT("/api/boletos/:id/componentes", h.EditComponents)

		uc.EXPECT().EditComponents(gomock.Any(), "inv-1", gomock.Any(), gomock.Any()).
			Return(usecase.RecomputeResult{}, billing.NewValidationError("invoice total cannot be negative: -10.00"))

		w := doRequest(r, http.MethodPut, "/api/boletos/inv-1/componentes", `{"lancamentos":[{"descricao":"Abatimento","valor":2000,"tipo":"credito"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "VALIDATION_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_RegisterPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ownership mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/boletos/:id/pagamento", h.RegisterPayment)

		uc.EXPECT().RegisterPayment(gomock.Any(), "inv-1", gomock.Any()).
			Return(usecase.PaymentResult{}, &billing.OwnershipMismatchError{ContractID: "ctr-1", Total: decimal.RequireFromString("99.99")})

		w := doRequest(r, http.MethodPost, "/api/boletos/inv-1/pagamento", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("configuration error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/boletos/:id/pagamento", h.RegisterPayment)

		uc.EXPECT().RegisterPayment(gomock.Any(), "inv-1", gomock.Any()).
			Return(usecase.PaymentResult{}, billing.NewConfigurationError("no active retention configuration"))

		w := doRequest(r, http.MethodPost, "/api/boletos/inv-1/pagamento", `{"data_pagamento":"2024-05-09"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/boletos/:id/pagamento", h.RegisterPayment)

		paidAt := time.Date(2024, time.May, 9, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().RegisterPayment(gomock.Any(), "inv-1", paidAt).Return(usecase.PaymentResult{
			Invoice: paidInvoice(),
			Settlement: entities.SettlementRecord{
				ID:            "set-1",
				Status:        entities.SettlementStatusPendente,
				TotalRetained: decimal.RequireFromString("160"),
				TotalPayout:   decimal.RequireFromString("1340"),
			},
		}, nil)

		w := doRequest(r, http.MethodPost, "/api/boletos/inv-1/pagamento", `{"data_pagamento":"2024-05-09"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		settlement, _ := body["prestacao_contas"].(map[string]any)
		if settlement["id"] != "set-1" || settlement["valor_total_repasse"] != 1340.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_BookAndDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("book without settlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/boletos/:id/lancar", h.BookInvoice)

		uc.EXPECT().Book(gomock.Any(), "inv-1").Return(entities.Invoice{}, entities.SettlementRecord{}, usecase.ErrSettlementNotFound)

		w := doRequest(r, http.MethodPost, "/api/boletos/inv-1/lancar", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("book success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/api/boletos/:id/lancar", h.BookInvoice)

		inv := paidInvoice()
		inv.Status = entities.InvoiceStatusLancada
		uc.EXPECT().Book(gomock.Any(), "inv-1").Return(inv, entities.SettlementRecord{ID: "set-1", Status: entities.SettlementStatusProcessada}, nil)

		w := doRequest(r, http.MethodPost, "/api/boletos/inv-1/lancar", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		boleto, _ := body["boleto"].(map[string]any)
		if boleto["status"] != "LANCADA" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/boletos/:id/documento", h.GenerateDocument)

		uc.EXPECT().GenerateDocument(gomock.Any(), "inv-1").Return(usecase.InvoiceDocument{
			Invoice:        paidInvoice(),
			AllowedActions: billing.AllowedActions(entities.InvoiceStatusPaga),
		}, nil)

		w := doRequest(r, http.MethodGet, "/api/boletos/inv-1/documento", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/boletos/:id/documento", h.GenerateDocument)

		uc.EXPECT().GenerateDocument(gomock.Any(), "inv-1").Return(usecase.InvoiceDocument{}, errors.New("dynamodb down"))

		w := doRequest(r, http.MethodGet, "/api/boletos/inv-1/documento", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("dynamodb")) {
			t.Fatalf("internal cause leaked: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/faturas", h.ListInvoices)

		w := doRequest(r, http.MethodGet, "/api/faturas?status=VENCIDA", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid sort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/faturas", h.ListInvoices)

		w := doRequest(r, http.MethodGet, "/api/faturas?ordenar_por=id&por_pagina=500", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		details, _ := decodeBody(t, w)["details"].([]any)
		if len(details) != 2 {
			t.Fatalf("expected two details: %s", w.Body.String())
		}
	})

	t.Run("filters and stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/api/faturas", h.ListInvoices)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, f billing.InvoiceFilter) (billing.InvoicePage, error) {
				if len(f.Statuses) != 2 || f.Month != 5 || f.Search != "maria" || !f.Descending {
					t.Fatalf("unexpected filter: %+v", f)
				}
				return billing.InvoicePage{
					Items:      []entities.Invoice{paidInvoice()},
					Page:       1,
					PageSize:   20,
					TotalItems: 1,
					TotalPages: 1,
					Stats: map[entities.InvoiceStatus]billing.StatusStats{
						entities.InvoiceStatusPaga: {Count: 1, Total: decimal.RequireFromString("1500")},
					},
				}, nil
			},
		)

		w := doRequest(r, http.MethodGet, "/api/faturas?status=PAGA&status=LANCADA&mes=5&busca=maria&ordem=desc", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		stats, _ := body["estatisticas"].(map[string]any)
		if body["total_itens"] != 1.0 || stats["PAGA"] == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
