package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathInvoices          = "/boletos"
	PathInvoiceListing    = "/faturas"
	PathSettlements       = "/prestacoes-contas"
	PathContracts         = "/contratos"
	PathRetentionConfig   = "/configuracoes/retencoes"
	PathCorrectionIndexes = "/indices-correcao"
)

func addBillingRoutes(rg *gin.RouterGroup, h Handlers) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("/gerar", h.Invoice.GenerateInvoice)
		invoices.GET("/:id", h.Invoice.GetInvoice)
		invoices.GET("/:id/documento", h.Invoice.GenerateDocument)
		invoices.PATCH("/:id/emitir", h.Invoice.IssueInvoice)
		invoices.PATCH("/:id/marcar-atraso", h.Invoice.MarkOverdue)
		invoices.PATCH("/:id/cancelar", h.Invoice.CancelInvoice)
		invoices.POST("/:id/recalcular", h.Invoice.RecomputeSurcharge)
		invoices.PUT("/:id/componentes", h.Invoice.EditComponents)
		invoices.POST("/:id/pagamento", h.Invoice.RegisterPayment)
		invoices.POST("/:id/lancar", h.Invoice.BookInvoice)
	}
	rg.GET(PathInvoiceListing, h.Invoice.ListInvoices)

	settlements := rg.Group(PathSettlements)
	{
		settlements.POST("", h.Settlement.CreateSettlement)
		settlements.GET("", h.Settlement.ListSettlements)
		settlements.GET("/:id", h.Settlement.GetSettlement)
		settlements.PATCH("/:id/repasses/:owner_id", h.Settlement.ConfirmPayout)
	}

	rg.POST(PathContracts+"/calcular-prestacao", h.Prestacao.CalculatePrestacao)

	rg.GET(PathRetentionConfig, h.ReferenceData.GetRetentionConfig)
	rg.PUT(PathRetentionConfig, h.ReferenceData.PutRetentionConfig)
	rg.GET(PathCorrectionIndexes, h.ReferenceData.ListCorrectionIndexes)
	rg.PUT(PathCorrectionIndexes, h.ReferenceData.PutCorrectionIndex)
}
