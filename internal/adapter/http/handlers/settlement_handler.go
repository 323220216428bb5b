package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "repasse_imoveis/internal/adapter/http/dto/request"
	response "repasse_imoveis/internal/adapter/http/dto/response"
	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/usecase"
	"repasse_imoveis/internal/usecase/interfaces"
	"repasse_imoveis/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettlementHandler handles HTTP requests for prestações de contas and their payouts.

type SettlementHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewSettlementHandler(uc usecase.ISettlementUseCase) *SettlementHandler {
	return &SettlementHandler{usecase: uc}
}

// CreateSettlement godoc
// @Summary  Calcula (ou recalcula) a prestação de contas de um boleto pago
// @Tags     prestacoes-contas
// @Accept   json
// @Produce  json
// @Param    body body     request.CreateSettlementRequest true "Boleto"
// @Success  201  {object} response.SettlementResponse
// @Failure  409  {object} pkg.HTTPError
// @Failure  422  {object} pkg.HTTPError
// @Router   /prestacoes-contas [post]
func (h *SettlementHandler) CreateSettlement(c *gin.Context) {
	var payload request.CreateSettlementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}

	rec, err := h.usecase.CreateOrRecompute(c.Request.Context(), payload.InvoiceID)
	if err != nil {
		zap.L().Info("[settlement][handler] compute failed", zap.String("invoice_id", payload.InvoiceID), zap.Error(err))
		writeError(c, mapSettlementError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSettlement(rec))
}

// ListSettlements godoc
// @Summary  Histórico de prestações de contas de um contrato
// @Tags     prestacoes-contas
// @Produce  json
// @Param    contrato_id query    string true "Contrato"
// @Success  200         {array}  response.SettlementResponse
// @Failure  400         {object} pkg.HTTPError
// @Router   /prestacoes-contas [get]
func (h *SettlementHandler) ListSettlements(c *gin.Context) {
	records, err := h.usecase.ListByContractID(c.Request.Context(), strings.TrimSpace(c.Query("contrato_id")))
	if err != nil {
		writeError(c, mapSettlementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettlements(records))
}

// GetSettlement godoc
// @Summary  Consulta uma prestação de contas
// @Tags     prestacoes-contas
// @Produce  json
// @Param    id  path     string true "Prestação ID"
// @Success  200 {object} response.SettlementResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /prestacoes-contas/{id} [get]
func (h *SettlementHandler) GetSettlement(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapSettlementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettlement(rec))
}

// ConfirmPayout godoc
// @Summary  Confirma o repasse PIX de um proprietário
// @Tags     prestacoes-contas
// @Accept   json
// @Produce  json
// @Param    id       path     string                       true "Prestação ID"
// @Param    owner_id path     string                       true "Proprietário ID"
// @Param    body     body     request.ConfirmPayoutRequest true "Comprovante"
// @Success  200      {object} response.SettlementResponse
// @Failure  404      {object} pkg.HTTPError
// @Failure  409      {object} pkg.HTTPError
// @Failure  422      {object} pkg.HTTPError
// @Router   /prestacoes-contas/{id}/repasses/{owner_id} [patch]
func (h *SettlementHandler) ConfirmPayout(c *gin.Context) {
	var payload request.ConfirmPayoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}

	settlementID, ownerID := c.Param("id"), c.Param("owner_id")
	rec, err := h.usecase.ConfirmPayout(c.Request.Context(), settlementID, ownerID, payload.Reference, payload.ResolvePaidAt())
	if err != nil {
		zap.L().Info("[settlement][handler] confirm payout failed", zap.String("settlement_id", settlementID), zap.String("owner_id", ownerID), zap.Error(err))
		writeError(c, mapSettlementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettlement(rec))
}

func mapSettlementError(err error) *pkg.AppError {
	if appErr, ok := mapEngineError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidSettlementID), errors.Is(err, usecase.ErrInvalidContractID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("BOLETO_NOT_FOUND", "Boleto not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSettlementNotFound):
		return pkg.NewDomainErrorSimple("PRESTACAO_NOT_FOUND", "Prestação de contas not found", http.StatusNotFound)
	case errors.Is(err, billing.ErrPayoutNotFound):
		return pkg.NewDomainErrorSimple("REPASSE_NOT_FOUND", "Owner has no payout in this prestação de contas", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReceiptNotApproved), errors.Is(err, usecase.ErrReceiptAmountDiffers), errors.Is(err, interfaces.ErrReceiptNotFound):
		return pkg.NewDomainError("RECEIPT_REJECTED", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		zap.L().Error("[settlement][handler] unexpected error", zap.Error(err))
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}
