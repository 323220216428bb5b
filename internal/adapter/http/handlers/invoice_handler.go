package handlers

import (
	"errors"
	"net/http"
	"time"

	request "repasse_imoveis/internal/adapter/http/dto/request"
	response "repasse_imoveis/internal/adapter/http/dto/response"
	"repasse_imoveis/internal/usecase"
	"repasse_imoveis/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler handles HTTP requests for boletos.
//
// Every boleto in a response carries acoes_permitidas, derived from the same capability
// table that guards the mutations.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	now     func() time.Time
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, now: time.Now}
}

// GenerateInvoice godoc
// @Summary     Gera o boleto de um contrato para uma competência
// @Tags        boletos
// @Accept      json
// @Produce     json
// @Param       body body     request.GenerateInvoiceRequest true "Contrato e competência"
// @Success     201  {object} response.InvoiceResponse
// @Failure     400  {object} pkg.HTTPError
// @Failure     404  {object} pkg.HTTPError
// @Failure     409  {object} pkg.HTTPError
// @Router      /boletos/gerar [post]
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	var payload request.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}

	inv, err := h.usecase.Generate(c.Request.Context(), payload.ToCommand())
	if err != nil {
		zap.L().Info("[invoice][handler] generate failed", zap.String("contract_id", payload.ContractID), zap.Error(err))
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// GetInvoice godoc
// @Summary  Consulta um boleto
// @Tags     boletos
// @Produce  json
// @Param    id  path     string true "Boleto ID"
// @Success  200 {object} response.InvoiceResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /boletos/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// ListInvoices godoc
// @Summary  Lista faturas com filtros, ordenação, paginação e estatísticas por status
// @Tags     faturas
// @Produce  json
// @Param    contrato_id     query    string   false "Contrato"
// @Param    status          query    []string false "Status (repetido ou separado por vírgula)"
// @Param    proprietario_id query    string   false "Proprietário"
// @Param    mes             query    int      false "Mês da competência"
// @Param    ano             query    int      false "Ano da competência"
// @Param    valor_min       query    number   false "Valor mínimo"
// @Param    valor_max       query    number   false "Valor máximo"
// @Param    busca           query    string   false "Texto livre"
// @Param    ordenar_por     query    string   false "data_vencimento|valor_total|competencia|inquilino|status"
// @Param    ordem           query    string   false "asc|desc"
// @Param    pagina          query    int      false "Página"
// @Param    por_pagina      query    int      false "Itens por página"
// @Success  200 {object} response.InvoicePageResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /faturas [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var q request.InvoiceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, bindingError(err))
		return
	}
	filter, invalid := q.ToFilter()
	if len(invalid) > 0 {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).WithDetails(invalid...))
		return
	}

	page, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePage(page))
}

// IssueInvoice godoc
// @Summary  Emite o boleto (ABERTA -> PENDENTE)
// @Tags     boletos
// @Produce  json
// @Param    id  path     string true "Boleto ID"
// @Success  200 {object} response.InvoiceResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /boletos/{id}/emitir [patch]
func (h *InvoiceHandler) IssueInvoice(c *gin.Context) {
	inv, err := h.usecase.Issue(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// MarkOverdue godoc
// @Summary  Marca o boleto como em atraso e recalcula os acréscimos
// @Tags     boletos
// @Accept   json
// @Produce  json
// @Param    id   path     string                       true  "Boleto ID"
// @Param    body body     request.ReferenceDateRequest false "Data de referência"
// @Success  200  {object} response.RecomputeResponse
// @Failure  409  {object} pkg.HTTPError
// @Router   /boletos/{id}/marcar-atraso [patch]
func (h *InvoiceHandler) MarkOverdue(c *gin.Context) {
	var payload request.ReferenceDateRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeError(c, bindingError(err))
		return
	}

	res, err := h.usecase.MarkOverdue(c.Request.Context(), c.Param("id"), payload.ResolveDate(h.now()))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRecompute(res))
}

// RecomputeSurcharge godoc
// @Summary  Recalcula juros, multa e correção do boleto
// @Tags     boletos
// @Accept   json
// @Produce  json
// @Param    id   path     string                            true  "Boleto ID"
// @Param    body body     request.RecomputeSurchargeRequest false "Índice e data de referência"
// @Success  200  {object} response.RecomputeResponse
// @Failure  409  {object} pkg.HTTPError
// @Router   /boletos/{id}/recalcular [post]
func (h *InvoiceHandler) RecomputeSurcharge(c *gin.Context) {
	var payload request.RecomputeSurchargeRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeError(c, bindingError(err))
		return
	}

	res, err := h.usecase.RecomputeSurcharge(c.Request.Context(), c.Param("id"), payload.ResolveIndex(), payload.ResolveDate())
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRecompute(res))
}

// EditComponents godoc
// @Summary  Substitui os lançamentos avulsos de um boleto aberto
// @Tags     boletos
// @Accept   json
// @Produce  json
// @Param    id   path     string                        true "Boleto ID"
// @Param    body body     request.EditComponentsRequest true "Lançamentos"
// @Success  200  {object} response.RecomputeResponse
// @Failure  400  {object} pkg.HTTPError
// @Failure  409  {object} pkg.HTTPError
// @Router   /boletos/{id}/componentes [put]
func (h *InvoiceHandler) EditComponents(c *gin.Context) {
	var payload request.EditComponentsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}

	res, err := h.usecase.EditComponents(c.Request.Context(), c.Param("id"), payload.ToEntries(), payload.Notes)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRecompute(res))
}

// RegisterPayment godoc
// @Summary  Registra o pagamento e gera a prestação de contas
// @Tags     boletos
// @Accept   json
// @Produce  json
// @Param    id   path     string                         true  "Boleto ID"
// @Param    body body     request.RegisterPaymentRequest false "Data do pagamento"
// @Success  200  {object} response.PaymentResponse
// @Failure  409  {object} pkg.HTTPError
// @Failure  422  {object} pkg.HTTPError
// @Router   /boletos/{id}/pagamento [post]
func (h *InvoiceHandler) RegisterPayment(c *gin.Context) {
	var payload request.RegisterPaymentRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeError(c, bindingError(err))
		return
	}

	id := c.Param("id")
	res, err := h.usecase.RegisterPayment(c.Request.Context(), id, payload.ResolvePaidAt())
	if err != nil {
		zap.L().Info("[invoice][handler] payment failed", zap.String("invoice_id", id), zap.Error(err))
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(res))
}

// BookInvoice godoc
// @Summary  Lança o boleto pago
// @Tags     boletos
// @Produce  json
// @Param    id  path     string true "Boleto ID"
// @Success  200 {object} response.BookResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /boletos/{id}/lancar [post]
func (h *InvoiceHandler) BookInvoice(c *gin.Context) {
	inv, rec, err := h.usecase.Book(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.BookResponse{Invoice: response.FromInvoice(inv), Settlement: response.FromSettlement(rec)})
}

// CancelInvoice godoc
// @Summary  Cancela o boleto
// @Tags     boletos
// @Accept   json
// @Produce  json
// @Param    id   path     string                       true  "Boleto ID"
// @Param    body body     request.CancelInvoiceRequest false "Motivo"
// @Success  200  {object} response.InvoiceResponse
// @Failure  409  {object} pkg.HTTPError
// @Router   /boletos/{id}/cancelar [patch]
func (h *InvoiceHandler) CancelInvoice(c *gin.Context) {
	var payload request.CancelInvoiceRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeError(c, bindingError(err))
		return
	}

	inv, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// GenerateDocument godoc
// @Summary  Dados para renderização do boleto
// @Tags     boletos
// @Produce  json
// @Param    id  path     string true "Boleto ID"
// @Success  200 {object} response.DocumentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /boletos/{id}/documento [get]
func (h *InvoiceHandler) GenerateDocument(c *gin.Context) {
	doc, err := h.usecase.GenerateDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// bindOptionalJSON binds the body when there is one; an empty body leaves obj untouched.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody || c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBindJSON(obj)
}

func mapInvoiceError(err error) *pkg.AppError {
	if appErr, ok := mapEngineError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidContractID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("BOLETO_NOT_FOUND", "Boleto not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSettlementNotFound):
		return pkg.NewDomainErrorSimple("PRESTACAO_NOT_FOUND", "Prestação de contas not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyExists):
		return pkg.NewDomainErrorSimple("BOLETO_ALREADY_EXISTS", "Boleto already exists for this contract and period", http.StatusConflict)
	default:
		zap.L().Error("[invoice][handler] unexpected error", zap.Error(err))
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}
