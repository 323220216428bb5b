package handlers

import (
	"errors"
	"net/http"

	request "repasse_imoveis/internal/adapter/http/dto/request"
	response "repasse_imoveis/internal/adapter/http/dto/response"
	"repasse_imoveis/internal/domain/entities"
	"repasse_imoveis/internal/usecase"
	"repasse_imoveis/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReferenceDataHandler administers retention configurations and correction indexes.

type ReferenceDataHandler struct {
	retention usecase.IRetentionConfigUseCase
	indexes   usecase.ICorrectionIndexUseCase
}

func NewReferenceDataHandler(retention usecase.IRetentionConfigUseCase, indexes usecase.ICorrectionIndexUseCase) *ReferenceDataHandler {
	return &ReferenceDataHandler{retention: retention, indexes: indexes}
}

// GetRetentionConfig godoc
// @Summary  Consulta a configuração de retenção (padrão ou de um contrato)
// @Tags     configuracoes
// @Produce  json
// @Param    id  query    string false "default ou ID do contrato"
// @Success  200 {object} response.RetentionConfigResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /configuracoes/retencoes [get]
func (h *ReferenceDataHandler) GetRetentionConfig(c *gin.Context) {
	cfg, err := h.retention.Get(c.Request.Context(), c.Query("id"))
	if err != nil {
		writeError(c, mapReferenceDataError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRetentionConfig(cfg))
}

// PutRetentionConfig godoc
// @Summary  Atualiza a configuração de retenção
// @Tags     configuracoes
// @Accept   json
// @Produce  json
// @Param    body body     request.RetentionConfigRequest true "Configuração"
// @Success  200  {object} response.RetentionConfigResponse
// @Failure  400  {object} pkg.HTTPError
// @Router   /configuracoes/retencoes [put]
func (h *ReferenceDataHandler) PutRetentionConfig(c *gin.Context) {
	var payload request.RetentionConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}

	cfg, err := h.retention.Update(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapReferenceDataError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRetentionConfig(cfg))
}

// ListCorrectionIndexes godoc
// @Summary  Lista as publicações de índices de correção
// @Tags     indices-correcao
// @Produce  json
// @Param    nome query    string false "IGPM ou IPCA"
// @Success  200  {array}  response.CorrectionIndexResponse
// @Failure  400  {object} pkg.HTTPError
// @Router   /indices-correcao [get]
func (h *ReferenceDataHandler) ListCorrectionIndexes(c *gin.Context) {
	out, err := h.indexes.List(c.Request.Context(), entities.IndexName(c.Query("nome")))
	if err != nil {
		writeError(c, mapReferenceDataError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCorrectionIndexes(out))
}

// PutCorrectionIndex godoc
// @Summary  Cadastra ou atualiza a publicação mensal de um índice
// @Tags     indices-correcao
// @Accept   json
// @Produce  json
// @Param    body body     request.CorrectionIndexRequest true "Publicação"
// @Success  200  {object} response.CorrectionIndexResponse
// @Failure  400  {object} pkg.HTTPError
// @Router   /indices-correcao [put]
func (h *ReferenceDataHandler) PutCorrectionIndex(c *gin.Context) {
	var payload request.CorrectionIndexRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}

	idx, err := h.indexes.Upsert(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapReferenceDataError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCorrectionIndex(idx))
}

func mapReferenceDataError(err error) *pkg.AppError {
	if appErr, ok := mapEngineError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrRetentionConfigNotFound) {
		return pkg.NewDomainErrorSimple("RETENTION_CONFIG_NOT_FOUND", "Retention configuration not found", http.StatusNotFound)
	}
	zap.L().Error("[reference][handler] unexpected error", zap.Error(err))
	return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
}
