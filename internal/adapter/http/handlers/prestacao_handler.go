package handlers

import (
	"errors"
	"net/http"

	request "repasse_imoveis/internal/adapter/http/dto/request"
	response "repasse_imoveis/internal/adapter/http/dto/response"
	"repasse_imoveis/internal/usecase"
	"repasse_imoveis/pkg"

	"github.com/gin-gonic/gin"
)

type PrestacaoHandler struct {
	usecase usecase.IPrestacaoUseCase
}

func NewPrestacaoHandler(uc usecase.IPrestacaoUseCase) *PrestacaoHandler {
	return &PrestacaoHandler{usecase: uc}
}

// CalculatePrestacao godoc
// @Summary  Calcula a prestação de entrada/saída (proporcional ou integral) sem persistir
// @Tags     contratos
// @Accept   json
// @Produce  json
// @Param    body body     request.PrestacaoRequest true "Dados do cálculo"
// @Success  200  {object} response.PrestacaoResponse
// @Failure  400  {object} pkg.HTTPError
// @Failure  404  {object} pkg.HTTPError
// @Router   /contratos/calcular-prestacao [post]
func (h *PrestacaoHandler) CalculatePrestacao(c *gin.Context) {
	var payload request.PrestacaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}

	res, err := h.usecase.Calculate(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapPrestacaoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPrestacao(res))
}

func mapPrestacaoError(err error) *pkg.AppError {
	if appErr, ok := mapEngineError(err); ok {
		return appErr
	}
	if errors.Is(err, usecase.ErrContractNotFound) {
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	}
	return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
}
