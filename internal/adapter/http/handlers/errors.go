package handlers

import (
	"errors"
	"net/http"

	request "repasse_imoveis/internal/adapter/http/dto/request"
	"repasse_imoveis/internal/domain/billing"
	"repasse_imoveis/internal/usecase/interfaces"
	"repasse_imoveis/pkg"

	"github.com/gin-gonic/gin"
)

var errInternal = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func bindingError(err error) *pkg.AppError {
	return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest).
		WithDetails(request.BindingMessages(err)...)
}

// mapEngineError translates the billing engine's error taxonomy. ok is false for
// errors the engine does not own.
func mapEngineError(err error) (appErr *pkg.AppError, ok bool) {
	var (
		verr *billing.ValidationError
		terr *billing.InvalidTransitionError
		oerr *billing.OwnershipMismatchError
		cerr *billing.ConfigurationError
		merr *billing.ConcurrentModificationError
	)
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", "Validation failed", err, http.StatusBadRequest).WithDetails(verr.Messages...), true
	case errors.As(err, &terr):
		return pkg.NewDomainError("INVALID_TRANSITION", terr.Error(), err, http.StatusConflict), true
	case errors.As(err, &oerr):
		return pkg.NewDomainError("OWNERSHIP_MISMATCH", oerr.Error(), err, http.StatusUnprocessableEntity), true
	case errors.As(err, &cerr):
		return pkg.NewDomainError("CONFIGURATION_ERROR", cerr.Error(), err, http.StatusUnprocessableEntity), true
	case errors.As(err, &merr):
		return pkg.NewDomainError("CONCURRENT_MODIFICATION", merr.Error(), err, http.StatusConflict).AsRetryable(), true
	case errors.Is(err, interfaces.ErrVerifierUnavailable):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusServiceUnavailable).AsRetryable(), true
	}
	return nil, false
}
