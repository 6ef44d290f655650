package api

import (
	"errors"
	"net/http"

	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/internal/domain/usage"
	"minutes-recharge/internal/handler/httperr"
	"minutes-recharge/internal/handler/middleware"
	"minutes-recharge/internal/pkg/errs"
	"minutes-recharge/internal/usecase"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps checkout, transaction and usage errors to a
// status. Anything unrecognised is a 500.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, recharge.ErrInvalidArgument):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid recharge parameters", nil)
	case errors.Is(err, recharge.ErrInvalidCurrency):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported currency", nil)
	case errors.Is(err, usage.ErrInvalidDateRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
	case errors.Is(err, recharge.ErrMisconfiguredProvider):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Payment provider is not configured", nil)
	case errors.Is(err, recharge.ErrSignatureUnavailable):
		httperr.AbortRetryable(c, http.StatusBadGateway, err, "Integrity signature unavailable")
	case errors.Is(err, usecase.ErrTransactionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Transaction not found", nil)
	case errs.Is(err, usecase.ErrProviderUnavailable):
		httperr.AbortRetryable(c, http.StatusBadGateway, err, "Payment provider unavailable")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func sessionFrom(c *gin.Context) (usecase.Session, bool) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return usecase.Session{}, false
	}
	return usecase.Session{AccountID: accountID, WorkspaceID: middleware.GetWorkspaceID(c)}, true
}
