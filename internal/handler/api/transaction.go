package api

import (
	"net/http"
	"strings"

	resdto "minutes-recharge/internal/handler/dto/response"
	"minutes-recharge/internal/handler/httperr"
	"minutes-recharge/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	transactions usecase.TransactionUseCase
}

func NewTransactionHandler(transactions usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// @Summary Transaction confirmation summary
// @Description Looks the transaction up with the provider. env=test queries the sandbox.
// @Tags transactions
// @Produce json
// @Param id path string true "Provider transaction id"
// @Param env query string false "test for the sandbox"
// @Success 200 {object} resdto.TransactionSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	summary, err := h.transactions.GetSummary(c.Request.Context(), c.Param("id"), strings.ToLower(c.Query("env")))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if summary == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Transaction id required", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummary(summary))
}
