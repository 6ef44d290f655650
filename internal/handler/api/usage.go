package api

import (
	"net/http"

	reqdto "minutes-recharge/internal/handler/dto/request"
	resdto "minutes-recharge/internal/handler/dto/response"
	"minutes-recharge/internal/handler/httperr"
	"minutes-recharge/internal/handler/middleware"
	"minutes-recharge/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UsageHandler struct {
	usage usecase.UsageUseCase
}

func NewUsageHandler(usage usecase.UsageUseCase) *UsageHandler {
	return &UsageHandler{usage: usage}
}

// @Summary Daily minute consumption
// @Tags usage
// @Produce json
// @Security BearerAuth
// @Param start query string true "YYYY-MM-DD, inclusive"
// @Param end query string true "YYYY-MM-DD, inclusive"
// @Success 200 {object} resdto.ConsumptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/usage/consumption [get]
func (h *UsageHandler) Consumption(c *gin.Context) {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var q reqdto.ConsumptionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}

	series, err := h.usage.ConsumptionSeries(c.Request.Context(), workspaceID, q.Start, q.End)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSeries(series))
}

// @Summary Call history
// @Tags usage
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size (default 10, max 100)"
// @Success 200 {object} resdto.CallHistoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/usage/calls [get]
func (h *UsageHandler) Calls(c *gin.Context) {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var q reqdto.CallHistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination", nil)
		return
	}

	history, err := h.usage.CallHistory(c.Request.Context(), workspaceID, q.Page, q.PageSize)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCallHistory(history))
}
