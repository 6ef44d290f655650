package api

import (
	"net/http"

	reqdto "minutes-recharge/internal/handler/dto/request"
	resdto "minutes-recharge/internal/handler/dto/response"
	"minutes-recharge/internal/handler/httperr"
	"minutes-recharge/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkout usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// @Summary Checkout provider status
// @Description Whether the payment provider is configured, with its public key and currency
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.ProviderStatusResponse
// @Router /api/checkout/config [get]
func (h *CheckoutHandler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromProviderStatus(h.checkout.ProviderStatus()))
}

// @Summary Issue payment envelope
// @Description Builds the reference, amount in cents and integrity signature for the checkout widget
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEnvelopeRequest true "Envelope request"
// @Success 201 {object} resdto.EnvelopeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/checkout/envelopes [post]
func (h *CheckoutHandler) CreateEnvelope(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateEnvelopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	env, err := h.checkout.CreateEnvelope(c.Request.Context(), session, req.ToParams())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEnvelope(env))
}

// @Summary Current checkout reference
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CurrentReferenceResponse
// @Failure 401 {object} httperr.Response
// @Router /api/checkout/current [get]
func (h *CheckoutHandler) Current(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	reference, active, err := h.checkout.CurrentReference(c.Request.Context(), session)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CurrentReferenceResponse{Active: active, Reference: reference})
}

// @Summary Cancel current checkout
// @Description Clears the session slot and cancels the attempt if it was not confirmed
// @Tags checkout
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/checkout/current [delete]
func (h *CheckoutHandler) Cleanup(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	if err := h.checkout.Cleanup(c.Request.Context(), session); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
