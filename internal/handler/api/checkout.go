package api

import (
	"errors"
	"net/http"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout commands.CheckoutCommands
}

func NewCheckoutHandler(checkout commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// @Summary Start checkout
// @Description Open a hosted payment session for a live hold or hold group
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Start(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	session, err := h.checkout.Start(c.Request.Context(), req.Kind, req.RefID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentsDisabled):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Payments are not configured", nil)
		case errors.Is(err, commands.ErrHoldExpired):
			httperr.AbortWithReason(c, http.StatusGone, err, "Hold has expired", ReasonHoldExpired)
		case errors.Is(err, commands.ErrWrongKind), errors.Is(err, commands.ErrUnknownCheckoutKind):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid checkout reference", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CheckoutResponse{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	})
}
