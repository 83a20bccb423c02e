package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"studio-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// PaymentHandler is the confirmation boundary: a verified completed-checkout
// webhook is the only path that turns holds into bookings.
type PaymentHandler struct {
	gateway commands.PaymentGateway
	confirm commands.ConfirmCommands
}

func NewPaymentHandler(gateway commands.PaymentGateway, confirm commands.ConfirmCommands) *PaymentHandler {
	return &PaymentHandler{
		gateway: gateway,
		confirm: confirm,
	}
}

// @Summary Payment webhook
// @Description Receive checkout completion events from the payment provider
// @Tags checkout
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	event, err := h.gateway.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		slog.Warn("webhook verification failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Webhook verification failed"})
		return
	}
	if event == nil {
		// Valid delivery of an event type this service does not act on.
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	ctx := c.Request.Context()
	switch event.Kind {
	case commands.CheckoutKindSingle:
		_, err = h.confirm.ConfirmSingle(ctx, event.RefID, event.PaymentRef, nil)
	case commands.CheckoutKindBundle:
		_, err = h.confirm.ConfirmBundle(ctx, event.RefID, event.PaymentRef, nil)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown checkout kind"})
		return
	}

	if err != nil {
		// Expiry between payment and delivery is final; retrying the webhook
		// cannot revive the hold, so acknowledge it.
		if errors.Is(err, commands.ErrHoldExpired) {
			slog.Warn("checkout completed for an expired hold", "ref_id", event.RefID)
			c.JSON(http.StatusOK, gin.H{"status": "hold-expired"})
			return
		}
		slog.Error("confirmation failed", "ref_id", event.RefID, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Confirmation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}
