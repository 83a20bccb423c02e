package api

import (
	"errors"
	"net/http"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Reason codes clients branch on when a hold is rejected.
const (
	ReasonOutsideHours    = "outside-hours"
	ReasonPastCutoff      = "past-cutoff"
	ReasonSlotUnavailable = "slot-unavailable"
	ReasonHoldExpired     = "hold-expired"
)

type HoldHandler struct {
	holds commands.HoldCommands
}

func NewHoldHandler(holds commands.HoldCommands) *HoldHandler {
	return &HoldHandler{holds: holds}
}

// @Summary Place a hold
// @Description Reserve a slot for a single service; the hold expires after the TTL
// @Tags holds
// @Accept json
// @Produce json
// @Param request body reqdto.CreateHoldRequest true "Hold request"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /holds [post]
func (h *HoldHandler) CreateHold(c *gin.Context) {
	var req reqdto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.holds.CreateSingle(c.Request.Context(), commands.CreateSingleParams{
		ServiceID:  req.ServiceID,
		Start:      req.Start,
		CustomerID: optionalCustomerID(c),
	})
	if err != nil {
		abortHoldError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.NewHoldResponse(created))
}

// @Summary Place a bundle hold
// @Description Reserve every slot of a bundle atomically; one rejected member rejects the whole request
// @Tags holds
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBundleHoldRequest true "Bundle hold request"
// @Success 201 {object} resdto.BundleHoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /holds/bundle [post]
func (h *HoldHandler) CreateBundleHold(c *gin.Context) {
	var req reqdto.CreateBundleHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	selections := make([]commands.Selection, 0, len(req.Selections))
	for _, sel := range req.Selections {
		selections = append(selections, commands.Selection{ServiceID: sel.ServiceID, Start: sel.Start})
	}

	created, err := h.holds.CreateBundle(c.Request.Context(), commands.CreateBundleParams{
		BundleID:   req.BundleID,
		Selections: selections,
		CustomerID: optionalCustomerID(c),
	})
	if err != nil {
		abortHoldError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.NewBundleHoldResponse(req.BundleID, created))
}

func abortHoldError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrUnknownService):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, commands.ErrUnknownBundle):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Bundle not found", nil)
	case errors.Is(err, commands.ErrUnknownCustomer):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unknown customer", nil)
	case errors.Is(err, commands.ErrOutsideHours):
		httperr.AbortWithReason(c, http.StatusUnprocessableEntity, err, "Requested slot falls outside business hours", ReasonOutsideHours)
	case errors.Is(err, commands.ErrPastCutoff):
		httperr.AbortWithReason(c, http.StatusUnprocessableEntity, err, "Requested slot is past the same-day cutoff", ReasonPastCutoff)
	case errors.Is(err, commands.ErrSlotUnavailable):
		httperr.AbortWithReason(c, http.StatusConflict, err, "Requested slot is no longer available", ReasonSlotUnavailable)
	case errors.Is(err, commands.ErrBundleSelectionMismatch):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Selections do not match the bundle's services", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func optionalCustomerID(c *gin.Context) *uuid.UUID {
	if id, ok := middleware.GetCustomerID(c); ok {
		return &id
	}
	return nil
}
