package api

import (
	"errors"
	"net/http"

	"studio-booking/internal/domain/catalog"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cat          *catalog.Catalog
	availability queries.AvailabilityQueries
	pricing      queries.PricingQueries
}

func NewCatalogHandler(cat *catalog.Catalog, availability queries.AvailabilityQueries, pricing queries.PricingQueries) *CatalogHandler {
	return &CatalogHandler{
		cat:          cat,
		availability: availability,
		pricing:      pricing,
	}
}

// @Summary List services
// @Description List the studio's bookable services
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.NewServiceResponses(h.cat))
}

// @Summary List bundles
// @Description List the studio's fixed-price bundles
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.BundleResponse
// @Router /bundles [get]
func (h *CatalogHandler) ListBundles(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.NewBundleResponses(h.cat))
}

// @Summary Service availability
// @Description List free starts for a service on a day
// @Tags catalog
// @Produce json
// @Param id path string true "Service ID"
// @Param date query string true "Day in YYYY-MM-DD (studio timezone)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id}/availability [get]
func (h *CatalogHandler) GetAvailability(c *gin.Context) {
	serviceID := c.Param("id")
	day := c.Query("date")
	if day == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	slots, err := h.availability.SlotsFor(c.Request.Context(), serviceID, day)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUnknownService):
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		case errors.Is(err, queries.ErrInvalidDay):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		ServiceID: serviceID,
		Day:       day,
		Slots:     slots,
	})
}

// @Summary Quote a service visit
// @Description Price one visit; the credit discount applies when the caller is authenticated and eligible
// @Tags catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} queries.ServiceQuoteView
// @Failure 404 {object} map[string]string
// @Router /services/{id}/quote [get]
func (h *CatalogHandler) QuoteService(c *gin.Context) {
	var customerID *uuid.UUID
	if id, ok := middleware.GetCustomerID(c); ok {
		customerID = &id
	}

	view, err := h.pricing.QuoteService(c.Request.Context(), c.Param("id"), customerID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUnknownService):
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Quote a bundle
// @Description Price a bundle at its fixed rate
// @Tags catalog
// @Produce json
// @Param id path string true "Bundle ID"
// @Success 200 {object} queries.BundleQuoteView
// @Failure 404 {object} map[string]string
// @Router /bundles/{id}/quote [get]
func (h *CatalogHandler) QuoteBundle(c *gin.Context) {
	view, err := h.pricing.QuoteBundle(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUnknownBundle):
			c.JSON(http.StatusNotFound, gin.H{"error": "Bundle not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
