package api

import (
	"net/http"

	resdto "staycal/internal/handler/dto/response"
	"staycal/internal/handler/httperr"
	"staycal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

func stayParams(c *gin.Context) (listingID uuid.UUID, checkIn, checkOut string, ok bool) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing id", nil)
		return uuid.Nil, "", "", false
	}
	checkIn = c.Query("check_in")
	checkOut = c.Query("check_out")
	if checkIn == "" || checkOut == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "check_in and check_out are required", nil)
		return uuid.Nil, "", "", false
	}
	return listingID, checkIn, checkOut, true
}

// @Summary Check availability
// @Description Check whether a stay is free of blocked dates (check-out day excluded)
// @Tags availability
// @Produce json
// @Param id path string true "Listing ID"
// @Param check_in query string true "Check-in date (2006-01-02)"
// @Param check_out query string true "Check-out date (2006-01-02)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id}/availability [get]
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	listingID, checkIn, checkOut, ok := stayParams(c)
	if !ok {
		return
	}
	view, err := h.q.CheckAvailability(c.Request.Context(), listingID, checkIn, checkOut)
	if err != nil {
		abortDomainError(c, err, "Availability check failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Quote a stay
// @Description Price a stay night by night; listing overrides win over global ones, which win over the base price
// @Tags availability
// @Produce json
// @Param id path string true "Listing ID"
// @Param check_in query string true "Check-in date (2006-01-02)"
// @Param check_out query string true "Check-out date (2006-01-02)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /listings/{id}/quote [get]
func (h *AvailabilityHandler) Quote(c *gin.Context) {
	listingID, checkIn, checkOut, ok := stayParams(c)
	if !ok {
		return
	}
	view, err := h.q.Quote(c.Request.Context(), listingID, checkIn, checkOut)
	if err != nil {
		abortDomainError(c, err, "Quote failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
