package api

import (
	"net/http"

	"staycal/internal/domain/calendar"
	reqdto "staycal/internal/handler/dto/request"
	resdto "staycal/internal/handler/dto/response"
	"staycal/internal/handler/httperr"
	"staycal/internal/usecase/commands"
	"staycal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GlobalScopeParam selects the calendar shared by every listing.
const GlobalScopeParam = "global"

type CalendarHandler struct {
	cmds commands.CalendarCommands
	q    queries.CalendarQueries
}

func NewCalendarHandler(cmds commands.CalendarCommands, q queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{cmds: cmds, q: q}
}

func parseScopeID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	if raw == GlobalScopeParam {
		return calendar.GlobalScopeID, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid scope id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Get calendar
// @Description Get all blocked ranges and price overrides for a listing (or "global")
// @Tags calendar
// @Produce json
// @Param id path string true "Listing ID or 'global'"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} map[string]string
// @Router /listings/{id}/calendar [get]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	scopeID, ok := parseScopeID(c)
	if !ok {
		return
	}
	view, err := h.q.GetCalendar(c.Request.Context(), scopeID)
	if err != nil {
		abortDomainError(c, err, "Failed to load calendar")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}

// @Summary Add blocked range
// @Description Block a date range; rejected with 409 when it overlaps an existing blocked range
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path string true "Listing ID or 'global'"
// @Param request body reqdto.AddBlockedRangeRequest true "Blocked range"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /listings/{id}/calendar/blocked-ranges [post]
func (h *CalendarHandler) AddBlockedRange(c *gin.Context) {
	scopeID, ok := parseScopeID(c)
	if !ok {
		return
	}
	var req reqdto.AddBlockedRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AddBlockedRange(c.Request.Context(), scopeID, req.ToCommand())
	if err != nil {
		abortDomainError(c, err, "Add blocked range failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": result.EntryID.String()})
}

// @Summary Remove blocked range
// @Tags calendar
// @Param id path string true "Listing ID or 'global'"
// @Param entry_id path string true "Blocked range ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id}/calendar/blocked-ranges/{entry_id} [delete]
func (h *CalendarHandler) RemoveBlockedRange(c *gin.Context) {
	scopeID, ok := parseScopeID(c)
	if !ok {
		return
	}
	entryID, err := uuid.Parse(c.Param("entry_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid entry id", nil)
		return
	}
	if err := h.cmds.RemoveBlockedRange(c.Request.Context(), scopeID, entryID); err != nil {
		abortDomainError(c, err, "Remove blocked range failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List blocked ranges
// @Tags calendar
// @Produce json
// @Param id path string true "Listing ID or 'global'"
// @Success 200 {array} resdto.BlockedRangeResponse
// @Failure 400 {object} map[string]string
// @Router /listings/{id}/calendar/blocked-ranges [get]
func (h *CalendarHandler) ListBlockedRanges(c *gin.Context) {
	scopeID, ok := parseScopeID(c)
	if !ok {
		return
	}
	views, err := h.q.ListBlockedRanges(c.Request.Context(), scopeID)
	if err != nil {
		abortDomainError(c, err, "Failed to list blocked ranges")
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocked_ranges": resdto.FromBlockedRangeViews(views)})
}

// @Summary Add price override
// @Description Override the nightly price for a date range; rejected with 409 when it overlaps an existing override
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path string true "Listing ID or 'global'"
// @Param request body reqdto.AddPriceOverrideRequest true "Price override"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /listings/{id}/calendar/price-overrides [post]
func (h *CalendarHandler) AddPriceOverride(c *gin.Context) {
	scopeID, ok := parseScopeID(c)
	if !ok {
		return
	}
	var req reqdto.AddPriceOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AddPriceOverride(c.Request.Context(), scopeID, req.ToCommand())
	if err != nil {
		abortDomainError(c, err, "Add price override failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": result.EntryID.String()})
}

// @Summary Remove price override
// @Tags calendar
// @Param id path string true "Listing ID or 'global'"
// @Param entry_id path string true "Price override ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id}/calendar/price-overrides/{entry_id} [delete]
func (h *CalendarHandler) RemovePriceOverride(c *gin.Context) {
	scopeID, ok := parseScopeID(c)
	if !ok {
		return
	}
	entryID, err := uuid.Parse(c.Param("entry_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid entry id", nil)
		return
	}
	if err := h.cmds.RemovePriceOverride(c.Request.Context(), scopeID, entryID); err != nil {
		abortDomainError(c, err, "Remove price override failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List price overrides
// @Tags calendar
// @Produce json
// @Param id path string true "Listing ID or 'global'"
// @Success 200 {array} resdto.PriceOverrideResponse
// @Failure 400 {object} map[string]string
// @Router /listings/{id}/calendar/price-overrides [get]
func (h *CalendarHandler) ListPriceOverrides(c *gin.Context) {
	scopeID, ok := parseScopeID(c)
	if !ok {
		return
	}
	views, err := h.q.ListPriceOverrides(c.Request.Context(), scopeID)
	if err != nil {
		abortDomainError(c, err, "Failed to list price overrides")
		return
	}
	c.JSON(http.StatusOK, gin.H{"price_overrides": resdto.FromPriceOverrideViews(views)})
}
