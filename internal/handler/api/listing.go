package api

import (
	"net/http"

	reqdto "staycal/internal/handler/dto/request"
	resdto "staycal/internal/handler/dto/response"
	"staycal/internal/handler/httperr"
	"staycal/internal/usecase/commands"
	"staycal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary Create listing
// @Tags listings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateListingRequest true "Create listing request"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateListing(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortDomainError(c, err, "Create listing failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.ListingID)
	if err != nil {
		abortDomainError(c, err, "Failed to load listing")
		return
	}
	c.Header("Location", "/api/listings/"+result.ListingID.String())
	c.JSON(http.StatusCreated, resdto.FromListingView(view))
}

// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err, "Failed to load listing")
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary List listings
// @Tags listings
// @Produce json
// @Success 200 {array} resdto.ListingResponse
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortDomainError(c, err, "Failed to list listings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": resdto.FromListingList(views)})
}

// @Summary Update listing
// @Tags listings
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body reqdto.UpdateListingRequest true "Update listing request"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateListingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateListing(c.Request.Context(), id, req.ToCommand()); err != nil {
		abortDomainError(c, err, "Update listing failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err, "Failed to load listing")
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary Delete listing
// @Description Delete a listing and its calendar entries
// @Tags listings
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteListing(c.Request.Context(), id); err != nil {
		abortDomainError(c, err, "Delete listing failed")
		return
	}
	c.Status(http.StatusNoContent)
}
