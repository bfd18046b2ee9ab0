package api

import (
	"errors"
	"net/http"

	"staycal/internal/domain/calendar"
	"staycal/internal/domain/listing"
	"staycal/internal/handler/httperr"
	"staycal/internal/infra"
	"staycal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortDomainError translates usecase/domain errors into HTTP statuses:
// validation failures are 400, missing entities 404, overlap and blocked
// stays 409, and invariant violations in stored data 500.
func abortDomainError(c *gin.Context, err error, msg string) {
	var overlapErr *calendar.OverlapError
	if errors.As(err, &overlapErr) {
		httperr.AbortWithError(c, http.StatusConflict, err, msg, gin.H{
			"conflicting_entry_id": overlapErr.ConflictID.String(),
			"start_date":           overlapErr.ConflictSpan.Start().String(),
			"end_date":             overlapErr.ConflictSpan.End().String(),
		})
		return
	}

	switch {
	case errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, calendar.ErrInvalidRange),
		errors.Is(err, calendar.ErrInvalidPrice),
		errors.Is(err, listing.ErrInvalidName),
		errors.Is(err, listing.ErrInvalidBasePrice),
		errors.Is(err, listing.ErrInvalidCurrency):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	case errors.Is(err, calendar.ErrEntryNotFound),
		infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, queries.ErrStayUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Stay is unavailable", nil)
	case errors.Is(err, calendar.ErrInconsistentOverrides),
		infra.IsKind(err, infra.KindDataInconsistent):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Calendar data is inconsistent", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
