package response

import (
	"staycal/internal/usecase/queries"
)

type BlockedRangeResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason,omitempty"`
}

func FromBlockedRangeViews(views []queries.BlockedRangeView) []BlockedRangeResponse {
	res := make([]BlockedRangeResponse, len(views))
	for i, v := range views {
		res[i] = BlockedRangeResponse{
			ID:        v.ID.String(),
			StartDate: v.StartDate,
			EndDate:   v.EndDate,
			Reason:    v.Reason,
		}
	}
	return res
}

type PriceOverrideResponse struct {
	ID         string `json:"id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	PriceCents int64  `json:"price_cents"`
	Note       string `json:"note,omitempty"`
}

func FromPriceOverrideViews(views []queries.PriceOverrideView) []PriceOverrideResponse {
	res := make([]PriceOverrideResponse, len(views))
	for i, v := range views {
		res[i] = PriceOverrideResponse{
			ID:         v.ID.String(),
			StartDate:  v.StartDate,
			EndDate:    v.EndDate,
			PriceCents: v.PriceCents,
			Note:       v.Note,
		}
	}
	return res
}

type CalendarResponse struct {
	ScopeID        string                  `json:"scope_id"`
	BlockedRanges  []BlockedRangeResponse  `json:"blocked_ranges"`
	PriceOverrides []PriceOverrideResponse `json:"price_overrides"`
}

func FromCalendarView(v *queries.CalendarView) *CalendarResponse {
	return &CalendarResponse{
		ScopeID:        v.ScopeID.String(),
		BlockedRanges:  FromBlockedRangeViews(v.BlockedRanges),
		PriceOverrides: FromPriceOverrideViews(v.PriceOverrides),
	}
}
