package response

import (
	"staycal/internal/usecase/queries"
)

type AvailabilityResponse struct {
	ListingID string `json:"listing_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Nights    int    `json:"nights"`
	Available bool   `json:"available"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		ListingID: v.ListingID.String(),
		CheckIn:   v.CheckIn,
		CheckOut:  v.CheckOut,
		Nights:    v.Nights,
		Available: v.Available,
	}
}

type QuoteResponse struct {
	ListingID        string `json:"listing_id"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	Nights           int    `json:"nights"`
	Currency         string `json:"currency"`
	NightlyBaseCents int64  `json:"nightly_base_cents"`
	TotalCents       int64  `json:"total_cents"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		ListingID:        v.ListingID.String(),
		CheckIn:          v.CheckIn,
		CheckOut:         v.CheckOut,
		Nights:           v.Nights,
		Currency:         v.Currency,
		NightlyBaseCents: v.NightlyBaseCents,
		TotalCents:       v.TotalCents,
	}
}
