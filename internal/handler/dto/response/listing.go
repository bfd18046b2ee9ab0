package response

import (
	"staycal/internal/usecase/queries"
)

type ListingResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BasePriceCents int64  `json:"base_price_cents"`
	Currency       string `json:"currency"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	return &ListingResponse{
		ID:             v.ID.String(),
		Name:           v.Name,
		BasePriceCents: v.BasePriceCents,
		Currency:       v.Currency,
	}
}

func FromListingList(views []*queries.ListingView) []*ListingResponse {
	res := make([]*ListingResponse, len(views))
	for i, v := range views {
		res[i] = FromListingView(v)
	}
	return res
}
