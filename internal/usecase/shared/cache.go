package shared

import (
	"context"

	"github.com/google/uuid"
)

// QuoteSnapshot is the cached result of a price quote. CheckIn/CheckOut
// are "2006-01-02" strings so the cached form matches the API surface.
type QuoteSnapshot struct {
	ListingID        uuid.UUID `json:"listing_id"`
	CheckIn          string    `json:"check_in"`
	CheckOut         string    `json:"check_out"`
	Nights           int       `json:"nights"`
	Currency         string    `json:"currency"`
	TotalCents       int64     `json:"total_cents"`
	NightlyBaseCents int64     `json:"nightly_base_cents"`
}

// QuoteCache is a read-through cache for quotes. Invalidate must also be
// called with the global scope ID when global calendar entries change, so
// cached quotes for every listing stop matching.
type QuoteCache interface {
	Get(ctx context.Context, listingID uuid.UUID, checkIn, checkOut string) (*QuoteSnapshot, bool, error)
	Set(ctx context.Context, snap *QuoteSnapshot) error
	Invalidate(ctx context.Context, scopeID uuid.UUID) error
}
