package calendar

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInconsistentOverrides = errors.New("multiple price overrides cover the same date")

// ConsistencyError reports a date covered by more than one price override.
// The store never admits such a state through its own operations, so this
// only arises from corrupted persisted data.
type ConsistencyError struct {
	Date        Date
	OverrideIDs []uuid.UUID
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%d price overrides cover %s", len(e.OverrideIDs), e.Date)
}

func (e *ConsistencyError) Unwrap() error {
	return ErrInconsistentOverrides
}

// Resolver answers availability and pricing questions against a store.
// It is stateless; all state lives in the stores passed in.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) IsBlocked(store *OverrideStore, d Date) bool {
	for _, b := range store.BlockedRanges() {
		if b.Span().Contains(d) {
			return true
		}
	}
	return false
}

// IsRangeBlocked reports whether any date in span falls inside a blocked
// range. Entries and spans are inclusive, so a single shared date blocks
// the whole span.
func (r *Resolver) IsRangeBlocked(store *OverrideStore, span DateRange) bool {
	for _, b := range store.BlockedRanges() {
		if b.Span().Overlaps(span) {
			return true
		}
	}
	return false
}

// PriceFor returns the nightly price for d: the covering override's price
// when one exists, basePriceCents otherwise.
func (r *Resolver) PriceFor(store *OverrideStore, d Date, basePriceCents int64) (int64, error) {
	override, err := r.overrideFor(store, d)
	if err != nil {
		return 0, err
	}
	if override == nil {
		return basePriceCents, nil
	}
	return override.PriceCents(), nil
}

// TotalPriceFor sums the per-date price over every date in span, inclusive.
// Callers pricing a stay pass the night dates, not the checkout date.
func (r *Resolver) TotalPriceFor(store *OverrideStore, span DateRange, basePriceCents int64) (int64, error) {
	var total int64
	for _, d := range span.Dates() {
		price, err := r.PriceFor(store, d, basePriceCents)
		if err != nil {
			return 0, err
		}
		total += price
	}
	return total, nil
}

func (r *Resolver) overrideFor(store *OverrideStore, d Date) (*PriceOverride, error) {
	var covering []*PriceOverride
	for _, p := range store.PriceOverrides() {
		if p.Span().Contains(d) {
			covering = append(covering, p)
		}
	}
	switch len(covering) {
	case 0:
		return nil, nil
	case 1:
		return covering[0], nil
	default:
		ids := make([]uuid.UUID, 0, len(covering))
		for _, p := range covering {
			ids = append(ids, p.ID())
		}
		return nil, &ConsistencyError{Date: d, OverrideIDs: ids}
	}
}
