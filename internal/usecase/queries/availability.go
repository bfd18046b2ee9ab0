package queries

import (
	"context"
	"log/slog"

	"staycal/internal/domain/calendar"
	"staycal/internal/infra/db"
	"staycal/internal/pkg/errs"
	"staycal/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrStayUnavailable = errs.New("requested stay overlaps a blocked range")

type AvailabilityView struct {
	ListingID uuid.UUID `json:"listing_id"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	Nights    int       `json:"nights"`
	Available bool      `json:"available"`
}

type QuoteView struct {
	ListingID        uuid.UUID `json:"listing_id"`
	CheckIn          string    `json:"check_in"`
	CheckOut         string    `json:"check_out"`
	Nights           int       `json:"nights"`
	Currency         string    `json:"currency"`
	NightlyBaseCents int64     `json:"nightly_base_cents"`
	TotalCents       int64     `json:"total_cents"`
}

type AvailabilityQueries interface {
	CheckAvailability(ctx context.Context, listingID uuid.UUID, checkIn, checkOut string) (*AvailabilityView, error)
	Quote(ctx context.Context, listingID uuid.UUID, checkIn, checkOut string) (*QuoteView, error)
}

// CalendarStoreLoader rehydrates a scope's override store from storage.
type CalendarStoreLoader interface {
	LoadStore(ctx context.Context, dbtx db.DBTX, scopeID uuid.UUID) (*calendar.OverrideStore, error)
}

type availabilityQueriesImpl struct {
	uow       UnitOfWorkReader
	listings  ListingViewRepo
	calendars CalendarStoreLoader
	cache     shared.QuoteCache
	resolver  *calendar.Resolver
}

func NewAvailabilityQueries(uow UnitOfWorkReader, listings ListingViewRepo, calendars CalendarStoreLoader, cache shared.QuoteCache) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:       uow,
		listings:  listings,
		calendars: calendars,
		cache:     cache,
		resolver:  calendar.NewResolver(),
	}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, listingID uuid.UUID, checkIn, checkOut string) (*AvailabilityView, error) {
	stay, err := parseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		ListingID: listingID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Nights:    len(stay.Dates()),
	}
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if _, derr := q.listings.FindByID(ctx, dbtx, listingID); derr != nil {
			return derr
		}
		listingStore, derr := q.calendars.LoadStore(ctx, dbtx, listingID)
		if derr != nil {
			return derr
		}
		globalStore, derr := q.calendars.LoadStore(ctx, dbtx, calendar.GlobalScopeID)
		if derr != nil {
			return derr
		}
		view.Available = !q.resolver.IsRangeBlocked(listingStore, stay) &&
			!q.resolver.IsRangeBlocked(globalStore, stay)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Quote prices the stay night by night. Listing-scoped overrides win over
// global ones, which win over the listing's base price. Results are served
// from the quote cache when the underlying calendars have not changed.
func (q *availabilityQueriesImpl) Quote(ctx context.Context, listingID uuid.UUID, checkIn, checkOut string) (*QuoteView, error) {
	stay, err := parseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	if snap, ok, cerr := q.cache.Get(ctx, listingID, checkIn, checkOut); cerr != nil {
		slog.Warn("quote cache read failed", "listing_id", listingID, "error", cerr.Error())
	} else if ok {
		return toQuoteView(snap), nil
	}

	var snap *shared.QuoteSnapshot
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		listing, derr := q.listings.FindByID(ctx, dbtx, listingID)
		if derr != nil {
			return derr
		}
		listingStore, derr := q.calendars.LoadStore(ctx, dbtx, listingID)
		if derr != nil {
			return derr
		}
		globalStore, derr := q.calendars.LoadStore(ctx, dbtx, calendar.GlobalScopeID)
		if derr != nil {
			return derr
		}

		if q.resolver.IsRangeBlocked(listingStore, stay) || q.resolver.IsRangeBlocked(globalStore, stay) {
			return ErrStayUnavailable
		}

		var total int64
		for _, d := range stay.Dates() {
			nightly, perr := q.resolver.PriceFor(globalStore, d, listing.BasePriceCents)
			if perr != nil {
				return perr
			}
			nightly, perr = q.resolver.PriceFor(listingStore, d, nightly)
			if perr != nil {
				return perr
			}
			total += nightly
		}

		snap = &shared.QuoteSnapshot{
			ListingID:        listingID,
			CheckIn:          checkIn,
			CheckOut:         checkOut,
			Nights:           len(stay.Dates()),
			Currency:         listing.Currency,
			TotalCents:       total,
			NightlyBaseCents: listing.BasePriceCents,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cerr := q.cache.Set(ctx, snap); cerr != nil {
		slog.Warn("quote cache write failed", "listing_id", listingID, "error", cerr.Error())
	}
	return toQuoteView(snap), nil
}

// parseStay converts check-in/check-out into the span of nights actually
// stayed: check-out day itself is not occupied, so a one-night stay spans
// a single date.
func parseStay(checkIn, checkOut string) (calendar.DateRange, error) {
	in, err := calendar.ParseDate(checkIn)
	if err != nil {
		return calendar.DateRange{}, err
	}
	out, err := calendar.ParseDate(checkOut)
	if err != nil {
		return calendar.DateRange{}, err
	}
	return calendar.NewDateRange(in, out.AddDays(-1))
}

func toQuoteView(snap *shared.QuoteSnapshot) *QuoteView {
	return &QuoteView{
		ListingID:        snap.ListingID,
		CheckIn:          snap.CheckIn,
		CheckOut:         snap.CheckOut,
		Nights:           snap.Nights,
		Currency:         snap.Currency,
		NightlyBaseCents: snap.NightlyBaseCents,
		TotalCents:       snap.TotalCents,
	}
}
