package queries

import (
	"context"

	"staycal/internal/domain/calendar"
	"staycal/internal/infra/db"
	"staycal/internal/infra/readstore"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BlockedRangeView struct {
	ID        uuid.UUID `json:"id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason,omitempty"`
}

type PriceOverrideView struct {
	ID         uuid.UUID `json:"id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	PriceCents int64     `json:"price_cents"`
	Note       string    `json:"note,omitempty"`
}

type CalendarView struct {
	ScopeID        uuid.UUID           `json:"scope_id"`
	BlockedRanges  []BlockedRangeView  `json:"blocked_ranges"`
	PriceOverrides []PriceOverrideView `json:"price_overrides"`
}

type CalendarQueries interface {
	ListBlockedRanges(ctx context.Context, scopeID uuid.UUID) ([]BlockedRangeView, error)
	ListPriceOverrides(ctx context.Context, scopeID uuid.UUID) ([]PriceOverrideView, error)
	// GetCalendar reads both entry kinds in one read-only transaction for a
	// consistent snapshot.
	GetCalendar(ctx context.Context, scopeID uuid.UUID) (*CalendarView, error)
}

type CalendarViewRepo interface {
	FindBlockedRanges(ctx context.Context, dbtx db.DBTX, scopeID uuid.UUID) ([]readstore.BlockedRangeRow, error)
	FindPriceOverrides(ctx context.Context, dbtx db.DBTX, scopeID uuid.UUID) ([]readstore.PriceOverrideRow, error)
}

type calendarQueriesImpl struct {
	uow      UnitOfWorkReader
	repo     CalendarViewRepo
	listings ListingViewRepo
}

// UnitOfWorkReader is the read-side subset of the unit of work.
type UnitOfWorkReader interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

func NewCalendarQueries(uow UnitOfWorkReader, repo CalendarViewRepo, listings ListingViewRepo) CalendarQueries {
	return &calendarQueriesImpl{uow: uow, repo: repo, listings: listings}
}

// ensureScope rejects reads for listings that do not exist, matching the
// write side; the global scope has no backing listing row.
func (q *calendarQueriesImpl) ensureScope(ctx context.Context, dbtx db.DBTX, scopeID uuid.UUID) error {
	if scopeID == calendar.GlobalScopeID {
		return nil
	}
	_, err := q.listings.FindByID(ctx, dbtx, scopeID)
	return err
}

func (q *calendarQueriesImpl) ListBlockedRanges(ctx context.Context, scopeID uuid.UUID) ([]BlockedRangeView, error) {
	var views []BlockedRangeView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := q.ensureScope(ctx, dbtx, scopeID); err != nil {
			return err
		}
		rows, err := q.repo.FindBlockedRanges(ctx, dbtx, scopeID)
		if err != nil {
			return err
		}
		views = toBlockedRangeViews(rows)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *calendarQueriesImpl) ListPriceOverrides(ctx context.Context, scopeID uuid.UUID) ([]PriceOverrideView, error) {
	var views []PriceOverrideView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := q.ensureScope(ctx, dbtx, scopeID); err != nil {
			return err
		}
		rows, err := q.repo.FindPriceOverrides(ctx, dbtx, scopeID)
		if err != nil {
			return err
		}
		views = toPriceOverrideViews(rows)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *calendarQueriesImpl) GetCalendar(ctx context.Context, scopeID uuid.UUID) (*CalendarView, error) {
	view := &CalendarView{ScopeID: scopeID}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := q.ensureScope(ctx, dbtx, scopeID); err != nil {
			return err
		}
		blocked, err := q.repo.FindBlockedRanges(ctx, dbtx, scopeID)
		if err != nil {
			return err
		}
		prices, err := q.repo.FindPriceOverrides(ctx, dbtx, scopeID)
		if err != nil {
			return err
		}
		view.BlockedRanges = toBlockedRangeViews(blocked)
		view.PriceOverrides = toPriceOverrideViews(prices)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func toBlockedRangeViews(rows []readstore.BlockedRangeRow) []BlockedRangeView {
	views := make([]BlockedRangeView, len(rows))
	for i, row := range rows {
		views[i] = BlockedRangeView{
			ID:        row.ID,
			StartDate: row.StartDate.Format("2006-01-02"),
			EndDate:   row.EndDate.Format("2006-01-02"),
			Reason:    row.Reason,
		}
	}
	return views
}

func toPriceOverrideViews(rows []readstore.PriceOverrideRow) []PriceOverrideView {
	views := make([]PriceOverrideView, len(rows))
	for i, row := range rows {
		views[i] = PriceOverrideView{
			ID:         row.ID,
			StartDate:  row.StartDate.Format("2006-01-02"),
			EndDate:    row.EndDate.Format("2006-01-02"),
			PriceCents: row.PriceCents,
			Note:       row.Note,
		}
	}
	return views
}
