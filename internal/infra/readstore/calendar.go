package readstore

import (
	"context"
	"time"

	"staycal/internal/domain/calendar"
	"staycal/internal/infra"
	"staycal/internal/infra/db"

	"github.com/google/uuid"
)

type BlockedRangeRow struct {
	ID        uuid.UUID
	ScopeID   uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

type PriceOverrideRow struct {
	ID         uuid.UUID
	ScopeID    uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	PriceCents int64
	Note       string
}

type CalendarReadStore struct{}

func NewCalendarReadStore() *CalendarReadStore {
	return &CalendarReadStore{}
}

const findBlockedRangesSQL = `
SELECT id, scope_id, start_date, end_date, reason
FROM calendar_blocked_ranges
WHERE scope_id = $1
ORDER BY start_date`

func (s *CalendarReadStore) FindBlockedRanges(ctx context.Context, dbtx db.DBTX, scopeID uuid.UUID) ([]BlockedRangeRow, error) {
	rows, err := dbtx.Query(ctx, findBlockedRangesSQL, scopeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find blocked ranges", err)
	}
	defer rows.Close()

	var result []BlockedRangeRow
	for rows.Next() {
		var row BlockedRangeRow
		if err := rows.Scan(&row.ID, &row.ScopeID, &row.StartDate, &row.EndDate, &row.Reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocked range row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocked range rows", err)
	}
	return result, nil
}

const findPriceOverridesSQL = `
SELECT id, scope_id, start_date, end_date, price_cents, note
FROM calendar_price_overrides
WHERE scope_id = $1
ORDER BY start_date`

func (s *CalendarReadStore) FindPriceOverrides(ctx context.Context, dbtx db.DBTX, scopeID uuid.UUID) ([]PriceOverrideRow, error) {
	rows, err := dbtx.Query(ctx, findPriceOverridesSQL, scopeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find price overrides", err)
	}
	defer rows.Close()

	var result []PriceOverrideRow
	for rows.Next() {
		var row PriceOverrideRow
		if err := rows.Scan(&row.ID, &row.ScopeID, &row.StartDate, &row.EndDate, &row.PriceCents, &row.Note); err != nil {
			return nil, infra.WrapRepoErr("failed to scan price override row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate price override rows", err)
	}
	return result, nil
}

// LoadStore rehydrates the override store for one scope. Stored rows that
// violate the domain invariants (inverted ranges, non-positive prices,
// overlapping entries) surface as KindDataInconsistent instead of being
// silently accepted.
func (s *CalendarReadStore) LoadStore(ctx context.Context, dbtx db.DBTX, scopeID uuid.UUID) (*calendar.OverrideStore, error) {
	blockedRows, err := s.FindBlockedRanges(ctx, dbtx, scopeID)
	if err != nil {
		return nil, err
	}
	priceRows, err := s.FindPriceOverrides(ctx, dbtx, scopeID)
	if err != nil {
		return nil, err
	}

	blocked := make([]*calendar.BlockedRange, 0, len(blockedRows))
	for _, row := range blockedRows {
		span, err := calendar.NewDateRange(calendar.DateOf(row.StartDate), calendar.DateOf(row.EndDate))
		if err != nil {
			return nil, infra.WrapRepoErr("stored blocked range has invalid dates", err, infra.KindDataInconsistent)
		}
		blocked = append(blocked, calendar.ReconstructBlockedRange(row.ID, span, row.Reason))
	}

	prices := make([]*calendar.PriceOverride, 0, len(priceRows))
	for _, row := range priceRows {
		span, err := calendar.NewDateRange(calendar.DateOf(row.StartDate), calendar.DateOf(row.EndDate))
		if err != nil {
			return nil, infra.WrapRepoErr("stored price override has invalid dates", err, infra.KindDataInconsistent)
		}
		entry, err := calendar.ReconstructPriceOverride(row.ID, span, row.PriceCents, row.Note)
		if err != nil {
			return nil, infra.WrapRepoErr("stored price override has invalid price", err, infra.KindDataInconsistent)
		}
		prices = append(prices, entry)
	}

	store, err := calendar.ReconstructOverrideStore(scopeID, blocked, prices)
	if err != nil {
		return nil, infra.WrapRepoErr("stored calendar entries overlap", err, infra.KindDataInconsistent)
	}
	return store, nil
}
