package commands

import (
	"context"
	"log/slog"

	"staycal/internal/domain/calendar"
	"staycal/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddBlockedRangeRequest struct {
	StartDate string
	EndDate   string
	Reason    string
}

type AddPriceOverrideRequest struct {
	StartDate  string
	EndDate    string
	PriceCents int64
	Note       string
}

type CalendarEntryResult struct {
	EntryID uuid.UUID
}

type CalendarCommands interface {
	AddBlockedRange(ctx context.Context, scopeID uuid.UUID, req AddBlockedRangeRequest) (*CalendarEntryResult, error)
	RemoveBlockedRange(ctx context.Context, scopeID uuid.UUID, entryID uuid.UUID) error
	AddPriceOverride(ctx context.Context, scopeID uuid.UUID, req AddPriceOverrideRequest) (*CalendarEntryResult, error)
	RemovePriceOverride(ctx context.Context, scopeID uuid.UUID, entryID uuid.UUID) error
}

type calendarUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.QuoteCache
}

func NewCalendarUseCase(uow shared.UnitOfWork, cache shared.QuoteCache) CalendarCommands {
	return &calendarUseCaseImpl{uow: uow, cache: cache}
}

// AddBlockedRange takes the scope's advisory lock, rebuilds the override
// store from committed rows and lets the store enforce the no-overlap
// invariant. The lock is held until commit, so a concurrent writer for the
// same scope waits and then re-checks against the winner's rows.
func (uc *calendarUseCaseImpl) AddBlockedRange(ctx context.Context, scopeID uuid.UUID, req AddBlockedRangeRequest) (*CalendarEntryResult, error) {
	span, err := parseSpan(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	var entryID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := uc.ensureScope(ctx, tx, scopeID); derr != nil {
			return derr
		}
		if derr := tx.Calendars().LockScope(ctx, tx.DB(), scopeID); derr != nil {
			return derr
		}
		store, derr := tx.Reads().CalendarByScope(ctx, scopeID)
		if derr != nil {
			return derr
		}
		entry, derr := store.AddBlockedRange(span, req.Reason)
		if derr != nil {
			return derr
		}
		entryID = entry.ID()
		return tx.Calendars().InsertBlockedRange(ctx, tx.DB(), scopeID, entry)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateQuotes(ctx, scopeID)
	return &CalendarEntryResult{EntryID: entryID}, nil
}

func (uc *calendarUseCaseImpl) RemoveBlockedRange(ctx context.Context, scopeID uuid.UUID, entryID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Calendars().DeleteBlockedRange(ctx, tx.DB(), scopeID, entryID)
	})
	if err != nil {
		return err
	}

	uc.invalidateQuotes(ctx, scopeID)
	return nil
}

func (uc *calendarUseCaseImpl) AddPriceOverride(ctx context.Context, scopeID uuid.UUID, req AddPriceOverrideRequest) (*CalendarEntryResult, error) {
	span, err := parseSpan(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	var entryID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := uc.ensureScope(ctx, tx, scopeID); derr != nil {
			return derr
		}
		if derr := tx.Calendars().LockScope(ctx, tx.DB(), scopeID); derr != nil {
			return derr
		}
		store, derr := tx.Reads().CalendarByScope(ctx, scopeID)
		if derr != nil {
			return derr
		}
		entry, derr := store.AddPriceOverride(span, req.PriceCents, req.Note)
		if derr != nil {
			return derr
		}
		entryID = entry.ID()
		return tx.Calendars().InsertPriceOverride(ctx, tx.DB(), scopeID, entry)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateQuotes(ctx, scopeID)
	return &CalendarEntryResult{EntryID: entryID}, nil
}

func (uc *calendarUseCaseImpl) RemovePriceOverride(ctx context.Context, scopeID uuid.UUID, entryID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Calendars().DeletePriceOverride(ctx, tx.DB(), scopeID, entryID)
	})
	if err != nil {
		return err
	}

	uc.invalidateQuotes(ctx, scopeID)
	return nil
}

// ensureScope verifies the owning listing exists; the global scope has no
// backing listing row.
func (uc *calendarUseCaseImpl) ensureScope(ctx context.Context, tx shared.Tx, scopeID uuid.UUID) error {
	if scopeID == calendar.GlobalScopeID {
		return nil
	}
	_, err := tx.Reads().ListingByID(ctx, scopeID)
	return err
}

// Cache invalidation is best-effort; stale quotes expire via TTL anyway.
func (uc *calendarUseCaseImpl) invalidateQuotes(ctx context.Context, scopeID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, scopeID); err != nil {
		slog.Warn("failed to invalidate quote cache", "scope_id", scopeID, "error", err.Error())
	}
}

func parseSpan(startDate, endDate string) (calendar.DateRange, error) {
	start, err := calendar.ParseDate(startDate)
	if err != nil {
		return calendar.DateRange{}, err
	}
	end, err := calendar.ParseDate(endDate)
	if err != nil {
		return calendar.DateRange{}, err
	}
	return calendar.NewDateRange(start, end)
}
