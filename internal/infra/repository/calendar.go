package repository

import (
	"context"

	"staycal/internal/domain/calendar"
	"staycal/internal/infra"
	"staycal/internal/infra/db"

	"github.com/google/uuid"
)

type CalendarRepository struct{}

func NewCalendarRepository() *CalendarRepository {
	return &CalendarRepository{}
}

// pg_advisory_xact_lock holds until commit or rollback, which is exactly
// the window the overlap re-check needs.
const lockScopeSQL = `SELECT pg_advisory_xact_lock(hashtext($1::text))`

func (r *CalendarRepository) LockScope(ctx context.Context, tx db.DBTX, scopeID uuid.UUID) error {
	if _, err := tx.Exec(ctx, lockScopeSQL, scopeID); err != nil {
		return infra.WrapRepoErr("failed to lock calendar scope", err)
	}
	return nil
}

const insertBlockedRangeSQL = `
INSERT INTO calendar_blocked_ranges (id, scope_id, start_date, end_date, reason)
VALUES ($1, $2, $3, $4, $5)`

func (r *CalendarRepository) InsertBlockedRange(ctx context.Context, tx db.DBTX, scopeID uuid.UUID, entry *calendar.BlockedRange) error {
	_, err := tx.Exec(ctx, insertBlockedRangeSQL,
		entry.ID(), scopeID, entry.Span().Start().Time(), entry.Span().End().Time(), entry.Reason())
	if err != nil {
		return infra.WrapRepoErr("failed to insert blocked range", err)
	}
	return nil
}

func (r *CalendarRepository) DeleteBlockedRange(ctx context.Context, tx db.DBTX, scopeID uuid.UUID, entryID uuid.UUID) error {
	tag, err := tx.Exec(ctx,
		`DELETE FROM calendar_blocked_ranges WHERE id = $1 AND scope_id = $2`, entryID, scopeID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete blocked range", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("blocked range not found", nil, infra.KindNotFound)
	}
	return nil
}

const insertPriceOverrideSQL = `
INSERT INTO calendar_price_overrides (id, scope_id, start_date, end_date, price_cents, note)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *CalendarRepository) InsertPriceOverride(ctx context.Context, tx db.DBTX, scopeID uuid.UUID, entry *calendar.PriceOverride) error {
	_, err := tx.Exec(ctx, insertPriceOverrideSQL,
		entry.ID(), scopeID, entry.Span().Start().Time(), entry.Span().End().Time(), entry.PriceCents(), entry.Note())
	if err != nil {
		return infra.WrapRepoErr("failed to insert price override", err)
	}
	return nil
}

func (r *CalendarRepository) DeletePriceOverride(ctx context.Context, tx db.DBTX, scopeID uuid.UUID, entryID uuid.UUID) error {
	tag, err := tx.Exec(ctx,
		`DELETE FROM calendar_price_overrides WHERE id = $1 AND scope_id = $2`, entryID, scopeID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete price override", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("price override not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CalendarRepository) DeleteScope(ctx context.Context, tx db.DBTX, scopeID uuid.UUID) error {
	if _, err := tx.Exec(ctx,
		`DELETE FROM calendar_blocked_ranges WHERE scope_id = $1`, scopeID); err != nil {
		return infra.WrapRepoErr("failed to delete blocked ranges for scope", err)
	}
	if _, err := tx.Exec(ctx,
		`DELETE FROM calendar_price_overrides WHERE scope_id = $1`, scopeID); err != nil {
		return infra.WrapRepoErr("failed to delete price overrides for scope", err)
	}
	return nil
}
