package shared

import (
	"context"
	"time"

	"staycal/internal/domain/calendar"
	"staycal/internal/domain/listing"
	"staycal/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Calendars() CalendarRepository
	Listings() ListingRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	// CalendarByScope rehydrates the full override store for one scope,
	// re-validating the no-overlap invariants against the stored rows.
	CalendarByScope(ctx context.Context, scopeID uuid.UUID) (*calendar.OverrideStore, error)
}

// Minimal snapshot for command read operations
type ListingSnapshot struct {
	ID             uuid.UUID
	Name           string
	BasePriceCents int64
	Currency       string
}

type CalendarRepository interface {
	// LockScope serializes calendar writers for one scope until the
	// surrounding transaction ends, so the no-overlap check always runs
	// against every committed row.
	LockScope(ctx context.Context, tx db.DBTX, scopeID uuid.UUID) error
	InsertBlockedRange(ctx context.Context, tx db.DBTX, scopeID uuid.UUID, entry *calendar.BlockedRange) error
	DeleteBlockedRange(ctx context.Context, tx db.DBTX, scopeID uuid.UUID, entryID uuid.UUID) error
	InsertPriceOverride(ctx context.Context, tx db.DBTX, scopeID uuid.UUID, entry *calendar.PriceOverride) error
	DeletePriceOverride(ctx context.Context, tx db.DBTX, scopeID uuid.UUID, entryID uuid.UUID) error
	// DeleteScope removes every calendar entry belonging to a scope,
	// used when the owning listing is deleted.
	DeleteScope(ctx context.Context, tx db.DBTX, scopeID uuid.UUID) error
}

type ListingRepository interface {
	// Row timestamps come from the caller's clock so tests can pin them.
	Create(ctx context.Context, tx db.DBTX, l *listing.Listing, now time.Time) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, l *listing.Listing, now time.Time) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}
