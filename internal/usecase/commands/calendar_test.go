//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"

	"staycal/internal/domain/calendar"
	"staycal/internal/infra/db"
	"staycal/internal/usecase/commands"
	"staycal/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeCalendarState holds the committed rows shared by every fake
// transaction. scopeLock stands in for the per-scope advisory lock: it is
// taken by LockScope and released when the transaction ends, exactly like
// pg_advisory_xact_lock.
type fakeCalendarState struct {
	scopeLock sync.Mutex
	dataMu    sync.Mutex
	blocked   []*calendar.BlockedRange
}

func (s *fakeCalendarState) committedBlocked() []*calendar.BlockedRange {
	s.dataMu.Lock()
	defer s.dataMu.Unlock()
	return append([]*calendar.BlockedRange(nil), s.blocked...)
}

type fakeUoW struct {
	state *fakeCalendarState
}

// Within mimics a ReadCommitted transaction: reads inside fn only see rows
// committed by earlier transactions, and staged inserts become visible all
// at once when fn returns nil.
func (u *fakeUoW) Within(_ context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &fakeTx{state: u.state}
	err := fn(context.Background(), tx)
	if err == nil {
		u.state.dataMu.Lock()
		u.state.blocked = append(u.state.blocked, tx.staged...)
		u.state.dataMu.Unlock()
	}
	if tx.locked {
		u.state.scopeLock.Unlock()
	}
	return err
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeTx{state: u.state}
}

type fakeTx struct {
	state  *fakeCalendarState
	staged []*calendar.BlockedRange
	locked bool
}

func (t *fakeTx) Calendars() shared.CalendarRepository { return t }

func (t *fakeTx) Listings() shared.ListingRepository { return nil }

func (t *fakeTx) Reads() shared.CommandReads { return t }

func (t *fakeTx) DB() db.DBTX { return nil }

func (t *fakeTx) LockScope(context.Context, db.DBTX, uuid.UUID) error {
	t.state.scopeLock.Lock()
	t.locked = true
	return nil
}

func (t *fakeTx) InsertBlockedRange(_ context.Context, _ db.DBTX, _ uuid.UUID, entry *calendar.BlockedRange) error {
	t.staged = append(t.staged, entry)
	return nil
}

func (t *fakeTx) DeleteBlockedRange(context.Context, db.DBTX, uuid.UUID, uuid.UUID) error {
	return nil
}

func (t *fakeTx) InsertPriceOverride(context.Context, db.DBTX, uuid.UUID, *calendar.PriceOverride) error {
	return nil
}

func (t *fakeTx) DeletePriceOverride(context.Context, db.DBTX, uuid.UUID, uuid.UUID) error {
	return nil
}

func (t *fakeTx) DeleteScope(context.Context, db.DBTX, uuid.UUID) error {
	return nil
}

func (t *fakeTx) ListingByID(_ context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	return &shared.ListingSnapshot{ID: id}, nil
}

func (t *fakeTx) CalendarByScope(_ context.Context, scopeID uuid.UUID) (*calendar.OverrideStore, error) {
	return calendar.ReconstructOverrideStore(scopeID, t.state.committedBlocked(), nil)
}

type noopQuoteCache struct{}

func (noopQuoteCache) Get(context.Context, uuid.UUID, string, string) (*shared.QuoteSnapshot, bool, error) {
	return nil, false, nil
}
func (noopQuoteCache) Set(context.Context, *shared.QuoteSnapshot) error { return nil }

func (noopQuoteCache) Invalidate(context.Context, uuid.UUID) error { return nil }

// Two writers race to block the same span. The scope lock forces them to
// run one after the other, so the loser sees the winner's committed row
// and is rejected instead of committing a second overlapping range.
func TestAddBlockedRange_ConcurrentWritersSerializePerScope(t *testing.T) {
	t.Parallel()

	state := &fakeCalendarState{}
	uc := commands.NewCalendarUseCase(&fakeUoW{state: state}, noopQuoteCache{})

	req := commands.AddBlockedRangeRequest{
		StartDate: "2026-03-10",
		EndDate:   "2026-03-15",
		Reason:    "maintenance",
	}

	const writers = 2
	results := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AddBlockedRange(context.Background(), calendar.GlobalScopeID, req)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, calendar.ErrOverlappingRange, "the losing writer should get an overlap rejection")
		rejected++
	}
	require.Equal(t, 1, succeeded, "exactly one writer should commit")
	require.Equal(t, 1, rejected, "the other writer should be rejected")

	committed := state.committedBlocked()
	require.Len(t, committed, 1, "only one blocked range may be committed")
	_, err := calendar.ReconstructOverrideStore(calendar.GlobalScopeID, committed, nil)
	require.NoError(t, err, "committed rows should still satisfy the no-overlap invariant")
}
