package calendar

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrOverlappingRange = errors.New("date range overlaps an existing entry")
	ErrEntryNotFound    = errors.New("calendar entry not found")
)

// GlobalScopeID is the distinguished scope whose entries apply to every
// listing. Listing-scoped stores use the listing's own ID.
var GlobalScopeID = uuid.Nil

// OverlapError reports which existing entry blocked an insertion.
type OverlapError struct {
	ConflictID   uuid.UUID
	ConflictSpan DateRange
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("date range overlaps existing entry %s (%s)", e.ConflictID, e.ConflictSpan)
}

func (e *OverlapError) Unwrap() error {
	return ErrOverlappingRange
}

// OverrideStore holds the blocked ranges and price overrides for one scope.
// Blocked ranges never overlap each other, and price overrides never overlap
// each other; a blocked range and a price override may coexist on the same
// dates. Safe for concurrent use.
type OverrideStore struct {
	mu      sync.Mutex
	scopeID uuid.UUID
	blocked map[uuid.UUID]*BlockedRange
	prices  map[uuid.UUID]*PriceOverride
}

func NewOverrideStore(scopeID uuid.UUID) *OverrideStore {
	return &OverrideStore{
		scopeID: scopeID,
		blocked: make(map[uuid.UUID]*BlockedRange),
		prices:  make(map[uuid.UUID]*PriceOverride),
	}
}

// ReconstructOverrideStore rehydrates a store from persisted entries,
// re-checking the no-overlap invariants so corrupted rows surface here
// instead of as silent double-coverage later.
func ReconstructOverrideStore(scopeID uuid.UUID, blocked []*BlockedRange, prices []*PriceOverride) (*OverrideStore, error) {
	s := NewOverrideStore(scopeID)
	for _, b := range blocked {
		if conflict := s.findBlockedConflict(b.Span()); conflict != nil {
			return nil, &OverlapError{ConflictID: conflict.ID(), ConflictSpan: conflict.Span()}
		}
		s.blocked[b.ID()] = b
	}
	for _, p := range prices {
		if conflict := s.findPriceConflict(p.Span()); conflict != nil {
			return nil, &OverlapError{ConflictID: conflict.ID(), ConflictSpan: conflict.Span()}
		}
		s.prices[p.ID()] = p
	}
	return s, nil
}

func (s *OverrideStore) ScopeID() uuid.UUID {
	return s.scopeID
}

func (s *OverrideStore) AddBlockedRange(span DateRange, reason string) (*BlockedRange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conflict := s.findBlockedConflict(span); conflict != nil {
		return nil, &OverlapError{ConflictID: conflict.ID(), ConflictSpan: conflict.Span()}
	}
	entry := NewBlockedRange(span, reason)
	s.blocked[entry.ID()] = entry
	return entry, nil
}

func (s *OverrideStore) RemoveBlockedRange(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blocked[id]; !ok {
		return ErrEntryNotFound
	}
	delete(s.blocked, id)
	return nil
}

func (s *OverrideStore) AddPriceOverride(span DateRange, priceCents int64, note string) (*PriceOverride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conflict := s.findPriceConflict(span); conflict != nil {
		return nil, &OverlapError{ConflictID: conflict.ID(), ConflictSpan: conflict.Span()}
	}
	entry, err := NewPriceOverride(span, priceCents, note)
	if err != nil {
		return nil, err
	}
	s.prices[entry.ID()] = entry
	return entry, nil
}

func (s *OverrideStore) RemovePriceOverride(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prices[id]; !ok {
		return ErrEntryNotFound
	}
	delete(s.prices, id)
	return nil
}

// BlockedRanges returns a snapshot sorted by start date.
func (s *OverrideStore) BlockedRanges() []*BlockedRange {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*BlockedRange, 0, len(s.blocked))
	for _, b := range s.blocked {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Span().Start().Before(out[j].Span().Start())
	})
	return out
}

// PriceOverrides returns a snapshot sorted by start date.
func (s *OverrideStore) PriceOverrides() []*PriceOverride {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*PriceOverride, 0, len(s.prices))
	for _, p := range s.prices {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Span().Start().Before(out[j].Span().Start())
	})
	return out
}

// callers hold s.mu
func (s *OverrideStore) findBlockedConflict(span DateRange) *BlockedRange {
	for _, b := range s.blocked {
		if b.Span().Overlaps(span) {
			return b
		}
	}
	return nil
}

func (s *OverrideStore) findPriceConflict(span DateRange) *PriceOverride {
	for _, p := range s.prices {
		if p.Span().Overlaps(span) {
			return p
		}
	}
	return nil
}
