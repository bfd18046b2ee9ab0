//go:build unit

package calendar

// ForcePriceOverride inserts an override without overlap checks, to
// simulate corrupted persisted data in resolver tests.
func (s *OverrideStore) ForcePriceOverride(p *PriceOverride) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[p.ID()] = p
}
