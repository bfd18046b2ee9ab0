package calendar

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidPrice = errors.New("price must be a positive amount")

// BlockedRange marks a span of dates as unavailable. The reason is free
// text for the host's own bookkeeping ("maintenance", "personal use").
type BlockedRange struct {
	id     uuid.UUID
	span   DateRange
	reason string
}

func NewBlockedRange(span DateRange, reason string) *BlockedRange {
	return &BlockedRange{
		id:     uuid.New(),
		span:   span,
		reason: reason,
	}
}

func ReconstructBlockedRange(id uuid.UUID, span DateRange, reason string) *BlockedRange {
	return &BlockedRange{
		id:     id,
		span:   span,
		reason: reason,
	}
}

func (b *BlockedRange) ID() uuid.UUID   { return b.id }
func (b *BlockedRange) Span() DateRange { return b.span }
func (b *BlockedRange) Reason() string  { return b.reason }

// PriceOverride replaces the nightly base price for every date in its span.
// Amounts are integer cents.
type PriceOverride struct {
	id         uuid.UUID
	span       DateRange
	priceCents int64
	note       string
}

func NewPriceOverride(span DateRange, priceCents int64, note string) (*PriceOverride, error) {
	if priceCents <= 0 {
		return nil, ErrInvalidPrice
	}
	return &PriceOverride{
		id:         uuid.New(),
		span:       span,
		priceCents: priceCents,
		note:       note,
	}, nil
}

func ReconstructPriceOverride(id uuid.UUID, span DateRange, priceCents int64, note string) (*PriceOverride, error) {
	if priceCents <= 0 {
		return nil, ErrInvalidPrice
	}
	return &PriceOverride{
		id:         id,
		span:       span,
		priceCents: priceCents,
		note:       note,
	}, nil
}

func (p *PriceOverride) ID() uuid.UUID     { return p.id }
func (p *PriceOverride) Span() DateRange   { return p.span }
func (p *PriceOverride) PriceCents() int64 { return p.priceCents }
func (p *PriceOverride) Note() string      { return p.note }
