package listing

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidName      = errors.New("listing name must not be empty")
	ErrInvalidBasePrice = errors.New("base price must be a positive amount")
	ErrInvalidCurrency  = errors.New("currency must be a 3-letter ISO code")
)

// Listing is a rentable property. The base price is the nightly rate in
// integer cents, applied whenever no price override covers a date.
type Listing struct {
	id             uuid.UUID
	name           string
	basePriceCents int64
	currency       string
}

func NewListing(name string, basePriceCents int64, currency string) (*Listing, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if basePriceCents <= 0 {
		return nil, ErrInvalidBasePrice
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}
	return &Listing{
		id:             uuid.New(),
		name:           name,
		basePriceCents: basePriceCents,
		currency:       currency,
	}, nil
}

func ReconstructListing(id uuid.UUID, name string, basePriceCents int64, currency string) *Listing {
	return &Listing{
		id:             id,
		name:           name,
		basePriceCents: basePriceCents,
		currency:       currency,
	}
}

func (l *Listing) ID() uuid.UUID         { return l.id }
func (l *Listing) Name() string          { return l.name }
func (l *Listing) BasePriceCents() int64 { return l.basePriceCents }
func (l *Listing) Currency() string      { return l.currency }

// Rename and Reprice validate the same way the constructor does.

func (l *Listing) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	l.name = name
	return nil
}

func (l *Listing) Reprice(basePriceCents int64) error {
	if basePriceCents <= 0 {
		return ErrInvalidBasePrice
	}
	l.basePriceCents = basePriceCents
	return nil
}
