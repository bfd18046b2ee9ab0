//go:build unit || e2e

package builder

import (
	domlisting "staycal/internal/domain/listing"
	reqdto "staycal/internal/handler/dto/request"
	"staycal/internal/usecase/queries"
	"staycal/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	ID             uuid.UUID
	Name           string
	BasePriceCents int64
	Currency       string
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		ID:             uuid.New(),
		Name:           "Seaside Cottage",
		BasePriceCents: 12000,
		Currency:       "USD",
	}
}

// Build methods
func (b *ListingBuilder) BuildDomain() (*domlisting.Listing, error) {
	return domlisting.NewListing(b.Name, b.BasePriceCents, b.Currency)
}

func (b *ListingBuilder) BuildCreateRequestDTO() reqdto.CreateListingRequest {
	return reqdto.CreateListingRequest{
		Name:           b.Name,
		BasePriceCents: b.BasePriceCents,
		Currency:       b.Currency,
	}
}

func (b *ListingBuilder) BuildUpdateRequestDTO() reqdto.UpdateListingRequest {
	return reqdto.UpdateListingRequest{
		Name:           b.Name,
		BasePriceCents: b.BasePriceCents,
	}
}

func (b *ListingBuilder) BuildViewQuery() *queries.ListingView {
	return &queries.ListingView{
		ID:             b.ID,
		Name:           b.Name,
		BasePriceCents: b.BasePriceCents,
		Currency:       b.Currency,
	}
}

func (b *ListingBuilder) BuildSnapshot() *shared.ListingSnapshot {
	return &shared.ListingSnapshot{
		ID:             b.ID,
		Name:           b.Name,
		BasePriceCents: b.BasePriceCents,
		Currency:       b.Currency,
	}
}

// Fluent builder methods
func (b *ListingBuilder) WithID(id uuid.UUID) *ListingBuilder {
	b.ID = id
	return b
}

func (b *ListingBuilder) WithName(name string) *ListingBuilder {
	b.Name = name
	return b
}

func (b *ListingBuilder) WithBasePriceCents(cents int64) *ListingBuilder {
	b.BasePriceCents = cents
	return b
}

func (b *ListingBuilder) WithCurrency(currency string) *ListingBuilder {
	b.Currency = currency
	return b
}
