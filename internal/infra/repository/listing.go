package repository

import (
	"context"
	"time"

	"staycal/internal/domain/listing"
	"staycal/internal/infra"
	"staycal/internal/infra/db"
	"staycal/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ListingRepository struct{}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

const createListingSQL = `
INSERT INTO listings (id, name, base_price_cents, currency, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id`

func (r *ListingRepository) Create(ctx context.Context, tx db.DBTX, l *listing.Listing, now time.Time) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createListingSQL,
		l.ID(), l.Name(), l.BasePriceCents(), l.Currency(), now).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("listing already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create listing", err)
	}
	return id, nil
}

const updateListingSQL = `
UPDATE listings
SET name = $2, base_price_cents = $3, currency = $4, updated_at = $5
WHERE id = $1`

func (r *ListingRepository) Update(ctx context.Context, tx db.DBTX, l *listing.Listing, now time.Time) error {
	tag, err := tx.Exec(ctx, updateListingSQL,
		l.ID(), l.Name(), l.BasePriceCents(), l.Currency(), now)
	if err != nil {
		return infra.WrapRepoErr("failed to update listing", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete listing", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}
