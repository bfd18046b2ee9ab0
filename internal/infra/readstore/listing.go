package readstore

import (
	"context"

	"staycal/internal/infra"
	"staycal/internal/infra/db"
	"staycal/internal/pkg/pgconv"
	"staycal/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingReadStore struct{}

func NewListingReadStore() *ListingReadStore {
	return &ListingReadStore{}
}

const findListingByIDSQL = `
SELECT id, name, base_price_cents, currency
FROM listings
WHERE id = $1`

func (s *ListingReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ListingSnapshot, error) {
	var snap shared.ListingSnapshot
	err := dbtx.QueryRow(ctx, findListingByIDSQL, id).
		Scan(&snap.ID, &snap.Name, &snap.BasePriceCents, &snap.Currency)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by ID", err)
	}
	return &snap, nil
}

const findAllListingsSQL = `
SELECT id, name, base_price_cents, currency
FROM listings
ORDER BY created_at`

func (s *ListingReadStore) FindAll(ctx context.Context, dbtx db.DBTX) ([]*shared.ListingSnapshot, error) {
	rows, err := dbtx.Query(ctx, findAllListingsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all listings", err)
	}
	defer rows.Close()

	var result []*shared.ListingSnapshot
	for rows.Next() {
		var snap shared.ListingSnapshot
		if err := rows.Scan(&snap.ID, &snap.Name, &snap.BasePriceCents, &snap.Currency); err != nil {
			return nil, infra.WrapRepoErr("failed to scan listing row", err)
		}
		result = append(result, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate listing rows", err)
	}
	return result, nil
}
