package queries

import (
	"context"

	"staycal/internal/infra/db"
	"staycal/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	BasePriceCents int64     `json:"base_price_cents"`
	Currency       string    `json:"currency"`
}

type ListingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	List(ctx context.Context) ([]*ListingView, error)
}

type ListingViewRepo interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ListingSnapshot, error)
	FindAll(ctx context.Context, dbtx db.DBTX) ([]*shared.ListingSnapshot, error)
}

type listingQueriesImpl struct {
	uow  UnitOfWorkReader
	repo ListingViewRepo
}

func NewListingQueries(uow UnitOfWorkReader, repo ListingViewRepo) ListingQueries {
	return &listingQueriesImpl{uow: uow, repo: repo}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	var view *ListingView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		snap, err := q.repo.FindByID(ctx, dbtx, id)
		if err != nil {
			return err
		}
		view = toListingView(snap)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *listingQueriesImpl) List(ctx context.Context) ([]*ListingView, error) {
	var views []*ListingView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		snaps, err := q.repo.FindAll(ctx, dbtx)
		if err != nil {
			return err
		}
		views = make([]*ListingView, len(snaps))
		for i, snap := range snaps {
			views[i] = toListingView(snap)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func toListingView(snap *shared.ListingSnapshot) *ListingView {
	return &ListingView{
		ID:             snap.ID,
		Name:           snap.Name,
		BasePriceCents: snap.BasePriceCents,
		Currency:       snap.Currency,
	}
}
