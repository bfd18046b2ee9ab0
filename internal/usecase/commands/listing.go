package commands

import (
	"context"
	"log/slog"

	domlisting "staycal/internal/domain/listing"
	"staycal/internal/pkg/clock"
	"staycal/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateListingRequest struct {
	Name           string
	BasePriceCents int64
	Currency       string
}

type UpdateListingRequest struct {
	Name           string
	BasePriceCents int64
}

type CreateListingResult struct {
	ListingID uuid.UUID
}

type ListingCommands interface {
	CreateListing(ctx context.Context, req CreateListingRequest) (*CreateListingResult, error)
	UpdateListing(ctx context.Context, listingID uuid.UUID, req UpdateListingRequest) error
	DeleteListing(ctx context.Context, listingID uuid.UUID) error
}

type listingUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.QuoteCache
	clk   clock.Clock
}

func NewListingUseCase(uow shared.UnitOfWork, cache shared.QuoteCache, clk clock.Clock) ListingCommands {
	return &listingUseCaseImpl{uow: uow, cache: cache, clk: clk}
}

func (uc *listingUseCaseImpl) CreateListing(ctx context.Context, req CreateListingRequest) (*CreateListingResult, error) {
	l, err := domlisting.NewListing(req.Name, req.BasePriceCents, req.Currency)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Listings().Create(ctx, tx.DB(), l, uc.clk.Now())
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateListingResult{ListingID: createdID}, nil
}

func (uc *listingUseCaseImpl) UpdateListing(ctx context.Context, listingID uuid.UUID, req UpdateListingRequest) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ListingByID(ctx, listingID)
		if derr != nil {
			return derr
		}

		l := domlisting.ReconstructListing(snap.ID, snap.Name, snap.BasePriceCents, snap.Currency)
		if derr = l.Rename(req.Name); derr != nil {
			return derr
		}
		if derr = l.Reprice(req.BasePriceCents); derr != nil {
			return derr
		}
		return tx.Listings().Update(ctx, tx.DB(), l, uc.clk.Now())
	})
	if err != nil {
		return err
	}

	// Quotes bake in the base price, so a price change invalidates them.
	uc.invalidateQuotes(ctx, listingID)
	return nil
}

func (uc *listingUseCaseImpl) DeleteListing(ctx context.Context, listingID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Calendars().DeleteScope(ctx, tx.DB(), listingID); derr != nil {
			return derr
		}
		return tx.Listings().Delete(ctx, tx.DB(), listingID)
	})
	if err != nil {
		return err
	}

	uc.invalidateQuotes(ctx, listingID)
	return nil
}

func (uc *listingUseCaseImpl) invalidateQuotes(ctx context.Context, listingID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, listingID); err != nil {
		slog.Warn("failed to invalidate quote cache", "listing_id", listingID, "error", err.Error())
	}
}
