package commands

import (
	"context"
	"errors"

	"relove/internal/domain/auction"
	"relove/internal/infra"
	"relove/internal/pkg/errs"
	"relove/internal/usecase/queries"
	"relove/internal/usecase/shared"

	"github.com/google/uuid"
)

type AuctionCommands interface {
	CreateAuction(ctx context.Context, params CreateAuctionParams) (*queries.AuctionView, error)
	// PlaceBid appends an immutable bid record and raises current_bid in
	// one transaction. The raise is a conditional update, so two bids
	// racing past the in-memory check cannot both win: the loser's bid
	// row is rolled back with the failed raise.
	PlaceBid(ctx context.Context, params PlaceBidParams) error
	CloseAuction(ctx context.Context, auctionID uuid.UUID, status auction.Status) error
}

type auctionUseCaseImpl struct {
	uow            shared.UnitOfWork
	auctionQueries queries.AuctionQueries
}

func NewAuctionUseCase(uow shared.UnitOfWork, auctionQueries queries.AuctionQueries) AuctionCommands {
	return &auctionUseCaseImpl{
		uow:            uow,
		auctionQueries: auctionQueries,
	}
}

func (u *auctionUseCaseImpl) CreateAuction(ctx context.Context, params CreateAuctionParams) (*queries.AuctionView, error) {
	entity, err := auction.NewAuction(params.SellerID, params.Title, params.MinimumBid, params.StartTime, params.DurationHrs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Auctions().Create(ctx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.auctionQueries.GetByID(ctx, entity.ID())
}

func (u *auctionUseCaseImpl) PlaceBid(ctx context.Context, params PlaceBidParams) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Auctions().FindByID(ctx, params.AuctionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrAuctionNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := current.ValidateBid(params.BidAmount); err != nil {
			switch {
			case errors.Is(err, auction.ErrAuctionClosed):
				return errs.ErrAuctionClosed
			case errors.Is(err, auction.ErrBidTooLow):
				return errs.ErrBidTooLow
			default:
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}

		// History first, then the raise; both commit or neither does.
		bid := auction.NewBid(params.AuctionID, params.BidderID, params.BidAmount)
		if err := tx.Auctions().AppendBid(ctx, bid); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		raised, err := tx.Auctions().RaiseCurrentBid(ctx, params.AuctionID, params.BidAmount)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !raised {
			// A concurrent bid moved current_bid past this amount.
			return errs.ErrBidTooLow
		}
		return nil
	})
}

func (u *auctionUseCaseImpl) CloseAuction(ctx context.Context, auctionID uuid.UUID, status auction.Status) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Auctions().FindByID(ctx, auctionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrAuctionNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := current.Close(status); err != nil {
			return errs.Mark(err, errs.ErrAuctionClosed)
		}

		if err := tx.Auctions().UpdateStatus(ctx, auctionID, current.Status()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
