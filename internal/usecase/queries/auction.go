package queries

import (
	"context"

	"relove/internal/infra"
	"relove/internal/pkg/clock"
	"relove/internal/pkg/errs"

	"github.com/google/uuid"
)

type AuctionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuctionView, error)
	// ListActive returns auctions whose stored status is active, newest
	// first. "Active" means "not manually closed"; callers read the
	// derived Expired field for time-based expiry.
	ListActive(ctx context.Context) ([]*AuctionView, error)
	// BidHistory returns all bids for the auction, most recent first.
	BidHistory(ctx context.Context, auctionID uuid.UUID) ([]*BidView, error)
}

type AuctionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuctionView, error)
	FindActive(ctx context.Context) ([]*AuctionView, error)
	FindBidsByAuctionID(ctx context.Context, auctionID uuid.UUID) ([]*BidView, error)
}

type auctionQueriesImpl struct {
	readStore AuctionReadStore
	clock     clock.Clock
}

func NewAuctionQueries(readStore AuctionReadStore, clock clock.Clock) AuctionQueries {
	return &auctionQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *auctionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AuctionView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAuctionNotFound
		}
		return nil, err
	}
	q.derive(view)
	return view, nil
}

func (q *auctionQueriesImpl) ListActive(ctx context.Context) ([]*AuctionView, error) {
	views, err := q.readStore.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		q.derive(v)
	}
	return views, nil
}

func (q *auctionQueriesImpl) BidHistory(ctx context.Context, auctionID uuid.UUID) ([]*BidView, error) {
	if _, err := q.GetByID(ctx, auctionID); err != nil {
		return nil, err
	}
	return q.readStore.FindBidsByAuctionID(ctx, auctionID)
}

func (q *auctionQueriesImpl) derive(v *AuctionView) {
	v.Expired = q.clock.Now().After(v.EndsAt)
}
