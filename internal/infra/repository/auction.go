package repository

import (
	"context"
	"errors"
	"time"

	"relove/internal/domain/auction"
	"relove/internal/infra"
	"relove/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AuctionRepository struct {
	db db.DBTX
}

func NewAuctionRepository(dbtx db.DBTX) *AuctionRepository {
	return &AuctionRepository{db: dbtx}
}

func (r *AuctionRepository) Create(ctx context.Context, a *auction.Auction) error {
	const query = `
		INSERT INTO auctions (id, seller_id, title, minimum_bid, current_bid, status, start_time, duration_hrs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		a.ID(), a.SellerID(), a.Title(), a.MinimumBid(), a.CurrentBid(),
		a.Status().String(), a.StartTime(), a.DurationHrs(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create auction", err)
	}
	return nil
}

func (r *AuctionRepository) FindByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error) {
	const query = `
		SELECT id, seller_id, title, minimum_bid, current_bid, status, start_time, duration_hrs, created_at, updated_at
		FROM auctions
		WHERE id = $1`

	var (
		aID, sellerID          uuid.UUID
		title, status          string
		minimumBid, currentBid int64
		durationHrs            int
		startTime              time.Time
		createdAt, updatedAt   time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&aID, &sellerID, &title, &minimumBid, &currentBid, &status, &startTime, &durationHrs, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("auction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find auction by ID", err)
	}

	return auction.ReconstructAuction(
		aID, sellerID, title, minimumBid, currentBid,
		auction.Status(status), startTime, durationHrs, createdAt, updatedAt,
	), nil
}

func (r *AuctionRepository) AppendBid(ctx context.Context, b *auction.Bid) error {
	// bid_time is server-assigned at insertion.
	const query = `
		INSERT INTO bids (id, auction_id, bidder_id, bid_amount)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, b.ID(), b.AuctionID(), b.BidderID(), b.Amount())
	if err != nil {
		return infra.WrapRepoErr("failed to append bid", err)
	}
	return nil
}

func (r *AuctionRepository) RaiseCurrentBid(ctx context.Context, auctionID uuid.UUID, amount int64) (bool, error) {
	// The current_bid < amount guard keeps current_bid monotonic even
	// when concurrent bidders read the same stale value.
	const query = `
		UPDATE auctions
		SET current_bid = $2, updated_at = now()
		WHERE id = $1 AND current_bid < $2`

	tag, err := r.db.Exec(ctx, query, auctionID, amount)
	if err != nil {
		return false, infra.WrapRepoErr("failed to raise current bid", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AuctionRepository) UpdateStatus(ctx context.Context, auctionID uuid.UUID, status auction.Status) error {
	const query = `
		UPDATE auctions
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, auctionID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update auction status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("auction not found", nil, infra.KindNotFound)
	}
	return nil
}
