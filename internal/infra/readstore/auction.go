package readstore

import (
	"context"
	"errors"

	"relove/internal/infra"
	"relove/internal/infra/db"
	"relove/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AuctionReadStore struct {
	db db.DBTX
}

func NewAuctionReadStore(dbtx db.DBTX) *AuctionReadStore {
	return &AuctionReadStore{db: dbtx}
}

// ends_at is computed in SQL from start_time + duration so every reader
// sees the same expiry regardless of the stored status.
const auctionColumns = `
	id, seller_id, title, minimum_bid, current_bid, status,
	start_time, duration_hrs,
	start_time + (duration_hrs * interval '1 hour') AS ends_at,
	created_at, updated_at`

func (s *AuctionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuctionView, error) {
	query := `SELECT` + auctionColumns + ` FROM auctions WHERE id = $1`

	view, err := scanAuction(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("auction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find auction", err)
	}
	return view, nil
}

func (s *AuctionReadStore) FindActive(ctx context.Context) ([]*queries.AuctionView, error) {
	query := `SELECT` + auctionColumns + ` FROM auctions WHERE status = 'active' ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active auctions", err)
	}
	defer rows.Close()

	var views []*queries.AuctionView
	for rows.Next() {
		view, err := scanAuction(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan auction", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate auctions", err)
	}
	return views, nil
}

func scanAuction(row pgx.Row) (*queries.AuctionView, error) {
	var v queries.AuctionView
	err := row.Scan(
		&v.ID, &v.SellerID, &v.Title, &v.MinimumBid, &v.CurrentBid, &v.Status,
		&v.StartTime, &v.DurationHrs, &v.EndsAt, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *AuctionReadStore) FindBidsByAuctionID(ctx context.Context, auctionID uuid.UUID) ([]*queries.BidView, error) {
	const query = `
		SELECT id, auction_id, bidder_id, bid_amount, bid_time
		FROM bids
		WHERE auction_id = $1
		ORDER BY bid_time DESC`

	rows, err := s.db.Query(ctx, query, auctionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bids", err)
	}
	defer rows.Close()

	var views []*queries.BidView
	for rows.Next() {
		var v queries.BidView
		if err := rows.Scan(&v.ID, &v.AuctionID, &v.BidderID, &v.BidAmount, &v.BidTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bid", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bids", err)
	}
	return views, nil
}
