//go:build unit || e2e

package builder

import (
	"time"

	domauction "relove/internal/domain/auction"
	reqdto "relove/internal/handler/dto/request"
	"relove/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuctionBuilder struct {
	SellerID    uuid.UUID
	Title       string
	MinimumBid  int64
	CurrentBid  int64
	Status      domauction.Status
	StartTime   time.Time
	DurationHrs int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewAuctionBuilder() *AuctionBuilder {
	now := time.Now()
	return &AuctionBuilder{
		SellerID:    uuid.New(),
		Title:       "Vintage leather jacket",
		MinimumBid:  5000,
		CurrentBid:  5000,
		Status:      domauction.StatusActive,
		StartTime:   now,
		DurationHrs: 72,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (a *AuctionBuilder) With(mutate func(*AuctionBuilder)) *AuctionBuilder {
	mutate(a)
	return a
}

func (a *AuctionBuilder) BuildDomain() (*domauction.Auction, error) {
	return domauction.NewAuction(a.SellerID, a.Title, a.MinimumBid, a.StartTime, a.DurationHrs)
}

// BuildReconstructed bypasses construction validation so tests can stage
// closed or already-bid-on auctions.
func (a *AuctionBuilder) BuildReconstructed() *domauction.Auction {
	return domauction.ReconstructAuction(
		uuid.New(), a.SellerID,
		a.Title,
		a.MinimumBid, a.CurrentBid,
		a.Status,
		a.StartTime,
		a.DurationHrs,
		a.CreatedAt, a.UpdatedAt,
	)
}

func (a *AuctionBuilder) BuildCreateRequestDTO() reqdto.CreateAuctionRequest {
	return reqdto.CreateAuctionRequest{
		Title:       a.Title,
		MinimumBid:  a.MinimumBid,
		StartTime:   a.StartTime,
		DurationHrs: a.DurationHrs,
	}
}

func (a *AuctionBuilder) BuildViewQuery() *queries.AuctionView {
	endsAt := a.StartTime.Add(time.Duration(a.DurationHrs) * time.Hour)
	return &queries.AuctionView{
		ID:          uuid.New(),
		SellerID:    a.SellerID,
		Title:       a.Title,
		MinimumBid:  a.MinimumBid,
		CurrentBid:  a.CurrentBid,
		Status:      string(a.Status),
		StartTime:   a.StartTime,
		DurationHrs: a.DurationHrs,
		EndsAt:      endsAt,
		Expired:     time.Now().After(endsAt),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type BidBuilder struct {
	AuctionID uuid.UUID
	BidderID  uuid.UUID
	BidAmount int64
	BidTime   time.Time
}

func NewBidBuilder() *BidBuilder {
	return &BidBuilder{
		AuctionID: uuid.New(),
		BidderID:  uuid.New(),
		BidAmount: 6000,
		BidTime:   time.Now(),
	}
}

func (b *BidBuilder) With(mutate func(*BidBuilder)) *BidBuilder {
	mutate(b)
	return b
}

func (b *BidBuilder) BuildDomain() *domauction.Bid {
	return domauction.NewBid(b.AuctionID, b.BidderID, b.BidAmount)
}

func (b *BidBuilder) BuildPlaceRequestDTO() reqdto.PlaceBidRequest {
	bidderID := b.BidderID
	return reqdto.PlaceBidRequest{
		BidderID:  &bidderID,
		BidAmount: b.BidAmount,
	}
}

func (b *BidBuilder) BuildViewQuery() *queries.BidView {
	return &queries.BidView{
		ID:        uuid.New(),
		AuctionID: b.AuctionID,
		BidderID:  b.BidderID,
		BidAmount: b.BidAmount,
		BidTime:   b.BidTime,
	}
}
