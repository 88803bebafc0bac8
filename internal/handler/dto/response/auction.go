package response

import (
	"time"

	"relove/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuctionResponse struct {
	ID          uuid.UUID `json:"id"`
	SellerID    uuid.UUID `json:"sellerId"`
	Title       string    `json:"title"`
	MinimumBid  int64     `json:"minimumBid"`
	CurrentBid  int64     `json:"currentBid"`
	Status      string    `json:"status"`
	StartTime   time.Time `json:"startTime"`
	DurationHrs int       `json:"durationHrs"`
	EndsAt      time.Time `json:"endsAt"`
	Expired     bool      `json:"expired"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BidResponse struct {
	ID        uuid.UUID `json:"id"`
	AuctionID uuid.UUID `json:"auctionId"`
	BidderID  uuid.UUID `json:"bidderId"`
	BidAmount int64     `json:"bidAmount"`
	BidTime   time.Time `json:"bidTime"`
}

func FromAuctionView(v *queries.AuctionView) *AuctionResponse {
	return &AuctionResponse{
		ID:          v.ID,
		SellerID:    v.SellerID,
		Title:       v.Title,
		MinimumBid:  v.MinimumBid,
		CurrentBid:  v.CurrentBid,
		Status:      v.Status,
		StartTime:   v.StartTime,
		DurationHrs: v.DurationHrs,
		EndsAt:      v.EndsAt,
		Expired:     v.Expired,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromBidView(v *queries.BidView) *BidResponse {
	return &BidResponse{
		ID:        v.ID,
		AuctionID: v.AuctionID,
		BidderID:  v.BidderID,
		BidAmount: v.BidAmount,
		BidTime:   v.BidTime,
	}
}
