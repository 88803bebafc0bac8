package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateAuctionRequest struct {
	Title       string    `json:"title" binding:"required"`
	MinimumBid  int64     `json:"minimum_bid" binding:"required,gt=0"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	DurationHrs int       `json:"duration_hrs" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	// BidderID lets a backoffice client bid on behalf of a user; it
	// defaults to the authenticated user when omitted.
	BidderID  *uuid.UUID `json:"bidder_id,omitempty"`
	BidAmount int64      `json:"bid_amount" binding:"required,gt=0"`
}

type CloseAuctionRequest struct {
	// Status is the closing status: ended or sold.
	Status string `json:"status" binding:"required,oneof=ended sold"`
}
