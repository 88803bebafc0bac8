package commands

import (
	"time"

	"github.com/google/uuid"
)

type CreateAuctionParams struct {
	SellerID    uuid.UUID
	Title       string
	MinimumBid  int64
	StartTime   time.Time
	DurationHrs int
}

type PlaceBidParams struct {
	AuctionID uuid.UUID
	BidderID  uuid.UUID
	BidAmount int64
}

type CreateRentalItemParams struct {
	OwnerID           uuid.UUID
	Title             string
	DailyPriceCents   int64
	AvailableFrom     time.Time
	AvailableTill     time.Time
	MinimumRentalDays int
	MaximumRentalDays *int
}

type CreateBookingParams struct {
	RentalItemID uuid.UUID
	RenterID     uuid.UUID
	StartDate    time.Time
	EndDate      time.Time
	// Status defaults to confirmed; active is the only other accepted
	// initial status.
	Status *string
}

type CreateDonationParams struct {
	DonorEmail  string
	Description string
}
