package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AuctionView struct {
	ID          uuid.UUID `json:"id"`
	SellerID    uuid.UUID `json:"seller_id"`
	Title       string    `json:"title"`
	MinimumBid  int64     `json:"minimum_bid"`
	CurrentBid  int64     `json:"current_bid"`
	Status      string    `json:"status"`
	StartTime   time.Time `json:"start_time"`
	DurationHrs int       `json:"duration_hrs"`
	// EndsAt and Expired are derived from start_time + duration at read
	// time; the stored status is advisory only.
	EndsAt    time.Time `json:"ends_at"`
	Expired   bool      `json:"expired"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BidView struct {
	ID        uuid.UUID `json:"id"`
	AuctionID uuid.UUID `json:"auction_id"`
	BidderID  uuid.UUID `json:"bidder_id"`
	BidAmount int64     `json:"bid_amount"`
	BidTime   time.Time `json:"bid_time"`
}

type RentalItemView struct {
	ID                uuid.UUID `json:"id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	Title             string    `json:"title"`
	DailyPriceCents   int64     `json:"daily_price_cents"`
	AvailableFrom     time.Time `json:"available_from"`
	AvailableTill     time.Time `json:"available_till"`
	MinimumRentalDays int       `json:"minimum_rental_days"`
	MaximumRentalDays *int      `json:"maximum_rental_days,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type BookingView struct {
	ID           uuid.UUID `json:"id"`
	RentalItemID uuid.UUID `json:"rental_item_id"`
	RenterID     uuid.UUID `json:"renter_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AvailabilityBlockView struct {
	ID           uuid.UUID `json:"id"`
	RentalItemID uuid.UUID `json:"rental_item_id"`
	BookingID    uuid.UUID `json:"booking_id"`
	BlockedFrom  time.Time `json:"blocked_from"`
	BlockedTill  time.Time `json:"blocked_till"`
	Reason       string    `json:"reason"`
}

type AvailabilityResult struct {
	Available bool                    `json:"available"`
	Message   string                  `json:"message"`
	Conflicts []AvailabilityBlockView `json:"conflicts,omitempty"`
}

type DonationView struct {
	ID          uuid.UUID `json:"id"`
	DonorEmail  string    `json:"donor_email"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CouponCode  *string   `json:"coupon_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CouponView struct {
	ID                 uuid.UUID `json:"id"`
	DonationID         uuid.UUID `json:"donation_id"`
	Code               string    `json:"code"`
	DiscountPercentage int       `json:"discount_percentage"`
	ValidUntil         time.Time `json:"valid_until"`
	Used               bool      `json:"used"`
	CreatedAt          time.Time `json:"created_at"`
}

type CouponValidationResult struct {
	Valid   bool        `json:"valid"`
	Message string      `json:"message,omitempty"`
	Coupon  *CouponView `json:"coupon,omitempty"`
}
