package shared

import (
	"context"
	"time"

	"relove/internal/domain/auction"
	"relove/internal/domain/donation"
	"relove/internal/domain/rental"

	"github.com/google/uuid"
)

// UnitOfWork runs command-side work inside a single transaction with
// retry on serialization failure; every multi-write operation of the
// marketplace core goes through Within.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Auctions() AuctionRepository
	Rentals() RentalRepository
	Donations() DonationRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
}

type AuctionRepository interface {
	Create(ctx context.Context, a *auction.Auction) error
	FindByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error)
	AppendBid(ctx context.Context, b *auction.Bid) error
	// RaiseCurrentBid is a conditional update guarded by
	// current_bid < amount; it reports whether the row was updated.
	RaiseCurrentBid(ctx context.Context, auctionID uuid.UUID, amount int64) (bool, error)
	UpdateStatus(ctx context.Context, auctionID uuid.UUID, status auction.Status) error
}

type RentalRepository interface {
	CreateItem(ctx context.Context, item *rental.RentalItem) error
	// FindItemForUpdate takes a row lock so concurrent bookings against
	// the same item serialize before the overlap check.
	FindItemForUpdate(ctx context.Context, id uuid.UUID) (*rental.RentalItem, error)
	SetItemStatus(ctx context.Context, itemID uuid.UUID, status rental.ItemStatus) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	CreateBooking(ctx context.Context, b *rental.Booking) error
	FindBookingForUpdate(ctx context.Context, id uuid.UUID) (*rental.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status rental.BookingStatus) error
	CountHoldingBookings(ctx context.Context, itemID uuid.UUID) (int64, error)

	CreateBlock(ctx context.Context, block *rental.AvailabilityBlock) error
	DeleteBlockByBookingID(ctx context.Context, bookingID uuid.UUID) error
	FindBlocksByItemID(ctx context.Context, itemID uuid.UUID) ([]*rental.AvailabilityBlock, error)
}

type DonationRepository interface {
	CreateDonation(ctx context.Context, d *donation.Donation) error
	SetCouponCode(ctx context.Context, donationID uuid.UUID, code string) error
	CreateCoupon(ctx context.Context, c *donation.Coupon) error
	FindCouponForUpdate(ctx context.Context, id uuid.UUID) (*donation.Coupon, error)
	// MarkCouponUsed flips used exactly once; it reports whether the flip
	// happened (false means the coupon was already used).
	MarkCouponUsed(ctx context.Context, couponID uuid.UUID) (bool, error)
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	RequestHash     string
	Status          string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type IdempotencyRepository interface {
	// TryInsert claims the key for a fresh request; it reports false when
	// the key already exists.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	Complete(ctx context.Context, key, userID uuid.UUID, resultBookingID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
