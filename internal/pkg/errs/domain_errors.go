package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Auction errors
	ErrAuctionNotFound = errors.New("auction not found")
	ErrAuctionClosed   = errors.New("auction is closed")
	ErrBidTooLow       = errors.New("bid too low")

	// Rental errors
	ErrRentalItemNotFound       = errors.New("rental item not found")
	ErrBookingNotFound          = errors.New("booking not found")
	ErrInvalidDateRange         = errors.New("invalid date range")
	ErrOutsideAvailabilityWindow = errors.New("outside availability window")
	ErrBelowMinimumDays         = errors.New("below minimum rental days")
	ErrExceedsMaximumDays       = errors.New("exceeds maximum rental days")
	ErrDatesUnavailable         = errors.New("dates already booked")
	ErrActiveBookingsExist      = errors.New("active bookings exist")
	ErrInvalidBookingStatus     = errors.New("invalid booking status")

	// Donation / coupon errors
	ErrDonationNotFound   = errors.New("donation not found")
	ErrCouponNotFound     = errors.New("coupon not found")
	ErrCouponExpired      = errors.New("coupon has expired")
	ErrCouponAlreadyUsed  = errors.New("coupon already used")
	ErrCouponCodeExhausted = errors.New("coupon code generation exhausted")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrRequestInProgress      = errors.New("request in progress")
	ErrDuplicateRequest       = errors.New("duplicate request with different parameters")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Operation errors
	ErrDomainValidation        = errors.New("domain validation error")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
