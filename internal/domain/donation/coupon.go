package donation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponAlreadyUsed = errors.New("coupon already used")
)

const (
	// DiscountPercentage is fixed for donation reward coupons.
	DiscountPercentage = 10
	// ValidityDays is the coupon lifetime from issuance.
	ValidityDays = 90
)

// Coupon is a single-use, time-limited discount issued 1:1 with a
// donation. used flips exactly once; expiry is derived from validUntil
// and never written back.
type Coupon struct {
	id                 uuid.UUID
	donationID         uuid.UUID
	ownerEmail         string
	code               string
	discountPercentage int
	validUntil         time.Time
	used               bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewCoupon(donationID uuid.UUID, ownerEmail, code string, issuedAt time.Time) *Coupon {
	return &Coupon{
		id:                 uuid.New(),
		donationID:         donationID,
		ownerEmail:         ownerEmail,
		code:               code,
		discountPercentage: DiscountPercentage,
		validUntil:         issuedAt.AddDate(0, 0, ValidityDays),
		used:               false,
	}
}

func ReconstructCoupon(
	id, donationID uuid.UUID,
	ownerEmail, code string,
	discountPercentage int,
	validUntil time.Time,
	used bool,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:                 id,
		donationID:         donationID,
		ownerEmail:         ownerEmail,
		code:               code,
		discountPercentage: discountPercentage,
		validUntil:         validUntil,
		used:               used,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (c *Coupon) IsExpired(now time.Time) bool {
	return now.After(c.validUntil)
}

// ValidateUsage reports why the coupon cannot be redeemed at t, or nil.
func (c *Coupon) ValidateUsage(t time.Time) error {
	if c.used {
		return ErrCouponAlreadyUsed
	}
	if c.IsExpired(t) {
		return ErrCouponExpired
	}
	return nil
}

func (c *Coupon) ID() uuid.UUID          { return c.id }
func (c *Coupon) DonationID() uuid.UUID  { return c.donationID }
func (c *Coupon) OwnerEmail() string     { return c.ownerEmail }
func (c *Coupon) Code() string           { return c.code }
func (c *Coupon) DiscountPercentage() int { return c.discountPercentage }
func (c *Coupon) ValidUntil() time.Time  { return c.validUntil }
func (c *Coupon) Used() bool             { return c.used }
func (c *Coupon) CreatedAt() time.Time   { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time   { return c.updatedAt }
