package queries

import (
	"context"

	"relove/internal/infra"
	"relove/internal/pkg/clock"
)

const (
	msgInvalidCoupon = "Invalid coupon code"
	msgCouponExpired = "Coupon has expired"
)

type DonationQueries interface {
	ListByDonor(ctx context.Context, donorEmail string) ([]*DonationView, error)
	// ValidateCoupon never mutates the coupon: an expired record keeps
	// used=false and re-validation re-derives the same answer.
	ValidateCoupon(ctx context.Context, code, ownerEmail string) (*CouponValidationResult, error)
}

type DonationReadStore interface {
	FindDonationsByEmail(ctx context.Context, donorEmail string) ([]*DonationView, error)
	// FindUnusedCoupon matches code + owner + used=false.
	FindUnusedCoupon(ctx context.Context, code, ownerEmail string) (*CouponView, error)
}

type donationQueriesImpl struct {
	readStore DonationReadStore
	clock     clock.Clock
}

func NewDonationQueries(readStore DonationReadStore, clock clock.Clock) DonationQueries {
	return &donationQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *donationQueriesImpl) ListByDonor(ctx context.Context, donorEmail string) ([]*DonationView, error) {
	return q.readStore.FindDonationsByEmail(ctx, donorEmail)
}

func (q *donationQueriesImpl) ValidateCoupon(ctx context.Context, code, ownerEmail string) (*CouponValidationResult, error) {
	coupon, err := q.readStore.FindUnusedCoupon(ctx, code, ownerEmail)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &CouponValidationResult{Valid: false, Message: msgInvalidCoupon}, nil
		}
		return nil, err
	}

	if q.clock.Now().After(coupon.ValidUntil) {
		return &CouponValidationResult{Valid: false, Message: msgCouponExpired}, nil
	}

	return &CouponValidationResult{Valid: true, Coupon: coupon}, nil
}
