package commands

import (
	"context"
	"errors"

	"relove/internal/domain/donation"
	"relove/internal/infra"
	"relove/internal/pkg/clock"
	"relove/internal/pkg/couponcode"
	"relove/internal/pkg/errs"
	"relove/internal/usecase/queries"
	"relove/internal/usecase/shared"

	"github.com/google/uuid"
)

// codeAttempts bounds regenerate-on-conflict for the 36^6 code space.
const codeAttempts = 3

type CreateDonationResult struct {
	Donation *queries.DonationView
	Coupon   *queries.CouponView
}

type DonationCommands interface {
	// CreateDonation inserts the donation (always approved), issues its
	// reward coupon and back-fills the code, all in one transaction so
	// a coupon-less approved donation cannot be left behind.
	CreateDonation(ctx context.Context, params CreateDonationParams) (*CreateDonationResult, error)
	// RedeemCoupon flips used exactly once; expired or already-used
	// coupons are rejected rather than silently accepted.
	RedeemCoupon(ctx context.Context, couponID uuid.UUID) error
}

type donationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDonationUseCase(uow shared.UnitOfWork, clock clock.Clock) DonationCommands {
	return &donationUseCaseImpl{
		uow:   uow,
		clock: clock,
	}
}

func (u *donationUseCaseImpl) CreateDonation(ctx context.Context, params CreateDonationParams) (*CreateDonationResult, error) {
	entity, err := donation.NewDonation(params.DonorEmail, params.Description)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var issued *donation.Coupon
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Donations().CreateDonation(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		coupon, err := u.issueCoupon(ctx, tx, entity)
		if err != nil {
			return err
		}

		entity.AttachCouponCode(coupon.Code())
		if err := tx.Donations().SetCouponCode(ctx, entity.ID(), coupon.Code()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		issued = coupon
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateDonationResult{
		Donation: donationToView(entity),
		Coupon:   couponToView(issued),
	}, nil
}

// issueCoupon retries on a code collision; the unique constraint on
// coupons.code is the arbiter under concurrent donation creation.
func (u *donationUseCaseImpl) issueCoupon(ctx context.Context, tx shared.Tx, d *donation.Donation) (*donation.Coupon, error) {
	for attempt := 0; attempt < codeAttempts; attempt++ {
		code, err := couponcode.Generate()
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		coupon := donation.NewCoupon(d.ID(), d.DonorEmail(), code, u.clock.Now())
		err = tx.Donations().CreateCoupon(ctx, coupon)
		if err == nil {
			return coupon, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil, errs.ErrCouponCodeExhausted
}

func (u *donationUseCaseImpl) RedeemCoupon(ctx context.Context, couponID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		coupon, err := tx.Donations().FindCouponForUpdate(ctx, couponID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrCouponNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := coupon.ValidateUsage(u.clock.Now()); err != nil {
			switch {
			case errors.Is(err, donation.ErrCouponAlreadyUsed):
				return errs.ErrCouponAlreadyUsed
			case errors.Is(err, donation.ErrCouponExpired):
				return errs.ErrCouponExpired
			default:
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}

		used, err := tx.Donations().MarkCouponUsed(ctx, couponID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !used {
			return errs.ErrCouponAlreadyUsed
		}
		return nil
	})
}

func donationToView(d *donation.Donation) *queries.DonationView {
	return &queries.DonationView{
		ID:          d.ID(),
		DonorEmail:  d.DonorEmail(),
		Description: d.Description(),
		Status:      d.Status(),
		CouponCode:  d.CouponCode(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
}

func couponToView(c *donation.Coupon) *queries.CouponView {
	return &queries.CouponView{
		ID:                 c.ID(),
		DonationID:         c.DonationID(),
		Code:               c.Code(),
		DiscountPercentage: c.DiscountPercentage(),
		ValidUntil:         c.ValidUntil(),
		Used:               c.Used(),
		CreatedAt:          c.CreatedAt(),
	}
}
