package repository

import (
	"context"
	"errors"
	"time"

	"relove/internal/domain/donation"
	"relove/internal/infra"
	"relove/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DonationRepository struct {
	db db.DBTX
}

func NewDonationRepository(dbtx db.DBTX) *DonationRepository {
	return &DonationRepository{db: dbtx}
}

func (r *DonationRepository) CreateDonation(ctx context.Context, d *donation.Donation) error {
	const query = `
		INSERT INTO donations (id, donor_email, description, status)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, d.ID(), d.DonorEmail(), d.Description(), d.Status())
	if err != nil {
		return infra.WrapRepoErr("failed to create donation", err)
	}
	return nil
}

func (r *DonationRepository) SetCouponCode(ctx context.Context, donationID uuid.UUID, code string) error {
	const query = `
		UPDATE donations
		SET coupon_code = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, donationID, code)
	if err != nil {
		return infra.WrapRepoErr("failed to set coupon code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("donation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DonationRepository) CreateCoupon(ctx context.Context, c *donation.Coupon) error {
	const query = `
		INSERT INTO coupons (id, donation_id, owner_email, code, discount_percentage, valid_until, used)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		c.ID(), c.DonationID(), c.OwnerEmail(), c.Code(),
		c.DiscountPercentage(), c.ValidUntil(), c.Used(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *DonationRepository) FindCouponForUpdate(ctx context.Context, id uuid.UUID) (*donation.Coupon, error) {
	const query = `
		SELECT id, donation_id, owner_email, code, discount_percentage,
		       valid_until, used, created_at, updated_at
		FROM coupons
		WHERE id = $1
		FOR UPDATE`

	var (
		cID, donationID      uuid.UUID
		ownerEmail, code     string
		discountPercentage   int
		validUntil           time.Time
		used                 bool
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cID, &donationID, &ownerEmail, &code, &discountPercentage,
		&validUntil, &used, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}

	return donation.ReconstructCoupon(
		cID, donationID, ownerEmail, code, discountPercentage,
		validUntil, used, createdAt, updatedAt,
	), nil
}

func (r *DonationRepository) MarkCouponUsed(ctx context.Context, couponID uuid.UUID) (bool, error) {
	// Conditional update: redeeming twice loses the race here even if both
	// callers read used=false.
	const query = `
		UPDATE coupons
		SET used = true, updated_at = now()
		WHERE id = $1 AND used = false`

	tag, err := r.db.Exec(ctx, query, couponID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark coupon used", err)
	}
	return tag.RowsAffected() > 0, nil
}
