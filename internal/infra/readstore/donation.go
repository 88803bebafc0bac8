package readstore

import (
	"context"
	"errors"

	"relove/internal/infra"
	"relove/internal/infra/db"
	"relove/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type DonationReadStore struct {
	db db.DBTX
}

func NewDonationReadStore(dbtx db.DBTX) *DonationReadStore {
	return &DonationReadStore{db: dbtx}
}

func (s *DonationReadStore) FindDonationsByEmail(ctx context.Context, donorEmail string) ([]*queries.DonationView, error) {
	const query = `
		SELECT id, donor_email, description, status, coupon_code, created_at, updated_at
		FROM donations
		WHERE donor_email = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, donorEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list donations", err)
	}
	defer rows.Close()

	var views []*queries.DonationView
	for rows.Next() {
		var v queries.DonationView
		err := rows.Scan(&v.ID, &v.DonorEmail, &v.Description, &v.Status, &v.CouponCode, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan donation", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate donations", err)
	}
	return views, nil
}

func (s *DonationReadStore) FindUnusedCoupon(ctx context.Context, code, ownerEmail string) (*queries.CouponView, error) {
	const query = `
		SELECT id, donation_id, code, discount_percentage, valid_until, used, created_at
		FROM coupons
		WHERE code = $1 AND owner_email = $2 AND used = false`

	var v queries.CouponView
	err := s.db.QueryRow(ctx, query, code, ownerEmail).Scan(
		&v.ID, &v.DonationID, &v.Code, &v.DiscountPercentage, &v.ValidUntil, &v.Used, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return &v, nil
}
