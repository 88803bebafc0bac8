//go:build unit || e2e

package builder

import (
	"time"

	domdonation "relove/internal/domain/donation"
	reqdto "relove/internal/handler/dto/request"
	"relove/internal/usecase/queries"

	"github.com/google/uuid"
)

type DonationBuilder struct {
	DonorEmail  string
	Description string
	Status      string
	CouponCode  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewDonationBuilder() *DonationBuilder {
	now := time.Now()
	return &DonationBuilder{
		DonorEmail:  "donor@example.com",
		Description: "Gently used winter coat",
		Status:      domdonation.StatusApproved,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (d *DonationBuilder) With(mutate func(*DonationBuilder)) *DonationBuilder {
	mutate(d)
	return d
}

func (d *DonationBuilder) BuildDomain() (*domdonation.Donation, error) {
	return domdonation.NewDonation(d.DonorEmail, d.Description)
}

func (d *DonationBuilder) BuildCreateRequestDTO() reqdto.CreateDonationRequest {
	return reqdto.CreateDonationRequest{
		DonorEmail:  d.DonorEmail,
		Description: d.Description,
	}
}

func (d *DonationBuilder) BuildViewQuery() *queries.DonationView {
	return &queries.DonationView{
		ID:          uuid.New(),
		DonorEmail:  d.DonorEmail,
		Description: d.Description,
		Status:      d.Status,
		CouponCode:  d.CouponCode,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type CouponBuilder struct {
	DonationID         uuid.UUID
	OwnerEmail         string
	Code               string
	DiscountPercentage int
	IssuedAt           time.Time
	ValidUntil         time.Time
	Used               bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now()
	return &CouponBuilder{
		DonationID:         uuid.New(),
		OwnerEmail:         "donor@example.com",
		Code:               "DONATEAB12CD",
		DiscountPercentage: domdonation.DiscountPercentage,
		IssuedAt:           now,
		ValidUntil:         now.AddDate(0, 0, domdonation.ValidityDays),
		Used:               false,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (c *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(c)
	return c
}

func (c *CouponBuilder) BuildDomain() *domdonation.Coupon {
	return domdonation.NewCoupon(c.DonationID, c.OwnerEmail, c.Code, c.IssuedAt)
}

// BuildReconstructed stages a stored coupon, including used or expired
// states NewCoupon never produces.
func (c *CouponBuilder) BuildReconstructed() *domdonation.Coupon {
	return domdonation.ReconstructCoupon(
		uuid.New(), c.DonationID,
		c.OwnerEmail, c.Code,
		c.DiscountPercentage,
		c.ValidUntil,
		c.Used,
		c.CreatedAt, c.UpdatedAt,
	)
}

func (c *CouponBuilder) BuildViewQuery() *queries.CouponView {
	return &queries.CouponView{
		ID:                 uuid.New(),
		DonationID:         c.DonationID,
		Code:               c.Code,
		DiscountPercentage: c.DiscountPercentage,
		ValidUntil:         c.ValidUntil,
		Used:               c.Used,
		CreatedAt:          c.CreatedAt,
	}
}
