package response

import (
	"time"

	"relove/internal/usecase/queries"

	"github.com/google/uuid"
)

type DonationResponse struct {
	ID          uuid.UUID `json:"id"`
	DonorEmail  string    `json:"donorEmail"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CouponCode  *string   `json:"couponCode,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CouponResponse struct {
	ID                 uuid.UUID `json:"id"`
	DonationID         uuid.UUID `json:"donationId"`
	Code               string    `json:"code"`
	DiscountPercentage int       `json:"discountPercentage"`
	ValidUntil         time.Time `json:"validUntil"`
	Used               bool      `json:"used"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CreateDonationResponse bundles the donation with its reward coupon.
type CreateDonationResponse struct {
	Donation *DonationResponse `json:"donation"`
	Coupon   *CouponResponse   `json:"coupon"`
}

type CouponValidationResponse struct {
	Valid   bool            `json:"valid"`
	Message string          `json:"message,omitempty"`
	Coupon  *CouponResponse `json:"coupon,omitempty"`
}

func FromDonationView(v *queries.DonationView) *DonationResponse {
	return &DonationResponse{
		ID:          v.ID,
		DonorEmail:  v.DonorEmail,
		Description: v.Description,
		Status:      v.Status,
		CouponCode:  v.CouponCode,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	return &CouponResponse{
		ID:                 v.ID,
		DonationID:         v.DonationID,
		Code:               v.Code,
		DiscountPercentage: v.DiscountPercentage,
		ValidUntil:         v.ValidUntil,
		Used:               v.Used,
		CreatedAt:          v.CreatedAt,
	}
}

func FromCouponValidation(r *queries.CouponValidationResult) *CouponValidationResponse {
	resp := &CouponValidationResponse{
		Valid:   r.Valid,
		Message: r.Message,
	}
	if r.Coupon != nil {
		resp.Coupon = FromCouponView(r.Coupon)
	}
	return resp
}
