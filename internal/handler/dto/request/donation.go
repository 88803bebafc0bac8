package request

import (
	"strings"
)

type CreateDonationRequest struct {
	DonorEmail  string `json:"donor_email" binding:"required,email"`
	Description string `json:"description" binding:"required"`
}

type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r ValidateCouponRequest) NormalizedCode() string {
	return strings.ToUpper(strings.TrimSpace(r.Code))
}
