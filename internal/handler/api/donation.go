package api

import (
	"errors"
	"net/http"

	reqdto "relove/internal/handler/dto/request"
	resdto "relove/internal/handler/dto/response"
	"relove/internal/handler/middleware"
	"relove/internal/pkg/errs"
	"relove/internal/usecase/commands"
	"relove/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DonationHandler struct {
	donationCommands commands.DonationCommands
	donationQueries  queries.DonationQueries
}

func NewDonationHandler(donationCommands commands.DonationCommands, donationQueries queries.DonationQueries) *DonationHandler {
	return &DonationHandler{
		donationCommands: donationCommands,
		donationQueries:  donationQueries,
	}
}

// @Summary Create donation
// @Description Register a donation; it is auto-approved and rewarded with a coupon
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDonationRequest true "Donation request"
// @Success 201 {object} resdto.CreateDonationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /donations [post]
func (h *DonationHandler) CreateDonation(c *gin.Context) {
	var req reqdto.CreateDonationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.donationCommands.CreateDonation(c.Request.Context(), commands.CreateDonationParams{
		DonorEmail:  req.DonorEmail,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		case errors.Is(err, errs.ErrCouponCodeExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Could not allocate a unique coupon code, retry the request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, &resdto.CreateDonationResponse{
		Donation: resdto.FromDonationView(result.Donation),
		Coupon:   resdto.FromCouponView(result.Coupon),
	})
}

// @Summary List donations
// @Description List the authenticated user's donations, newest first
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DonationResponse
// @Failure 401 {object} map[string]string
// @Router /donations [get]
func (h *DonationHandler) ListDonations(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.donationQueries.ListByDonor(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.DonationResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromDonationView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Validate coupon
// @Description Check a coupon code against the authenticated user's email
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateCouponRequest true "Coupon code"
// @Success 200 {object} resdto.CouponValidationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /coupons/validate [post]
func (h *DonationHandler) ValidateCoupon(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ValidateCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.donationQueries.ValidateCoupon(c.Request.Context(), req.NormalizedCode(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponValidation(result))
}

// @Summary Redeem coupon
// @Description Mark a coupon as used; a coupon redeems exactly once
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons/{id}/redeem [post]
func (h *DonationHandler) RedeemCoupon(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coupon ID format",
		})
		return
	}

	err = h.donationCommands.RedeemCoupon(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, errs.ErrCouponExpired):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon has expired",
			})
		case errors.Is(err, errs.ErrCouponAlreadyUsed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon has already been used",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
