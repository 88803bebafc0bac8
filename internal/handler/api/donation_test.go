//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"relove/internal/handler/api"
	"relove/internal/pkg/errs"
	"relove/internal/usecase/commands"
	"relove/internal/usecase/queries"
	"relove/tests/common/builder"
	"relove/tests/common/httptest"
	"relove/tests/common/testutil"
	commandsmock "relove/tests/mock/commands"
	queriesmock "relove/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DonationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDonationCommands
	mockQueries  *queriesmock.MockDonationQueries
	handler      *api.DonationHandler
	userEmail    string
}

func (s *DonationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userEmail = "donor@example.com"

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDonationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDonationQueries(s.mockCtrl)
	s.handler = api.NewDonationHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_email", s.userEmail)
		c.Next()
	}

	donations := s.router.Group("/donations", authMiddleware)
	donations.POST("", s.handler.CreateDonation)
	donations.GET("", s.handler.ListDonations)

	coupons := s.router.Group("/coupons", authMiddleware)
	coupons.POST("/validate", s.handler.ValidateCoupon)
	coupons.POST("/:id/redeem", s.handler.RedeemCoupon)
}

func (s *DonationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDonationHandlerSuite(t *testing.T) {
	suite.Run(t, new(DonationHandlerTestSuite))
}

func (s *DonationHandlerTestSuite) TestCreateDonation() {
	url := "/donations"
	reqBody := builder.NewDonationBuilder().BuildCreateRequestDTO()
	code := "DONATEAB12CD"
	donationView := builder.NewDonationBuilder().With(func(b *builder.DonationBuilder) {
		b.CouponCode = &code
	}).BuildViewQuery()
	couponView := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
		b.Code = code
	}).BuildViewQuery()

	s.Run("success: returns 201 with the donation and its coupon", func() {
		s.mockCommands.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).
			Return(&commands.CreateDonationResult{Donation: donationView, Coupon: couponView}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			Donation map[string]any `json:"donation"`
			Coupon   map[string]any `json:"coupon"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("approved", body.Donation["status"])
		s.Equal(code, body.Donation["couponCode"])
		s.Equal(code, body.Coupon["code"])
		s.Equal(float64(10), body.Coupon["discountPercentage"])
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing donor email", testutil.Field("donor_email", nil)},
			{"malformed donor email", testutil.Field("donor_email", "not-an-email")},
			{"missing description", testutil.Field("description", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 when code generation is exhausted", func() {
		s.mockCommands.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrCouponCodeExhausted).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "retry")
	})
}

func (s *DonationHandlerTestSuite) TestListDonations() {
	s.Run("success: lists only the caller's donations", func() {
		views := []*queries.DonationView{
			builder.NewDonationBuilder().BuildViewQuery(),
			builder.NewDonationBuilder().BuildViewQuery(),
		}
		s.mockQueries.EXPECT().ListByDonor(gomock.Any(), s.userEmail).
			Return(views, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/donations", nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(s.userEmail, body[0]["donorEmail"])
	})

	s.Run("success: empty list for a donor with no donations", func() {
		s.mockQueries.EXPECT().ListByDonor(gomock.Any(), s.userEmail).
			Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/donations", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *DonationHandlerTestSuite) TestValidateCoupon() {
	url := "/coupons/validate"

	s.Run("success: valid coupon comes back with details", func() {
		couponView := builder.NewCouponBuilder().BuildViewQuery()
		s.mockQueries.EXPECT().ValidateCoupon(gomock.Any(), couponView.Code, s.userEmail).
			Return(&queries.CouponValidationResult{Valid: true, Coupon: couponView}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"code": couponView.Code}, "bearer-token")

		var body struct {
			Valid  bool           `json:"valid"`
			Coupon map[string]any `json:"coupon"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Equal(couponView.Code, body.Coupon["code"])
	})

	s.Run("success: lowercase input is normalized before lookup", func() {
		s.mockQueries.EXPECT().ValidateCoupon(gomock.Any(), "DONATEAB12CD", s.userEmail).
			Return(&queries.CouponValidationResult{Valid: true}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"code": " donateab12cd "}, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: invalid coupon reports a reason, not an error", func() {
		s.mockQueries.EXPECT().ValidateCoupon(gomock.Any(), "DONATEZZ99ZZ", s.userEmail).
			Return(&queries.CouponValidationResult{Valid: false, Message: "Invalid coupon code"}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"code": "DONATEZZ99ZZ"}, "bearer-token")

		var body struct {
			Valid   bool   `json:"valid"`
			Message string `json:"message"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Valid)
		s.Equal("Invalid coupon code", body.Message)
	})

	s.Run("error: 400 on a missing code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *DonationHandlerTestSuite) TestRedeemCoupon() {
	couponID := uuid.New()
	url := "/coupons/" + couponID.String() + "/redeem"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().RedeemCoupon(gomock.Any(), couponID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body["success"])
	})

	s.Run("error: 404 for an unknown coupon", func() {
		s.mockCommands.EXPECT().RedeemCoupon(gomock.Any(), couponID).
			Return(errs.ErrCouponNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 409 for an expired coupon", func() {
		s.mockCommands.EXPECT().RedeemCoupon(gomock.Any(), couponID).
			Return(errs.ErrCouponExpired).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "expired")
	})

	s.Run("error: 409 for an already used coupon", func() {
		s.mockCommands.EXPECT().RedeemCoupon(gomock.Any(), couponID).
			Return(errs.ErrCouponAlreadyUsed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "used")
	})

	s.Run("error: 400 for a malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coupons/not-a-uuid/redeem", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
