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

type RentalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRentalCommands
	mockQueries  *queriesmock.MockRentalQueries
	handler      *api.RentalHandler
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRentalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentalQueries(s.mockCtrl)
	s.handler = api.NewRentalHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_email", "renter@example.com")
		c.Next()
	}

	rentals := s.router.Group("/rentals", authMiddleware)
	rentals.POST("", s.handler.CreateRentalItem)
	rentals.GET("", s.handler.ListRentalItems)
	rentals.GET("/bookings/:id", s.handler.GetBooking)
	rentals.PUT("/bookings/:id/status", s.handler.UpdateBookingStatus)
	rentals.GET("/:id", s.handler.GetRentalItem)
	rentals.DELETE("/:id", s.handler.DeleteRentalItem)
	rentals.POST("/:id/check-availability", s.handler.CheckAvailability)
	rentals.POST("/:id/book", s.handler.CreateBooking)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

func idempotencyHeader(key string) map[string]string {
	return map[string]string{"Idempotency-Key": key}
}

func (s *RentalHandlerTestSuite) TestCreateRentalItem() {
	url := "/rentals"
	reqBody := builder.NewRentalItemBuilder().BuildCreateRequestDTO()
	returnView := builder.NewRentalItemBuilder().BuildViewQuery()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateRentalItem(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.Title, body["title"])
		s.Equal("available", body["status"])
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
			{"missing title", testutil.Field("title", nil)},
			{"missing available_from", testutil.Field("available_from", nil)},
			{"missing available_till", testutil.Field("available_till", nil)},
			{"zero minimum rental days", testutil.Field("minimum_rental_days", 0)},
			{"malformed available_from", testutil.Field("available_from", "03/01/2026")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 when the window is inverted", func() {
		s.mockCommands.EXPECT().CreateRentalItem(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *RentalHandlerTestSuite) TestGetRentalItem() {
	returnView := builder.NewRentalItemBuilder().BuildViewQuery()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetItemByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/"+returnView.ID.String(), nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.Title, body["title"])
	})

	s.Run("error: 404 for an unknown item", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetItemByID(gomock.Any(), id).
			Return(nil, errs.ErrRentalItemNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

func (s *RentalHandlerTestSuite) TestDeleteRentalItem() {
	itemID := uuid.New()
	url := "/rentals/" + itemID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().DeleteRentalItem(gomock.Any(), itemID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body["success"])
	})

	s.Run("error: 409 while bookings still hold the item", func() {
		s.mockCommands.EXPECT().DeleteRentalItem(gomock.Any(), itemID).
			Return(errs.ErrActiveBookingsExist).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "active bookings")
	})

	s.Run("error: 404 for an unknown item", func() {
		s.mockCommands.EXPECT().DeleteRentalItem(gomock.Any(), itemID).
			Return(errs.ErrRentalItemNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *RentalHandlerTestSuite) TestCheckAvailability() {
	itemID := uuid.New()
	url := "/rentals/" + itemID.String() + "/check-availability"
	reqBody := map[string]string{"start_date": "2026-03-10", "end_date": "2026-03-14"}

	s.Run("success: available range", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), itemID, gomock.Any(), gomock.Any()).
			Return(&queries.AvailabilityResult{Available: true}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["available"])
	})

	s.Run("success: conflicts are reported, not an error", func() {
		blocked := builder.NewBookingBuilder().BuildViewQuery()
		result := &queries.AvailabilityResult{
			Available: false,
			Message:   "Requested dates overlap an existing booking",
			Conflicts: []queries.AvailabilityBlockView{
				{BlockedFrom: blocked.StartDate, BlockedTill: blocked.EndDate, Reason: "booked"},
			},
		}
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), itemID, gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			Available bool             `json:"available"`
			Conflicts []map[string]any `json:"conflicts"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Len(body.Conflicts, 1)
		s.Equal("booked", body.Conflicts[0]["reason"])
	})

	s.Run("error: 400 on a malformed date", func() {
		badBody := map[string]string{"start_date": "March 10", "end_date": "2026-03-14"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, badBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: 400 on an inverted range", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), itemID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidDateRange).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "precede")
	})

	s.Run("error: 404 for an unknown item", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), itemID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrRentalItemNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *RentalHandlerTestSuite) TestCreateBooking() {
	itemID := uuid.New()
	url := "/rentals/" + itemID.String() + "/book"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildViewQuery()

	s.Run("success: fresh booking returns 201", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), key).
			Return(&commands.CreateBookingResult{Booking: returnView, IsReplayed: false}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader(key.String()))

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("confirmed", body["status"])
	})

	s.Run("success: replayed key returns 200 with the stored booking", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), key).
			Return(&commands.CreateBookingResult{Booking: returnView, IsReplayed: true}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader(key.String()))

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID.String(), body["id"])
	})

	s.Run("error: 400 without an Idempotency-Key header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 400 on a malformed Idempotency-Key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader("not-a-uuid"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: command failures map onto status codes", func() {
		cases := []struct {
			name       string
			commandErr error
			expectCode int
		}{
			{"unknown item", errs.ErrRentalItemNotFound, http.StatusNotFound},
			{"inverted range", errs.ErrInvalidDateRange, http.StatusBadRequest},
			{"outside window", errs.ErrOutsideAvailabilityWindow, http.StatusUnprocessableEntity},
			{"below minimum days", errs.ErrBelowMinimumDays, http.StatusUnprocessableEntity},
			{"exceeds maximum days", errs.ErrExceedsMaximumDays, http.StatusUnprocessableEntity},
			{"dates already booked", errs.ErrDatesUnavailable, http.StatusConflict},
			{"key reused with different parameters", errs.ErrDuplicateRequest, http.StatusConflict},
			{"key still processing", errs.ErrRequestInProgress, http.StatusConflict},
			{"invalid initial status", errs.ErrInvalidBookingStatus, http.StatusUnprocessableEntity},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				key := uuid.New()
				s.mockCommands.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any(), key).
					Return(nil, tc.commandErr).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader(key.String()))
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 400 on a malformed start date", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("start_date", "10-03-2026"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token", idempotencyHeader(uuid.New().String()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

func (s *RentalHandlerTestSuite) TestGetBooking() {
	returnView := builder.NewBookingBuilder().BuildViewQuery()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetBookingByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/bookings/"+returnView.ID.String(), nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID.String(), body["id"])
	})

	s.Run("error: 404 for an unknown booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetBookingByID(gomock.Any(), id).
			Return(nil, errs.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/bookings/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *RentalHandlerTestSuite) TestUpdateBookingStatus() {
	bookingID := uuid.New()
	url := "/rentals/bookings/" + bookingID.String() + "/status"

	s.Run("success: returns the updated booking", func() {
		returnView := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = "completed"
		}).BuildViewQuery()
		s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, gomock.Any()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]string{"status": "completed"}, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("completed", body["status"])
	})

	s.Run("error: 400 on a status outside the known set", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]string{"status": "archived"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 on a frozen terminal booking", func() {
		s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, gomock.Any()).
			Return(nil, errs.ErrInvalidBookingStatus).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]string{"status": "cancelled"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "transition")
	})

	s.Run("error: 404 for an unknown booking", func() {
		s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, gomock.Any()).
			Return(nil, errs.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]string{"status": "completed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
