//go:build e2e

package rental_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"relove/tests/common/authtest"
	"relove/tests/common/dbtest"
	"relove/tests/common/httptest"
	"relove/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	rentalsURL       = "/api/rentals"
	rentalURL        = "/api/rentals/%s"
	availabilityURL  = "/api/rentals/%s/check-availability"
	bookURL          = "/api/rentals/%s/book"
	bookingURL       = "/api/rentals/bookings/%s"
	bookingStatusURL = "/api/rentals/bookings/%s/status"

	dateLayout = "2006-01-02"
)

type RentalSuite struct {
	e2e.SharedSuite
}

func TestRentalSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RentalSuite))
}

func (s *RentalSuite) token(t *testing.T, email string) string {
	helper := authtest.NewJWTHelper(s.Config.JWT)
	return helper.GenerateToken(t, uuid.New(), email)
}

// window returns an availability window comfortably in the future.
func window() (time.Time, time.Time) {
	from := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 10)
	return from, from.AddDate(0, 3, 0)
}

func idempotencyKey() map[string]string {
	return map[string]string{"Idempotency-Key": uuid.New().String()}
}

func (s *RentalSuite) TestBookingLifecycle() {
	s.Run("Normal case: book, complete, and free the item", func() {
		t := s.T()
		ownerToken := s.token(t, "owner@example.com")
		renterToken := s.token(t, "renter@example.com")

		from, till := window()
		itemID := dbtest.CreateTestRentalItem(t, s.DB, uuid.New(), from, till, 2, nil)

		start := from.AddDate(0, 0, 5).Format(dateLayout)
		end := from.AddDate(0, 0, 9).Format(dateLayout)
		rangeBody := map[string]string{"start_date": start, "end_date": end}

		var avail map[string]any
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(availabilityURL, itemID), rangeBody, renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &avail)
		require.Equal(t, true, avail["available"])

		var booking map[string]any
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookURL, itemID), rangeBody, renterToken, idempotencyKey())
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &booking)
		bookingID := booking["id"].(string)
		require.Equal(t, "confirmed", booking["status"])

		// Booking flips the item to rented.
		var item map[string]any
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(rentalURL, itemID), nil, ownerToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &item)
		require.Equal(t, "rented", item["status"])

		// The booked range is now blocked.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(availabilityURL, itemID), rangeBody, renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &avail)
		require.Equal(t, false, avail["available"])

		// Completing the booking releases the block and the item.
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(bookingStatusURL, bookingID),
			map[string]string{"status": "completed"}, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(rentalURL, itemID), nil, ownerToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &item)
		require.Equal(t, "available", item["status"])

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(availabilityURL, itemID), rangeBody, renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &avail)
		require.Equal(t, true, avail["available"])

		// Terminal bookings are frozen.
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(bookingStatusURL, bookingID),
			map[string]string{"status": "active"}, ownerToken)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "transition")
	})

	s.Run("Normal case: replaying the same idempotency key returns the stored booking", func() {
		t := s.T()
		renterToken := s.token(t, "renter@example.com")

		from, till := window()
		itemID := dbtest.CreateTestRentalItem(t, s.DB, uuid.New(), from, till, 2, nil)

		rangeBody := map[string]string{
			"start_date": from.AddDate(0, 0, 1).Format(dateLayout),
			"end_date":   from.AddDate(0, 0, 4).Format(dateLayout),
		}
		key := idempotencyKey()

		var first map[string]any
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookURL, itemID), rangeBody, renterToken, key)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &first)

		var replayed map[string]any
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookURL, itemID), rangeBody, renterToken, key)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &replayed)
		require.Equal(t, first["id"], replayed["id"])

		// The same key with different parameters is a different request.
		otherBody := map[string]string{
			"start_date": from.AddDate(0, 0, 20).Format(dateLayout),
			"end_date":   from.AddDate(0, 0, 24).Format(dateLayout),
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookURL, itemID), otherBody, renterToken, key)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Duplicate")
	})

	s.Run("Error case: overlapping dates conflict", func() {
		t := s.T()
		renterToken := s.token(t, "renter@example.com")

		from, till := window()
		itemID := dbtest.CreateTestRentalItem(t, s.DB, uuid.New(), from, till, 2, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookURL, itemID), map[string]string{
			"start_date": from.AddDate(0, 0, 5).Format(dateLayout),
			"end_date":   from.AddDate(0, 0, 9).Format(dateLayout),
		}, renterToken, idempotencyKey())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// Touching the booked range on its last day still overlaps.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookURL, itemID), map[string]string{
			"start_date": from.AddDate(0, 0, 9).Format(dateLayout),
			"end_date":   from.AddDate(0, 0, 12).Format(dateLayout),
		}, renterToken, idempotencyKey())
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "booked")

		// The day after the booked range is free.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookURL, itemID), map[string]string{
			"start_date": from.AddDate(0, 0, 10).Format(dateLayout),
			"end_date":   from.AddDate(0, 0, 13).Format(dateLayout),
		}, renterToken, idempotencyKey())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: range bounds are enforced", func() {
		t := s.T()
		renterToken := s.token(t, "renter@example.com")

		from, till := window()
		maxDays := 7
		itemID := dbtest.CreateTestRentalItem(t, s.DB, uuid.New(), from, till, 3, &maxDays)

		cases := []struct {
			name     string
			start    time.Time
			end      time.Time
			expectIn string
		}{
			{"before the window", from.AddDate(0, 0, -2), from.AddDate(0, 0, 3), "outside"},
			{"after the window", till.AddDate(0, 0, -1), till.AddDate(0, 0, 3), "outside"},
			{"below the minimum", from, from.AddDate(0, 0, 2), "minimum"},
			{"above the maximum", from, from.AddDate(0, 0, 8), "maximum"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookURL, itemID), map[string]string{
					"start_date": tc.start.Format(dateLayout),
					"end_date":   tc.end.Format(dateLayout),
				}, renterToken, idempotencyKey())
				httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, tc.expectIn)
			})
		}
	})

	s.Run("Error case: booking without an idempotency key", func() {
		t := s.T()
		renterToken := s.token(t, "renter@example.com")

		from, till := window()
		itemID := dbtest.CreateTestRentalItem(t, s.DB, uuid.New(), from, till, 2, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookURL, itemID), map[string]string{
			"start_date": from.AddDate(0, 0, 1).Format(dateLayout),
			"end_date":   from.AddDate(0, 0, 4).Format(dateLayout),
		}, renterToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "idempotency key")
	})
}

func (s *RentalSuite) TestDeleteRentalItem() {
	s.Run("Error case: items with holding bookings cannot be deleted", func() {
		t := s.T()
		ownerToken := s.token(t, "owner@example.com")
		renterToken := s.token(t, "renter@example.com")

		from, till := window()
		itemID := dbtest.CreateTestRentalItem(t, s.DB, uuid.New(), from, till, 2, nil)

		var booking map[string]any
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookURL, itemID), map[string]string{
			"start_date": from.AddDate(0, 0, 1).Format(dateLayout),
			"end_date":   from.AddDate(0, 0, 4).Format(dateLayout),
		}, renterToken, idempotencyKey())
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &booking)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(rentalURL, itemID), nil, ownerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "active bookings")

		// Cancelling the booking unblocks deletion.
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(bookingStatusURL, booking["id"]),
			map[string]string{"status": "cancelled"}, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(rentalURL, itemID), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(rentalURL, itemID), nil, ownerToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
