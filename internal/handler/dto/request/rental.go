package request

import (
	"time"
)

// Rental payloads carry calendar dates as YYYY-MM-DD strings; timestamps
// elsewhere stay RFC3339.
const dateLayout = "2006-01-02"

type CreateRentalItemRequest struct {
	Title             string `json:"title" binding:"required"`
	DailyPriceCents   int64  `json:"daily_price_cents" binding:"min=0"`
	AvailableFrom     string `json:"available_from" binding:"required"`
	AvailableTill     string `json:"available_till" binding:"required"`
	MinimumRentalDays int    `json:"minimum_rental_days" binding:"required,min=1"`
	MaximumRentalDays *int   `json:"maximum_rental_days,omitempty"`
}

func (r CreateRentalItemRequest) ParseWindow() (from, till time.Time, err error) {
	return parseDatePair(r.AvailableFrom, r.AvailableTill)
}

type CreateBookingRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	// Status is an optional initial status; confirmed when omitted.
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=confirmed active"`
}

func (r CreateBookingRequest) ParseDates() (start, end time.Time, err error) {
	return parseDatePair(r.StartDate, r.EndDate)
}

type CheckAvailabilityRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

func (r CheckAvailabilityRequest) ParseDates() (start, end time.Time, err error) {
	return parseDatePair(r.StartDate, r.EndDate)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed active completed cancelled"`
}

func parseDatePair(a, b string) (time.Time, time.Time, error) {
	first, err := time.Parse(dateLayout, a)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	second, err := time.Parse(dateLayout, b)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return first, second, nil
}
