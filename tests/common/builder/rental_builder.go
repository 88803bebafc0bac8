//go:build unit || e2e

package builder

import (
	"time"

	domrental "relove/internal/domain/rental"
	reqdto "relove/internal/handler/dto/request"
	"relove/internal/usecase/queries"

	"github.com/google/uuid"
)

const bookingDateLayout = "2006-01-02"

type RentalItemBuilder struct {
	OwnerID           uuid.UUID
	Title             string
	DailyPriceCents   int64
	AvailableFrom     time.Time
	AvailableTill     time.Time
	MinimumRentalDays int
	MaximumRentalDays *int
	Status            domrental.ItemStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewRentalItemBuilder() *RentalItemBuilder {
	now := time.Now()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &RentalItemBuilder{
		OwnerID:           uuid.New(),
		Title:             "Silk evening gown",
		DailyPriceCents:   2500,
		AvailableFrom:     from,
		AvailableTill:     from.AddDate(0, 3, 0),
		MinimumRentalDays: 2,
		MaximumRentalDays: nil,
		Status:            domrental.ItemStatusAvailable,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (r *RentalItemBuilder) With(mutate func(*RentalItemBuilder)) *RentalItemBuilder {
	mutate(r)
	return r
}

func (r *RentalItemBuilder) BuildDomain() (*domrental.RentalItem, error) {
	return domrental.NewRentalItem(
		r.OwnerID, r.Title, r.DailyPriceCents,
		r.AvailableFrom, r.AvailableTill,
		r.MinimumRentalDays, r.MaximumRentalDays,
	)
}

func (r *RentalItemBuilder) BuildCreateRequestDTO() reqdto.CreateRentalItemRequest {
	return reqdto.CreateRentalItemRequest{
		Title:             r.Title,
		DailyPriceCents:   r.DailyPriceCents,
		AvailableFrom:     r.AvailableFrom.Format(bookingDateLayout),
		AvailableTill:     r.AvailableTill.Format(bookingDateLayout),
		MinimumRentalDays: r.MinimumRentalDays,
		MaximumRentalDays: r.MaximumRentalDays,
	}
}

func (r *RentalItemBuilder) BuildViewQuery() *queries.RentalItemView {
	return &queries.RentalItemView{
		ID:                uuid.New(),
		OwnerID:           r.OwnerID,
		Title:             r.Title,
		DailyPriceCents:   r.DailyPriceCents,
		AvailableFrom:     r.AvailableFrom,
		AvailableTill:     r.AvailableTill,
		MinimumRentalDays: r.MinimumRentalDays,
		MaximumRentalDays: r.MaximumRentalDays,
		Status:            string(r.Status),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

type BookingBuilder struct {
	RentalItemID uuid.UUID
	RenterID     uuid.UUID
	StartDate    time.Time
	EndDate      time.Time
	Status       domrental.BookingStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		RentalItemID: uuid.New(),
		RenterID:     uuid.New(),
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 4),
		Status:       domrental.BookingStatusConfirmed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*domrental.Booking, error) {
	dates, err := domrental.NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	return domrental.NewBooking(b.RentalItemID, b.RenterID, dates, b.Status)
}

// BuildReconstructed stages a persisted booking in an arbitrary status,
// including terminal ones NewBooking rejects.
func (b *BookingBuilder) BuildReconstructed() *domrental.Booking {
	dates, _ := domrental.NewDateRange(b.StartDate, b.EndDate)
	return domrental.ReconstructBooking(
		uuid.New(), b.RentalItemID, b.RenterID,
		dates, b.Status,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	status := string(b.Status)
	return reqdto.CreateBookingRequest{
		StartDate: b.StartDate.Format(bookingDateLayout),
		EndDate:   b.EndDate.Format(bookingDateLayout),
		Status:    &status,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:           uuid.New(),
		RentalItemID: b.RentalItemID,
		RenterID:     b.RenterID,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildBlockDomain() *domrental.AvailabilityBlock {
	dates, _ := domrental.NewDateRange(b.StartDate, b.EndDate)
	return domrental.NewAvailabilityBlock(b.RentalItemID, uuid.New(), dates)
}
