package rental

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle            = errors.New("title cannot be empty")
	ErrNegativePrice         = errors.New("daily price cannot be negative")
	ErrInvalidWindow         = errors.New("available_from must not exceed available_till")
	ErrInvalidDayBounds      = errors.New("invalid rental day bounds")
	ErrOutsideWindow         = errors.New("requested dates are outside the availability window")
	ErrBelowMinimumDays      = errors.New("requested range is below the minimum rental days")
	ErrExceedsMaximumDays    = errors.New("requested range exceeds the maximum rental days")
	ErrBookingAlreadyClosed  = errors.New("booking is already in a terminal state")
	ErrInvalidBookingStatus  = errors.New("invalid booking status")
)

// RentalItem is a listing rentable within an owner-defined date window.
// status flips to rented while any confirmed/active booking exists and
// back to available when none remain.
type RentalItem struct {
	id              uuid.UUID
	ownerID         uuid.UUID
	title           string
	dailyPriceCents int64
	window          DateRange
	minimumDays     int
	maximumDays     *int
	status          ItemStatus
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRentalItem(
	ownerID uuid.UUID,
	title string,
	dailyPriceCents int64,
	availableFrom, availableTill time.Time,
	minimumDays int,
	maximumDays *int,
) (*RentalItem, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if dailyPriceCents < 0 {
		return nil, ErrNegativePrice
	}
	window, err := NewDateRange(availableFrom, availableTill)
	if err != nil {
		return nil, ErrInvalidWindow
	}
	if minimumDays < 1 {
		return nil, ErrInvalidDayBounds
	}
	if maximumDays != nil && *maximumDays < minimumDays {
		return nil, ErrInvalidDayBounds
	}

	return &RentalItem{
		id:              uuid.New(),
		ownerID:         ownerID,
		title:           title,
		dailyPriceCents: dailyPriceCents,
		window:          window,
		minimumDays:     minimumDays,
		maximumDays:     maximumDays,
		status:          ItemStatusAvailable,
	}, nil
}

func ReconstructRentalItem(
	id, ownerID uuid.UUID,
	title string,
	dailyPriceCents int64,
	window DateRange,
	minimumDays int,
	maximumDays *int,
	status ItemStatus,
	createdAt, updatedAt time.Time,
) *RentalItem {
	return &RentalItem{
		id:              id,
		ownerID:         ownerID,
		title:           title,
		dailyPriceCents: dailyPriceCents,
		window:          window,
		minimumDays:     minimumDays,
		maximumDays:     maximumDays,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ValidateRange runs the window and day-bound checks in order,
// short-circuiting at the first failure. Conflicts against existing
// blocks are checked separately because they need storage state.
func (i *RentalItem) ValidateRange(r DateRange) error {
	if !i.window.Contains(r) {
		return fmt.Errorf("%w (%s)", ErrOutsideWindow, i.window)
	}
	days := r.Days()
	if days < i.minimumDays {
		return fmt.Errorf("%w (minimum %d)", ErrBelowMinimumDays, i.minimumDays)
	}
	if i.maximumDays != nil && days > *i.maximumDays {
		return fmt.Errorf("%w (maximum %d)", ErrExceedsMaximumDays, *i.maximumDays)
	}
	return nil
}

func (i *RentalItem) ID() uuid.UUID          { return i.id }
func (i *RentalItem) OwnerID() uuid.UUID     { return i.ownerID }
func (i *RentalItem) Title() string          { return i.title }
func (i *RentalItem) DailyPriceCents() int64 { return i.dailyPriceCents }
func (i *RentalItem) Window() DateRange      { return i.window }
func (i *RentalItem) MinimumDays() int       { return i.minimumDays }
func (i *RentalItem) MaximumDays() *int      { return i.maximumDays }
func (i *RentalItem) Status() ItemStatus     { return i.status }
func (i *RentalItem) CreatedAt() time.Time   { return i.createdAt }
func (i *RentalItem) UpdatedAt() time.Time   { return i.updatedAt }

type Booking struct {
	id           uuid.UUID
	rentalItemID uuid.UUID
	renterID     uuid.UUID
	dates        DateRange
	status       BookingStatus
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBooking(rentalItemID, renterID uuid.UUID, dates DateRange, status BookingStatus) (*Booking, error) {
	if !status.IsValid() || status.IsTerminal() {
		return nil, ErrInvalidBookingStatus
	}
	return &Booking{
		id:           uuid.New(),
		rentalItemID: rentalItemID,
		renterID:     renterID,
		dates:        dates,
		status:       status,
	}, nil
}

func ReconstructBooking(
	id, rentalItemID, renterID uuid.UUID,
	dates DateRange,
	status BookingStatus,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		rentalItemID: rentalItemID,
		renterID:     renterID,
		dates:        dates,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (b *Booking) Transition(to BookingStatus) error {
	if !to.IsValid() {
		return ErrInvalidBookingStatus
	}
	if b.status.IsTerminal() {
		return ErrBookingAlreadyClosed
	}
	b.status = to
	return nil
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) RentalItemID() uuid.UUID { return b.rentalItemID }
func (b *Booking) RenterID() uuid.UUID     { return b.renterID }
func (b *Booking) Dates() DateRange        { return b.dates }
func (b *Booking) Status() BookingStatus   { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }

// AvailabilityBlock reserves a date range on an item for exactly one
// booking. Blocks are keyed per booking, so releasing one never touches
// another booking's reservation.
type AvailabilityBlock struct {
	id           uuid.UUID
	rentalItemID uuid.UUID
	bookingID    uuid.UUID
	dates        DateRange
	reason       string
}

const BlockReasonBooked = "booked"

func NewAvailabilityBlock(rentalItemID, bookingID uuid.UUID, dates DateRange) *AvailabilityBlock {
	return &AvailabilityBlock{
		id:           uuid.New(),
		rentalItemID: rentalItemID,
		bookingID:    bookingID,
		dates:        dates,
		reason:       BlockReasonBooked,
	}
}

func ReconstructAvailabilityBlock(id, rentalItemID, bookingID uuid.UUID, dates DateRange, reason string) *AvailabilityBlock {
	return &AvailabilityBlock{
		id:           id,
		rentalItemID: rentalItemID,
		bookingID:    bookingID,
		dates:        dates,
		reason:       reason,
	}
}

func (a *AvailabilityBlock) ID() uuid.UUID           { return a.id }
func (a *AvailabilityBlock) RentalItemID() uuid.UUID { return a.rentalItemID }
func (a *AvailabilityBlock) BookingID() uuid.UUID    { return a.bookingID }
func (a *AvailabilityBlock) Dates() DateRange        { return a.dates }
func (a *AvailabilityBlock) Reason() string          { return a.reason }
