package rental

type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "available"
	ItemStatusRented    ItemStatus = "rented"
)

func (s ItemStatus) String() string {
	return string(s)
}

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusActive, BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal statuses release the booking's availability block.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// Holding statuses keep the rental item in rented state.
func (s BookingStatus) IsHolding() bool {
	return s == BookingStatusConfirmed || s == BookingStatusActive
}
