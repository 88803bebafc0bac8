package response

import (
	"time"

	"relove/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalItemResponse struct {
	ID                uuid.UUID `json:"id"`
	OwnerID           uuid.UUID `json:"ownerId"`
	Title             string    `json:"title"`
	DailyPriceCents   int64     `json:"dailyPriceCents"`
	AvailableFrom     time.Time `json:"availableFrom"`
	AvailableTill     time.Time `json:"availableTill"`
	MinimumRentalDays int       `json:"minimumRentalDays"`
	MaximumRentalDays *int      `json:"maximumRentalDays,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	RentalItemID uuid.UUID `json:"rentalItemId"`
	RenterID     uuid.UUID `json:"renterId"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type AvailabilityConflict struct {
	BlockedFrom time.Time `json:"blockedFrom"`
	BlockedTill time.Time `json:"blockedTill"`
	Reason      string    `json:"reason"`
}

type AvailabilityResponse struct {
	Available bool                   `json:"available"`
	Message   string                 `json:"message"`
	Conflicts []AvailabilityConflict `json:"conflicts,omitempty"`
}

func FromRentalItemView(v *queries.RentalItemView) *RentalItemResponse {
	return &RentalItemResponse{
		ID:                v.ID,
		OwnerID:           v.OwnerID,
		Title:             v.Title,
		DailyPriceCents:   v.DailyPriceCents,
		AvailableFrom:     v.AvailableFrom,
		AvailableTill:     v.AvailableTill,
		MinimumRentalDays: v.MinimumRentalDays,
		MaximumRentalDays: v.MaximumRentalDays,
		Status:            v.Status,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           v.ID,
		RentalItemID: v.RentalItemID,
		RenterID:     v.RenterID,
		StartDate:    v.StartDate,
		EndDate:      v.EndDate,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromAvailabilityResult(r *queries.AvailabilityResult) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Available: r.Available,
		Message:   r.Message,
	}
	for _, c := range r.Conflicts {
		resp.Conflicts = append(resp.Conflicts, AvailabilityConflict{
			BlockedFrom: c.BlockedFrom,
			BlockedTill: c.BlockedTill,
			Reason:      c.Reason,
		})
	}
	return resp
}
