package queries

import (
	"context"
	"time"

	"relove/internal/domain/rental"
	"relove/internal/infra"
	"relove/internal/pkg/errs"

	"github.com/google/uuid"
)

type RentalQueries interface {
	GetItemByID(ctx context.Context, id uuid.UUID) (*RentalItemView, error)
	ListItems(ctx context.Context) ([]*RentalItemView, error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBookingsForItem(ctx context.Context, itemID uuid.UUID) ([]*BookingView, error)
	// CheckAvailability is read-only and idempotent: identical arguments
	// with no intervening writes produce identical results. Booking
	// creation re-runs the same checks under a row lock, so callers must
	// not treat an available result as a reservation.
	CheckAvailability(ctx context.Context, itemID uuid.UUID, startDate, endDate time.Time) (*AvailabilityResult, error)
}

type RentalReadStore interface {
	FindItemByID(ctx context.Context, id uuid.UUID) (*RentalItemView, error)
	FindItems(ctx context.Context) ([]*RentalItemView, error)
	FindBookingByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindBookingsByItemID(ctx context.Context, itemID uuid.UUID) ([]*BookingView, error)
	FindBlocksByItemID(ctx context.Context, itemID uuid.UUID) ([]*AvailabilityBlockView, error)
}

type rentalQueriesImpl struct {
	readStore RentalReadStore
}

func NewRentalQueries(readStore RentalReadStore) RentalQueries {
	return &rentalQueriesImpl{readStore: readStore}
}

func (q *rentalQueriesImpl) GetItemByID(ctx context.Context, id uuid.UUID) (*RentalItemView, error) {
	view, err := q.readStore.FindItemByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRentalItemNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *rentalQueriesImpl) ListItems(ctx context.Context) ([]*RentalItemView, error) {
	return q.readStore.FindItems(ctx)
}

func (q *rentalQueriesImpl) GetBookingByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindBookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *rentalQueriesImpl) ListBookingsForItem(ctx context.Context, itemID uuid.UUID) ([]*BookingView, error) {
	return q.readStore.FindBookingsByItemID(ctx, itemID)
}

func (q *rentalQueriesImpl) CheckAvailability(ctx context.Context, itemID uuid.UUID, startDate, endDate time.Time) (*AvailabilityResult, error) {
	itemView, err := q.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item := ItemViewToDomain(itemView)

	requested, err := rental.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	if err := item.ValidateRange(requested); err != nil {
		return &AvailabilityResult{Available: false, Message: err.Error()}, nil
	}

	blockViews, err := q.readStore.FindBlocksByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	conflicts := EvaluateConflicts(blockViews, requested)
	if len(conflicts) > 0 {
		return &AvailabilityResult{
			Available: false,
			Message:   "dates already booked",
			Conflicts: conflicts,
		}, nil
	}

	return &AvailabilityResult{Available: true, Message: "dates are available"}, nil
}

// EvaluateConflicts runs the domain overlap filter over block views.
func EvaluateConflicts(blockViews []*AvailabilityBlockView, requested rental.DateRange) []AvailabilityBlockView {
	blocks := make([]*rental.AvailabilityBlock, 0, len(blockViews))
	byID := make(map[uuid.UUID]*AvailabilityBlockView, len(blockViews))
	for _, bv := range blockViews {
		dates, err := rental.NewDateRange(bv.BlockedFrom, bv.BlockedTill)
		if err != nil {
			continue
		}
		blocks = append(blocks, rental.ReconstructAvailabilityBlock(bv.ID, bv.RentalItemID, bv.BookingID, dates, bv.Reason))
		byID[bv.ID] = bv
	}

	var conflicts []AvailabilityBlockView
	for _, b := range rental.CheckConflicts(blocks, requested) {
		if bv, ok := byID[b.ID()]; ok {
			conflicts = append(conflicts, *bv)
		}
	}
	return conflicts
}

// ItemViewToDomain rebuilds the domain entity from a read model so the
// availability rules live in one place.
func ItemViewToDomain(v *RentalItemView) *rental.RentalItem {
	window, _ := rental.NewDateRange(v.AvailableFrom, v.AvailableTill)
	return rental.ReconstructRentalItem(
		v.ID, v.OwnerID, v.Title, v.DailyPriceCents,
		window, v.MinimumRentalDays, v.MaximumRentalDays,
		rental.ItemStatus(v.Status), v.CreatedAt, v.UpdatedAt,
	)
}
