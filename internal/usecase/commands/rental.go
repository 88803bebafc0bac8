package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"relove/internal/domain/rental"
	"relove/internal/infra"
	"relove/internal/pkg/clock"
	"relove/internal/pkg/errs"
	"relove/internal/usecase/queries"
	"relove/internal/usecase/shared"

	"github.com/google/uuid"
)

const bookingEndpoint = "POST /rentals/:id/book"

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type RentalCommands interface {
	CreateRentalItem(ctx context.Context, params CreateRentalItemParams) (*queries.RentalItemView, error)
	// CreateBooking re-validates availability under a row lock on the
	// item; a prior CheckAvailability result is never trusted. Booking,
	// availability block and item status land in one transaction.
	CreateBooking(ctx context.Context, params CreateBookingParams, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status rental.BookingStatus) (*queries.BookingView, error)
	DeleteRentalItem(ctx context.Context, itemID uuid.UUID) error
}

type rentalUseCaseImpl struct {
	uow             shared.UnitOfWork
	idempotencyRepo shared.IdempotencyRepository
	rentalQueries   queries.RentalQueries
	clock           clock.Clock
}

func NewRentalUseCase(
	uow shared.UnitOfWork,
	idempotencyRepo shared.IdempotencyRepository,
	rentalQueries queries.RentalQueries,
	clock clock.Clock,
) RentalCommands {
	return &rentalUseCaseImpl{
		uow:             uow,
		idempotencyRepo: idempotencyRepo,
		rentalQueries:   rentalQueries,
		clock:           clock,
	}
}

func (u *rentalUseCaseImpl) CreateRentalItem(ctx context.Context, params CreateRentalItemParams) (*queries.RentalItemView, error) {
	entity, err := rental.NewRentalItem(
		params.OwnerID,
		params.Title,
		params.DailyPriceCents,
		params.AvailableFrom,
		params.AvailableTill,
		params.MinimumRentalDays,
		params.MaximumRentalDays,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rentals().CreateItem(ctx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.rentalQueries.GetItemByID(ctx, entity.ID())
}

func (u *rentalUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams, idempotencyKey uuid.UUID) (*CreateBookingResult, error) {
	if idempotencyKey == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyRequired
	}

	requestHash := calculateRequestHash(params)
	expiresAt := u.clock.Now().Add(24 * time.Hour)

	replayed, err := u.claimIdempotencyKey(ctx, idempotencyKey, params.RenterID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return replayed, nil
	}

	bookingID, err := u.createNewBooking(ctx, params, idempotencyKey)
	if err != nil {
		return nil, err
	}

	view, err := u.rentalQueries.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &CreateBookingResult{Booking: view, IsReplayed: false}, nil
}

// claimIdempotencyKey returns a replayed result when the key already
// completed, an error when it is in flight or reused with a different
// payload, and (nil, nil) when this request owns a fresh claim.
func (u *rentalUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	key, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*CreateBookingResult, error) {
	inserted, err := u.idempotencyRepo.TryInsert(ctx, key, userID, bookingEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := u.idempotencyRepo.Get(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrDuplicateRequest
	}

	switch existing.Status {
	case "completed":
		if existing.ResultBookingID == nil {
			return nil, errs.New("completed request missing result booking ID")
		}
		view, err := u.rentalQueries.GetBookingByID(ctx, *existing.ResultBookingID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		return &CreateBookingResult{Booking: view, IsReplayed: true}, nil
	case "processing":
		return nil, errs.ErrRequestInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (u *rentalUseCaseImpl) createNewBooking(ctx context.Context, params CreateBookingParams, idempotencyKey uuid.UUID) (uuid.UUID, error) {
	requested, err := rental.NewDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	initialStatus := rental.BookingStatusConfirmed
	if params.Status != nil {
		initialStatus = rental.BookingStatus(*params.Status)
	}

	var bookingID uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Rentals().FindItemForUpdate(ctx, params.RentalItemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRentalItemNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := item.ValidateRange(requested); err != nil {
			return mapRangeError(err)
		}

		blocks, err := tx.Rentals().FindBlocksByItemID(ctx, item.ID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if conflicts := rental.CheckConflicts(blocks, requested); len(conflicts) > 0 {
			return errs.ErrDatesUnavailable
		}

		booking, err := rental.NewBooking(item.ID(), params.RenterID, requested, initialStatus)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidBookingStatus)
		}

		if err := tx.Rentals().CreateBooking(ctx, booking); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		block := rental.NewAvailabilityBlock(item.ID(), booking.ID(), requested)
		if err := tx.Rentals().CreateBlock(ctx, block); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Rentals().SetItemStatus(ctx, item.ID(), rental.ItemStatusRented); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := u.createBookingJob(ctx, tx, booking.ID(), "booking_created"); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Idempotency().Complete(ctx, idempotencyKey, params.RenterID, booking.ID()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		bookingID = booking.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bookingID, nil
}

func (u *rentalUseCaseImpl) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status rental.BookingStatus) (*queries.BookingView, error) {
	if !status.IsValid() {
		return nil, errs.ErrInvalidBookingStatus
	}

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		booking, err := tx.Rentals().FindBookingForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := booking.Transition(status); err != nil {
			return errs.Mark(err, errs.ErrInvalidBookingStatus)
		}

		if err := tx.Rentals().UpdateBookingStatus(ctx, bookingID, booking.Status()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if !status.IsTerminal() {
			return nil
		}

		// Terminal transition: release this booking's block, then flip
		// the item back to available when no holding booking remains.
		// Deleting the block first is safe because blocks are keyed per
		// booking, never shared.
		if err := tx.Rentals().DeleteBlockByBookingID(ctx, bookingID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		holding, err := tx.Rentals().CountHoldingBookings(ctx, booking.RentalItemID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if holding == 0 {
			if err := tx.Rentals().SetItemStatus(ctx, booking.RentalItemID(), rental.ItemStatusAvailable); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		return u.createBookingJob(ctx, tx, bookingID, "booking_"+status.String())
	})
	if err != nil {
		return nil, err
	}

	return u.rentalQueries.GetBookingByID(ctx, bookingID)
}

func (u *rentalUseCaseImpl) DeleteRentalItem(ctx context.Context, itemID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rentals().FindItemForUpdate(ctx, itemID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRentalItemNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		holding, err := tx.Rentals().CountHoldingBookings(ctx, itemID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if holding > 0 {
			return errs.ErrActiveBookingsExist
		}

		// Historical bookings stay; only the listing goes away.
		if err := tx.Rentals().DeleteItem(ctx, itemID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *rentalUseCaseImpl) createBookingJob(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, topic string) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"type":       topic,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, "email", topic, payload, u.clock.Now())
}

func mapRangeError(err error) error {
	switch {
	case errors.Is(err, rental.ErrOutsideWindow):
		return errs.Mark(err, errs.ErrOutsideAvailabilityWindow)
	case errors.Is(err, rental.ErrBelowMinimumDays):
		return errs.Mark(err, errs.ErrBelowMinimumDays)
	case errors.Is(err, rental.ErrExceedsMaximumDays):
		return errs.Mark(err, errs.ErrExceedsMaximumDays)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}

func calculateRequestHash(params CreateBookingParams) string {
	data, _ := json.Marshal(params)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
