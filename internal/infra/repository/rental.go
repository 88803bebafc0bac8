package repository

import (
	"context"
	"errors"
	"time"

	"relove/internal/domain/rental"
	"relove/internal/infra"
	"relove/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RentalRepository struct {
	db db.DBTX
}

func NewRentalRepository(dbtx db.DBTX) *RentalRepository {
	return &RentalRepository{db: dbtx}
}

func (r *RentalRepository) CreateItem(ctx context.Context, item *rental.RentalItem) error {
	const query = `
		INSERT INTO rental_items
			(id, owner_id, title, daily_price_cents, available_from, available_till,
			 minimum_rental_days, maximum_rental_days, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		item.ID(), item.OwnerID(), item.Title(), item.DailyPriceCents(),
		item.Window().Start(), item.Window().End(),
		item.MinimumDays(), item.MaximumDays(), item.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create rental item", err)
	}
	return nil
}

func (r *RentalRepository) FindItemForUpdate(ctx context.Context, id uuid.UUID) (*rental.RentalItem, error) {
	// FOR UPDATE serializes concurrent bookings on the same item.
	const query = `
		SELECT id, owner_id, title, daily_price_cents, available_from, available_till,
		       minimum_rental_days, maximum_rental_days, status, created_at, updated_at
		FROM rental_items
		WHERE id = $1
		FOR UPDATE`

	return r.scanItem(r.db.QueryRow(ctx, query, id))
}

func (r *RentalRepository) scanItem(row pgx.Row) (*rental.RentalItem, error) {
	var (
		id, ownerID          uuid.UUID
		title, status        string
		dailyPriceCents      int64
		from, till           time.Time
		minimumDays          int
		maximumDays          *int
		createdAt, updatedAt time.Time
	)
	err := row.Scan(
		&id, &ownerID, &title, &dailyPriceCents, &from, &till,
		&minimumDays, &maximumDays, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("rental item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental item", err)
	}

	window, err := rental.NewDateRange(from, till)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid availability window in storage", err)
	}

	return rental.ReconstructRentalItem(
		id, ownerID, title, dailyPriceCents, window,
		minimumDays, maximumDays, rental.ItemStatus(status), createdAt, updatedAt,
	), nil
}

func (r *RentalRepository) SetItemStatus(ctx context.Context, itemID uuid.UUID, status rental.ItemStatus) error {
	const query = `
		UPDATE rental_items
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, itemID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to set rental item status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RentalRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	const query = `DELETE FROM rental_items WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, itemID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete rental item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RentalRepository) CreateBooking(ctx context.Context, b *rental.Booking) error {
	const query = `
		INSERT INTO rental_bookings (id, rental_item_id, renter_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		b.ID(), b.RentalItemID(), b.RenterID(),
		b.Dates().Start(), b.Dates().End(), b.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *RentalRepository) FindBookingForUpdate(ctx context.Context, id uuid.UUID) (*rental.Booking, error) {
	const query = `
		SELECT id, rental_item_id, renter_id, start_date, end_date, status, created_at, updated_at
		FROM rental_bookings
		WHERE id = $1
		FOR UPDATE`

	var (
		bID, itemID, renterID uuid.UUID
		startDate, endDate    time.Time
		status                string
		createdAt, updatedAt  time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bID, &itemID, &renterID, &startDate, &endDate, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	dates, err := rental.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking dates in storage", err)
	}

	return rental.ReconstructBooking(
		bID, itemID, renterID, dates, rental.BookingStatus(status), createdAt, updatedAt,
	), nil
}

func (r *RentalRepository) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status rental.BookingStatus) error {
	const query = `
		UPDATE rental_bookings
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, bookingID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RentalRepository) CountHoldingBookings(ctx context.Context, itemID uuid.UUID) (int64, error) {
	const query = `
		SELECT count(*)
		FROM rental_bookings
		WHERE rental_item_id = $1 AND status IN ('confirmed', 'active')`

	var count int64
	if err := r.db.QueryRow(ctx, query, itemID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count holding bookings", err)
	}
	return count, nil
}

func (r *RentalRepository) CreateBlock(ctx context.Context, block *rental.AvailabilityBlock) error {
	const query = `
		INSERT INTO rental_availability (id, rental_item_id, booking_id, blocked_from, blocked_till, reason)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		block.ID(), block.RentalItemID(), block.BookingID(),
		block.Dates().Start(), block.Dates().End(), block.Reason(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create availability block", err)
	}
	return nil
}

func (r *RentalRepository) DeleteBlockByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	const query = `DELETE FROM rental_availability WHERE booking_id = $1`

	// Zero rows is fine: the block may already be gone after an earlier
	// terminal transition.
	if _, err := r.db.Exec(ctx, query, bookingID); err != nil {
		return infra.WrapRepoErr("failed to delete availability block", err)
	}
	return nil
}

func (r *RentalRepository) FindBlocksByItemID(ctx context.Context, itemID uuid.UUID) ([]*rental.AvailabilityBlock, error) {
	const query = `
		SELECT id, rental_item_id, booking_id, blocked_from, blocked_till, reason
		FROM rental_availability
		WHERE rental_item_id = $1`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find availability blocks", err)
	}
	defer rows.Close()

	var blocks []*rental.AvailabilityBlock
	for rows.Next() {
		var (
			id, rentalItemID, bookingID uuid.UUID
			from, till                  time.Time
			reason                      string
		)
		if err := rows.Scan(&id, &rentalItemID, &bookingID, &from, &till, &reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability block", err)
		}
		dates, err := rental.NewDateRange(from, till)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid block dates in storage", err)
		}
		blocks = append(blocks, rental.ReconstructAvailabilityBlock(id, rentalItemID, bookingID, dates, reason))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability blocks", err)
	}
	return blocks, nil
}
