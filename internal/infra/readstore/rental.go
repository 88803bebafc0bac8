package readstore

import (
	"context"
	"errors"

	"relove/internal/infra"
	"relove/internal/infra/db"
	"relove/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RentalReadStore struct {
	db db.DBTX
}

func NewRentalReadStore(dbtx db.DBTX) *RentalReadStore {
	return &RentalReadStore{db: dbtx}
}

const itemColumns = `
	id, owner_id, title, daily_price_cents, available_from, available_till,
	minimum_rental_days, maximum_rental_days, status, created_at, updated_at`

func (s *RentalReadStore) FindItemByID(ctx context.Context, id uuid.UUID) (*queries.RentalItemView, error) {
	query := `SELECT` + itemColumns + ` FROM rental_items WHERE id = $1`

	view, err := scanItem(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("rental item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental item", err)
	}
	return view, nil
}

func (s *RentalReadStore) FindItems(ctx context.Context) ([]*queries.RentalItemView, error) {
	query := `SELECT` + itemColumns + ` FROM rental_items ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rental items", err)
	}
	defer rows.Close()

	var views []*queries.RentalItemView
	for rows.Next() {
		view, err := scanItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rental item", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rental items", err)
	}
	return views, nil
}

func scanItem(row pgx.Row) (*queries.RentalItemView, error) {
	var v queries.RentalItemView
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Title, &v.DailyPriceCents,
		&v.AvailableFrom, &v.AvailableTill,
		&v.MinimumRentalDays, &v.MaximumRentalDays, &v.Status,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *RentalReadStore) FindBookingByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT id, rental_item_id, renter_id, start_date, end_date, status, created_at, updated_at
		FROM rental_bookings
		WHERE id = $1`

	var v queries.BookingView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.RentalItemID, &v.RenterID,
		&v.StartDate, &v.EndDate, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &v, nil
}

func (s *RentalReadStore) FindBookingsByItemID(ctx context.Context, itemID uuid.UUID) ([]*queries.BookingView, error) {
	const query = `
		SELECT id, rental_item_id, renter_id, start_date, end_date, status, created_at, updated_at
		FROM rental_bookings
		WHERE rental_item_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		var v queries.BookingView
		err := rows.Scan(
			&v.ID, &v.RentalItemID, &v.RenterID,
			&v.StartDate, &v.EndDate, &v.Status, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return views, nil
}

func (s *RentalReadStore) FindBlocksByItemID(ctx context.Context, itemID uuid.UUID) ([]*queries.AvailabilityBlockView, error) {
	const query = `
		SELECT id, rental_item_id, booking_id, blocked_from, blocked_till, reason
		FROM rental_availability
		WHERE rental_item_id = $1`

	rows, err := s.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability blocks", err)
	}
	defer rows.Close()

	var views []*queries.AvailabilityBlockView
	for rows.Next() {
		var v queries.AvailabilityBlockView
		err := rows.Scan(&v.ID, &v.RentalItemID, &v.BookingID, &v.BlockedFrom, &v.BlockedTill, &v.Reason)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability block", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability blocks", err)
	}
	return views, nil
}
