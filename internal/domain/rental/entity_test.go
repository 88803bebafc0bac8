//go:build unit

package rental_test

import (
	"testing"
	"time"

	"relove/internal/domain/rental"
	"relove/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemCase struct {
	name   string
	mutate func(*builder.RentalItemBuilder)
	errIs  error
}

func intPtr(v int) *int { return &v }

func TestRentalItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRentalItemBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, rental.ItemStatusAvailable, actual.Status())
	})

	t.Run("construction validation", func(t *testing.T) {
		runItemCases(t, []itemCase{
			{
				name:   "empty title",
				mutate: func(b *builder.RentalItemBuilder) { b.Title = "" },
				errIs:  rental.ErrEmptyTitle,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.RentalItemBuilder) { b.DailyPriceCents = -1 },
				errIs:  rental.ErrNegativePrice,
			},
			{
				name:   "free rental is allowed",
				mutate: func(b *builder.RentalItemBuilder) { b.DailyPriceCents = 0 },
			},
			{
				name: "window start after end",
				mutate: func(b *builder.RentalItemBuilder) {
					b.AvailableFrom, b.AvailableTill = b.AvailableTill, b.AvailableFrom
				},
				errIs: rental.ErrInvalidWindow,
			},
			{
				name:   "zero minimum days",
				mutate: func(b *builder.RentalItemBuilder) { b.MinimumRentalDays = 0 },
				errIs:  rental.ErrInvalidDayBounds,
			},
			{
				name: "maximum below minimum",
				mutate: func(b *builder.RentalItemBuilder) {
					b.MinimumRentalDays = 5
					b.MaximumRentalDays = intPtr(3)
				},
				errIs: rental.ErrInvalidDayBounds,
			},
			{
				name: "maximum equal to minimum",
				mutate: func(b *builder.RentalItemBuilder) {
					b.MinimumRentalDays = 3
					b.MaximumRentalDays = intPtr(3)
				},
			},
			{
				name:   "no maximum bound",
				mutate: func(b *builder.RentalItemBuilder) { b.MaximumRentalDays = nil },
			},
		})
	})

	t.Run("range validation", func(t *testing.T) {
		item, err := builder.NewRentalItemBuilder().With(func(b *builder.RentalItemBuilder) {
			b.AvailableFrom = date(2026, 3, 1)
			b.AvailableTill = date(2026, 3, 31)
			b.MinimumRentalDays = 2
			b.MaximumRentalDays = intPtr(10)
		}).BuildDomain()
		require.NoError(t, err)

		cases := []struct {
			name       string
			start, end string
			errIs      error
		}{
			{"within window and bounds", "2026-03-10", "2026-03-14", nil},
			{"exact window", "2026-03-01", "2026-03-11", nil},
			{"exact minimum days", "2026-03-10", "2026-03-12", nil},
			{"exact maximum days", "2026-03-05", "2026-03-15", nil},
			{"starts before window", "2026-02-28", "2026-03-05", rental.ErrOutsideWindow},
			{"ends after window", "2026-03-25", "2026-04-02", rental.ErrOutsideWindow},
			{"below minimum days", "2026-03-10", "2026-03-11", rental.ErrBelowMinimumDays},
			{"above maximum days", "2026-03-01", "2026-03-20", rental.ErrExceedsMaximumDays},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				r := mustRange(t, mustParseDate(t, c.start), mustParseDate(t, c.end))

				err := item.ValidateRange(r)
				if c.errIs == nil {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("out-of-window error carries the window", func(t *testing.T) {
		item, err := builder.NewRentalItemBuilder().With(func(b *builder.RentalItemBuilder) {
			b.AvailableFrom = date(2026, 3, 1)
			b.AvailableTill = date(2026, 3, 31)
		}).BuildDomain()
		require.NoError(t, err)

		vErr := item.ValidateRange(mustRange(t, date(2026, 4, 1), date(2026, 4, 5)))
		require.Error(t, vErr)
		assert.Contains(t, vErr.Error(), "2026-03-01 to 2026-03-31")
	})
}

func TestBooking(t *testing.T) {
	t.Run("initial status", func(t *testing.T) {
		cases := []struct {
			name   string
			status rental.BookingStatus
			errIs  error
		}{
			{"confirmed", rental.BookingStatusConfirmed, nil},
			{"active", rental.BookingStatusActive, nil},
			{"completed is terminal", rental.BookingStatusCompleted, rental.ErrInvalidBookingStatus},
			{"cancelled is terminal", rental.BookingStatusCancelled, rental.ErrInvalidBookingStatus},
			{"unknown", rental.BookingStatus("pending"), rental.ErrInvalidBookingStatus},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
					b.Status = c.status
				}).BuildDomain()

				if c.errIs == nil {
					require.NoError(t, err)
					assert.Equal(t, c.status, actual.Status())
				} else {
					require.Nil(t, actual)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("transitions", func(t *testing.T) {
		t.Run("holding to terminal", func(t *testing.T) {
			b := builder.NewBookingBuilder().BuildReconstructed()

			require.NoError(t, b.Transition(rental.BookingStatusActive))
			require.NoError(t, b.Transition(rental.BookingStatusCompleted))
			assert.Equal(t, rental.BookingStatusCompleted, b.Status())
		})

		t.Run("terminal state is frozen", func(t *testing.T) {
			for _, terminal := range []rental.BookingStatus{rental.BookingStatusCompleted, rental.BookingStatusCancelled} {
				b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
					bb.Status = terminal
				}).BuildReconstructed()

				assert.ErrorIs(t, b.Transition(rental.BookingStatusConfirmed), rental.ErrBookingAlreadyClosed)
				assert.ErrorIs(t, b.Transition(rental.BookingStatusCancelled), rental.ErrBookingAlreadyClosed)
				assert.Equal(t, terminal, b.Status())
			}
		})

		t.Run("unknown target", func(t *testing.T) {
			b := builder.NewBookingBuilder().BuildReconstructed()
			assert.ErrorIs(t, b.Transition(rental.BookingStatus("archived")), rental.ErrInvalidBookingStatus)
		})
	})

	t.Run("status predicates", func(t *testing.T) {
		assert.True(t, rental.BookingStatusConfirmed.IsHolding())
		assert.True(t, rental.BookingStatusActive.IsHolding())
		assert.False(t, rental.BookingStatusCompleted.IsHolding())
		assert.False(t, rental.BookingStatusCancelled.IsHolding())

		assert.True(t, rental.BookingStatusCompleted.IsTerminal())
		assert.True(t, rental.BookingStatusCancelled.IsTerminal())
		assert.False(t, rental.BookingStatusConfirmed.IsTerminal())
		assert.False(t, rental.BookingStatusActive.IsTerminal())
	})
}

func TestAvailabilityBlock(t *testing.T) {
	bk := builder.NewBookingBuilder()
	block := bk.BuildBlockDomain()

	assert.NotEqual(t, uuid.Nil, block.ID())
	assert.Equal(t, bk.RentalItemID, block.RentalItemID())
	assert.Equal(t, rental.BlockReasonBooked, block.Reason())
}

func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return parsed
}

func runItemCases(t *testing.T, cases []itemCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRentalItemBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
