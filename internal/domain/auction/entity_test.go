//go:build unit

package auction_test

import (
	"testing"
	"time"

	"relove/internal/domain/auction"
	"relove/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AuctionBuilder)
	errIs  error
}

func TestAuction(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAuctionBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, auction.StatusActive, actual.Status())
		assert.Equal(t, actual.MinimumBid(), actual.CurrentBid())
	})

	t.Run("construction validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty title",
				mutate: func(b *builder.AuctionBuilder) { b.Title = "" },
				errIs:  auction.ErrEmptyTitle,
			},
			{
				name:   "zero minimum bid",
				mutate: func(b *builder.AuctionBuilder) { b.MinimumBid = 0 },
				errIs:  auction.ErrInvalidMinimumBid,
			},
			{
				name:   "negative minimum bid",
				mutate: func(b *builder.AuctionBuilder) { b.MinimumBid = -100 },
				errIs:  auction.ErrInvalidMinimumBid,
			},
			{
				name:   "zero duration",
				mutate: func(b *builder.AuctionBuilder) { b.DurationHrs = 0 },
				errIs:  auction.ErrInvalidDuration,
			},
			{
				name:   "minimum bid of one",
				mutate: func(b *builder.AuctionBuilder) { b.MinimumBid = 1 },
			},
			{
				name:   "one hour duration",
				mutate: func(b *builder.AuctionBuilder) { b.DurationHrs = 1 },
			},
		})
	})

	t.Run("bid validation", func(t *testing.T) {
		t.Run("bid must strictly exceed current bid", func(t *testing.T) {
			a := builder.NewAuctionBuilder().With(func(b *builder.AuctionBuilder) {
				b.CurrentBid = 7000
			}).BuildReconstructed()

			assert.ErrorIs(t, a.ValidateBid(6999), auction.ErrBidTooLow)
			assert.ErrorIs(t, a.ValidateBid(7000), auction.ErrBidTooLow)
			assert.NoError(t, a.ValidateBid(7001))
		})

		t.Run("opening bid equal to minimum is rejected", func(t *testing.T) {
			a, err := builder.NewAuctionBuilder().BuildDomain()
			require.NoError(t, err)

			assert.ErrorIs(t, a.ValidateBid(a.MinimumBid()), auction.ErrBidTooLow)
			assert.NoError(t, a.ValidateBid(a.MinimumBid()+1))
		})

		t.Run("closed auction rejects any bid", func(t *testing.T) {
			for _, status := range []auction.Status{auction.StatusEnded, auction.StatusSold} {
				a := builder.NewAuctionBuilder().With(func(b *builder.AuctionBuilder) {
					b.Status = status
				}).BuildReconstructed()

				assert.ErrorIs(t, a.ValidateBid(1_000_000), auction.ErrAuctionClosed)
			}
		})

		t.Run("expired but still active auction accepts bids", func(t *testing.T) {
			a := builder.NewAuctionBuilder().With(func(b *builder.AuctionBuilder) {
				b.StartTime = time.Now().Add(-100 * time.Hour)
				b.DurationHrs = 1
			}).BuildReconstructed()

			assert.True(t, a.HasExpired(time.Now()))
			assert.NoError(t, a.ValidateBid(a.CurrentBid()+1))
		})
	})

	t.Run("expiry derivation", func(t *testing.T) {
		start := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
		a := builder.NewAuctionBuilder().With(func(b *builder.AuctionBuilder) {
			b.StartTime = start
			b.DurationHrs = 48
		}).BuildReconstructed()

		assert.Equal(t, start.Add(48*time.Hour), a.EndsAt())
		assert.False(t, a.HasExpired(a.EndsAt()))
		assert.True(t, a.HasExpired(a.EndsAt().Add(time.Second)))
	})

	t.Run("close", func(t *testing.T) {
		t.Run("to ended", func(t *testing.T) {
			a := builder.NewAuctionBuilder().BuildReconstructed()
			require.NoError(t, a.Close(auction.StatusEnded))
			assert.Equal(t, auction.StatusEnded, a.Status())
		})

		t.Run("to sold", func(t *testing.T) {
			a := builder.NewAuctionBuilder().BuildReconstructed()
			require.NoError(t, a.Close(auction.StatusSold))
			assert.Equal(t, auction.StatusSold, a.Status())
		})

		t.Run("back to active is rejected", func(t *testing.T) {
			a := builder.NewAuctionBuilder().BuildReconstructed()
			assert.ErrorIs(t, a.Close(auction.StatusActive), auction.ErrAuctionClosed)
		})

		t.Run("unknown status is rejected", func(t *testing.T) {
			a := builder.NewAuctionBuilder().BuildReconstructed()
			assert.ErrorIs(t, a.Close(auction.Status("cancelled")), auction.ErrAuctionClosed)
		})
	})

	t.Run("bid records are immutable snapshots", func(t *testing.T) {
		bid1 := builder.NewBidBuilder().BuildDomain()
		bid2 := builder.NewBidBuilder().BuildDomain()

		assert.NotEqual(t, uuid.Nil, bid1.ID())
		assert.NotEqual(t, bid1.ID(), bid2.ID())
		assert.True(t, bid1.BidTime().IsZero(), "bid time is assigned at insertion")
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAuctionBuilder().With(c.mutate).BuildDomain()

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
