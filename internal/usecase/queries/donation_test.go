//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"relove/internal/infra"
	"relove/internal/pkg/clock"
	"relove/internal/usecase/queries"
	"relove/tests/common/builder"
	queriesmock "relove/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDonationQueries(t *testing.T) (*queriesmock.MockDonationReadStore, queries.DonationQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockDonationReadStore(ctrl)
	return store, queries.NewDonationQueries(store, clock.NewMockClock(queryNow))
}

func TestDonationQueries_ValidateCoupon(t *testing.T) {
	const ownerEmail = "donor@example.com"

	t.Run("valid coupon", func(t *testing.T) {
		store, q := newDonationQueries(t)
		view := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ValidUntil = queryNow.AddDate(0, 0, 30)
		}).BuildViewQuery()

		store.EXPECT().FindUnusedCoupon(gomock.Any(), view.Code, ownerEmail).Return(view, nil)

		got, err := q.ValidateCoupon(context.Background(), view.Code, ownerEmail)
		require.NoError(t, err)
		assert.True(t, got.Valid)
		assert.Equal(t, view, got.Coupon)
	})

	t.Run("unknown or already-used code", func(t *testing.T) {
		store, q := newDonationQueries(t)
		store.EXPECT().FindUnusedCoupon(gomock.Any(), "DONATEXXXXXX", ownerEmail).
			Return(nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound))

		got, err := q.ValidateCoupon(context.Background(), "DONATEXXXXXX", ownerEmail)
		require.NoError(t, err)
		assert.False(t, got.Valid)
		assert.Equal(t, "Invalid coupon code", got.Message)
		assert.Nil(t, got.Coupon)
	})

	t.Run("expired coupon", func(t *testing.T) {
		store, q := newDonationQueries(t)
		view := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ValidUntil = queryNow.Add(-time.Hour)
		}).BuildViewQuery()

		store.EXPECT().FindUnusedCoupon(gomock.Any(), view.Code, ownerEmail).Return(view, nil)

		got, err := q.ValidateCoupon(context.Background(), view.Code, ownerEmail)
		require.NoError(t, err)
		assert.False(t, got.Valid)
		assert.Equal(t, "Coupon has expired", got.Message)
	})

	t.Run("validation does not consume the coupon", func(t *testing.T) {
		store, q := newDonationQueries(t)
		view := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ValidUntil = queryNow.AddDate(0, 0, 30)
		}).BuildViewQuery()

		store.EXPECT().FindUnusedCoupon(gomock.Any(), view.Code, ownerEmail).Return(view, nil).Times(2)

		first, err := q.ValidateCoupon(context.Background(), view.Code, ownerEmail)
		require.NoError(t, err)
		second, err := q.ValidateCoupon(context.Background(), view.Code, ownerEmail)
		require.NoError(t, err)

		assert.True(t, first.Valid)
		assert.True(t, second.Valid)
	})
}

func TestDonationQueries_ListByDonor(t *testing.T) {
	store, q := newDonationQueries(t)
	views := []*queries.DonationView{
		builder.NewDonationBuilder().BuildViewQuery(),
		builder.NewDonationBuilder().BuildViewQuery(),
	}
	store.EXPECT().FindDonationsByEmail(gomock.Any(), "donor@example.com").Return(views, nil)

	got, err := q.ListByDonor(context.Background(), "donor@example.com")
	require.NoError(t, err)
	assert.Equal(t, views, got)
}
