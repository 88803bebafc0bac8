//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestAuction stages an auction row directly, bypassing the API, so
// tests can start from closed or already-bid-on states.
func CreateTestAuction(t *testing.T, db DBLike, sellerID uuid.UUID, status string, currentBid int64) uuid.UUID {
	t.Helper()

	auctionID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO auctions (id, seller_id, title, minimum_bid, current_bid, status, start_time, duration_hrs)
		VALUES ($1, $2, 'Fixture auction', 5000, $3, $4, now(), 72)`,
		auctionID, sellerID, currentBid, status)
	require.NoError(t, err)

	return auctionID
}

// CreateTestRentalItem stages an item with the given availability window.
func CreateTestRentalItem(t *testing.T, db DBLike, ownerID uuid.UUID, from, till time.Time, minDays int, maxDays *int) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO rental_items (id, owner_id, title, daily_price_cents, available_from, available_till, minimum_rental_days, maximum_rental_days)
		VALUES ($1, $2, 'Fixture gown', 2500, $3, $4, $5, $6)`,
		itemID, ownerID, from, till, minDays, maxDays)
	require.NoError(t, err)

	return itemID
}

// CreateTestDonation stages an approved donation without a coupon.
func CreateTestDonation(t *testing.T, db DBLike, donorEmail string) uuid.UUID {
	t.Helper()

	donationID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO donations (id, donor_email, description, status)
		VALUES ($1, $2, 'Fixture donation', 'approved')`,
		donationID, donorEmail)
	require.NoError(t, err)

	return donationID
}

// CreateTestCoupon stages a coupon in any state, including used or expired
// ones the issuing flow never produces.
func CreateTestCoupon(t *testing.T, db DBLike, donationID uuid.UUID, ownerEmail, code string, validUntil time.Time, used bool) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO coupons (id, donation_id, owner_email, code, discount_percentage, valid_until, used)
		VALUES ($1, $2, $3, $4, 10, $5, $6)`,
		couponID, donationID, ownerEmail, code, validUntil, used)
	require.NoError(t, err)

	return couponID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
