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

func CreateTestProfile(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	profileID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO profiles (id, email) VALUES ($1, $2)", profileID, email)
	require.NoError(t, err)

	return profileID
}

func CreateTestListing(t *testing.T, db DBLike, title string, priceCents int64) uuid.UUID {
	t.Helper()

	listingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO listings (id, title, price_per_person_cents) VALUES ($1, $2, $3)",
		listingID, title, priceCents)
	require.NoError(t, err)

	return listingID
}

func CreateTestBooking(t *testing.T, db DBLike, listingID, userID uuid.UUID, numAttendees int32, totalCents int64, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO bookings (id, listing_id, user_id, num_attendees, total_amount_cents, status) VALUES ($1, $2, $3, $4, $5, $6)",
		bookingID, listingID, userID, numAttendees, totalCents, status)
	require.NoError(t, err)

	return bookingID
}

func GetBookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)

	return status
}

func WebhookEventRecorded(t *testing.T, db DBLike, eventID string) bool {
	t.Helper()

	var exists bool
	err := db.QueryRow(context.Background(),
		"SELECT EXISTS (SELECT 1 FROM stripe_webhook_events WHERE id = $1)", eventID).Scan(&exists)
	require.NoError(t, err)

	return exists
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
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
