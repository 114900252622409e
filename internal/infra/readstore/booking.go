package readstore

import (
	"context"

	"classpay/internal/infra"
	"classpay/internal/pkg/pgconv"
	"classpay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindPaymentStatus(ctx context.Context, id uuid.UUID) (*queries.PaymentStatusView, error) {
	const query = `
		SELECT id, listing_id, status, total_amount_cents, stripe_session_id, stripe_payment_intent, paid_at
		FROM bookings
		WHERE id = $1
	`

	var (
		view      queries.PaymentStatusView
		sessionID pgtype.Text
		intentID  pgtype.Text
		paidAt    pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.BookingID,
		&view.ListingID,
		&view.Status,
		&view.TotalAmountCents,
		&sessionID,
		&intentID,
		&paidAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking payment status", err)
	}

	view.StripeSessionID = pgconv.StringPtrFromPgtype(sessionID)
	view.StripePaymentIntent = pgconv.StringPtrFromPgtype(intentID)
	view.PaidAt = pgconv.TimePtrFromPgtype(paidAt)

	return &view, nil
}
