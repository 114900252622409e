package repository

import (
	"context"
	"time"

	"classpay/internal/domain/booking"
	"classpay/internal/infra"
	"classpay/internal/infra/db"
	"classpay/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// FindCheckoutInfo loads the booking joined with its live listing. The listing
// price is read here, at checkout time, on purpose: the stored booking total is
// not reused for the new charge.
func (r *BookingRepository) FindCheckoutInfo(ctx context.Context, id uuid.UUID) (*booking.CheckoutInfo, error) {
	const query = `
		SELECT b.id, b.listing_id, l.title, l.price_per_person_cents, b.num_attendees
		FROM bookings b
		JOIN listings l ON l.id = b.listing_id
		WHERE b.id = $1
	`

	var info booking.CheckoutInfo
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&info.BookingID,
		&info.ListingID,
		&info.ListingTitle,
		&info.PricePerPersonCents,
		&info.NumAttendees,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking for checkout", err)
	}

	return &info, nil
}

// CreateDirect inserts a pre-approved booking for the "pay now" path where no
// booking-request flow preceded the checkout.
func (r *BookingRepository) CreateDirect(ctx context.Context, listingID, userID uuid.UUID, numAttendees int32, totalCents int64) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (listing_id, user_id, num_attendees, total_amount_cents, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, listingID, userID, numAttendees, totalCents, booking.StatusApproved.String()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) AttachCheckoutSession(ctx context.Context, id uuid.UUID, sessionID string) error {
	const query = `
		UPDATE bookings SET stripe_session_id = $2, updated_at = now() WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, sessionID)
	if err != nil {
		return infra.WrapRepoErr("failed to attach checkout session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

// GetStatus reads the current status inside the caller's transaction.
func (r *BookingRepository) GetStatus(ctx context.Context, q db.Querier, id uuid.UUID) (booking.Status, error) {
	const query = `SELECT status FROM bookings WHERE id = $1`

	var raw string
	if err := q.QueryRow(ctx, query, id).Scan(&raw); err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to read booking status", err)
	}

	status, err := booking.ParseStatus(raw)
	if err != nil {
		return "", infra.WrapRepoErr("booking row has unknown status", err)
	}

	return status, nil
}

// CompareAndMarkPaid performs the single conditional update that drives the
// state machine: it only matches while the row still carries the observed
// status, so two concurrent deliveries cannot both act on a stale read. The
// session/intent ids keep their stored values when the event did not carry one.
func (r *BookingRepository) CompareAndMarkPaid(
	ctx context.Context,
	q db.Querier,
	id uuid.UUID,
	observed, next booking.Status,
	paidAt time.Time,
	sessionID, paymentIntentID string,
) (bool, error) {
	const query = `
		UPDATE bookings
		SET status = $3,
		    paid_at = $4,
		    stripe_session_id = COALESCE(NULLIF($5, ''), stripe_session_id),
		    stripe_payment_intent = COALESCE(NULLIF($6, ''), stripe_payment_intent),
		    updated_at = now()
		WHERE id = $1 AND status = $2
	`

	tag, err := q.Exec(ctx, query, id, observed.String(), next.String(), paidAt, sessionID, paymentIntentID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark booking paid", err)
	}

	return tag.RowsAffected() > 0, nil
}
