package repository

import (
	"context"

	"classpay/internal/infra"
	"classpay/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository is the durable log of processed Stripe event ids. Presence of
// a row is the sole idempotency signal for webhook deliveries.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// TryInsert claims an event id atomically. It returns false when another
// delivery already holds the id. Run inside the webhook transaction so the
// claim rolls back if the transition fails and the sender's retry can finish
// the work.
func (r *EventRepository) TryInsert(ctx context.Context, q db.Querier, eventID string) (bool, error) {
	const query = `
		INSERT INTO stripe_webhook_events (id) VALUES ($1)
		ON CONFLICT (id) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, eventID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to record webhook event", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Exists is a read-only probe used by tests and operational tooling; the
// ingestion path relies on TryInsert alone.
func (r *EventRepository) Exists(ctx context.Context, eventID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM stripe_webhook_events WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, eventID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check webhook event", err)
	}

	return exists, nil
}
