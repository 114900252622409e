package commands

import (
	"context"
	"log/slog"

	"classpay/internal/domain/booking"
	"classpay/internal/infra"
	"classpay/internal/infra/db"
	"classpay/internal/pkg/clock"
	"classpay/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSignatureInvalid   = errs.New("webhook signature invalid")
	ErrEventMalformed     = errs.New("webhook event malformed")
	ErrTransitionConflict = errs.New("booking transition conflict")
)

type PaymentEventKind string

const (
	KindCheckoutCompleted PaymentEventKind = "checkout.session.completed"
	KindPaymentSucceeded  PaymentEventKind = "payment_intent.succeeded"
	KindUnknown           PaymentEventKind = "unknown"
)

// PaymentEvent is the decoded, already-authenticated webhook delivery. Only
// metadata-carried identifiers are trusted; line-item content never reaches
// this layer.
type PaymentEvent struct {
	ID              string
	Kind            PaymentEventKind
	RawKind         string
	BookingID       string
	SessionID       string
	PaymentIntentID string
}

type ProcessEventResult struct {
	// Duplicate delivery of an already-processed event id; a successful no-op.
	Duplicate bool
	// Acknowledged without touching the ledger (unknown kind, no booking id,
	// or a booking created outside this flow).
	Ignored bool
	Note    string
	Status  booking.Status
}

type WebhookCommands interface {
	ProcessEvent(ctx context.Context, evt PaymentEvent) (*ProcessEventResult, error)
}

type webhookUseCaseImpl struct {
	bookingRepo BookingRepository
	eventRepo   EventRepository
	uow         UnitOfWork
	clock       clock.Clock
}

func NewWebhookCommands(
	bookingRepo BookingRepository,
	eventRepo EventRepository,
	uow UnitOfWork,
	clock clock.Clock,
) WebhookCommands {
	return &webhookUseCaseImpl{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		uow:         uow,
		clock:       clock,
	}
}

// ProcessEvent claims the event id and applies the resulting state transition
// in one transaction. A failed transition rolls the claim back, so the
// sender's retry can finish the work; a duplicate claim short-circuits before
// any side effect.
func (u *webhookUseCaseImpl) ProcessEvent(ctx context.Context, evt PaymentEvent) (*ProcessEventResult, error) {
	if evt.ID == "" {
		return nil, ErrEventMalformed
	}

	result := &ProcessEventResult{}

	err := u.uow.Within(ctx, func(ctx context.Context, q db.Querier) error {
		// The transaction may rerun after a serialization failure
		*result = ProcessEventResult{}

		claimed, err := u.eventRepo.TryInsert(ctx, q, evt.ID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !claimed {
			result.Duplicate = true
			return nil
		}

		switch evt.Kind {
		case KindCheckoutCompleted, KindPaymentSucceeded:
			if evt.BookingID == "" {
				// Listing-level checkout with no prior booking row; acknowledge
				// and keep the event id so the sender stops retrying.
				result.Ignored = true
				result.Note = "no booking_id"
				return nil
			}

			bookingID, parseErr := uuid.Parse(evt.BookingID)
			if parseErr != nil {
				slog.Warn("webhook metadata carried an unparseable booking_id",
					"event_id", evt.ID, "booking_id", evt.BookingID)
				result.Ignored = true
				result.Note = "bad booking_id"
				return nil
			}

			status, applyErr := u.applyPaymentSuccess(ctx, q, bookingID, evt)
			if applyErr != nil {
				if infra.IsKind(applyErr, infra.KindNotFound) {
					result.Ignored = true
					result.Note = "booking not found"
					return nil
				}
				return applyErr
			}
			result.Status = status

		default:
			result.Ignored = true
			result.Note = "ignored event kind"
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// applyPaymentSuccess runs the optimistic read-compute-write cycle with one
// bounded retry. Losing the race twice surfaces ErrTransitionConflict and the
// processor's delivery retry drives the next attempt.
func (u *webhookUseCaseImpl) applyPaymentSuccess(
	ctx context.Context,
	q db.Querier,
	bookingID uuid.UUID,
	evt PaymentEvent,
) (booking.Status, error) {
	for attempt := 0; attempt < 2; attempt++ {
		current, err := u.bookingRepo.GetStatus(ctx, q, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return "", err
			}
			return "", errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if current.IsPaid() {
			// Already-paid bookings are left untouched: re-applying "mark
			// paid" is a no-op, not an error.
			return current, nil
		}

		next := current.NextOnPaymentSuccess()

		matched, err := u.bookingRepo.CompareAndMarkPaid(
			ctx, q, bookingID, current, next,
			u.clock.Now(), evt.SessionID, evt.PaymentIntentID,
		)
		if err != nil {
			return "", errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if matched {
			return next, nil
		}
	}

	return "", ErrTransitionConflict
}
