package queries

import (
	"context"
	"time"

	"classpay/internal/domain/booking"
	"classpay/internal/infra"
	"classpay/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

// PaymentStatusView is the read-only contract the UI polls after redirecting
// back from the payment processor.
type PaymentStatusView struct {
	BookingID           uuid.UUID
	ListingID           uuid.UUID
	Status              booking.Status
	TotalAmountCents    int64
	StripeSessionID     *string
	StripePaymentIntent *string
	PaidAt              *time.Time
}

type BookingReadStore interface {
	FindPaymentStatus(ctx context.Context, id uuid.UUID) (*PaymentStatusView, error)
}

type BookingQueries interface {
	GetPaymentStatus(ctx context.Context, id uuid.UUID) (*PaymentStatusView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetPaymentStatus(ctx context.Context, id uuid.UUID) (*PaymentStatusView, error) {
	view, err := q.readStore.FindPaymentStatus(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return view, nil
}
