package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the persisted ledger row for a payment attempt against a listing.
// The total is computed once at creation and never recomputed from webhook data.
type Booking struct {
	ID                  uuid.UUID
	ListingID           uuid.UUID
	UserID              uuid.UUID
	NumAttendees        int32
	TotalAmountCents    int64
	Status              Status
	StripeSessionID     *string
	StripePaymentIntent *string
	PaidAt              *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CheckoutInfo is the slice of a booking plus its listing that checkout
// initiation needs. The unit price comes from the live listing, not from the
// booking's stored total, so the charge follows the current listing price.
type CheckoutInfo struct {
	BookingID           uuid.UUID
	ListingID           uuid.UUID
	ListingTitle        string
	PricePerPersonCents int64
	NumAttendees        int32
}
