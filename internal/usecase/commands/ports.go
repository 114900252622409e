package commands

import (
	"context"
	"time"

	"classpay/internal/domain/booking"
	"classpay/internal/domain/listing"
	"classpay/internal/infra/db"
	"classpay/internal/infra/repository"

	"github.com/google/uuid"
)

// UnitOfWork runs a function inside one database transaction. The Querier
// passed to fn is transaction-scoped; the transaction commits when fn returns
// nil and rolls back otherwise.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, q db.Querier) error) error
}

type BookingRepository interface {
	FindCheckoutInfo(ctx context.Context, id uuid.UUID) (*booking.CheckoutInfo, error)
	CreateDirect(ctx context.Context, listingID, userID uuid.UUID, numAttendees int32, totalCents int64) (uuid.UUID, error)
	AttachCheckoutSession(ctx context.Context, id uuid.UUID, sessionID string) error
	GetStatus(ctx context.Context, q db.Querier, id uuid.UUID) (booking.Status, error)
	CompareAndMarkPaid(ctx context.Context, q db.Querier, id uuid.UUID, observed, next booking.Status, paidAt time.Time, sessionID, paymentIntentID string) (bool, error)
}

type ListingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
}

type EventRepository interface {
	TryInsert(ctx context.Context, q db.Querier, eventID string) (bool, error)
}

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*repository.Profile, error)
	SetStripeAccountID(ctx context.Context, id uuid.UUID, accountID string) error
	UpdateOnboardingFlags(ctx context.Context, id uuid.UUID, flags repository.OnboardingFlags) error
}

// CheckoutSessionParams carries everything the processor needs to collect one
// payment. Metadata is echoed onto both the session and its payment intent so
// the webhook can recover booking identity without a database round trip.
type CheckoutSessionParams struct {
	UnitAmountCents   int64
	Quantity          int64
	Description       string
	SuccessURL        string
	CancelURL         string
	ClientReferenceID string
	Metadata          map[string]string
}

type CheckoutSessionRef struct {
	SessionID string
	URL       string
}

type AccountStatus struct {
	DetailsSubmitted bool
	ChargesEnabled   bool
	PayoutsEnabled   bool
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, p CheckoutSessionParams) (*CheckoutSessionRef, error)
	CreateExpressAccount(ctx context.Context, email string) (string, error)
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
	RetrieveAccount(ctx context.Context, accountID string) (*AccountStatus, error)
}

// SignatureVerifier authenticates a raw webhook delivery and decodes it into
// the closed set of event kinds this core understands.
type SignatureVerifier interface {
	VerifyAndDecode(payload []byte, signatureHeader string) (PaymentEvent, error)
}
