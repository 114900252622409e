package commands

import (
	"context"
	"fmt"

	"classpay/internal/infra"
	"classpay/internal/pkg/config"
	"classpay/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingReference        = errs.New("booking_id or listing_id required")
	ErrNotAuthenticated        = errs.New("authentication required")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrListingNotFound         = errs.New("listing not found")
	ErrInvalidPrice            = errs.New("invalid price for listing")
	ErrGatewayFailed           = errs.New("payment gateway request failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CheckoutParams struct {
	BookingID    *uuid.UUID
	ListingID    *uuid.UUID
	NumAttendees int32
	SuccessURL   *string
	CancelURL    *string
}

type CheckoutResult struct {
	BookingID uuid.UUID
	URL       string
}

type CheckoutCommands interface {
	StartCheckout(ctx context.Context, p CheckoutParams, userID uuid.UUID) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	bookingRepo BookingRepository
	listingRepo ListingRepository
	gateway     PaymentGateway
	stripeCfg   config.StripeConfig
}

func NewCheckoutCommands(
	bookingRepo BookingRepository,
	listingRepo ListingRepository,
	gateway PaymentGateway,
	cfg config.Config,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		gateway:     gateway,
		stripeCfg:   cfg.Stripe,
	}
}

// StartCheckout resolves a bookable charge from either an existing booking or
// a bare listing, opens a Stripe checkout session for it and hands back the
// redirect URL. The unit price always comes from the live listing, so a price
// changed between booking creation and payment is charged at the current rate.
func (u *checkoutUseCaseImpl) StartCheckout(ctx context.Context, p CheckoutParams, userID uuid.UUID) (*CheckoutResult, error) {
	if p.BookingID == nil && p.ListingID == nil {
		return nil, ErrMissingReference
	}

	qty := p.NumAttendees
	if qty < 1 {
		qty = 1
	}

	var (
		bookingID uuid.UUID
		listingID uuid.UUID
		title     string
		unitCents int64
	)

	if p.BookingID != nil {
		info, err := u.bookingRepo.FindCheckoutInfo(ctx, *p.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		bookingID = info.BookingID
		listingID = info.ListingID
		title = info.ListingTitle
		unitCents = info.PricePerPersonCents
		if info.NumAttendees > 0 {
			qty = info.NumAttendees
		}

		if unitCents <= 0 {
			return nil, ErrInvalidPrice
		}
	} else {
		// Direct "pay now" path: creates the booking row itself, so the
		// caller must be authenticated.
		if userID == uuid.Nil {
			return nil, ErrNotAuthenticated
		}

		lst, err := u.listingRepo.FindByID(ctx, *p.ListingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrListingNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		unitCents, err = lst.UnitPriceCents()
		if err != nil {
			// Refuse before inserting anything: a zero-priced checkout must
			// leave no booking row and open no session.
			return nil, ErrInvalidPrice
		}

		listingID = lst.ID
		title = lst.Title

		bookingID, err = u.bookingRepo.CreateDirect(ctx, listingID, userID, qty, unitCents*int64(qty))
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	meta := map[string]string{
		"booking_id": bookingID.String(),
		"listing_id": listingID.String(),
		"user_id":    "",
	}
	if userID != uuid.Nil {
		meta["user_id"] = userID.String()
	}

	ref, err := u.gateway.CreateCheckoutSession(ctx, CheckoutSessionParams{
		UnitAmountCents:   unitCents,
		Quantity:          int64(qty),
		Description:       title,
		SuccessURL:        u.resolveURL(p.SuccessURL, listingID, "success=1"),
		CancelURL:         u.resolveURL(p.CancelURL, listingID, "canceled=1"),
		ClientReferenceID: bookingID.String(),
		Metadata:          meta,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayFailed)
	}

	if err := u.bookingRepo.AttachCheckoutSession(ctx, bookingID, ref.SessionID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CheckoutResult{BookingID: bookingID, URL: ref.URL}, nil
}

func (u *checkoutUseCaseImpl) resolveURL(override *string, listingID uuid.UUID, query string) string {
	if override != nil && *override != "" {
		return *override
	}
	return fmt.Sprintf("%s/class/%s?%s", u.stripeCfg.SiteURL, listingID, query)
}
