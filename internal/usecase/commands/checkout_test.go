//go:build unit

package commands_test

import (
	"context"
	"testing"

	"classpay/internal/domain/booking"
	"classpay/internal/domain/listing"
	"classpay/internal/infra"
	"classpay/internal/pkg/config"
	"classpay/internal/usecase/commands"
	commandsmock "classpay/tests/mock/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutMocks struct {
	bookingRepo *commandsmock.MockBookingRepository
	listingRepo *commandsmock.MockListingRepository
	gateway     *commandsmock.MockPaymentGateway
}

func newCheckoutUseCase(t *testing.T) (commands.CheckoutCommands, checkoutMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := checkoutMocks{
		bookingRepo: commandsmock.NewMockBookingRepository(ctrl),
		listingRepo: commandsmock.NewMockListingRepository(ctrl),
		gateway:     commandsmock.NewMockPaymentGateway(ctrl),
	}

	cfg := config.Config{}
	cfg.Stripe.SiteURL = "https://classpay.example"

	uc := commands.NewCheckoutCommands(m.bookingRepo, m.listingRepo, m.gateway, cfg)
	return uc, m
}

func ptr[T any](v T) *T { return &v }

func TestStartCheckout_ExistingBookingUsesLivePrice(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	listingID := uuid.New()
	userID := uuid.New()

	uc, m := newCheckoutUseCase(t)

	m.bookingRepo.EXPECT().FindCheckoutInfo(ctx, bookingID).Return(&booking.CheckoutInfo{
		BookingID:           bookingID,
		ListingID:           listingID,
		ListingTitle:        "Pottery for beginners",
		PricePerPersonCents: 4500,
		NumAttendees:        3,
	}, nil)

	var captured commands.CheckoutSessionParams
	m.gateway.EXPECT().CreateCheckoutSession(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p commands.CheckoutSessionParams) (*commands.CheckoutSessionRef, error) {
			captured = p
			return &commands.CheckoutSessionRef{SessionID: "cs_1", URL: "https://stripe.test/cs_1"}, nil
		},
	)
	m.bookingRepo.EXPECT().AttachCheckoutSession(ctx, bookingID, "cs_1").Return(nil)

	result, err := uc.StartCheckout(ctx, commands.CheckoutParams{BookingID: &bookingID}, userID)

	require.NoError(t, err)
	assert.Equal(t, bookingID, result.BookingID)
	assert.Equal(t, "https://stripe.test/cs_1", result.URL)

	// The charge is priced off the live listing and the stored attendee count.
	assert.Equal(t, int64(4500), captured.UnitAmountCents)
	assert.Equal(t, int64(3), captured.Quantity)
	assert.Equal(t, bookingID.String(), captured.ClientReferenceID)

	wantMeta := map[string]string{
		"booking_id": bookingID.String(),
		"listing_id": listingID.String(),
		"user_id":    userID.String(),
	}
	assert.Empty(t, cmp.Diff(wantMeta, captured.Metadata))
	assert.Equal(t, "https://classpay.example/class/"+listingID.String()+"?success=1", captured.SuccessURL)
	assert.Equal(t, "https://classpay.example/class/"+listingID.String()+"?canceled=1", captured.CancelURL)
}

func TestStartCheckout_ListingPathCreatesApprovedBooking(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()
	userID := uuid.New()
	newBookingID := uuid.New()

	uc, m := newCheckoutUseCase(t)

	m.listingRepo.EXPECT().FindByID(ctx, listingID).Return(&listing.Listing{
		ID:                  listingID,
		Title:               "City food tour",
		PricePerPersonCents: 8000,
	}, nil)
	m.bookingRepo.EXPECT().CreateDirect(ctx, listingID, userID, int32(2), int64(16000)).Return(newBookingID, nil)
	m.gateway.EXPECT().CreateCheckoutSession(ctx, gomock.Any()).Return(
		&commands.CheckoutSessionRef{SessionID: "cs_2", URL: "https://stripe.test/cs_2"}, nil,
	)
	m.bookingRepo.EXPECT().AttachCheckoutSession(ctx, newBookingID, "cs_2").Return(nil)

	result, err := uc.StartCheckout(ctx, commands.CheckoutParams{
		ListingID:    &listingID,
		NumAttendees: 2,
	}, userID)

	require.NoError(t, err)
	assert.Equal(t, newBookingID, result.BookingID)
}

func TestStartCheckout_CustomRedirectURLsPassThrough(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	uc, m := newCheckoutUseCase(t)

	m.bookingRepo.EXPECT().FindCheckoutInfo(ctx, bookingID).Return(&booking.CheckoutInfo{
		BookingID:           bookingID,
		ListingID:           uuid.New(),
		ListingTitle:        "Workshop",
		PricePerPersonCents: 1000,
		NumAttendees:        1,
	}, nil)

	var captured commands.CheckoutSessionParams
	m.gateway.EXPECT().CreateCheckoutSession(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p commands.CheckoutSessionParams) (*commands.CheckoutSessionRef, error) {
			captured = p
			return &commands.CheckoutSessionRef{SessionID: "cs_3", URL: "u"}, nil
		},
	)
	m.bookingRepo.EXPECT().AttachCheckoutSession(ctx, bookingID, "cs_3").Return(nil)

	_, err := uc.StartCheckout(ctx, commands.CheckoutParams{
		BookingID:  &bookingID,
		SuccessURL: ptr("https://app.example/done"),
		CancelURL:  ptr("https://app.example/back"),
	}, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "https://app.example/done", captured.SuccessURL)
	assert.Equal(t, "https://app.example/back", captured.CancelURL)
}

func TestStartCheckout_Failures(t *testing.T) {
	bookingID := uuid.New()
	listingID := uuid.New()
	userID := uuid.New()

	testCases := []struct {
		name      string
		params    commands.CheckoutParams
		userID    uuid.UUID
		setupMock func(m checkoutMocks)
		expectErr error
	}{
		{
			name:      "neither booking nor listing reference",
			params:    commands.CheckoutParams{},
			userID:    userID,
			setupMock: func(m checkoutMocks) {},
			expectErr: commands.ErrMissingReference,
		},
		{
			name:      "anonymous caller on the listing path",
			params:    commands.CheckoutParams{ListingID: &listingID},
			userID:    uuid.Nil,
			setupMock: func(m checkoutMocks) {},
			expectErr: commands.ErrNotAuthenticated,
		},
		{
			name:   "booking not found",
			params: commands.CheckoutParams{BookingID: &bookingID},
			userID: userID,
			setupMock: func(m checkoutMocks) {
				m.bookingRepo.EXPECT().FindCheckoutInfo(gomock.Any(), bookingID).
					Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))
			},
			expectErr: commands.ErrBookingNotFound,
		},
		{
			name:   "listing not found",
			params: commands.CheckoutParams{ListingID: &listingID},
			userID: userID,
			setupMock: func(m checkoutMocks) {
				m.listingRepo.EXPECT().FindByID(gomock.Any(), listingID).
					Return(nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound))
			},
			expectErr: commands.ErrListingNotFound,
		},
		{
			name:   "zero-priced listing leaves no booking row",
			params: commands.CheckoutParams{ListingID: &listingID, NumAttendees: 2},
			userID: userID,
			setupMock: func(m checkoutMocks) {
				m.listingRepo.EXPECT().FindByID(gomock.Any(), listingID).Return(&listing.Listing{
					ID:                  listingID,
					Title:               "Free intro",
					PricePerPersonCents: 0,
				}, nil)
				// No CreateDirect and no gateway call may follow.
			},
			expectErr: commands.ErrInvalidPrice,
		},
		{
			name:   "zero-priced listing behind an existing booking",
			params: commands.CheckoutParams{BookingID: &bookingID},
			userID: userID,
			setupMock: func(m checkoutMocks) {
				m.bookingRepo.EXPECT().FindCheckoutInfo(gomock.Any(), bookingID).Return(&booking.CheckoutInfo{
					BookingID:           bookingID,
					ListingID:           listingID,
					ListingTitle:        "Free intro",
					PricePerPersonCents: 0,
					NumAttendees:        1,
				}, nil)
			},
			expectErr: commands.ErrInvalidPrice,
		},
		{
			name:   "gateway failure",
			params: commands.CheckoutParams{BookingID: &bookingID},
			userID: userID,
			setupMock: func(m checkoutMocks) {
				m.bookingRepo.EXPECT().FindCheckoutInfo(gomock.Any(), bookingID).Return(&booking.CheckoutInfo{
					BookingID:           bookingID,
					ListingID:           listingID,
					ListingTitle:        "Workshop",
					PricePerPersonCents: 2000,
					NumAttendees:        1,
				}, nil)
				m.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
					Return(nil, errDBConnectionLost)
			},
			expectErr: commands.ErrGatewayFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newCheckoutUseCase(t)
			tc.setupMock(m)

			result, err := uc.StartCheckout(context.Background(), tc.params, tc.userID)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectErr)
			assert.Nil(t, result)
		})
	}
}

func TestStartCheckout_AttendeeCountClampedToOne(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()
	userID := uuid.New()
	newBookingID := uuid.New()

	uc, m := newCheckoutUseCase(t)

	m.listingRepo.EXPECT().FindByID(ctx, listingID).Return(&listing.Listing{
		ID:                  listingID,
		Title:               "Evening yoga",
		PricePerPersonCents: 1500,
	}, nil)
	m.bookingRepo.EXPECT().CreateDirect(ctx, listingID, userID, int32(1), int64(1500)).Return(newBookingID, nil)
	m.gateway.EXPECT().CreateCheckoutSession(ctx, gomock.Any()).Return(
		&commands.CheckoutSessionRef{SessionID: "cs_4", URL: "u"}, nil,
	)
	m.bookingRepo.EXPECT().AttachCheckoutSession(ctx, newBookingID, "cs_4").Return(nil)

	_, err := uc.StartCheckout(ctx, commands.CheckoutParams{
		ListingID:    &listingID,
		NumAttendees: 0,
	}, userID)

	require.NoError(t, err)
}
