//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"classpay/internal/handler/api"
	resdto "classpay/internal/handler/dto/response"
	"classpay/internal/usecase/commands"
	"classpay/tests/common/httptest"
	commandsmock "classpay/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
	userID       uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands)
	s.userID = uuid.New()

	// Optional-auth stand-in: an Authorization header yields an identity,
	// its absence leaves the request anonymous.
	optionalAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		c.Next()
	}

	s.router.POST("/payments/checkout", optionalAuth, s.handler.StartCheckout)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) TestStartCheckout() {
	url := "/payments/checkout"
	bookingID := uuid.New()
	listingID := uuid.New()

	s.Run("success: returns redirect URL for an existing booking", func() {
		s.mockCommands.EXPECT().StartCheckout(gomock.Any(), gomock.Any(), s.userID).
			DoAndReturn(func(_ any, p commands.CheckoutParams, _ uuid.UUID) (*commands.CheckoutResult, error) {
				s.Require().NotNil(p.BookingID)
				s.Equal(bookingID, *p.BookingID)
				return &commands.CheckoutResult{BookingID: bookingID, URL: "https://stripe.test/cs_1"}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"booking_id": bookingID.String()}, "bearer-token")

		var resp resdto.StartCheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(bookingID.String(), resp.BookingID)
		s.Equal("https://stripe.test/cs_1", resp.URL)
	})

	s.Run("success: anonymous caller passes a nil user id", func() {
		s.mockCommands.EXPECT().StartCheckout(gomock.Any(), gomock.Any(), uuid.Nil).
			Return(&commands.CheckoutResult{BookingID: bookingID, URL: "u"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"booking_id": bookingID.String()}, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: malformed body returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"num_attendees": "three"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	usecaseFailures := []struct {
		name         string
		returnErr    error
		expectCode   int
		expectInBody string
	}{
		{name: "missing reference", returnErr: commands.ErrMissingReference, expectCode: http.StatusBadRequest, expectInBody: "booking_id or listing_id"},
		{name: "unauthenticated listing purchase", returnErr: commands.ErrNotAuthenticated, expectCode: http.StatusUnauthorized, expectInBody: "Not authenticated"},
		{name: "booking not found", returnErr: commands.ErrBookingNotFound, expectCode: http.StatusNotFound, expectInBody: "Booking not found"},
		{name: "listing not found", returnErr: commands.ErrListingNotFound, expectCode: http.StatusNotFound, expectInBody: "Listing not found"},
		{name: "invalid price", returnErr: commands.ErrInvalidPrice, expectCode: http.StatusBadRequest, expectInBody: "Invalid price"},
		{name: "gateway failure", returnErr: commands.ErrGatewayFailed, expectCode: http.StatusInternalServerError, expectInBody: "Internal server error"},
	}

	for _, tc := range usecaseFailures {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().StartCheckout(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.returnErr)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
				map[string]any{"listing_id": listingID.String()}, "bearer-token")

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
		})
	}
}
