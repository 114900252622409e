//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"classpay/internal/domain/booking"
	"classpay/internal/handler/api"
	"classpay/internal/usecase/commands"
	"classpay/tests/common/httptest"
	commandsmock "classpay/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockVerifier *commandsmock.MockSignatureVerifier
	mockCommands *commandsmock.MockWebhookCommands
	handler      *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockVerifier = commandsmock.NewMockSignatureVerifier(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockVerifier, s.mockCommands)

	s.router.POST("/payments/stripe/webhook", s.handler.HandleStripeWebhook)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestHandleStripeWebhook() {
	url := "/payments/stripe/webhook"
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	headers := map[string]string{"Stripe-Signature": "t=1,v1=abc"}

	s.Run("success: returns 200 with new status", func() {
		event := commands.PaymentEvent{ID: "evt_1", Kind: commands.KindCheckoutCompleted, BookingID: "b-1"}
		s.mockVerifier.EXPECT().VerifyAndDecode(payload, "t=1,v1=abc").Return(event, nil)
		s.mockCommands.EXPECT().ProcessEvent(gomock.Any(), event).
			Return(&commands.ProcessEventResult{Status: booking.StatusApprovedPaid}, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		var resp struct {
			OK     bool   `json:"ok"`
			Status string `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.OK)
		s.Equal("approved_paid", resp.Status)
	})

	s.Run("success: duplicate delivery is acknowledged as idempotent", func() {
		event := commands.PaymentEvent{ID: "evt_1", Kind: commands.KindCheckoutCompleted}
		s.mockVerifier.EXPECT().VerifyAndDecode(payload, "t=1,v1=abc").Return(event, nil)
		s.mockCommands.EXPECT().ProcessEvent(gomock.Any(), event).
			Return(&commands.ProcessEventResult{Duplicate: true}, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		var resp struct {
			OK         bool `json:"ok"`
			Idempotent bool `json:"idempotent"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.OK)
		s.True(resp.Idempotent)
	})

	s.Run("success: ignored event carries a note", func() {
		event := commands.PaymentEvent{ID: "evt_1", Kind: commands.KindCheckoutCompleted}
		s.mockVerifier.EXPECT().VerifyAndDecode(payload, "t=1,v1=abc").Return(event, nil)
		s.mockCommands.EXPECT().ProcessEvent(gomock.Any(), event).
			Return(&commands.ProcessEventResult{Ignored: true, Note: "no booking_id"}, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		var resp struct {
			OK   bool   `json:"ok"`
			Note string `json:"note"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.OK)
		s.Equal("no booking_id", resp.Note)
	})

	s.Run("error: invalid signature returns 400 and never reaches the usecase", func() {
		s.mockVerifier.EXPECT().VerifyAndDecode(payload, "t=1,v1=forged").
			Return(commands.PaymentEvent{}, commands.ErrSignatureInvalid)
		// No ProcessEvent expectation: a forged delivery must not be processed.

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": "t=1,v1=forged"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid signature")
	})

	s.Run("error: processing failure returns 500 so the sender retries", func() {
		event := commands.PaymentEvent{ID: "evt_1", Kind: commands.KindCheckoutCompleted, BookingID: "b-1"}
		s.mockVerifier.EXPECT().VerifyAndDecode(payload, "t=1,v1=abc").Return(event, nil)
		s.mockCommands.EXPECT().ProcessEvent(gomock.Any(), event).
			Return(nil, commands.ErrTransitionConflict)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Processing failed")
	})
}
