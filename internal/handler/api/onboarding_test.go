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

type OnboardingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOnboardingCommands
	handler      *api.OnboardingHandler
	userID       uuid.UUID
}

func (s *OnboardingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOnboardingCommands(s.mockCtrl)
	s.handler = api.NewOnboardingHandler(s.mockCommands)
	s.userID = uuid.New()

	requireAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/host/onboard", requireAuth, s.handler.StartOnboarding)
	s.router.POST("/host/onboard/finalize", requireAuth, s.handler.FinalizeOnboarding)
}

func (s *OnboardingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOnboardingHandlerSuite(t *testing.T) {
	suite.Run(t, new(OnboardingHandlerTestSuite))
}

func (s *OnboardingHandlerTestSuite) TestStartOnboarding() {
	url := "/host/onboard"

	s.Run("success: returns the onboarding link", func() {
		s.mockCommands.EXPECT().StartOnboarding(gomock.Any(), s.userID).
			Return(&commands.OnboardingLinkResult{URL: "https://connect.stripe.test/link"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var resp resdto.OnboardingLinkResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("https://connect.stripe.test/link", resp.URL)
	})

	s.Run("error: unauthenticated returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: missing profile returns 404", func() {
		s.mockCommands.EXPECT().StartOnboarding(gomock.Any(), s.userID).
			Return(nil, commands.ErrProfileNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Profile not found")
	})
}

func (s *OnboardingHandlerTestSuite) TestFinalizeOnboarding() {
	url := "/host/onboard/finalize"

	s.Run("success: returns capability flags", func() {
		s.mockCommands.EXPECT().FinalizeOnboarding(gomock.Any(), s.userID).
			Return(&commands.OnboardingStatusResult{
				Onboarded:      true,
				ChargesEnabled: true,
				PayoutsEnabled: true,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var resp resdto.FinalizeOnboardingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.OK)
		s.True(resp.Flags.Onboarded)
		s.True(resp.Flags.ChargesEnabled)
		s.True(resp.Flags.PayoutsEnabled)
	})

	s.Run("error: onboarding never started returns 400", func() {
		s.mockCommands.EXPECT().FinalizeOnboarding(gomock.Any(), s.userID).
			Return(nil, commands.ErrNoStripeAccount)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No stripe account")
	})
}
