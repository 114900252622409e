//go:build unit

package commands_test

import (
	"context"
	"testing"

	"classpay/internal/infra"
	"classpay/internal/infra/repository"
	"classpay/internal/pkg/config"
	"classpay/internal/usecase/commands"
	commandsmock "classpay/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type onboardingMocks struct {
	profileRepo *commandsmock.MockProfileRepository
	gateway     *commandsmock.MockPaymentGateway
}

func newOnboardingUseCase(t *testing.T) (commands.OnboardingCommands, onboardingMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := onboardingMocks{
		profileRepo: commandsmock.NewMockProfileRepository(ctrl),
		gateway:     commandsmock.NewMockPaymentGateway(ctrl),
	}

	cfg := config.Config{}
	cfg.Stripe.SiteURL = "https://classpay.example"

	uc := commands.NewOnboardingCommands(m.profileRepo, m.gateway, cfg)
	return uc, m
}

func TestStartOnboarding_CreatesAccountOnFirstCall(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	uc, m := newOnboardingUseCase(t)

	m.profileRepo.EXPECT().FindByID(ctx, userID).Return(&repository.Profile{
		ID:    userID,
		Email: ptr("host@example.com"),
	}, nil)
	m.gateway.EXPECT().CreateExpressAccount(ctx, "host@example.com").Return("acct_new", nil)
	m.profileRepo.EXPECT().SetStripeAccountID(ctx, userID, "acct_new").Return(nil)
	m.gateway.EXPECT().CreateAccountLink(ctx, "acct_new",
		"https://classpay.example/host?onboard=refresh",
		"https://classpay.example/host?onboard=return",
	).Return("https://connect.stripe.test/link", nil)

	result, err := uc.StartOnboarding(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "https://connect.stripe.test/link", result.URL)
}

func TestStartOnboarding_ReusesExistingAccount(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	uc, m := newOnboardingUseCase(t)

	m.profileRepo.EXPECT().FindByID(ctx, userID).Return(&repository.Profile{
		ID:              userID,
		StripeAccountID: ptr("acct_existing"),
	}, nil)
	// No CreateExpressAccount: the stored account id is reused.
	m.gateway.EXPECT().CreateAccountLink(ctx, "acct_existing", gomock.Any(), gomock.Any()).
		Return("https://connect.stripe.test/link2", nil)

	result, err := uc.StartOnboarding(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "https://connect.stripe.test/link2", result.URL)
}

func TestStartOnboarding_ProfileMissing(t *testing.T) {
	uc, m := newOnboardingUseCase(t)

	m.profileRepo.EXPECT().FindByID(gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapRepoErr("profile not found", nil, infra.KindNotFound))

	result, err := uc.StartOnboarding(context.Background(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProfileNotFound)
	assert.Nil(t, result)
}

func TestFinalizeOnboarding_PersistsCapabilityFlags(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	uc, m := newOnboardingUseCase(t)

	m.profileRepo.EXPECT().FindByID(ctx, userID).Return(&repository.Profile{
		ID:              userID,
		StripeAccountID: ptr("acct_done"),
	}, nil)
	m.gateway.EXPECT().RetrieveAccount(ctx, "acct_done").Return(&commands.AccountStatus{
		DetailsSubmitted: true,
		ChargesEnabled:   true,
		PayoutsEnabled:   false,
	}, nil)
	m.profileRepo.EXPECT().UpdateOnboardingFlags(ctx, userID, repository.OnboardingFlags{
		Onboarded:      true,
		ChargesEnabled: true,
		PayoutsEnabled: false,
	}).Return(nil)

	result, err := uc.FinalizeOnboarding(ctx, userID)

	require.NoError(t, err)
	assert.True(t, result.Onboarded)
	assert.True(t, result.ChargesEnabled)
	assert.False(t, result.PayoutsEnabled)
}

func TestFinalizeOnboarding_NoAccountOnProfile(t *testing.T) {
	uc, m := newOnboardingUseCase(t)

	m.profileRepo.EXPECT().FindByID(gomock.Any(), gomock.Any()).
		Return(&repository.Profile{ID: uuid.New()}, nil)

	result, err := uc.FinalizeOnboarding(context.Background(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoStripeAccount)
	assert.Nil(t, result)
}
