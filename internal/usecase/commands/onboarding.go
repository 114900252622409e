package commands

import (
	"context"
	"fmt"

	"classpay/internal/infra"
	"classpay/internal/infra/repository"
	"classpay/internal/pkg/config"
	"classpay/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound = errs.New("profile not found")
	ErrNoStripeAccount = errs.New("no stripe account on profile")
)

type OnboardingLinkResult struct {
	URL string
}

type OnboardingStatusResult struct {
	Onboarded      bool
	ChargesEnabled bool
	PayoutsEnabled bool
}

type OnboardingCommands interface {
	StartOnboarding(ctx context.Context, userID uuid.UUID) (*OnboardingLinkResult, error)
	FinalizeOnboarding(ctx context.Context, userID uuid.UUID) (*OnboardingStatusResult, error)
}

type onboardingUseCaseImpl struct {
	profileRepo ProfileRepository
	gateway     PaymentGateway
	stripeCfg   config.StripeConfig
}

func NewOnboardingCommands(
	profileRepo ProfileRepository,
	gateway PaymentGateway,
	cfg config.Config,
) OnboardingCommands {
	return &onboardingUseCaseImpl{
		profileRepo: profileRepo,
		gateway:     gateway,
		stripeCfg:   cfg.Stripe,
	}
}

// StartOnboarding ensures the host has an express account and mints a fresh
// onboarding link. Account creation happens at most once per profile; links
// are single-use on the Stripe side, so a new one is created every call.
func (u *onboardingUseCaseImpl) StartOnboarding(ctx context.Context, userID uuid.UUID) (*OnboardingLinkResult, error) {
	profile, err := u.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	accountID := ""
	if profile.StripeAccountID != nil {
		accountID = *profile.StripeAccountID
	}

	if accountID == "" {
		email := ""
		if profile.Email != nil {
			email = *profile.Email
		}

		accountID, err = u.gateway.CreateExpressAccount(ctx, email)
		if err != nil {
			return nil, errs.Mark(err, ErrGatewayFailed)
		}

		if err := u.profileRepo.SetStripeAccountID(ctx, userID, accountID); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	refreshURL := fmt.Sprintf("%s/host?onboard=refresh", u.stripeCfg.SiteURL)
	returnURL := fmt.Sprintf("%s/host?onboard=return", u.stripeCfg.SiteURL)

	linkURL, err := u.gateway.CreateAccountLink(ctx, accountID, refreshURL, returnURL)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayFailed)
	}

	return &OnboardingLinkResult{URL: linkURL}, nil
}

// FinalizeOnboarding pulls the account's capability flags from Stripe and
// persists them, promoting the profile to host once details are submitted.
func (u *onboardingUseCaseImpl) FinalizeOnboarding(ctx context.Context, userID uuid.UUID) (*OnboardingStatusResult, error) {
	profile, err := u.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if profile.StripeAccountID == nil || *profile.StripeAccountID == "" {
		return nil, ErrNoStripeAccount
	}

	acct, err := u.gateway.RetrieveAccount(ctx, *profile.StripeAccountID)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayFailed)
	}

	flags := repository.OnboardingFlags{
		Onboarded:      acct.DetailsSubmitted,
		ChargesEnabled: acct.ChargesEnabled,
		PayoutsEnabled: acct.PayoutsEnabled,
	}
	if err := u.profileRepo.UpdateOnboardingFlags(ctx, userID, flags); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &OnboardingStatusResult{
		Onboarded:      flags.Onboarded,
		ChargesEnabled: flags.ChargesEnabled,
		PayoutsEnabled: flags.PayoutsEnabled,
	}, nil
}
