package response

import "classpay/internal/usecase/commands"

type OnboardingLinkResponse struct {
	URL string `json:"url"`
}

type OnboardingFlagsResponse struct {
	Onboarded      bool `json:"stripe_onboarded"`
	ChargesEnabled bool `json:"stripe_charges_enabled"`
	PayoutsEnabled bool `json:"stripe_payouts_enabled"`
}

type FinalizeOnboardingResponse struct {
	OK    bool                    `json:"ok"`
	Flags OnboardingFlagsResponse `json:"flags"`
}

func FromOnboardingStatus(result *commands.OnboardingStatusResult) *FinalizeOnboardingResponse {
	return &FinalizeOnboardingResponse{
		OK: true,
		Flags: OnboardingFlagsResponse{
			Onboarded:      result.Onboarded,
			ChargesEnabled: result.ChargesEnabled,
			PayoutsEnabled: result.PayoutsEnabled,
		},
	}
}
