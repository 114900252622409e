package stripegw

import (
	"context"

	"classpay/internal/pkg/config"
	"classpay/internal/pkg/errs"
	"classpay/internal/usecase/commands"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Gateway implements commands.PaymentGateway against the Stripe API. It is an
// explicitly constructed client; nothing in this package holds process-wide
// state.
type Gateway struct {
	api *client.API
}

func NewGateway(cfg config.Config) *Gateway {
	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)
	return &Gateway{api: api}
}

func (g *Gateway) CreateCheckoutSession(ctx context.Context, p commands.CheckoutSessionParams) (*commands.CheckoutSessionRef, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(p.SuccessURL),
		CancelURL:         stripe.String(p.CancelURL),
		ClientReferenceID: stripe.String(p.ClientReferenceID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.Description),
					},
					UnitAmount: stripe.Int64(p.UnitAmountCents),
				},
				Quantity: stripe.Int64(p.Quantity),
			},
		},
		// Metadata goes on the payment intent as well so the
		// payment_intent.succeeded fallback can recover the booking.
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: p.Metadata,
		},
	}
	params.Context = ctx
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe checkout session create failed")
	}

	return &commands.CheckoutSessionRef{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

func (g *Gateway) CreateExpressAccount(ctx context.Context, email string) (string, error) {
	params := &stripe.AccountParams{
		Type:         stripe.String(string(stripe.AccountTypeExpress)),
		BusinessType: stripe.String("individual"),
	}
	params.Context = ctx
	if email != "" {
		params.Email = stripe.String(email)
	}

	acct, err := g.api.Accounts.New(params)
	if err != nil {
		return "", errs.Wrap(err, "stripe account create failed")
	}

	return acct.ID, nil
}

func (g *Gateway) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := g.api.AccountLinks.New(params)
	if err != nil {
		return "", errs.Wrap(err, "stripe account link create failed")
	}

	return link.URL, nil
}

func (g *Gateway) RetrieveAccount(ctx context.Context, accountID string) (*commands.AccountStatus, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	acct, err := g.api.Accounts.GetByID(accountID, params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe account retrieve failed")
	}

	return &commands.AccountStatus{
		DetailsSubmitted: acct.DetailsSubmitted,
		ChargesEnabled:   acct.ChargesEnabled,
		PayoutsEnabled:   acct.PayoutsEnabled,
	}, nil
}
