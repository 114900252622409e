package bootstrap

import (
	"classpay/internal/infra/stripegw"
	"classpay/internal/usecase/commands"

	"go.uber.org/fx"
)

var StripeModule = fx.Module("stripe",
	fx.Provide(
		fx.Annotate(
			stripegw.NewGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			stripegw.NewVerifier,
			fx.As(new(commands.SignatureVerifier)),
		),
	),
)
