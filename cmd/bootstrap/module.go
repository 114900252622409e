package bootstrap

import (
	"classpay/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	StripeModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
