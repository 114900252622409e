package components

import (
	"classpay/internal/infra/readstore"
	"classpay/internal/infra/repository"
	"classpay/internal/infra/uow"
	"classpay/internal/usecase/commands"
	"classpay/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
	),
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewListingRepository,
			fx.As(new(commands.ListingRepository)),
		),
		fx.Annotate(
			repository.NewEventRepository,
			fx.As(new(commands.EventRepository)),
		),
		fx.Annotate(
			repository.NewProfileRepository,
			fx.As(new(commands.ProfileRepository)),
		),
	),
)
