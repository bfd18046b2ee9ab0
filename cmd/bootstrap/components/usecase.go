package components

import (
	"staycal/internal/pkg/clock"
	"staycal/internal/usecase/commands"
	"staycal/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		clock.NewRealClock,
		commands.NewCalendarUseCase,
		commands.NewListingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCalendarQueries,
		queries.NewListingQueries,
		queries.NewAvailabilityQueries,
	),
)
