package components

import (
	"machine-rental/internal/pkg/clock"
	"machine-rental/internal/usecase"
	"machine-rental/internal/usecase/commands"
	"machine-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewAuthUseCase,
	func(a *usecase.AuthUseCase) usecase.TokenValidator { return a },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewMachineCommands,
		commands.NewProfileCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
		queries.NewDashboardQueries,
		queries.NewUserQueries,
	),
)
