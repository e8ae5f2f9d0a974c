package components

import (
	"bookloop/internal/pkg/clock"
	"bookloop/internal/usecase"
	"bookloop/internal/usecase/commands"
	"bookloop/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseIdentityModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLedgerCommands,
		commands.NewExchangeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookQueries,
		queries.NewLedgerQueries,
		queries.NewExchangeQueries,
		queries.NewUserQueries,
	),
)

var usecaseIdentityModule = fx.Module("usecase/identity",
	fx.Provide(
		usecase.NewIdentityProvider,
	),
)
