package components

import (
	"playpark/internal/pkg/clock"
	"playpark/internal/usecase/commands"
	"playpark/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSlotCommands,
		commands.NewReservationCommands,
		commands.NewBookingCommands,
		commands.NewTicketCommands,
		commands.NewGateCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewBookingQueries,
		queries.NewTicketQueries,
		queries.NewGateQueries,
	),
)
