package components

import (
	"shop-booking/internal/pkg/clock"
	"shop-booking/internal/usecase/commands"
	"shop-booking/internal/usecase/queries"
	"shop-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewBookingPolicy,
	func(policy shared.BookingPolicy) queries.Settings {
		return queries.Settings{
			Location:               policy.Location,
			StepMinutes:            policy.StepMinutes,
			DefaultDurationMinutes: policy.DefaultDurationMinutes,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewAppointmentCommands,
		commands.NewShopCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewAppointmentQueries,
		queries.NewShopQueries,
	),
)
