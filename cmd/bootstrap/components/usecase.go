package components

import (
	"relove/internal/pkg/clock"
	"relove/internal/usecase/commands"
	"relove/internal/usecase/queries"

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

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAuctionQueries,
		queries.NewRentalQueries,
		queries.NewDonationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuctionUseCase,
		commands.NewRentalUseCase,
		commands.NewDonationUseCase,
	),
)
