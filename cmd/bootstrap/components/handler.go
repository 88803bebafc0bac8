package components

import (
	"relove/internal/handler"
	"relove/internal/handler/api"
	"relove/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuctionHandler,
		api.NewRentalHandler,
		api.NewDonationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
