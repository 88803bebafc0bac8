package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"relove/internal/handler/api"
	"relove/internal/handler/middleware"
	"relove/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	auctionHandler *api.AuctionHandler,
	rentalHandler *api.RentalHandler,
	donationHandler *api.DonationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, auctionHandler, rentalHandler, donationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	auctionHandler *api.AuctionHandler,
	rentalHandler *api.RentalHandler,
	donationHandler *api.DonationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		auctions := apiGroup.Group("/auctions")
		{
			addRoutes(auctions, []route{
				{Method: http.MethodPost, Path: "", Handler: auctionHandler.CreateAuction},
				{Method: http.MethodGet, Path: "", Handler: auctionHandler.ListActiveAuctions},
				{Method: http.MethodGet, Path: "/:id", Handler: auctionHandler.GetAuction},
				{Method: http.MethodPost, Path: "/:id/bid", Handler: auctionHandler.PlaceBid},
				{Method: http.MethodGet, Path: "/:id/bids", Handler: auctionHandler.GetBidHistory},
				{Method: http.MethodPost, Path: "/:id/close", Handler: auctionHandler.CloseAuction},
			})
		}

		rentals := apiGroup.Group("/rentals")
		{
			addRoutes(rentals, []route{
				{Method: http.MethodPost, Path: "", Handler: rentalHandler.CreateRentalItem},
				{Method: http.MethodGet, Path: "", Handler: rentalHandler.ListRentalItems},
				// Static /bookings segment must register before the :id wildcards.
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: rentalHandler.GetBooking},
				{Method: http.MethodPut, Path: "/bookings/:id/status", Handler: rentalHandler.UpdateBookingStatus},
				{Method: http.MethodGet, Path: "/:id", Handler: rentalHandler.GetRentalItem},
				{Method: http.MethodDelete, Path: "/:id", Handler: rentalHandler.DeleteRentalItem},
				{Method: http.MethodPost, Path: "/:id/check-availability", Handler: rentalHandler.CheckAvailability},
				{Method: http.MethodPost, Path: "/:id/book", Handler: rentalHandler.CreateBooking},
			})
		}

		donations := apiGroup.Group("/donations")
		{
			addRoutes(donations, []route{
				{Method: http.MethodPost, Path: "", Handler: donationHandler.CreateDonation},
				{Method: http.MethodGet, Path: "", Handler: donationHandler.ListDonations},
			})
		}

		coupons := apiGroup.Group("/coupons")
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: donationHandler.ValidateCoupon},
				{Method: http.MethodPost, Path: "/:id/redeem", Handler: donationHandler.RedeemCoupon},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
