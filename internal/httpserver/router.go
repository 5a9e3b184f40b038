package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, allowedOrigins []string, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Store))

	api := router.Group("/api")
	{
		api.GET("/cruises", listCruisesHandler(deps.Catalog))
		api.GET("/cabins", listCabinsHandler(deps.Catalog))
		api.GET("/banks", listBanksHandler)

		api.GET("/cart", getCartHandler(deps.Cart))
		api.POST("/cart/items", addCartItemHandler(deps.Cart))
		api.PATCH("/cart/items/:id", updateCartItemHandler(deps.Cart))
		api.DELETE("/cart/items/:id", removeCartItemHandler(deps.Cart))

		api.POST("/reservations", createReservationHandler(deps.Catalog, deps.Formatter))
		api.GET("/checkout", checkoutStateHandler(deps.Checkout))
		api.POST("/checkout", submitCheckoutHandler(deps.Checkout))
		api.POST("/checkout/close", closeCheckoutHandler(deps.Checkout))

		api.GET("/bookings", listBookingsHandler(deps.Ledger))
		api.POST("/bookings/:id/cancel", cancelBookingHandler(deps.Ledger))
	}

	return router
}
