package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cruisebook/internal/ledger"
)

func listBookingsHandler(led *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"bookings": led.List()})
	}
}

func cancelBookingHandler(led *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if led.Cancel(c.Request.Context(), id) {
			c.JSON(http.StatusOK, gin.H{"cancelled": true, "message": "Booking " + id + " cancelled"})
			return
		}
		// unknown or already cancelled: idempotent no-op
		c.JSON(http.StatusOK, gin.H{"cancelled": false})
	}
}
