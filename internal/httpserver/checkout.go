package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cruisebook/internal/catalog"
	"cruisebook/internal/checkout"
	"cruisebook/internal/domain"
	"cruisebook/internal/reservation"
)

type createReservationRequest struct {
	CruiseID  string `json:"cruiseId" binding:"required"`
	CabinType string `json:"cabinType" binding:"required"`
}

type submitCheckoutRequest struct {
	Reservation domain.Reservation      `json:"reservation" binding:"required"`
	Payment     checkout.PaymentRequest `json:"payment" binding:"required"`
}

func createReservationHandler(cat *catalog.Catalog, formatter *reservation.Formatter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReservationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cruise, err := cat.CruiseByID(req.CruiseID)
		switch {
		case errors.Is(err, domain.ErrCruiseUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "cruise is not available for booking"})
			return
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "cruise not found"})
			return
		}

		cabin, err := cat.CabinByType(req.CabinType)
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cabin type not found"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"reservation": formatter.Make(*cruise, *cabin)})
	}
}

func checkoutStateHandler(sim *checkout.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"state": sim.State()})
	}
}

func submitCheckoutHandler(sim *checkout.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submitCheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		booking, err := sim.Submit(c.Request.Context(), req.Payment, req.Reservation)
		if err != nil {
			var invalid *checkout.InvalidPaymentError
			switch {
			case errors.As(err, &invalid):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "payment details incomplete", "reasons": invalid.Reasons})
			case errors.Is(err, checkout.ErrPaymentInFlight):
				c.JSON(http.StatusConflict, gin.H{"error": "a payment is already processing"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "payment interrupted"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"booking": booking,
			"message": "Payment successful! Your cruise booking has been confirmed",
		})
	}
}

func closeCheckoutHandler(sim *checkout.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sim.Close(); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "checkout cannot be closed while a payment is processing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": sim.State()})
	}
}
