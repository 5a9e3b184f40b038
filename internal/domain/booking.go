package domain

// Reservation is the computed, not-yet-persisted record for a cruise+cabin
// selection. The IDs are generated once by the formatter and never change.
type Reservation struct {
	ReservationID    string `json:"reservationId"`
	CustomerID       string `json:"customerId"`
	CruiseID         string `json:"cruiseId"`
	CruiseName       string `json:"cruiseName"`
	Destination      string `json:"destination"`
	CabinType        string `json:"cabinType"`
	CabinPriceCents  int64  `json:"cabinPriceCents"`
	CruisePriceCents int64  `json:"cruisePriceCents"`
	TotalPriceCents  int64  `json:"totalPriceCents"`
	BookingDate      string `json:"bookingDate"`
	DurationDays     int    `json:"durationDays"`
}

// BookingStatus is the booking lifecycle state. A booking is created
// confirmed and may only move to cancelled, which is terminal.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is the persisted form of a reservation after a completed payment.
// Bookings are never deleted; the ledger is an audit trail.
type Booking struct {
	Reservation
	Status        BookingStatus `json:"status"`
	PaymentMethod string        `json:"paymentMethod"`
}
