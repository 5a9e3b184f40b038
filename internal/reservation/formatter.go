// Package reservation derives the human-facing identifiers and price summary
// for a cruise+cabin selection at the moment it is made, before anything is
// persisted.
package reservation

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"cruisebook/internal/domain"
)

// Formatter builds Reservations. The clock and token source are injectable
// so tests can substitute deterministic generators.
type Formatter struct {
	now   func() time.Time
	token func() string
}

// NewFormatter returns a Formatter backed by the wall clock and random
// tokens.
func NewFormatter() *Formatter {
	return New(time.Now, randomToken)
}

// New returns a Formatter with explicit clock and token source.
func New(now func() time.Time, token func() string) *Formatter {
	return &Formatter{now: now, token: token}
}

// Make builds a Reservation for the selection. The reservation id encodes
// the current timestamp in base36; the customer id comes from the token
// source. Both are uppercased, prefixed, and immutable afterwards. The total
// is the flat sum of the cruise and cabin prices.
func (f *Formatter) Make(cruise domain.Cruise, cabin domain.Cabin) domain.Reservation {
	now := f.now()
	return domain.Reservation{
		ReservationID:    "RES-" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)),
		CustomerID:       "CUS-" + strings.ToUpper(f.token()),
		CruiseID:         cruise.ID,
		CruiseName:       cruise.Name,
		Destination:      cruise.Destination,
		CabinType:        cabin.Type,
		CabinPriceCents:  cabin.PriceCents,
		CruisePriceCents: cruise.PriceCents,
		TotalPriceCents:  cruise.PriceCents + cabin.PriceCents,
		BookingDate:      now.Format("January 2, 2006"),
		DurationDays:     cruise.DurationDays,
	}
}

func randomToken() string {
	id := uuid.NewString()
	return strings.ReplaceAll(id, "-", "")[:8]
}
