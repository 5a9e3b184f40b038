// Package seed loads demo bookings into the ledger for manual testing of
// the bookings surface.
package seed

import (
	"context"
	"fmt"

	"cruisebook/internal/catalog"
	"cruisebook/internal/ledger"
	"cruisebook/internal/reservation"
)

type demoBooking struct {
	CruiseID      string
	CabinType     string
	PaymentMethod string
}

// Apply commits a handful of demo bookings. It is idempotent per run set:
// an already-populated ledger is left untouched.
func Apply(ctx context.Context, led *ledger.Ledger, cat *catalog.Catalog, formatter *reservation.Formatter) error {
	if len(led.List()) > 0 {
		return nil
	}

	demos := []demoBooking{
		{CruiseID: "cruise-1", CabinType: "Ocean View", PaymentMethod: "Credit/Debit Card"},
		{CruiseID: "cruise-2", CabinType: "Suite", PaymentMethod: "UPI"},
	}

	for _, d := range demos {
		cruise, err := cat.CruiseByID(d.CruiseID)
		if err != nil {
			return fmt.Errorf("lookup cruise %s: %w", d.CruiseID, err)
		}
		cabin, err := cat.CabinByType(d.CabinType)
		if err != nil {
			return fmt.Errorf("lookup cabin %s: %w", d.CabinType, err)
		}
		led.Commit(ctx, formatter.Make(*cruise, *cabin), d.PaymentMethod)
	}
	return nil
}
