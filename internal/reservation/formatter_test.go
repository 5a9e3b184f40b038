package reservation

import (
	"regexp"
	"testing"
	"time"

	"cruisebook/internal/domain"
)

var (
	resIDPattern = regexp.MustCompile(`^RES-[0-9A-Z]+$`)
	cusIDPattern = regexp.MustCompile(`^CUS-[0-9A-Z]{8}$`)
)

func caribbean() domain.Cruise {
	return domain.Cruise{
		ID:           "cruise-1",
		Name:         "Caribbean Paradise",
		Destination:  "Caribbean Islands",
		PriceCents:   129900,
		DurationDays: 7,
		Status:       domain.CruiseAvailable,
	}
}

func oceanView() domain.Cabin {
	return domain.Cabin{Type: "Ocean View", PriceCents: 49900}
}

func TestMake_TotalIsFlatSum(t *testing.T) {
	res := NewFormatter().Make(caribbean(), oceanView())

	if res.TotalPriceCents != 179800 {
		t.Fatalf("totalPriceCents = %d, want 179800", res.TotalPriceCents)
	}
	if res.CruisePriceCents != 129900 || res.CabinPriceCents != 49900 {
		t.Fatalf("component prices not carried: %+v", res)
	}
	if res.CruiseID != "cruise-1" || res.CruiseName != "Caribbean Paradise" || res.CabinType != "Ocean View" {
		t.Fatalf("selection not carried: %+v", res)
	}
	if res.DurationDays != 7 || res.Destination != "Caribbean Islands" {
		t.Fatalf("cruise details not carried: %+v", res)
	}
}

func TestMake_IDFormats(t *testing.T) {
	// IDs are randomized/time-based: opaque tokens matched by format only.
	res := NewFormatter().Make(caribbean(), oceanView())

	if !resIDPattern.MatchString(res.ReservationID) {
		t.Fatalf("reservation id %q does not match %s", res.ReservationID, resIDPattern)
	}
	if !cusIDPattern.MatchString(res.CustomerID) {
		t.Fatalf("customer id %q does not match %s", res.CustomerID, cusIDPattern)
	}
}

func TestMake_DeterministicWithInjectedSources(t *testing.T) {
	fixed := time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)
	f := New(func() time.Time { return fixed }, func() string { return "abcd1234" })

	res := f.Make(caribbean(), oceanView())

	if res.CustomerID != "CUS-ABCD1234" {
		t.Fatalf("customer id = %q", res.CustomerID)
	}
	if res.BookingDate != "March 14, 2026" {
		t.Fatalf("booking date = %q", res.BookingDate)
	}
	again := f.Make(caribbean(), oceanView())
	if res.ReservationID != again.ReservationID {
		t.Fatalf("same clock produced different reservation ids: %q vs %q", res.ReservationID, again.ReservationID)
	}
}
