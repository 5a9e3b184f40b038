package domain

// CruiseStatus marks whether a cruise package can currently be booked.
type CruiseStatus string

const (
	CruiseAvailable   CruiseStatus = "available"
	CruiseUnavailable CruiseStatus = "unavailable"
)

// Cruise is a catalog package record. Catalog data is static and read-only;
// the order lifecycle never mutates it.
type Cruise struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Destination  string       `json:"destination"`
	PriceCents   int64        `json:"priceCents"`
	DurationDays int          `json:"durationDays"`
	Status       CruiseStatus `json:"status"`
	Rating       float64      `json:"rating"`
	ImageURL     string       `json:"imageUrl,omitempty"`
}

// Cabin is a catalog cabin-type record.
type Cabin struct {
	Type       string   `json:"type"`
	PriceCents int64    `json:"priceCents"`
	Size       string   `json:"size"`
	Capacity   string   `json:"capacity"`
	Features   []string `json:"features,omitempty"`
	ImageURL   string   `json:"imageUrl,omitempty"`
}
