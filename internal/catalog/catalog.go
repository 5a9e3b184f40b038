// Package catalog supplies the static cruise-package and cabin-type records
// the storefront sells. The order lifecycle reads the catalog but never
// writes to it.
package catalog

import (
	"cruisebook/internal/domain"
)

type Catalog struct {
	cruises []domain.Cruise
	cabins  []domain.Cabin
}

// Default returns the built-in storefront catalog.
func Default() *Catalog {
	return &Catalog{cruises: cruises, cabins: cabins}
}

// Cruises returns all cruise packages, including unavailable ones. Callers
// rendering the list decide how to present unavailable packages; booking one
// is rejected by CruiseByID at reservation time.
func (c *Catalog) Cruises() []domain.Cruise {
	out := make([]domain.Cruise, len(c.cruises))
	copy(out, c.cruises)
	return out
}

// Cabins returns all cabin types.
func (c *Catalog) Cabins() []domain.Cabin {
	out := make([]domain.Cabin, len(c.cabins))
	copy(out, c.cabins)
	return out
}

// CruiseByID looks up a bookable cruise package. It returns
// domain.ErrNotFound for unknown ids and domain.ErrCruiseUnavailable for
// packages that exist but cannot be booked.
func (c *Catalog) CruiseByID(id string) (*domain.Cruise, error) {
	for _, cr := range c.cruises {
		if cr.ID == id {
			if cr.Status != domain.CruiseAvailable {
				return nil, domain.ErrCruiseUnavailable
			}
			out := cr
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// CabinByType looks up a cabin type by its name.
func (c *Catalog) CabinByType(cabinType string) (*domain.Cabin, error) {
	for _, cb := range c.cabins {
		if cb.Type == cabinType {
			out := cb
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

var cruises = []domain.Cruise{
	{
		ID:           "cruise-1",
		Name:         "Caribbean Paradise",
		Destination:  "Caribbean Islands",
		PriceCents:   129900,
		DurationDays: 7,
		Status:       domain.CruiseAvailable,
		Rating:       4.9,
		ImageURL:     "https://images.unsplash.com/photo-1548574505-5e239809ee19?w=800",
	},
	{
		ID:           "cruise-2",
		Name:         "Mediterranean Dream",
		Destination:  "Mediterranean Sea",
		PriceCents:   189900,
		DurationDays: 10,
		Status:       domain.CruiseAvailable,
		Rating:       4.8,
		ImageURL:     "https://images.unsplash.com/photo-1559599746-8823b38544c6?w=800",
	},
	{
		ID:           "cruise-3",
		Name:         "Alaskan Explorer",
		Destination:  "Alaska, USA",
		PriceCents:   219900,
		DurationDays: 12,
		Status:       domain.CruiseAvailable,
		Rating:       4.95,
		ImageURL:     "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800",
	},
	{
		ID:           "cruise-4",
		Name:         "Nordic Lights",
		Destination:  "Scandinavia",
		PriceCents:   249900,
		DurationDays: 14,
		Status:       domain.CruiseUnavailable,
		Rating:       4.7,
		ImageURL:     "https://images.unsplash.com/photo-1531366936337-7c912a4589a7?w=800",
	},
}

var cabins = []domain.Cabin{
	{
		Type:       "Standard",
		PriceCents: 19900,
		Size:       "180 sq ft",
		Capacity:   "Up to 2 guests",
		Features: []string{
			"Queen-size bed",
			"Private bathroom",
			"Mini refrigerator",
			"24/7 room service",
		},
		ImageURL: "https://images.unsplash.com/photo-1590490360182-c33d57733427?w=800",
	},
	{
		Type:       "Deluxe",
		PriceCents: 34900,
		Size:       "250 sq ft",
		Capacity:   "Up to 3 guests",
		Features: []string{
			"King-size bed",
			"Spacious bathroom",
			"Private balcony",
			"Premium amenities",
			"Priority dining",
		},
		ImageURL: "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800",
	},
	{
		Type:       "Ocean View",
		PriceCents: 49900,
		Size:       "300 sq ft",
		Capacity:   "Up to 3 guests",
		Features: []string{
			"King-size bed",
			"Panoramic ocean window",
			"Private balcony",
			"Living area",
			"Premium amenities",
		},
		ImageURL: "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800",
	},
	{
		Type:       "Suite",
		PriceCents: 59900,
		Size:       "400 sq ft",
		Capacity:   "Up to 4 guests",
		Features: []string{
			"Master bedroom",
			"Luxury bathroom with jacuzzi",
			"Large private balcony",
			"Separate living room",
			"Butler service",
			"Exclusive lounge access",
		},
		ImageURL: "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?w=800",
	},
}
