package domain

import "strings"

type Category string

const (
	Hotels      Category = "hotels"
	Flights     Category = "flights"
	Rentals     Category = "rentals"
	Attractions Category = "attractions"
)

// Categories lists every known category in display order.
var Categories = []Category{Hotels, Flights, Rentals, Attractions}

// Document is the JSON document name backing a catalog category. The
// attractions category is served by a separate API and has none.
func (c Category) Document() string {
	switch c {
	case Hotels:
		return "hotel"
	case Flights:
		return "pesawat"
	case Rentals:
		return "rental"
	}
	return ""
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range Categories {
		if c == k {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}
