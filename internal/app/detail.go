package app

import (
	"slices"
	"time"

	"travel_catalog/internal/domain"
)

// Extras shown with every rental; the catalog does not carry them per car.
var rentalInclusions = []string{"Insurance", "24/7 Support", "Free Delivery", "First Aid Kit"}

// Presenter derives the display fields of a selected item. Location is the
// zone used for clock times; nil means time.Local.
type Presenter struct {
	Location *time.Location
}

type HotelDetail struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	ImageURL   string        `json:"image_url"`
	Place      string        `json:"place"`
	Rating     domain.Rating `json:"rating"`
	Price      string        `json:"price"`
	PriceUnit  string        `json:"price_unit"`
	Facilities []string      `json:"facilities"`
	Latitude   *float64      `json:"latitude,omitempty"`
	Longitude  *float64      `json:"longitude,omitempty"`
}

type FlightDetail struct {
	ID            string `json:"id"`
	Airline       string `json:"airline"`
	ImageURL      string `json:"image_url"`
	DepartureCity string `json:"departure_city"`
	ArrivalCity   string `json:"arrival_city"`
	Departure     string `json:"departure"`
	Arrival       string `json:"arrival"`
	Date          string `json:"date"`
	Duration      string `json:"duration"`
	Price         string `json:"price"`
	PriceNote     string `json:"price_note"`
}

type RentalDetail struct {
	ID           string   `json:"id"`
	CarModel     string   `json:"car_model"`
	CompanyName  string   `json:"company_name"`
	Availability string   `json:"availability"`
	ImageURL     string   `json:"image_url"`
	Place        string   `json:"place"`
	Price        string   `json:"price"`
	PriceUnit    string   `json:"price_unit"`
	Included     []string `json:"included"`
}

type AttractionDetail struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	LocationString string        `json:"location_string"`
	PhotoURL       string        `json:"photo_url,omitempty"`
	Rating         domain.Rating `json:"rating"`
}

func (p Presenter) Hotel(h domain.Hotel) HotelDetail {
	facilities := h.Facilities
	if facilities == nil {
		facilities = []string{}
	}
	return HotelDetail{
		ID:         h.ItemID(),
		Name:       h.Name,
		ImageURL:   h.ImageURL,
		Place:      formatPlace(h.Location.City, h.Location.Country),
		Rating:     h.Rating,
		Price:      FormatCurrency(h.PricePerNight),
		PriceUnit:  "/malam",
		Facilities: facilities,
		Latitude:   h.Location.Latitude,
		Longitude:  h.Location.Longitude,
	}
}

// Flight builds the flight detail. A bad timestamp shows a
// placeholder instead of failing the whole detail.
func (p Presenter) Flight(f domain.Flight) FlightDetail {
	return FlightDetail{
		ID:            f.ItemID(),
		Airline:       f.Airline,
		ImageURL:      f.ImageURL,
		DepartureCity: f.DepartureCity,
		ArrivalCity:   f.ArrivalCity,
		Departure:     ClockTimeOrPlaceholder(f.DepartureTime, p.Location),
		Arrival:       ClockTimeOrPlaceholder(f.ArrivalTime, p.Location),
		Date:          DateOrPlaceholder(f.DepartureTime, p.Location),
		Duration:      f.Duration,
		Price:         FormatCurrency(f.Price),
		PriceNote:     "per orang",
	}
}

func (p Presenter) Rental(r domain.Rental) RentalDetail {
	return RentalDetail{
		ID:           r.ItemID(),
		CarModel:     r.CarModel,
		CompanyName:  r.CompanyName,
		Availability: r.Availability,
		ImageURL:     r.ImageURL,
		Place:        formatPlace(r.Location.City, r.Location.Country),
		Price:        FormatCurrency(r.PricePerDay),
		PriceUnit:    "/day",
		Included:     slices.Clone(rentalInclusions),
	}
}

func (p Presenter) Attraction(a domain.Attraction) AttractionDetail {
	return AttractionDetail{
		ID:             a.ItemID(),
		Name:           a.Name,
		LocationString: a.LocationString,
		PhotoURL:       a.PhotoURL(),
		Rating:         a.Rating,
	}
}
