package domain

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Item is the common surface of every listed record.
type Item interface {
	ItemID() string
	Score() (float64, bool)
}

// ID decodes from a JSON string or number and is used verbatim as a list key.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("id: expected string or number")
	}
	*id = ID(n.String())
	return nil
}

// Rating is an optional numeric score. Remote payloads send it either as a
// number or as a numeric string ("4.5", "4,5").
type Rating struct {
	Value float64
	Valid bool
}

func RatingOf(v float64) Rating { return Rating{Value: v, Valid: true} }

func (r *Rating) UnmarshalJSON(b []byte) error {
	*r = Rating{}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		*r = RatingOf(t)
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(t, ",", "."))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*r = RatingOf(f)
		}
	}
	// anything else (null, bool, object) is "no rating"
	return nil
}

func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

type Location struct {
	City      string   `json:"city"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type Hotel struct {
	ID            ID       `json:"id"`
	Name          string   `json:"name"`
	Rating        Rating   `json:"rating"`
	Location      Location `json:"location"`
	PricePerNight int64    `json:"price_per_night"`
	ImageURL      string   `json:"image_url"`
	Facilities    []string `json:"facilities"`
}

func (h Hotel) ItemID() string          { return string(h.ID) }
func (h Hotel) Score() (float64, bool) { return h.Rating.Value, h.Rating.Valid }

type Flight struct {
	ID            ID     `json:"id"`
	Airline       string `json:"airline"`
	Duration      string `json:"duration"`
	DepartureCity string `json:"departure_city"`
	ArrivalCity   string `json:"arrival_city"`
	DepartureTime string `json:"departure_time"` // ISO-8601
	ArrivalTime   string `json:"arrival_time"`   // ISO-8601
	Price         int64  `json:"price"`
	ImageURL      string `json:"image_url"`
}

func (f Flight) ItemID() string { return string(f.ID) }

// Score is never set: flights carry no rating.
func (f Flight) Score() (float64, bool) { return 0, false }

type Rental struct {
	ID           ID       `json:"id"`
	CarModel     string   `json:"car_model"`
	CompanyName  string   `json:"company_name"`
	Availability string   `json:"availability"`
	Location     Location `json:"location"`
	PricePerDay  int64    `json:"price_per_day"`
	ImageURL     string   `json:"image_url"`
}

func (r Rental) ItemID() string          { return string(r.ID) }
func (r Rental) Score() (float64, bool) { return 0, false }

type Attraction struct {
	ID             ID     `json:"id,omitempty"`
	LocationID     ID     `json:"location_id,omitempty"`
	Name           string `json:"name"`
	LocationString string `json:"location_string"`
	Photo          *Photo `json:"photo,omitempty"`
	Rating         Rating `json:"rating"`
}

type Photo struct {
	Images struct {
		Small *Image `json:"small,omitempty"`
	} `json:"images"`
}

type Image struct {
	URL string `json:"url"`
}

// ItemID prefers id and falls back to location_id, which is what the
// attractions API actually populates.
func (a Attraction) ItemID() string {
	if a.ID != "" {
		return string(a.ID)
	}
	return string(a.LocationID)
}

func (a Attraction) Score() (float64, bool) { return a.Rating.Value, a.Rating.Valid }

// PhotoURL returns photo.images.small.url or "".
func (a Attraction) PhotoURL() string {
	if a.Photo == nil || a.Photo.Images.Small == nil {
		return ""
	}
	return a.Photo.Images.Small.URL
}
