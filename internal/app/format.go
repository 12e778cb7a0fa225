package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"travel_catalog/internal/domain"
)

const (
	currencyPrefix   = "Rp "
	ClockPlaceholder = "--:--"
	DatePlaceholder  = "--/--/----"
)

// timestamp layouts accepted from the catalog, most specific first
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// FormatCurrency renders a whole-rupiah amount with id-ID grouping and no
// decimals: 1500000 -> "Rp 1.500.000".
func FormatCurrency(amount int64) string {
	s := strings.ReplaceAll(humanize.Comma(amount), ",", ".")
	if strings.HasPrefix(s, "-") {
		return "-" + currencyPrefix + s[1:]
	}
	return currencyPrefix + s
}

// ParseTimestamp reads an ISO-8601 timestamp. Timestamps without an offset are
// taken to be in loc.
func ParseTimestamp(ts string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s := strings.TrimSpace(ts)
	var last error
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
		last = err
	}
	// a bare date is midnight UTC, as browsers read it
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, &domain.FormatError{Value: ts, Err: last}
}

// FormatClockTime renders ts as a 24-hour "15:04" in loc.
func FormatClockTime(ts string, loc *time.Location) (string, error) {
	t, err := ParseTimestamp(ts, loc)
	if err != nil {
		return "", err
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("15:04"), nil
}

// FormatDate renders the calendar day of ts in loc as "02/01/2006".
func FormatDate(ts string, loc *time.Location) (string, error) {
	t, err := ParseTimestamp(ts, loc)
	if err != nil {
		return "", err
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("02/01/2006"), nil
}

// ClockTimeOrPlaceholder is FormatClockTime for display code that must not
// fail. Unreadable input is logged at warn level.
func ClockTimeOrPlaceholder(ts string, loc *time.Location) string {
	s, err := FormatClockTime(ts, loc)
	if err != nil {
		log.Warn().Err(err).Msg("timestamp unreadable")
		return ClockPlaceholder
	}
	return s
}

func DateOrPlaceholder(ts string, loc *time.Location) string {
	s, err := FormatDate(ts, loc)
	if err != nil {
		return DatePlaceholder
	}
	return s
}

func formatPlace(city, country string) string {
	switch {
	case city == "":
		return country
	case country == "":
		return city
	}
	return fmt.Sprintf("%s, %s", city, country)
}
