package observability

import (
	"github.com/rs/zerolog"

	"travel_catalog/internal/domain"
)

// LogReporter logs suppressed fetch failures and counts them.
type LogReporter struct {
	Log zerolog.Logger
}

func NewLogReporter(l zerolog.Logger) *LogReporter { return &LogReporter{Log: l} }

func (r *LogReporter) Report(category domain.Category, err error) {
	kind := domain.ErrorKind(err)
	ObserveFetchError(string(category), kind)
	r.Log.Error().
		Err(err).
		Str("category", string(category)).
		Str("kind", kind).
		Msg("catalog fetch failed")
}

// Loaded records the size of the listing after a successful fetch.
func (r *LogReporter) Loaded(category domain.Category, n int) {
	ObserveListing(string(category), n)
	r.Log.Debug().Str("category", string(category)).Int("items", n).Msg("catalog loaded")
}
