package app

import (
	"slices"
	"strings"

	"travel_catalog/internal/domain"
)

// Label is a client-side category filter applied to an already fetched listing.
type Label string

const (
	All         Label = "All"
	Popular     Label = "Popular"
	Recommended Label = "Recommended"
	New         Label = "New"
)

// Labels in the order a display layer offers them.
var Labels = []Label{All, Popular, Recommended, New}

const (
	popularMinRating = 4
	sliceSize        = 5
)

// ParseLabel matches s case-insensitively against the known labels. Unknown
// text is kept as-is and filters like All.
func ParseLabel(s string) Label {
	for _, l := range Labels {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l
		}
	}
	return Label(s)
}

// Filter returns the items selected by label. Except for the identity case the
// result is a fresh slice, so the base sequence is never mutated through it.
func Filter[T domain.Item](items []T, label Label) []T {
	switch label {
	case Popular:
		out := make([]T, 0, len(items))
		for _, it := range items {
			if r, ok := it.Score(); ok && r >= popularMinRating {
				out = append(out, it)
			}
		}
		return out
	case Recommended:
		return slices.Clone(items[:min(sliceSize, len(items))])
	case New:
		return slices.Clone(items[len(items)-min(sliceSize, len(items)):])
	}
	// All, and any label we do not know
	return items
}
