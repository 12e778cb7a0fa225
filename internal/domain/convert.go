package domain

import (
	"sort"
)

// Values flattens a keyed catalog document into its records. The wire format
// is unordered, so records are emitted in key order to keep listings stable
// between refreshes.
func Values[T any](m map[string]T) []T {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]T, 0, len(m))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
