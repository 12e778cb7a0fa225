package domain_test

import (
	"testing"

	"travel_catalog/internal/domain"
)

func TestValues_KeepsEveryRecordOnce(t *testing.T) {
	in := map[string]domain.Hotel{
		"b": {ID: "h2", Name: "Beta"},
		"a": {ID: "h1", Name: "Alpha"},
	}
	got := domain.Values(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 values, got %d", len(got))
	}
	seen := map[domain.ID]int{}
	for _, h := range got {
		seen[h.ID]++
		if in["a"].ID != h.ID && in["b"].ID != h.ID {
			t.Fatalf("unexpected record %+v", h)
		}
	}
	if seen["h1"] != 1 || seen["h2"] != 1 {
		t.Fatalf("lost or duplicated record: %v", seen)
	}
	// key order
	if got[0].ID != "h1" || got[1].ID != "h2" {
		t.Fatalf("expected key order, got %v, %v", got[0].ID, got[1].ID)
	}
}

func TestValues_Empty(t *testing.T) {
	if got := domain.Values(map[string]domain.Flight{}); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
	if got := domain.Values[domain.Flight](nil); got == nil || len(got) != 0 {
		t.Fatalf("expected non-nil empty slice, got %#v", got)
	}
}
