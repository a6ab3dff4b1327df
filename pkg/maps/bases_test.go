package maps

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractBases(t *testing.T) {
	raw := []RawBase{
		{Player: 2, X: 4, Y: 1, BaseType: "Factory"},
		{Player: 0, X: 1, Y: 5, BaseType: "CITY"},
		{Player: 1, X: 1, Y: 2, BaseType: "hq"},
		{Player: 0, X: 4, Y: 0, BaseType: "Airport"},
	}

	want := []BaseRecord{
		{Q: 1, R: 2, BaseType: "hq"},
		{Q: 1, R: 5, BaseType: "city"},
		{Q: 4, R: 0, BaseType: "airport"},
		{Q: 4, R: 1, BaseType: "factory"},
	}
	if diff := cmp.Diff(want, ExtractBases(raw)); diff != "" {
		t.Errorf("bases mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractBases_KeepsDuplicates(t *testing.T) {
	raw := []RawBase{
		{X: 3, Y: 3, BaseType: "city"},
		{X: 3, Y: 3, BaseType: "factory"},
	}

	got := ExtractBases(raw)
	if len(got) != 2 {
		t.Fatalf("expected both bases, got %d", len(got))
	}
}

func TestExtractBases_Empty(t *testing.T) {
	got := ExtractBases(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}
