package maps

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvert(t *testing.T) {
	raw, err := LoadFromJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	out, err := Convert(raw, Options{})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	want := &Output{
		Map: MapSection{
			ID:          "fire-ice",
			Description: "Fire  Ice",
			Tiles: []Tile{
				{Q: 0, R: 0, Terrain: TerrainPlains},
				{Q: 1, R: 0, Terrain: TerrainPlains},
				{Q: 2, R: 0, Terrain: TerrainWoods},
				{Q: 0, R: 1, Terrain: TerrainPlains},
				{Q: 1, R: 1, Terrain: TerrainPlains},
				{Q: 2, R: 1, Terrain: TerrainWoods},
				{Q: 1, R: 2, Terrain: TerrainDeepWater},
				{Q: 2, R: 2, Terrain: TerrainDeepWater},
			},
		},
		Scenario: ScenarioSection{
			ID:          "fire-ice-multiplayer",
			MapID:       "fire-ice",
			Description: "Fire  Ice Multiplayer",
			Bases: []BaseRecord{
				{Q: 1, R: 1, BaseType: "hq"},
				{Q: 2, R: 0, BaseType: "city"},
			},
			Factions: []Faction{
				{Color: ColorRed, Credits: 5000, AI: false, Bases: []Position{{Q: 1, R: 1}}},
				{Color: ColorBlue, Credits: 5000, AI: true, Bases: []Position{}, Units: []FactionUnit{{Q: 2, R: 1, UnitType: "tank"}}},
			},
		},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	if out.FactionCount() != 2 {
		t.Errorf("FactionCount = %d, want 2", out.FactionCount())
	}
	if h := out.HumanFaction(); h == nil || h.Color != ColorRed {
		t.Errorf("HumanFaction = %+v, want red", h)
	}
}

func TestConvert_JSONShape(t *testing.T) {
	raw, err := LoadFromJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	out, err := Convert(raw, Options{})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	data, err := json.Marshal(out.Scenario.Factions)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)

	// Red owns no units: no "units" key. Blue owns no bases: empty list.
	if strings.Count(got, `"units"`) != 1 {
		t.Errorf("expected exactly one units key, got %s", got)
	}
	if !strings.Contains(got, `"bases":[]`) {
		t.Errorf("expected an empty bases list, got %s", got)
	}

	tiles, err := json.Marshal(out.Map.Tiles[:1])
	if err != nil {
		t.Fatalf("marshal tiles: %v", err)
	}
	if string(tiles) != `[{"q":0,"r":0,"terrain":"plains"}]` {
		t.Errorf("unexpected tile encoding %s", tiles)
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name   string
		raw    *RawMap
		target error
	}{
		{"nil map", nil, ErrInvalidMap},
		{"blank name", &RawMap{Tiles: [][]int{{0}}}, ErrInvalidMap},
		{
			"isolated base",
			&RawMap{Name: "A", Tiles: [][]int{{10}}},
			ErrUnresolvableTerrain,
		},
		{
			"slot seven",
			&RawMap{Name: "A", Tiles: [][]int{{0}}, Bases: []RawBase{{Player: 7, BaseType: "hq"}}},
			ErrUnknownSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Convert(tt.raw, Options{})
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
			if out != nil {
				t.Error("expected no output on error")
			}
		})
	}
}

func TestConvert_Idempotent(t *testing.T) {
	raw, err := LoadFromJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a, err := Convert(raw, Options{})
	if err != nil {
		t.Fatalf("first convert: %v", err)
	}
	b, err := Convert(raw, Options{})
	if err != nil {
		t.Fatalf("second convert: %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("conversions differ (-first +second):\n%s", diff)
	}
}

func TestOutputDebug(t *testing.T) {
	raw, err := LoadFromJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	out, err := Convert(raw, Options{})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	got := out.Debug()
	for _, want := range []string{
		"Map: Fire  Ice (fire-ice)",
		"Scenario: Fire  Ice Multiplayer (fire-ice-multiplayer)",
		"..#\n.R&\n ~~\n",
		"Legend: . plains ~ deep-water ^ mountains",
		"1. red (human)",
		"2. blue (ai)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("debug output missing %q:\n%s", want, got)
		}
	}
}
