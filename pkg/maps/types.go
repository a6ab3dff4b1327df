// Package maps converts source-format maps into hex-addressed map and
// scenario sections.
package maps

// RawMap is the source format stored in JSON files.
type RawMap struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StartingCredits int       `json:"starting_credits"`
	Tiles           [][]int   `json:"tiles"` // Row-major: row = r, column = q
	Bases           []RawBase `json:"bases"`
	Units           []RawUnit `json:"units"`
}

// RawBase is a base placement from the source file.
type RawBase struct {
	Player   int    `json:"player"` // 0 = unowned, 1..6 = faction slot
	X        int    `json:"x"`
	Y        int    `json:"y"`
	BaseType string `json:"base_type"`
}

// RawUnit is a unit placement from the source file.
type RawUnit struct {
	Player   int    `json:"player"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	UnitType string `json:"unit_type"`
}

// Tile is a single resolved hex.
type Tile struct {
	Q       int     `json:"q"`
	R       int     `json:"r"`
	Terrain Terrain `json:"terrain"`
}

// BaseRecord is a global base placement, independent of ownership.
type BaseRecord struct {
	Q        int    `json:"q"`
	R        int    `json:"r"`
	BaseType string `json:"base_type"`
}

// Position is an axial hex coordinate.
type Position struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// FactionUnit is a unit owned by a faction.
type FactionUnit struct {
	Q        int    `json:"q"`
	R        int    `json:"r"`
	UnitType string `json:"unit_type"`
}

// Faction is a destination-format faction.
type Faction struct {
	Color   Color         `json:"color"`
	Credits int           `json:"credits"`
	AI      bool          `json:"ai"`
	Bases   []Position    `json:"bases"`           // Never nil
	Units   []FactionUnit `json:"units,omitempty"` // Nil when the faction owns no units
}

// Identifiers are the ids and descriptions derived from a map name.
type Identifiers struct {
	MapID               string
	ScenarioID          string
	MapDescription      string
	ScenarioDescription string
}

// Output is the result of a conversion: one map section and one scenario
// section, each rendered separately by the document writer.
type Output struct {
	Map      MapSection      `json:"map"`
	Scenario ScenarioSection `json:"scenario"`
}

// MapSection holds the terrain of a converted map.
type MapSection struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Tiles       []Tile `json:"tiles"`
}

// ScenarioSection holds base placements and factions of a converted map.
type ScenarioSection struct {
	ID          string       `json:"id"`
	MapID       string       `json:"map"`
	Description string       `json:"description"`
	Bases       []BaseRecord `json:"bases"`
	Factions    []Faction    `json:"factions"`
}

// Options tune a conversion.
type Options struct {
	// FillerFallback resolves base tiles with no concrete neighbors to
	// plains instead of failing.
	FillerFallback bool
}

// FactionCount returns the number of factions in the scenario.
func (o *Output) FactionCount() int {
	return len(o.Scenario.Factions)
}

// HumanFaction returns the faction controlled by the player, or nil if the
// scenario has no factions.
func (o *Output) HumanFaction() *Faction {
	for i := range o.Scenario.Factions {
		if !o.Scenario.Factions[i].AI {
			return &o.Scenario.Factions[i]
		}
	}
	return nil
}
