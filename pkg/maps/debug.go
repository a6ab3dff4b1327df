package maps

import (
	"fmt"
	"strings"
)

var terrainGlyphs = [terrainCount]byte{
	TerrainPlains:       '.',
	TerrainDeepWater:    '~',
	TerrainMountains:    '^',
	TerrainWoods:        '&',
	TerrainDesert:       ':',
	TerrainTundra:       '_',
	TerrainSwamp:        '%',
	TerrainShallowWater: '-',
	TerrainFord:         '=',
}

// Debug returns a string visualization of the converted map.
func (o *Output) Debug() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Map: %s (%s)\n", o.Map.Description, o.Map.ID))
	sb.WriteString(fmt.Sprintf("Scenario: %s (%s)\n", o.Scenario.Description, o.Scenario.ID))
	sb.WriteString(fmt.Sprintf("Tiles: %d\n", len(o.Map.Tiles)))
	sb.WriteString(fmt.Sprintf("Bases: %d\n\n", len(o.Scenario.Bases)))

	// Owned bases show the faction initial, neutral ones '#'
	markers := make(map[Position]byte)
	for _, b := range o.Scenario.Bases {
		markers[Position{Q: b.Q, R: b.R}] = '#'
	}
	for _, f := range o.Scenario.Factions {
		for _, b := range f.Bases {
			markers[b] = strings.ToUpper(string(f.Color))[0]
		}
	}

	sb.WriteString("Terrain Grid:\n")
	sb.WriteString(o.renderGrid(markers))
	sb.WriteString(terrainLegend())

	sb.WriteString("\nFactions:\n")
	for i, f := range o.Scenario.Factions {
		control := "human"
		if f.AI {
			control = "ai"
		}
		sb.WriteString(fmt.Sprintf("  %d. %s (%s)\n", i+1, f.Color, control))
		sb.WriteString(fmt.Sprintf("     Credits: %d\n", f.Credits))
		sb.WriteString(fmt.Sprintf("     Bases: %d\n", len(f.Bases)))
		sb.WriteString(fmt.Sprintf("     Units: %d\n", len(f.Units)))
	}

	return sb.String()
}

func terrainLegend() string {
	var sb strings.Builder
	sb.WriteString("Legend:")
	for _, t := range AllTerrains() {
		sb.WriteString(fmt.Sprintf(" %c %s", terrainGlyphs[t], t))
	}
	sb.WriteString(" # neutral base\n")
	return sb.String()
}

// renderGrid draws one line per row, blank where the grid has no tile.
func (o *Output) renderGrid(markers map[Position]byte) string {
	if len(o.Map.Tiles) == 0 {
		return "(empty)\n"
	}

	maxQ, maxR := 0, 0
	for _, t := range o.Map.Tiles {
		maxQ = max(maxQ, t.Q)
		maxR = max(maxR, t.R)
	}

	rows := make([][]byte, maxR+1)
	for r := range rows {
		rows[r] = []byte(strings.Repeat(" ", maxQ+1))
	}
	for _, t := range o.Map.Tiles {
		if t.Q < 0 || t.R < 0 || t.Terrain < 0 || int(t.Terrain) >= terrainCount {
			continue
		}
		rows[t.R][t.Q] = terrainGlyphs[t.Terrain]
		if m, ok := markers[Position{Q: t.Q, R: t.R}]; ok {
			rows[t.R][t.Q] = m
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
