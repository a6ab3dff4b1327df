package maps

import (
	"cmp"
	"fmt"
	"slices"
)

// Terrain is the terrain of a hex.
type Terrain int

// Terrain values, in source grid order (cell value 0 is plains, 8 is ford).
const (
	TerrainPlains Terrain = iota
	TerrainDeepWater
	TerrainMountains
	TerrainWoods
	TerrainDesert
	TerrainTundra
	TerrainSwamp
	TerrainShallowWater
	TerrainFord

	terrainCount = iota
)

// terrainBaseFiller marks a tile under a base whose terrain must be
// inferred. It never leaves ResolveTerrain.
const terrainBaseFiller Terrain = -1

// Source grid cell values for base tiles.
const (
	cellBaseFillerMin = 10
	cellBaseFillerMax = 12
)

var terrainNames = [terrainCount]string{
	"plains",
	"deep-water",
	"mountains",
	"woods",
	"desert",
	"tundra",
	"swamp",
	"shallow-water",
	"ford",
}

// String returns the terrain name.
func (t Terrain) String() string {
	if t < 0 || int(t) >= terrainCount {
		return fmt.Sprintf("Terrain(%d)", int(t))
	}
	return terrainNames[t]
}

// MarshalText encodes the terrain as its name.
func (t Terrain) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= terrainCount {
		return nil, fmt.Errorf("unknown terrain %d", int(t))
	}
	return []byte(terrainNames[t]), nil
}

// UnmarshalText decodes a terrain name.
func (t *Terrain) UnmarshalText(text []byte) error {
	for i, name := range terrainNames {
		if name == string(text) {
			*t = Terrain(i)
			return nil
		}
	}
	return fmt.Errorf("unknown terrain %q", text)
}

// AllTerrains returns every terrain in table order.
func AllTerrains() []Terrain {
	all := make([]Terrain, terrainCount)
	for i := range all {
		all[i] = Terrain(i)
	}
	return all
}

// hexNeighborOffsets are the six neighbors of (q, r) in the source grid's
// axial layout. The set is not symmetric; it must not be replaced with a
// generic hex direction table.
var hexNeighborOffsets = [6][2]int{
	{-1, -1}, {0, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1},
}

// terrainFromCell converts a source grid value.
// Returns false for values that are not tiles.
func terrainFromCell(v int) (Terrain, bool) {
	switch {
	case v >= 0 && v < terrainCount:
		return Terrain(v), true
	case v >= cellBaseFillerMin && v <= cellBaseFillerMax:
		return terrainBaseFiller, true
	default:
		return 0, false
	}
}

// ResolveTerrain builds the tile list from a row-major grid, inferring the
// terrain under base tiles from their neighbors. Tiles are sorted by (r, q).
func ResolveTerrain(grid [][]int, opts Options) ([]Tile, error) {
	// Step 1: Read source terrain, dropping non-tile cells
	source := make(map[Position]Terrain)
	for r, row := range grid {
		for q, v := range row {
			if t, ok := terrainFromCell(v); ok {
				source[Position{Q: q, R: r}] = t
			}
		}
	}

	// Step 2: Resolve base tiles in grid order. Votes come from the source
	// terrain only, so the result does not depend on that order.
	tiles := make([]Tile, 0, len(source))
	for r, row := range grid {
		for q := range row {
			t, ok := source[Position{Q: q, R: r}]
			if !ok {
				continue
			}
			if t == terrainBaseFiller {
				majority, found := findMajority(neighborCounts(source, q, r))
				if !found {
					if !opts.FillerFallback {
						return nil, &TerrainResolutionError{Q: q, R: r}
					}
					majority = TerrainPlains
				}
				t = majority
			}
			tiles = append(tiles, Tile{Q: q, R: r, Terrain: t})
		}
	}

	slices.SortFunc(tiles, func(a, b Tile) int {
		return cmp.Or(cmp.Compare(a.R, b.R), cmp.Compare(a.Q, b.Q))
	})
	return tiles, nil
}

// neighborCounts tallies the concrete terrain of the neighbors of (q, r).
func neighborCounts(source map[Position]Terrain, q, r int) [terrainCount]int {
	var counts [terrainCount]int
	for _, d := range hexNeighborOffsets {
		n, ok := source[Position{Q: q + d[0], R: r + d[1]}]
		if !ok || n == terrainBaseFiller {
			continue
		}
		counts[n]++
	}
	return counts
}

// findMajority returns the most common terrain in counts.
// Ties go to the lowest terrain index. Returns false if nothing was counted.
func findMajority(counts [terrainCount]int) (Terrain, bool) {
	maxCount := 0
	majority := TerrainPlains
	for t, count := range counts {
		if count > maxCount {
			maxCount = count
			majority = Terrain(t)
		}
	}
	return majority, maxCount > 0
}
