package maps

import "fmt"

// Convert validates a raw map and computes its map and scenario sections.
func Convert(raw *RawMap, opts Options) (*Output, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	ids := DeriveIdentifiers(raw.Name)

	// Step 1: Terrain
	tiles, err := ResolveTerrain(raw.Tiles, opts)
	if err != nil {
		return nil, fmt.Errorf("resolving terrain: %w", err)
	}

	// Step 2: Global base placements
	bases := ExtractBases(raw.Bases)

	// Step 3: Factions
	partition, err := PartitionFactions(raw.Bases, raw.Units)
	if err != nil {
		return nil, fmt.Errorf("partitioning factions: %w", err)
	}
	factions := AssembleFactions(partition, raw.StartingCredits)

	return &Output{
		Map: MapSection{
			ID:          ids.MapID,
			Description: ids.MapDescription,
			Tiles:       tiles,
		},
		Scenario: ScenarioSection{
			ID:          ids.ScenarioID,
			MapID:       ids.MapID,
			Description: ids.ScenarioDescription,
			Bases:       bases,
			Factions:    factions,
		},
	}, nil
}
