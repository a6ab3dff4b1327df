package maps

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SourceLoader produces a parsed source map.
type SourceLoader interface {
	Load() (*RawMap, error)
}

// FileSource loads a source map from a JSON file on disk.
type FileSource struct {
	Path string
}

// Load reads and validates the file.
func (s FileSource) Load() (*RawMap, error) {
	return LoadFile(s.Path)
}

// rawMapJSON mirrors RawMap with pointers so missing fields can be told
// apart from zero values.
type rawMapJSON struct {
	Name            *string   `json:"name"`
	Description     string    `json:"description"`
	StartingCredits *int      `json:"starting_credits"`
	Tiles           [][]int   `json:"tiles"`
	Bases           []RawBase `json:"bases"`
	Units           []RawUnit `json:"units"`
}

// LoadFile loads a source map from disk.
func LoadFile(path string) (*RawMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	return LoadFromJSON(data)
}

// LoadFromJSON loads a source map from JSON bytes.
func LoadFromJSON(data []byte) (*RawMap, error) {
	var wire rawMapJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("failed to parse map JSON: %w", err)
	}

	// Required fields
	if wire.Name == nil {
		return nil, &ValidationError{Field: "name", Reason: "required"}
	}
	if wire.StartingCredits == nil {
		return nil, &ValidationError{Field: "starting_credits", Reason: "required"}
	}
	if wire.Tiles == nil {
		return nil, &ValidationError{Field: "tiles", Reason: "required"}
	}

	raw := &RawMap{
		Name:            *wire.Name,
		Description:     wire.Description,
		StartingCredits: *wire.StartingCredits,
		Tiles:           wire.Tiles,
		Bases:           wire.Bases,
		Units:           wire.Units,
	}

	if err := Validate(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Validate checks a raw map for errors. The first problem found is
// returned as a *ValidationError.
func Validate(raw *RawMap) error {
	if raw == nil {
		return &ValidationError{Field: "map", Reason: "missing"}
	}
	if strings.TrimSpace(raw.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be blank"}
	}
	if raw.StartingCredits < 0 {
		return &ValidationError{Field: "starting_credits", Reason: fmt.Sprintf("must not be negative, got %d", raw.StartingCredits)}
	}

	if len(raw.Tiles) == 0 {
		return &ValidationError{Field: "tiles", Reason: "grid is empty"}
	}
	for r, row := range raw.Tiles {
		if len(row) == 0 {
			return &ValidationError{Field: fmt.Sprintf("tiles[%d]", r), Reason: "row is empty"}
		}
		for q, v := range row {
			// Negative values mean "no tile" and are allowed
			if v < 0 {
				continue
			}
			if _, ok := terrainFromCell(v); !ok {
				return &ValidationError{Field: fmt.Sprintf("tiles[%d][%d]", r, q), Reason: fmt.Sprintf("unknown cell value %d", v)}
			}
		}
	}

	seenBases := make(map[Position]int)
	for i, b := range raw.Bases {
		field := fmt.Sprintf("bases[%d]", i)
		if b.Player < 0 {
			return &ValidationError{Field: field + ".player", Reason: fmt.Sprintf("must not be negative, got %d", b.Player)}
		}
		if strings.TrimSpace(b.BaseType) == "" {
			return &ValidationError{Field: field + ".base_type", Reason: "must not be blank"}
		}
		pos := Position{Q: b.X, R: b.Y}
		if prev, dup := seenBases[pos]; dup {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("shares (%d,%d) with bases[%d]", b.X, b.Y, prev)}
		}
		seenBases[pos] = i
	}

	seenUnits := make(map[Position]int)
	for i, u := range raw.Units {
		field := fmt.Sprintf("units[%d]", i)
		if u.Player < 0 {
			return &ValidationError{Field: field + ".player", Reason: fmt.Sprintf("must not be negative, got %d", u.Player)}
		}
		if strings.TrimSpace(u.UnitType) == "" {
			return &ValidationError{Field: field + ".unit_type", Reason: "must not be blank"}
		}
		pos := Position{Q: u.X, R: u.Y}
		if prev, dup := seenUnits[pos]; dup {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("shares (%d,%d) with units[%d]", u.X, u.Y, prev)}
		}
		seenUnits[pos] = i
	}

	return nil
}
