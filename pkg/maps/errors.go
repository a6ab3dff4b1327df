package maps

import (
	"errors"
	"fmt"
)

// Conversion errors
var (
	ErrInvalidMap          = errors.New("invalid map")
	ErrUnresolvableTerrain = errors.New("terrain cannot be inferred")
	ErrUnknownSlot         = errors.New("player slot has no color")
)

// ValidationError reports a malformed field in the source map.
type ValidationError struct {
	Field  string // e.g. "tiles[3][7]" or "bases[2].base_type"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid map: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidMap
}

// TerrainResolutionError reports a base tile with no concrete neighbors.
type TerrainResolutionError struct {
	Q, R int
}

func (e *TerrainResolutionError) Error() string {
	return fmt.Sprintf("base tile at (%d,%d): no neighbor with known terrain", e.Q, e.R)
}

func (e *TerrainResolutionError) Unwrap() error {
	return ErrUnresolvableTerrain
}

// PartitionError reports an owned base or unit whose slot is outside 1..6.
type PartitionError struct {
	Kind  string // "base" or "unit"
	Index int
	Slot  int
}

func (e *PartitionError) Error() string {
	return fmt.Sprintf("%ss[%d]: player slot %d has no color", e.Kind, e.Index, e.Slot)
}

func (e *PartitionError) Unwrap() error {
	return ErrUnknownSlot
}
