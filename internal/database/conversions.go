package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Conversion is one recorded conversion run.
type Conversion struct {
	ID              string
	MapID           string
	ScenarioID      string
	MapName         string
	SourcePath      string
	DestinationPath string
	TileCount       int
	BaseCount       int
	FactionCount    int
	DryRun          bool
	CreatedAt       time.Time
}

// ErrConversionNotFound is returned when a conversion is not found.
var ErrConversionNotFound = errors.New("conversion not found")

const conversionColumns = `id, map_id, scenario_id, map_name, source_path, destination_path,
	tile_count, base_count, faction_count, dry_run, created_at`

// RecordConversion stores a conversion, assigning its ID and timestamp.
func (db *DB) RecordConversion(c *Conversion) error {
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now()

	_, err := db.conn.Exec(`
		INSERT INTO conversions (`+conversionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.MapID, c.ScenarioID, c.MapName, c.SourcePath, c.DestinationPath,
		c.TileCount, c.BaseCount, c.FactionCount, c.DryRun, c.CreatedAt)
	return err
}

// GetConversion retrieves a conversion by ID.
func (db *DB) GetConversion(id string) (*Conversion, error) {
	row := db.conn.QueryRow(`SELECT `+conversionColumns+` FROM conversions WHERE id = ?`, id)
	c, err := scanConversion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversionNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListConversions returns the most recent conversions of a map, newest first.
// An empty mapID lists every map.
func (db *DB) ListConversions(mapID string, limit int) ([]*Conversion, error) {
	rows, err := db.conn.Query(`
		SELECT `+conversionColumns+`
		FROM conversions
		WHERE ? = '' OR map_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, mapID, mapID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanConversions(rows)
}

// FindMapIDCollisions returns earlier conversions that produced mapID from
// a different map name. Such maps would overwrite each other downstream.
func (db *DB) FindMapIDCollisions(mapID, mapName string) ([]*Conversion, error) {
	rows, err := db.conn.Query(`
		SELECT `+conversionColumns+`
		FROM conversions
		WHERE map_id = ? AND map_name != ?
		ORDER BY created_at ASC, rowid ASC
	`, mapID, mapName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanConversions(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConversion(row rowScanner) (*Conversion, error) {
	c := &Conversion{}
	err := row.Scan(&c.ID, &c.MapID, &c.ScenarioID, &c.MapName, &c.SourcePath, &c.DestinationPath,
		&c.TileCount, &c.BaseCount, &c.FactionCount, &c.DryRun, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func scanConversions(rows *sql.Rows) ([]*Conversion, error) {
	var conversions []*Conversion
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		conversions = append(conversions, c)
	}
	return conversions, rows.Err()
}
