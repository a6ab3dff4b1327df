package database

type migration struct {
	id   int
	name string
	sql  string
}

var migrations = []migration{
	{
		id:   1,
		name: "initial_schema",
		sql: `
			-- One row per successful conversion
			CREATE TABLE conversions (
				id TEXT PRIMARY KEY,
				map_id TEXT NOT NULL,
				scenario_id TEXT NOT NULL,
				map_name TEXT NOT NULL,
				source_path TEXT NOT NULL,
				destination_path TEXT NOT NULL,
				tile_count INTEGER NOT NULL,
				base_count INTEGER NOT NULL,
				faction_count INTEGER NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_conversions_map_id ON conversions(map_id);
		`,
	},
	{
		id:   2,
		name: "add_dry_run_column",
		sql: `
			-- Dry runs are recorded but never touched the destination
			ALTER TABLE conversions ADD COLUMN dry_run BOOLEAN DEFAULT FALSE;
		`,
	},
}
