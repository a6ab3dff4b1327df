package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	"mapconv/internal/database"
	"mapconv/internal/document"
	"mapconv/internal/publish"
	"mapconv/pkg/maps"
)

// Run converts the source map and splices it into the destination.
func (a *App) Run(ctx context.Context) error {
	cfg := a.config
	a.logger.Debug("App.Run method started.", "input", cfg.InputPath, "destination", cfg.DestinationPath)

	raw, err := a.source.Load()
	if err != nil {
		return fmt.Errorf("failed to load source map: %w", err)
	}
	a.logger.Debug("Source map loaded.", "name", raw.Name, "rows", len(raw.Tiles), "bases", len(raw.Bases), "units", len(raw.Units))

	out, err := maps.Convert(raw, maps.Options{FillerFallback: cfg.FillerFallback})
	if err != nil {
		return fmt.Errorf("failed to convert %q: %w", raw.Name, err)
	}
	a.logger.Info("Map converted.",
		"map_id", out.Map.ID,
		"scenario_id", out.Scenario.ID,
		"tiles", len(out.Map.Tiles),
		"bases", len(out.Scenario.Bases),
		"factions", out.FactionCount(),
	)
	if human := out.HumanFaction(); human != nil {
		a.logger.Debug("Human faction assigned.", "color", human.Color, "bases", len(human.Bases), "units", len(human.Units))
	}

	if cfg.Preview {
		fmt.Fprint(a.outW, out.Debug())
	}

	if err := a.writeDestination(out); err != nil {
		return err
	}

	if cfg.HistoryPath != "" {
		if err := a.recordHistory(raw.Name, out); err != nil {
			return err
		}
	}

	if cfg.PublishURL != "" {
		accepted, err := publish.New(cfg.PublishURL, a.logger).Publish(ctx, out)
		if err != nil {
			return fmt.Errorf("failed to publish map: %w", err)
		}
		a.logger.Info("Map published.", "url", cfg.PublishURL, "map_id", accepted.MapID, "scenario_id", accepted.ScenarioID)
	}

	if cfg.Copy {
		if err := a.copyBlocks(out); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// writeDestination splices the output into the destination document, or
// prints the result instead on a dry run.
func (a *App) writeDestination(out *maps.Output) error {
	path := a.config.DestinationPath

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat destination: %w", err)
	}
	doc, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read destination: %w", err)
	}

	updated, err := a.writer.Splice(doc, out)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", path, err)
	}

	if a.config.DryRun {
		a.logger.Info("Dry run, destination left unchanged.", "destination", path)
		_, err := a.outW.Write(updated)
		return err
	}

	if err := os.WriteFile(path, updated, info.Mode()&fs.ModePerm); err != nil {
		return fmt.Errorf("failed to write destination: %w", err)
	}
	a.logger.Info("Destination updated.", "destination", path, "bytes", len(updated))
	return nil
}

// recordHistory stores the run and warns about map id collisions.
func (a *App) recordHistory(name string, out *maps.Output) error {
	db, err := database.New(a.config.HistoryPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer db.Close()

	collisions, err := db.FindMapIDCollisions(out.Map.ID, name)
	if err != nil {
		return fmt.Errorf("failed to check map id: %w", err)
	}
	for _, c := range collisions {
		a.logger.Warn("Map id already produced by a different map.",
			"map_id", out.Map.ID,
			"name", name,
			"other_name", c.MapName,
			"other_source", c.SourcePath,
			"converted_at", c.CreatedAt,
		)
	}

	conv := &database.Conversion{
		MapID:           out.Map.ID,
		ScenarioID:      out.Scenario.ID,
		MapName:         name,
		SourcePath:      a.config.InputPath,
		DestinationPath: a.config.DestinationPath,
		TileCount:       len(out.Map.Tiles),
		BaseCount:       len(out.Scenario.Bases),
		FactionCount:    out.FactionCount(),
		DryRun:          a.config.DryRun,
	}
	if err := db.RecordConversion(conv); err != nil {
		return fmt.Errorf("failed to record conversion: %w", err)
	}
	a.logger.Debug("Conversion recorded.", "id", conv.ID, "history", a.config.HistoryPath)

	if a.config.HistoryList > 0 {
		recent, err := db.ListConversions(out.Map.ID, a.config.HistoryList)
		if err != nil {
			return fmt.Errorf("failed to list conversions: %w", err)
		}
		a.printHistory(out.Map.ID, recent)
	}
	return nil
}

// printHistory writes the recent conversions of a map, newest first.
func (a *App) printHistory(mapID string, recent []*database.Conversion) {
	fmt.Fprintf(a.outW, "History for %s:\n", mapID)
	for _, c := range recent {
		mode := ""
		if c.DryRun {
			mode = " (dry run)"
		}
		fmt.Fprintf(a.outW, "  %s  %s  %s -> %s%s\n",
			c.CreatedAt.Format(time.RFC3339), c.MapName, c.SourcePath, c.DestinationPath, mode)
	}
}

func (a *App) copyBlocks(out *maps.Output) error {
	blocks, err := document.Render(out)
	if err != nil {
		return err
	}
	text := append(append(blocks.Map, ",\n"...), blocks.Scenario...)
	if err := a.clipboard.WriteText(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	a.logger.Info("Map and scenario copied to clipboard.")
	return nil
}
