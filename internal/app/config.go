package app

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Config holds everything a conversion run needs.
type Config struct {
	InputPath       string // source map JSON
	DestinationPath string // document receiving the generated entries

	HistoryPath    string // SQLite history file; empty disables history
	HistoryList    int    // recent conversions of the map to print after recording
	PublishURL     string // ws:// or wss:// map server; empty disables publishing
	FillerFallback bool
	DryRun         bool
	Preview        bool
	Copy           bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("input path is required")
	}
	if cfg.DestinationPath == "" {
		return nil, errors.New("destination path is required")
	}
	if filepath.Clean(cfg.InputPath) == filepath.Clean(cfg.DestinationPath) {
		return nil, fmt.Errorf("input and destination are the same file: %s", cfg.InputPath)
	}

	if cfg.HistoryList < 0 {
		return nil, fmt.Errorf("invalid history list size %d: must not be negative", cfg.HistoryList)
	}
	if cfg.HistoryList > 0 && cfg.HistoryPath == "" {
		return nil, errors.New("history list requires a history path")
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
