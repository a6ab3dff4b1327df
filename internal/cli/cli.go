// Package cli parses command-line arguments into an app.Config.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"mapconv/internal/app"
)

// Environment overrides for deployments that cannot pass flags.
const (
	EnvHistoryDB  = "MAPCONV_HISTORY_DB"
	EnvPublishURL = "MAPCONV_PUBLISH_URL"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usage = `Usage: mapconv [options] <source.json> <destination>
Converts a source map and adds its map and scenario entries to the destination document.
`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("mapconv", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		fmt.Fprintln(output, "\nOptions:")
		flagSet.PrintDefaults()
	}

	historyFlag := flagSet.String("history", "", "Path to the SQLite conversion history. Empty disables history. Env: "+EnvHistoryDB)
	historyListFlag := flagSet.Int("history-list", 0, "After recording, print this many recent conversions of the map. Requires -history.")
	publishFlag := flagSet.String("publish", "", "WebSocket URL of a map server to publish to. Env: "+EnvPublishURL)
	fallbackFlag := flagSet.Bool("filler-fallback", false, "Resolve base tiles with no known neighbors to plains instead of failing.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print the updated destination instead of writing it.")
	previewFlag := flagSet.Bool("preview", false, "Print a text preview of the converted map.")
	copyFlag := flagSet.Bool("copy", false, "Copy the generated entries to the clipboard.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "positional", flagSet.NArg())

	if flagSet.NArg() != 2 {
		fmt.Fprint(output, usage)
		return nil, false, &ExitError{Code: 2}
	}

	historyPath := *historyFlag
	if historyPath == "" {
		historyPath = os.Getenv(EnvHistoryDB)
	}
	publishURL := *publishFlag
	if publishURL == "" {
		publishURL = os.Getenv(EnvPublishURL)
	}

	config, err := app.NewConfig(app.Config{
		InputPath:       flagSet.Arg(0),
		DestinationPath: flagSet.Arg(1),
		HistoryPath:     historyPath,
		HistoryList:     *historyListFlag,
		PublishURL:      publishURL,
		FillerFallback:  *fallbackFlag,
		DryRun:          *dryRunFlag,
		Preview:         *previewFlag,
		Copy:            *copyFlag,
		LogFormat:       strings.ToLower(*logFormatFlag),
		LogLevel:        strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
