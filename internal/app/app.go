// Package app wires source loading, conversion, document splicing and the
// optional history, publish and clipboard steps into one run.
package app

import (
	"io"
	"log/slog"

	"mapconv/internal/document"
	"mapconv/pkg/maps"
)

// App encapsulates one conversion run's dependencies.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	source    maps.SourceLoader
	writer    document.Writer
	clipboard Clipboard
}

// Option customizes an App.
type Option func(*App)

// WithSource replaces the file source built from the config.
func WithSource(source maps.SourceLoader) Option {
	return func(a *App) { a.source = source }
}

// WithWriter replaces the default anchor writer.
func WithWriter(w document.Writer) Option {
	return func(a *App) { a.writer = w }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(a *App) { a.clipboard = c }
}

// NewApp builds an App writing results to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		source:    maps.FileSource{Path: cfg.InputPath},
		writer:    document.NewAnchorWriter(),
		clipboard: systemClipboard{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
