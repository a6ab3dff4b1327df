package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"mapconv/internal/cli"

	"github.com/stretchr/testify/require"
)

func TestRun_Converts(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	input := filepath.Join(dir, "map.json")
	dest := filepath.Join(dir, "maps.ts")
	require.NoError(t, os.WriteFile(input, []byte(`{
		"name": "Fire + Ice",
		"starting_credits": 100,
		"tiles": [[0, 1], [10, 0]],
		"bases": [{"player": 1, "x": 0, "y": 1, "base_type": "HQ"}]
	}`), 0644))
	require.NoError(t, os.WriteFile(dest, []byte("// @mapconv:maps\n// @mapconv:scenarios\n"), 0644))

	var out, logs bytes.Buffer

	// --- Act ---
	err := run(context.Background(), &out, &logs, []string{"-log-level", "warn", input, dest})

	// --- Assert ---
	require.NoError(t, err)
	doc, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Contains(t, string(doc), `"id": "fire-ice-multiplayer",`)
	require.Empty(t, logs.String(), "info logs are filtered at warn level")
}

func TestRun_ShouldExit(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), &out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_UsageError(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), &out, &bytes.Buffer{}, []string{"only-one.json"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, out.String(), "Usage: mapconv")
}

func TestRun_ConversionError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "map.json")
	dest := filepath.Join(dir, "maps.ts")
	require.NoError(t, os.WriteFile(input, []byte(`{"name": "Bad", "starting_credits": 1, "tiles": [[9]]}`), 0644))
	require.NoError(t, os.WriteFile(dest, []byte("// @mapconv:maps\n// @mapconv:scenarios\n"), 0644))

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{input, dest})

	require.Error(t, err)
	require.Contains(t, err.Error(), "tiles[0][0]")
}
