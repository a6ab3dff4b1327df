// Package document splices converted map and scenario sections into a
// destination document at marker lines.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"mapconv/pkg/maps"
)

// Default anchors. Generated blocks are inserted on the line above.
const (
	DefaultMapAnchor      = "@mapconv:maps"
	DefaultScenarioAnchor = "@mapconv:scenarios"
)

// ErrAnchorNotFound is returned when the document lacks an anchor.
var ErrAnchorNotFound = errors.New("anchor not found")

// Writer consumes a conversion and returns the updated document.
type Writer interface {
	Splice(doc []byte, out *maps.Output) ([]byte, error)
}

// Blocks are the rendered sections of one conversion.
type Blocks struct {
	Map      []byte
	Scenario []byte
}

// Render encodes both sections as indented JSON objects.
func Render(out *maps.Output) (*Blocks, error) {
	mapBlock, err := json.MarshalIndent(out.Map, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render map section: %w", err)
	}
	scenarioBlock, err := json.MarshalIndent(out.Scenario, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render scenario section: %w", err)
	}
	return &Blocks{Map: mapBlock, Scenario: scenarioBlock}, nil
}

// AnchorWriter inserts each block above the first line containing its anchor.
type AnchorWriter struct {
	MapAnchor      string
	ScenarioAnchor string
}

// NewAnchorWriter returns a writer using the default anchors.
func NewAnchorWriter() *AnchorWriter {
	return &AnchorWriter{
		MapAnchor:      DefaultMapAnchor,
		ScenarioAnchor: DefaultScenarioAnchor,
	}
}

// Splice renders the output and inserts both blocks. The document is left
// untouched if either anchor is missing.
func (w *AnchorWriter) Splice(doc []byte, out *maps.Output) ([]byte, error) {
	blocks, err := Render(out)
	if err != nil {
		return nil, err
	}

	// Locate both anchors in the original document before changing anything
	mapIdx := findAnchor(doc, w.MapAnchor)
	scenarioIdx := findAnchor(doc, w.ScenarioAnchor)
	for _, a := range []struct {
		anchor string
		idx    int
	}{{w.MapAnchor, mapIdx}, {w.ScenarioAnchor, scenarioIdx}} {
		if a.anchor == "" || a.idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrAnchorNotFound, a.anchor)
		}
	}

	// Insert at the later offset first so the earlier one stays valid
	if mapIdx > scenarioIdx {
		doc = insertBefore(doc, mapIdx, blocks.Map)
		return insertBefore(doc, scenarioIdx, blocks.Scenario), nil
	}
	doc = insertBefore(doc, scenarioIdx, blocks.Scenario)
	return insertBefore(doc, mapIdx, blocks.Map), nil
}

// findAnchor returns the offset of the first anchor occurrence outside a
// generated block, or -1. Every generated line holding text starts with a
// quoted JSON member name, so such lines are skipped.
func findAnchor(doc []byte, anchor string) int {
	if anchor == "" {
		return -1
	}
	for off := 0; off < len(doc); {
		end := bytes.IndexByte(doc[off:], '\n')
		if end < 0 {
			end = len(doc) - off
		}
		line := doc[off : off+end]
		if i := bytes.Index(line, []byte(anchor)); i >= 0 && !bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte(`"`)) {
			return off + i
		}
		off += end + 1
	}
	return -1
}

// insertBefore places block on its own lines above the line holding idx,
// using that line's indentation and a trailing comma.
func insertBefore(doc []byte, idx int, block []byte) []byte {
	lineStart := bytes.LastIndexByte(doc[:idx], '\n') + 1
	indent := leadingWhitespace(doc[lineStart:idx])

	var buf bytes.Buffer
	buf.Grow(len(doc) + len(block) + 64)
	buf.Write(doc[:lineStart])
	for _, line := range bytes.Split(block, []byte("\n")) {
		buf.Write(indent)
		buf.Write(line)
		buf.WriteByte('\n')
	}
	// Terminate the entry for the enclosing list
	out := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	out = append(out, ",\n"...)
	return append(out, doc[lineStart:]...)
}

func leadingWhitespace(line []byte) []byte {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return line[:n]
}
