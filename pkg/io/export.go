package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/chartkit/legend/pkg/legend"
)

// WriteResult encodes a layout result as indented JSON and writes it to w.
// The output carries everything a renderer needs: total dimensions, per-line
// sizes, per-entry label sizes and break points.
func WriteResult(res legend.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportResult writes a layout result to a JSON file at path.
// This is a convenience wrapper around [WriteResult] for file-based output.
func ExportResult(res legend.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteResult(res, f)
}

// WriteEntries encodes an entries document as indented JSON and writes it
// to w. The output round-trips through [ReadEntries].
func WriteEntries(entries []legend.Entry, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entriesDocument{Entries: entries}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
