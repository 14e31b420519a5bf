// Package pkg provides the core libraries for legend layout computation.
//
// # Overview
//
// The legend toolkit computes the geometry of chart legends: how labeled,
// colored entries flow into lines or stack vertically, and how much space
// the legend needs inside a viewport. The pkg directory is organized into
// five areas:
//
//  1. [legend] - The layout engine (entries, config, line breaking)
//  2. [measure] - Text measurement (fixed metrics, TrueType faces)
//  3. [io] - Serialization (entries JSON, result JSON, TOML config)
//  4. [cache] - Result caching for repeated layout runs
//  5. [errors], [observability], [buildinfo] - Cross-cutting support
//
// # Architecture
//
// The typical data flow:
//
//	entries.json + config.toml
//	         ↓
//	    [io] package (decode entries, overlay config)
//	         ↓
//	    [measure] package (text metrics)
//	         ↓
//	    [legend] package (layout pass)
//	         ↓
//	    layout.json output
//
// # Quick Start
//
// Compute a horizontal wrapped layout:
//
//	import (
//	    "github.com/chartkit/legend/pkg/legend"
//	    "github.com/chartkit/legend/pkg/measure"
//	)
//
//	entries := []legend.Entry{
//	    {Label: legend.Text("Revenue"), Form: legend.FormSquare},
//	    {Label: legend.Text("Costs"), Form: legend.FormSquare},
//	}
//
//	cfg := legend.DefaultConfig()
//	cfg.WordWrap = true
//
//	res, err := legend.Calculate(entries, cfg, measure.DefaultFixed(), 800)
//
// # Main Packages
//
// [legend] - The layout engine. Pure computation: entries in, a fresh
// result out. Horizontal legends flow entries into lines with optional
// word wrap; vertical legends stack one entry per row. Unlabeled entries
// group with the next labeled entry into stacked runs that never split
// across lines.
//
// [measure] - Text measurement backends implementing legend.Measurer.
// Fixed per-character metrics for deterministic output, or a TrueType
// face resolved from the system font directories for real glyph widths.
//
// [io] - Wire formats. Entries documents and layout results as JSON,
// partial config overlays as TOML (CLI) or JSON (HTTP API).
//
// [cache] - File-based caching of layout results keyed by input hashes,
// with a null implementation for disabling caching.
//
// [errors] - Structured errors with machine-readable codes shared by the
// CLI and the HTTP API.
//
// [observability] - Hook registration for instrumenting layout passes and
// API requests without coupling the engine to a logging backend.
//
// [buildinfo] - Version metadata injected at build time.
//
// [legend]: https://pkg.go.dev/github.com/chartkit/legend/pkg/legend
// [measure]: https://pkg.go.dev/github.com/chartkit/legend/pkg/measure
// [io]: https://pkg.go.dev/github.com/chartkit/legend/pkg/io
// [cache]: https://pkg.go.dev/github.com/chartkit/legend/pkg/cache
// [errors]: https://pkg.go.dev/github.com/chartkit/legend/pkg/errors
// [observability]: https://pkg.go.dev/github.com/chartkit/legend/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/chartkit/legend/pkg/buildinfo
package pkg
