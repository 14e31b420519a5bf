// Package io provides serialization for legend entries, configuration, and
// layout results.
//
// # Overview
//
// This package is the file and wire boundary of the toolkit. The layout
// engine itself has no persistence or network surface; the CLI and the HTTP
// API use this package to:
//
//   - Import entry lists from JSON files or request bodies
//   - Overlay TOML or JSON configuration onto the engine defaults
//   - Export layout results as JSON for a renderer to consume
//
// # Entries Format
//
// An entries document is a JSON object with one required array. A null
// label marks a stacked entry that groups with the next labeled one:
//
//	{
//	  "entries": [
//	    {"label": "Revenue", "form": "square", "formColor": "#4e79a7"},
//	    {"label": null, "form": "square"},
//	    {"label": "Costs", "form": "circle", "formSize": 12}
//	  ]
//	}
//
// Forms are the string names "none", "empty", "default", "square",
// "circle", and "line"; an omitted form means "default".
//
// # Configuration Format
//
// [Config] is a partial overlay: only the fields present in the document
// override the base configuration. The same struct decodes from TOML files
// (CLI defaults) and JSON bodies (HTTP API):
//
//	orientation = "horizontal"
//	word-wrap = true
//	max-size-percent = 0.9
//	form-size = 8.0
package io
