// Package legend computes the geometric layout of a chart legend.
//
// # Overview
//
// Given a sequence of entries (colored forms with optional text labels), a
// [Config], and the available width, [Calculate] determines how entries are
// arranged (flowed left-to-right with word-wrap, or stacked vertically)
// and returns a [Result] with the total width and height the legend needs
// plus per-line and per-label metadata for the renderer. The renderer
// positions glyphs and forms from that metadata; it never recomputes layout.
//
// The package does no drawing, assigns no colors, and measures no text
// itself: text metrics come in through the [Measurer] interface (see
// pkg/measure for implementations), and the viewport is a single available
// width the caller supplies.
//
// # Stacking
//
// An entry whose label is [Stacked] draws a form with no text and groups
// with the next labeled entry. In horizontal orientation such a run plus
// its terminating label forms one indivisible group: line breaks land on
// group boundaries, never inside a run, so forms stay attached to the label
// that follows them.
//
// # Computing a Layout
//
// Build the entries and config, then run a pass:
//
//	entries := []legend.Entry{
//	    {Label: legend.Text("Revenue"), Form: legend.FormSquare},
//	    {Label: legend.Stacked(), Form: legend.FormSquare},
//	    {Label: legend.Text("Costs"), Form: legend.FormSquare},
//	}
//	res, err := legend.Calculate(entries, legend.DefaultConfig(), measurer, 400)
//
// A pass is synchronous, O(n), and allocates a fresh [Result] every call;
// there is no state shared across calls. Re-run it whenever entries, config,
// the font, or the available width change; scheduling is the caller's
// concern.
//
// # Edge Behavior
//
//   - An empty entry slice is valid: the result is zero-sized plus offsets.
//   - A single group wider than the wrap boundary still gets its own line;
//     entries are never dropped or truncated.
//   - With word-wrap disabled, horizontal layout always produces one line.
//   - A vertical list with only stacked entries never closes a row and
//     reports zero height (plus offset).
package legend
