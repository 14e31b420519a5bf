// Package measure provides text-measurement backends for the layout engine.
//
// The engine in pkg/legend consumes the legend.Measurer interface; this
// package ships the two implementations the toolkit uses:
//
//   - [Fixed]: deterministic per-rune metrics. Used by tests, the terminal
//     preview, and the HTTP API, where no real font is available.
//   - [Face]: TrueType-backed metrics measured through a font rasterizer,
//     with fonts discovered in the system font directories by name.
package measure

import (
	"github.com/chartkit/legend/pkg/legend"
)

// Fixed reports constant per-rune metrics. Every rune is CharWidth wide and
// every non-empty label is CharHeight tall; an empty label measures to zero,
// which the engine treats as a zero contribution.
type Fixed struct {
	CharWidth  float64
	CharHeight float64
	Line       float64
	Spacing    float64
}

var _ legend.Measurer = Fixed{}

// DefaultFixed returns metrics resembling a 10pt monospace font.
func DefaultFixed() Fixed {
	return Fixed{CharWidth: 6, CharHeight: 10, Line: 12, Spacing: 3}
}

// TextWidth returns CharWidth per rune of text.
func (f Fixed) TextWidth(text string) float64 {
	return f.CharWidth * float64(len([]rune(text)))
}

// TextHeight returns CharHeight for non-empty text and 0 otherwise.
func (f Fixed) TextHeight(text string) float64 {
	if text == "" {
		return 0
	}
	return f.CharHeight
}

// LineHeight returns the height of one text line.
func (f Fixed) LineHeight() float64 { return f.Line }

// LineSpacing returns the gap between consecutive text lines.
func (f Fixed) LineSpacing() float64 { return f.Spacing }
