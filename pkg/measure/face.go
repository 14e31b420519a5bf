package measure

import (
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/fogleman/gg"

	apperrors "github.com/chartkit/legend/pkg/errors"
	"github.com/chartkit/legend/pkg/legend"
)

// Face measures text against a real TrueType font. It wraps a 1x1 drawing
// context used purely for measurement; the context is not safe for
// concurrent use, so all calls serialize on an internal mutex.
type Face struct {
	mu         sync.Mutex
	dc         *gg.Context
	lineHeight float64
}

var _ legend.Measurer = (*Face)(nil)

// NewFace loads a font by file name (e.g. "DejaVuSans.ttf"), searching the
// system font directories, and returns a measurer at the given point size.
func NewFace(fontName string, points float64) (*Face, error) {
	if err := apperrors.ValidateFontName(fontName); err != nil {
		return nil, err
	}
	path, err := findfont.Find(fontName)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFontNotFound, err, "font %q not found", fontName)
	}
	return NewFaceFromFile(path, points)
}

// NewFaceFromFile loads a font from an explicit file path.
func NewFaceFromFile(path string, points float64) (*Face, error) {
	if points <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidFont, "point size must be positive, got %v", points)
	}

	dc := gg.NewContext(1, 1)
	if err := dc.LoadFontFace(path, points); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFont, err, "load font face %s", path)
	}

	return &Face{dc: dc, lineHeight: dc.FontHeight()}, nil
}

// TextWidth returns the rendered width of text.
func (f *Face) TextWidth(text string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, _ := f.dc.MeasureString(text)
	return w
}

// TextHeight returns the rendered height of text.
func (f *Face) TextHeight(text string) float64 {
	if text == "" {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	_, h := f.dc.MeasureString(text)
	return h
}

// LineHeight returns the font's line height.
func (f *Face) LineHeight() float64 {
	return f.lineHeight
}

// LineSpacing returns the leading between lines, a quarter of the line
// height, which approximates the default leading of common chart fonts.
func (f *Face) LineSpacing() float64 {
	return f.lineHeight * 0.25
}
