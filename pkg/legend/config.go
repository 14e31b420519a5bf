package legend

import (
	apperrors "github.com/chartkit/legend/pkg/errors"
)

// =============================================================================
// Orientation & Pass-Through Enums
// =============================================================================

// Orientation selects the layout algorithm.
type Orientation int

const (
	// Horizontal lays entries out left-to-right with optional word-wrap.
	Horizontal Orientation = iota

	// Vertical stacks entries top-to-bottom.
	Vertical
)

// String returns the lowercase name of the orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Direction is the text direction of the legend. The layout pass never reads
// it; it is carried through for the renderer.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// HorizontalAlignment positions the legend block horizontally. Renderer
// pass-through; not consumed by layout.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignHCenter
	AlignRight
)

// VerticalAlignment positions the legend block vertically. Renderer
// pass-through; not consumed by layout.
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignVCenter
	AlignBottom
)

// =============================================================================
// Config
// =============================================================================

// Config holds the externally configured inputs of a layout pass. All
// lengths are in the same linear unit the Measurer reports (typically
// pixels).
type Config struct {
	Orientation Orientation
	WordWrap    bool

	// MaxSizePercent is the fraction of the available width the legend may
	// use before word-wrap triggers. Must be in (0, 1].
	MaxSizePercent float64

	// FormSize is the default form edge length, used when an entry carries
	// no override.
	FormSize float64

	// FormLineWidth is the default stroke width for line forms. Renderer
	// pass-through.
	FormLineWidth float64

	// FormToTextSpace separates a form from the label that follows it.
	FormToTextSpace float64

	// XEntrySpace separates entries on a horizontal axis, YEntrySpace on a
	// vertical axis.
	XEntrySpace float64
	YEntrySpace float64

	// StackSpace is the gap between consecutive stacked forms.
	StackSpace float64

	// XOffset and YOffset are added to the final needed width and height.
	XOffset float64
	YOffset float64

	// Renderer pass-through placement fields.
	Direction           Direction
	HorizontalAlignment HorizontalAlignment
	VerticalAlignment   VerticalAlignment
}

// DefaultConfig returns a Config with the stock chart defaults: an 8-unit
// square form, 6 units between horizontal entries, 5 units between form and
// text, 3 units between stacked forms, and a 95% wrap boundary.
func DefaultConfig() Config {
	return Config{
		Orientation:     Horizontal,
		MaxSizePercent:  0.95,
		FormSize:        8,
		FormLineWidth:   3,
		FormToTextSpace: 5,
		XEntrySpace:     6,
		YEntrySpace:     0,
		StackSpace:      3,
		XOffset:         5,
		YOffset:         3,
	}
}

// Validate rejects configurations that would corrupt a layout pass.
// Validation happens at configuration time, not inside Calculate's per-entry
// arithmetic.
func (c Config) Validate() error {
	if c.MaxSizePercent <= 0 || c.MaxSizePercent > 1 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig,
			"maxSizePercent must be in (0, 1], got %v", c.MaxSizePercent)
	}

	spacings := []struct {
		name  string
		value float64
	}{
		{"formSize", c.FormSize},
		{"formToTextSpace", c.FormToTextSpace},
		{"xEntrySpace", c.XEntrySpace},
		{"yEntrySpace", c.YEntrySpace},
		{"stackSpace", c.StackSpace},
	}
	for _, s := range spacings {
		if s.value < 0 {
			return apperrors.New(apperrors.ErrCodeInvalidConfig,
				"%s must not be negative, got %v", s.name, s.value)
		}
	}
	return nil
}
