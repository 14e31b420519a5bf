package legend

import (
	"math"

	apperrors "github.com/chartkit/legend/pkg/errors"
)

// Measurer is the text-measurement capability the engine consumes. All
// values are in one linear unit; implementations live outside this package
// (see pkg/measure).
type Measurer interface {
	// TextWidth returns the rendered width of text in the current font.
	TextWidth(text string) float64

	// TextHeight returns the rendered height of text in the current font.
	TextHeight(text string) float64

	// LineHeight returns the height of one text line.
	LineHeight() float64

	// LineSpacing returns the extra gap between consecutive text lines.
	LineSpacing() float64
}

// Calculate computes the legend layout for the given entries. It is a pure
// function of (entries, cfg, m, availableWidth): identical inputs produce an
// identical Result, and no caller-owned data is mutated. Entries must not be
// mutated concurrently while the pass runs.
//
// A nil entries slice, a nil measurer, or an invalid config fails fast; an
// empty (non-nil) slice is valid and yields a zero-sized layout plus the
// configured offsets.
func Calculate(entries []Entry, cfg Config, m Measurer, availableWidth float64) (Result, error) {
	if entries == nil {
		return Result{}, apperrors.New(apperrors.ErrCodeInvalidEntries, "entries must not be nil")
	}
	if m == nil {
		return Result{}, apperrors.New(apperrors.ErrCodeInvalidInput, "measurer must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{
		MaxLabelWidth:  MaxEntryWidth(entries, cfg, m),
		MaxLabelHeight: MaxEntryHeight(entries, m),
	}

	switch cfg.Orientation {
	case Vertical:
		calculateVertical(&res, entries, cfg, m)
	default:
		calculateHorizontal(&res, entries, cfg, m, availableWidth)
	}

	res.NeededWidth += cfg.XOffset
	res.NeededHeight += cfg.YOffset
	return res, nil
}

// =============================================================================
// Entry Metrics
// =============================================================================

// resolveFormSize returns the entry's override when present, else the
// configured default. NaN overrides contribute zero rather than poisoning
// the accumulated widths.
func resolveFormSize(e Entry, defaultSize float64) float64 {
	size := defaultSize
	if e.FormSize != nil {
		size = *e.FormSize
	}
	if math.IsNaN(size) {
		return 0
	}
	return size
}

// MaxEntryWidth returns the width of the widest possible entry: the widest
// label across labeled entries, plus the largest resolved form size across
// all entries, plus the form-to-text space. Stacked entries contribute only
// their form size.
func MaxEntryWidth(entries []Entry, cfg Config, m Measurer) float64 {
	var maxLabel, maxForm float64

	for _, e := range entries {
		if size := resolveFormSize(e, cfg.FormSize); size > maxForm {
			maxForm = size
		}

		text, ok := e.Label.Get()
		if !ok {
			continue
		}
		if w := m.TextWidth(text); w > maxLabel {
			maxLabel = w
		}
	}

	return maxLabel + maxForm + cfg.FormToTextSpace
}

// MaxEntryHeight returns the height of the tallest label across labeled
// entries, or 0 when none are labeled.
func MaxEntryHeight(entries []Entry, m Measurer) float64 {
	var max float64
	for _, e := range entries {
		text, ok := e.Label.Get()
		if !ok {
			continue
		}
		if h := m.TextHeight(text); h > max {
			max = h
		}
	}
	return max
}

// =============================================================================
// Vertical Stacking Calculator
// =============================================================================

// calculateVertical walks entries top-to-bottom, accumulating stacked forms
// into a running row width and charging one line of height per labeled row.
// An all-stacked entry list never closes a row, so its height stays zero.
func calculateVertical(res *Result, entries []Entry, cfg Config, m Measurer) {
	lineHeight := m.LineHeight()

	var maxWidth, totalHeight, lineWidth float64
	wasStacked := false

	for i, e := range entries {
		formSize := resolveFormSize(e, cfg.FormSize)

		if !wasStacked {
			lineWidth = 0
		}

		if e.HasForm() {
			if wasStacked {
				lineWidth += cfg.StackSpace
			}
			lineWidth += formSize
		}

		if text, ok := e.Label.Get(); ok {
			if e.HasForm() && !wasStacked {
				lineWidth += cfg.FormToTextSpace
			} else if wasStacked {
				// A label closes the open stack: commit the stacked row
				// before the label starts its own.
				maxWidth = math.Max(maxWidth, lineWidth)
				totalHeight += lineHeight + cfg.YEntrySpace
				lineWidth = 0
				wasStacked = false
			}
			lineWidth += m.TextWidth(text)
			if i != len(entries)-1 {
				totalHeight += lineHeight + cfg.YEntrySpace
			}
		} else {
			wasStacked = true
			// Reserve the gap for the next stacked form up front.
			lineWidth += formSize + cfg.StackSpace
		}

		maxWidth = math.Max(maxWidth, lineWidth)
	}

	res.NeededWidth = maxWidth
	res.NeededHeight = totalHeight
}

// =============================================================================
// Horizontal Flow Calculator
// =============================================================================

// calculateHorizontal walks entries left-to-right and breaks lines against
// availableWidth * MaxSizePercent when word-wrap is enabled. The atomic unit
// for breaking is a group: a run of stacked entries plus its terminating
// labeled entry, or a single labeled entry. A group that does not fit moves
// to a new line whole, with the break point at the run's first entry, so a
// form is never separated from the label that follows it.
func calculateHorizontal(res *Result, entries []Entry, cfg Config, m Measurer, availableWidth float64) {
	lineHeight := m.LineHeight()
	lineSpacing := m.LineSpacing() + cfg.YEntrySpace
	contentWidth := availableWidth * cfg.MaxSizePercent

	res.LabelSizes = make([]Size, len(entries))
	res.BreakPoints = make([]bool, len(entries))
	res.LineSizes = make([]Size, 0, 1)

	var maxLineWidth, currentLineWidth, groupWidth float64
	runStart := -1 // first index of the open stacked run, or -1

	// closeGroup runs the line-break decision for the group ending at entry
	// i. An oversized group on an empty line is always placed, never
	// dropped.
	closeGroup := func(i int) {
		requiredSpacing := cfg.XEntrySpace
		if currentLineWidth == 0 {
			requiredSpacing = 0
		}

		if !cfg.WordWrap || currentLineWidth == 0 ||
			contentWidth-currentLineWidth >= requiredSpacing+groupWidth {
			currentLineWidth += requiredSpacing + groupWidth
			return
		}

		// Wrap: commit the current line and start a new one with this
		// group as its first content.
		res.LineSizes = append(res.LineSizes, Size{Width: currentLineWidth, Height: lineHeight})
		maxLineWidth = math.Max(maxLineWidth, currentLineWidth)

		breakAt := i
		if runStart >= 0 {
			breakAt = runStart
		}
		res.BreakPoints[breakAt] = true
		currentLineWidth = groupWidth
	}

	for i, e := range entries {
		formSize := resolveFormSize(e, cfg.FormSize)

		if runStart == -1 {
			groupWidth = 0
		} else {
			groupWidth += cfg.StackSpace
		}

		if text, ok := e.Label.Get(); ok {
			res.LabelSizes[i] = Size{Width: m.TextWidth(text), Height: m.TextHeight(text)}
			if e.HasForm() {
				groupWidth += cfg.FormToTextSpace + formSize
			}
			groupWidth += res.LabelSizes[i].Width

			closeGroup(i)
			runStart = -1
			continue
		}

		if e.HasForm() {
			groupWidth += formSize
		}
		if runStart == -1 {
			runStart = i
		}
		// A trailing stacked run has no label to close it; force closure
		// at the end of the sequence so no entry is left unlaid-out.
		if i == len(entries)-1 {
			closeGroup(i)
		}
	}

	// Final flush: the in-progress line always becomes the last line.
	if len(entries) > 0 {
		res.LineSizes = append(res.LineSizes, Size{Width: currentLineWidth, Height: lineHeight})
		maxLineWidth = math.Max(maxLineWidth, currentLineWidth)
	}

	res.NeededWidth = maxLineWidth
	if n := len(res.LineSizes); n > 0 {
		res.NeededHeight = lineHeight*float64(n) + lineSpacing*float64(n-1)
	}
}
