package legend

// Size is a width/height pair in the engine's linear unit.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Result is the output of a layout pass. It is a fresh value on every call
// to Calculate and fully replaces any prior result; nothing is updated in
// place.
//
// LabelSizes, BreakPoints and LineSizes are populated for horizontal
// orientation only. LabelSizes and BreakPoints align 1:1 with the input
// entries; BreakPoints[i] marks an entry that starts a new visual line.
type Result struct {
	// NeededWidth and NeededHeight are the totals the legend requires,
	// including the configured offsets.
	NeededWidth  float64 `json:"neededWidth"`
	NeededHeight float64 `json:"neededHeight"`

	// MaxLabelWidth is the widest single entry: the widest label plus the
	// largest form plus the form-to-text space. MaxLabelHeight is the
	// tallest label. Both are computed regardless of orientation.
	MaxLabelWidth  float64 `json:"maxLabelWidth"`
	MaxLabelHeight float64 `json:"maxLabelHeight"`

	LabelSizes  []Size `json:"labelSizes,omitempty"`
	BreakPoints []bool `json:"breakPoints,omitempty"`
	LineSizes   []Size `json:"lineSizes,omitempty"`
}

// LineCount returns the number of produced lines (horizontal orientation).
func (r Result) LineCount() int {
	return len(r.LineSizes)
}
