package legend

import (
	"math"
	"reflect"
	"testing"
)

// runeMetrics is a deterministic test measurer: every rune is charWidth
// wide, every label is charHeight tall.
type runeMetrics struct {
	charWidth   float64
	charHeight  float64
	lineHeight  float64
	lineSpacing float64
}

func (m runeMetrics) TextWidth(text string) float64 {
	return m.charWidth * float64(len([]rune(text)))
}

func (m runeMetrics) TextHeight(text string) float64 {
	if text == "" {
		return 0
	}
	return m.charHeight
}

func (m runeMetrics) LineHeight() float64  { return m.lineHeight }
func (m runeMetrics) LineSpacing() float64 { return m.lineSpacing }

// testMetrics is 10 units per rune, 12-unit lines with a 3-unit gap.
var testMetrics = runeMetrics{charWidth: 10, charHeight: 10, lineHeight: 12, lineSpacing: 3}

// testConfig strips the offsets so expected values stay readable; tests that
// exercise offsets set them explicitly.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.XOffset = 0
	cfg.YOffset = 0
	return cfg
}

func labeled(s string) Entry { return Entry{Label: Text(s), Form: FormSquare} }
func stacked() Entry         { return Entry{Label: Stacked(), Form: FormSquare} }

// groupWidth is the required width of a single labeled square entry under
// testConfig: formToTextSpace + formSize + label width.
func groupWidth(label string) float64 {
	return 5 + 8 + testMetrics.TextWidth(label)
}

// =============================================================================
// Horizontal Flow
// =============================================================================

func TestHorizontalSingleLine(t *testing.T) {
	entries := []Entry{labeled("A"), labeled("B")}

	res, err := Calculate(entries, testConfig(), testMetrics, 1000)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	if len(res.LineSizes) != 1 {
		t.Fatalf("LineSizes count = %d, want 1", len(res.LineSizes))
	}
	// Two groups plus one inter-entry space.
	want := groupWidth("A") + 6 + groupWidth("B")
	if res.LineSizes[0].Width != want {
		t.Errorf("line width = %v, want %v", res.LineSizes[0].Width, want)
	}
	if res.NeededWidth != want {
		t.Errorf("NeededWidth = %v, want %v", res.NeededWidth, want)
	}
}

func TestHorizontalStackedGroup(t *testing.T) {
	entries := []Entry{stacked(), {Label: Text("Group"), Form: FormSquare}}

	res, err := Calculate(entries, testConfig(), testMetrics, 1000)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	// formSize + stackSpace + formToTextSpace + formSize + textWidth("Group")
	want := 8.0 + 3 + 5 + 8 + 50
	if res.NeededWidth != want {
		t.Errorf("NeededWidth = %v, want %v", res.NeededWidth, want)
	}
	if len(res.LineSizes) != 1 {
		t.Errorf("LineSizes count = %d, want 1", len(res.LineSizes))
	}
	if res.LabelSizes[0] != (Size{}) {
		t.Errorf("stacked LabelSizes[0] = %v, want zero", res.LabelSizes[0])
	}
}

func TestHorizontalWrapThreeLines(t *testing.T) {
	// Each group is 73 units wide, more than half of the 100-unit content
	// width, so every entry lands on its own line.
	cfg := testConfig()
	cfg.WordWrap = true
	cfg.MaxSizePercent = 1.0
	entries := []Entry{labeled("aaaaaa"), labeled("bbbbbb"), labeled("cccccc")}

	res, err := Calculate(entries, cfg, testMetrics, 100)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	if len(res.LineSizes) != 3 {
		t.Fatalf("LineSizes count = %d, want 3", len(res.LineSizes))
	}
	wantBreaks := []bool{false, true, true}
	if !reflect.DeepEqual(res.BreakPoints, wantBreaks) {
		t.Errorf("BreakPoints = %v, want %v", res.BreakPoints, wantBreaks)
	}
	// Three lines with two inter-line gaps.
	wantHeight := 12.0*3 + 3*2
	if res.NeededHeight != wantHeight {
		t.Errorf("NeededHeight = %v, want %v", res.NeededHeight, wantHeight)
	}
}

func TestHorizontalStackCohesion(t *testing.T) {
	// The stacked run plus its label does not fit behind the first entry;
	// the whole group must move, with the break at the run's first index.
	cfg := testConfig()
	cfg.WordWrap = true
	cfg.MaxSizePercent = 1.0
	entries := []Entry{labeled("aaaaa"), stacked(), stacked(), labeled("bb")}

	res, err := Calculate(entries, cfg, testMetrics, 100)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	if len(res.LineSizes) != 2 {
		t.Fatalf("LineSizes count = %d, want 2", len(res.LineSizes))
	}
	wantBreaks := []bool{false, true, false, false}
	if !reflect.DeepEqual(res.BreakPoints, wantBreaks) {
		t.Errorf("BreakPoints = %v, want %v", res.BreakPoints, wantBreaks)
	}
}

func TestHorizontalWrapBound(t *testing.T) {
	cfg := testConfig()
	cfg.WordWrap = true
	cfg.MaxSizePercent = 0.5
	entries := []Entry{
		labeled("ab"), labeled("cd"), labeled("ef"),
		stacked(), labeled("gh"), labeled("ij"),
	}

	res, err := Calculate(entries, cfg, testMetrics, 300)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	contentWidth := 300 * cfg.MaxSizePercent
	for i, line := range res.LineSizes {
		if line.Width > contentWidth {
			t.Errorf("line %d width = %v, exceeds content width %v", i, line.Width, contentWidth)
		}
	}
}

func TestHorizontalOversizedSingleton(t *testing.T) {
	cfg := testConfig()
	cfg.WordWrap = true
	entries := []Entry{labeled("an extremely long legend label")}

	res, err := Calculate(entries, cfg, testMetrics, 50)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	if len(res.LineSizes) != 1 {
		t.Fatalf("LineSizes count = %d, want 1", len(res.LineSizes))
	}
	if res.LineSizes[0].Width <= 50 {
		t.Errorf("oversized line width = %v, expected wider than the viewport", res.LineSizes[0].Width)
	}
	if res.BreakPoints[0] {
		t.Error("sole entry must not be marked as a break point")
	}
}

func TestHorizontalDisabledWrapOneLine(t *testing.T) {
	cfg := testConfig()
	cfg.WordWrap = false
	entries := []Entry{
		labeled("first"), labeled("second"), labeled("third"),
		labeled("fourth"), labeled("fifth"),
	}

	// A tiny viewport must still produce exactly one line.
	res, err := Calculate(entries, cfg, testMetrics, 10)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	if len(res.LineSizes) != 1 {
		t.Errorf("LineSizes count = %d, want 1", len(res.LineSizes))
	}
	for i, b := range res.BreakPoints {
		if b {
			t.Errorf("BreakPoints[%d] = true, want all false with wrap disabled", i)
		}
	}
}

func TestHorizontalTrailingStackedRun(t *testing.T) {
	// A run with no terminating label still gets laid out.
	entries := []Entry{labeled("a"), stacked(), stacked()}

	res, err := Calculate(entries, testConfig(), testMetrics, 1000)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	if len(res.LineSizes) != 1 {
		t.Fatalf("LineSizes count = %d, want 1", len(res.LineSizes))
	}
	// group "a" + space + (form + stackSpace + form)
	want := groupWidth("a") + 6 + (8 + 3 + 8)
	if res.NeededWidth != want {
		t.Errorf("NeededWidth = %v, want %v", res.NeededWidth, want)
	}
}

func TestHorizontalArrayAlignment(t *testing.T) {
	inputs := [][]Entry{
		{},
		{labeled("a")},
		{stacked()},
		{stacked(), stacked(), labeled("x"), labeled("y"), stacked()},
	}

	for _, entries := range inputs {
		res, err := Calculate(entries, testConfig(), testMetrics, 200)
		if err != nil {
			t.Fatalf("Calculate() error: %v", err)
		}
		if len(res.LabelSizes) != len(entries) || len(res.BreakPoints) != len(entries) {
			t.Errorf("alignment broken for %d entries: labels=%d breaks=%d",
				len(entries), len(res.LabelSizes), len(res.BreakPoints))
		}
		if len(entries) >= 1 && len(res.LineSizes) < 1 {
			t.Errorf("no lines produced for %d entries", len(entries))
		}
	}
}

// =============================================================================
// Vertical Stacking
// =============================================================================

func TestVerticalStackedRow(t *testing.T) {
	cfg := testConfig()
	cfg.Orientation = Vertical
	entries := []Entry{stacked(), stacked(), labeled("X")}

	res, err := Calculate(entries, cfg, testMetrics, 0)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	// Both stacked forms commit as one row when "X" closes the stack:
	// exactly one lineHeight + yEntrySpace is charged, not two.
	if res.NeededHeight != 12 {
		t.Errorf("NeededHeight = %v, want 12", res.NeededHeight)
	}
	if res.LineSizes != nil {
		t.Errorf("vertical layout populated LineSizes: %v", res.LineSizes)
	}
}

func TestVerticalLabeledRows(t *testing.T) {
	cfg := testConfig()
	cfg.Orientation = Vertical
	cfg.YEntrySpace = 2
	entries := []Entry{labeled("one"), labeled("two"), labeled("three")}

	res, err := Calculate(entries, cfg, testMetrics, 0)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	// Height is charged for every labeled entry except the last.
	wantHeight := 2 * (12 + 2.0)
	if res.NeededHeight != wantHeight {
		t.Errorf("NeededHeight = %v, want %v", res.NeededHeight, wantHeight)
	}
	// Widest row: form + formToTextSpace + "three".
	wantWidth := 8 + 5 + 50.0
	if res.NeededWidth != wantWidth {
		t.Errorf("NeededWidth = %v, want %v", res.NeededWidth, wantWidth)
	}
}

func TestVerticalAllStackedHasZeroHeight(t *testing.T) {
	cfg := testConfig()
	cfg.Orientation = Vertical
	cfg.YOffset = 3
	entries := []Entry{stacked(), stacked(), stacked()}

	res, err := Calculate(entries, cfg, testMetrics, 0)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	// No label ever closes the stack, so no row height is charged.
	if res.NeededHeight != 3 {
		t.Errorf("NeededHeight = %v, want offset only (3)", res.NeededHeight)
	}
	if res.NeededWidth <= 0 {
		t.Errorf("NeededWidth = %v, want positive", res.NeededWidth)
	}
}

// =============================================================================
// Shared Behavior
// =============================================================================

func TestEmptyEntries(t *testing.T) {
	cfg := testConfig()
	cfg.XOffset = 5
	cfg.YOffset = 3

	res, err := Calculate([]Entry{}, cfg, testMetrics, 400)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	if res.NeededWidth != 5 {
		t.Errorf("NeededWidth = %v, want xOffset (5)", res.NeededWidth)
	}
	if res.NeededHeight != 3 {
		t.Errorf("NeededHeight = %v, want yOffset (3)", res.NeededHeight)
	}
	if len(res.LineSizes) != 0 {
		t.Errorf("LineSizes count = %d, want 0", len(res.LineSizes))
	}
}

func TestNilEntries(t *testing.T) {
	if _, err := Calculate(nil, testConfig(), testMetrics, 400); err == nil {
		t.Fatal("Calculate(nil entries) expected error, got nil")
	}
}

func TestNilMeasurer(t *testing.T) {
	if _, err := Calculate([]Entry{}, testConfig(), nil, 400); err == nil {
		t.Fatal("Calculate(nil measurer) expected error, got nil")
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSizePercent = 1.5

	if _, err := Calculate([]Entry{labeled("a")}, cfg, testMetrics, 400); err == nil {
		t.Fatal("Calculate(invalid config) expected error, got nil")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()
	cfg.WordWrap = true
	entries := []Entry{stacked(), labeled("alpha"), labeled("beta"), stacked(), stacked(), labeled("gamma")}

	first, err := Calculate(entries, cfg, testMetrics, 150)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}
	second, err := Calculate(entries, cfg, testMetrics, 150)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestNonNegativity(t *testing.T) {
	inputs := [][]Entry{
		{},
		{{Label: Text(""), Form: FormNone}},
		{stacked()},
		{labeled("x")},
	}
	for _, orientation := range []Orientation{Horizontal, Vertical} {
		for _, entries := range inputs {
			cfg := testConfig()
			cfg.Orientation = orientation
			res, err := Calculate(entries, cfg, testMetrics, 100)
			if err != nil {
				t.Fatalf("Calculate() error: %v", err)
			}
			if res.NeededWidth < 0 || res.NeededHeight < 0 {
				t.Errorf("%v/%d entries: negative dimensions %v x %v",
					orientation, len(entries), res.NeededWidth, res.NeededHeight)
			}
		}
	}
}

func TestNaNFormSizeContributesZero(t *testing.T) {
	nan := math.NaN()
	entries := []Entry{
		{Label: Text("a"), Form: FormSquare, FormSize: &nan},
		labeled("b"),
	}

	res, err := Calculate(entries, testConfig(), testMetrics, 1000)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	if math.IsNaN(res.NeededWidth) || math.IsNaN(res.NeededHeight) {
		t.Fatalf("NaN leaked into result: %v x %v", res.NeededWidth, res.NeededHeight)
	}
	// Group "a" shrinks to formToTextSpace + label only.
	want := (5 + 0 + 10.0) + 6 + groupWidth("b")
	if res.NeededWidth != want {
		t.Errorf("NeededWidth = %v, want %v", res.NeededWidth, want)
	}
}

func TestFormSizeOverride(t *testing.T) {
	big := 20.0
	entries := []Entry{{Label: Text("a"), Form: FormSquare, FormSize: &big}}

	res, err := Calculate(entries, testConfig(), testMetrics, 1000)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	want := 5 + 20 + 10.0
	if res.NeededWidth != want {
		t.Errorf("NeededWidth = %v, want %v", res.NeededWidth, want)
	}
}

func TestFormNoneTakesNoSpace(t *testing.T) {
	entries := []Entry{{Label: Text("a"), Form: FormNone}}

	res, err := Calculate(entries, testConfig(), testMetrics, 1000)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}

	// No form, no form-to-text space: just the label.
	if res.NeededWidth != 10 {
		t.Errorf("NeededWidth = %v, want 10", res.NeededWidth)
	}
}

// =============================================================================
// Entry Metrics
// =============================================================================

func TestMaxEntryWidth(t *testing.T) {
	big := 14.0
	entries := []Entry{
		labeled("abc"),                                    // width 30
		{Label: Stacked(), Form: FormSquare, FormSize: &big}, // form max 14
		labeled("a"),
	}

	got := MaxEntryWidth(entries, testConfig(), testMetrics)
	want := 30 + 14 + 5.0
	if got != want {
		t.Errorf("MaxEntryWidth() = %v, want %v", got, want)
	}
}

func TestMaxEntryHeight(t *testing.T) {
	if got := MaxEntryHeight([]Entry{stacked(), stacked()}, testMetrics); got != 0 {
		t.Errorf("MaxEntryHeight(no labels) = %v, want 0", got)
	}
	if got := MaxEntryHeight([]Entry{labeled("a")}, testMetrics); got != 10 {
		t.Errorf("MaxEntryHeight() = %v, want 10", got)
	}
}
