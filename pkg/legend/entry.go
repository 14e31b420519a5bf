package legend

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// Form - Legend Form Shapes
// =============================================================================

// Form is the shape drawn next to a legend label. The zero value is
// FormDefault, so entries built without an explicit form defer to the
// renderer's default shape.
type Form int

const (
	// FormDefault defers to the renderer's default shape.
	FormDefault Form = iota

	// FormNone draws no form and reserves no space for one.
	FormNone

	// FormEmpty draws no form but still reserves space for one.
	FormEmpty

	// FormSquare draws a filled square.
	FormSquare

	// FormCircle draws a filled circle.
	FormCircle

	// FormLine draws a short horizontal line.
	FormLine
)

var formToString = map[Form]string{
	FormNone:    "none",
	FormEmpty:   "empty",
	FormDefault: "default",
	FormSquare:  "square",
	FormCircle:  "circle",
	FormLine:    "line",
}

var stringToForm = map[string]Form{
	"none":    FormNone,
	"empty":   FormEmpty,
	"default": FormDefault,
	"square":  FormSquare,
	"circle":  FormCircle,
	"line":    FormLine,
}

// String returns the lowercase name of the form.
func (f Form) String() string {
	if s, ok := formToString[f]; ok {
		return s
	}
	return fmt.Sprintf("form(%d)", int(f))
}

// ParseForm converts a form name to a Form. Empty input means FormDefault.
func ParseForm(s string) (Form, error) {
	if s == "" {
		return FormDefault, nil
	}
	if f, ok := stringToForm[s]; ok {
		return f, nil
	}
	return FormDefault, fmt.Errorf("unknown form %q", s)
}

// MarshalJSON encodes the form as its string name.
func (f Form) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON decodes a form from its string name.
func (f *Form) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseForm(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// =============================================================================
// Label - Labeled | Stacked
// =============================================================================

// Label is a tagged optional: either the entry carries text (including the
// empty string) or it is a stacked form that groups with the next labeled
// entry. The zero value is Stacked.
type Label struct {
	text string
	ok   bool
}

// Text creates a label carrying the given text.
func Text(s string) Label {
	return Label{text: s, ok: true}
}

// Stacked creates the label variant that marks a stacking entry.
func Stacked() Label {
	return Label{}
}

// Get returns the label text and whether the entry is labeled.
func (l Label) Get() (string, bool) {
	return l.text, l.ok
}

// IsStacked reports whether the entry groups with the next labeled entry.
func (l Label) IsStacked() bool {
	return !l.ok
}

// MarshalJSON encodes a labeled entry as a JSON string and a stacked entry
// as JSON null, matching the wire format of entry files.
func (l Label) MarshalJSON() ([]byte, error) {
	if !l.ok {
		return []byte("null"), nil
	}
	return json.Marshal(l.text)
}

// UnmarshalJSON decodes null as Stacked and a string as Text.
func (l *Label) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = Stacked()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = Text(s)
	return nil
}

// =============================================================================
// Entry
// =============================================================================

// Entry is a single legend item: a form plus an optional text label.
// Entries are owned by the caller and read-only during a layout pass.
//
// FormSize overrides Config.FormSize for this entry when non-nil.
// FormColor, LabelColor and FormLineWidth are renderer pass-through fields
// and never influence layout.
type Entry struct {
	Label Label `json:"label"`
	Form  Form  `json:"form"`

	FormSize      *float64 `json:"formSize,omitempty"`
	FormLineWidth *float64 `json:"formLineWidth,omitempty"`
	FormColor     string   `json:"formColor,omitempty"`
	LabelColor    string   `json:"labelColor,omitempty"`
}

// HasForm reports whether the entry occupies horizontal space for a form.
// FormEmpty reserves space without drawing; only FormNone takes none.
func (e Entry) HasForm() bool {
	return e.Form != FormNone
}
