package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chartkit/legend/pkg/legend"
)

func testPreviewModel(t *testing.T) previewModel {
	t.Helper()
	entries := []legend.Entry{
		{Label: legend.Text("Revenue"), Form: legend.FormSquare},
		{Label: legend.Text("Costs"), Form: legend.FormSquare},
	}
	return newPreviewModel(entries, legend.DefaultConfig(), 400)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPreviewModelInitialLayout(t *testing.T) {
	m := testPreviewModel(t)

	if m.err != nil {
		t.Fatalf("initial layout error: %v", m.err)
	}
	if m.result.LineCount() == 0 {
		t.Error("initial layout produced no lines")
	}
}

func TestPreviewModelWidthKeys(t *testing.T) {
	m := testPreviewModel(t)

	next, _ := m.Update(key("l"))
	got := next.(previewModel)
	if got.width != m.width+widthStep {
		t.Errorf("width after right = %v, want %v", got.width, m.width+widthStep)
	}

	next, _ = got.Update(key("h"))
	got = next.(previewModel)
	if got.width != m.width {
		t.Errorf("width after left = %v, want %v", got.width, m.width)
	}
}

func TestPreviewModelToggles(t *testing.T) {
	m := testPreviewModel(t)

	next, _ := m.Update(key("o"))
	got := next.(previewModel)
	if got.cfg.Orientation != legend.Vertical {
		t.Errorf("orientation after toggle = %v, want vertical", got.cfg.Orientation)
	}
	if got.result.LineCount() != 0 {
		t.Error("vertical layout still reports lines")
	}

	wrapped := m.cfg.WordWrap
	next, _ = m.Update(key("w"))
	got = next.(previewModel)
	if got.cfg.WordWrap == wrapped {
		t.Error("wrap toggle did not change config")
	}
}

func TestPreviewModelQuit(t *testing.T) {
	m := testPreviewModel(t)

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not return tea.Quit")
	}
}

func TestPreviewModelView(t *testing.T) {
	m := testPreviewModel(t)

	view := m.View()
	if !strings.Contains(view, "Legend Preview") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "horizontal") {
		t.Error("view missing orientation")
	}
}
