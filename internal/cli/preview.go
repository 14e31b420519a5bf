package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	legendio "github.com/chartkit/legend/pkg/io"
	"github.com/chartkit/legend/pkg/legend"
	"github.com/chartkit/legend/pkg/measure"
)

// widthStep is how much the available width changes per keypress.
const widthStep = 20.0

// previewCommand creates the preview command for the interactive layout viewer.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		configPath string
		width      float64
	)

	cmd := &cobra.Command{
		Use:   "preview [entries.json]",
		Short: "Interactively preview how a legend lays out",
		Long: `Interactively preview how a legend lays out.

The preview command opens a terminal viewer showing the computed line
structure for an entries file. Adjust the available width with the arrow
keys and toggle word wrap or orientation to see how the layout responds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(args[0], configPath, width)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file with layout defaults")
	cmd.Flags().Float64VarP(&width, "width", "w", defaultAvailableWidth, "initial available viewport width")

	return cmd
}

// runPreview loads the entries and starts the bubbletea viewer.
func (c *CLI) runPreview(input, configPath string, width float64) error {
	entries, err := legendio.ReadEntriesFile(input)
	if err != nil {
		return fmt.Errorf("load entries %s: %w", input, err)
	}

	cfg := legend.DefaultConfig()
	if configPath != "" {
		overlay, err := legendio.LoadConfigFile(configPath)
		if err != nil {
			return err
		}
		cfg, err = overlay.Apply(cfg)
		if err != nil {
			return fmt.Errorf("config %s: %w", configPath, err)
		}
	}

	model := newPreviewModel(entries, cfg, width)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}

// =============================================================================
// PreviewModel - Interactive layout viewer
// =============================================================================

// previewModel is the bubbletea model for the layout preview. Every state
// change recomputes the layout from scratch, so the viewer always shows the
// result a renderer would get for the current settings.
type previewModel struct {
	entries []legend.Entry
	cfg     legend.Config
	width   float64

	measurer legend.Measurer
	result   legend.Result
	err      error
}

func newPreviewModel(entries []legend.Entry, cfg legend.Config, width float64) previewModel {
	m := previewModel{
		entries:  entries,
		cfg:      cfg,
		width:    width,
		measurer: measure.DefaultFixed(),
	}
	m.recompute()
	return m
}

// recompute runs a fresh layout pass for the current settings.
func (m *previewModel) recompute() {
	m.result, m.err = legend.Calculate(m.entries, m.cfg, m.measurer, m.width)
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.width-widthStep >= widthStep {
				m.width -= widthStep
				m.recompute()
			}
		case "right", "l":
			m.width += widthStep
			m.recompute()
		case "w":
			m.cfg.WordWrap = !m.cfg.WordWrap
			m.recompute()
		case "o":
			if m.cfg.Orientation == legend.Horizontal {
				m.cfg.Orientation = legend.Vertical
			} else {
				m.cfg.Orientation = legend.Horizontal
			}
			m.recompute()
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Legend Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ width  w wrap  o orientation  q quit"))
	b.WriteString("\n\n")

	wrap := "off"
	if m.cfg.WordWrap {
		wrap = "on"
	}
	b.WriteString(fmt.Sprintf("  %s %s   %s %.0f   %s %s\n\n",
		StyleDim.Render("orientation:"), StyleValue.Render(m.cfg.Orientation.String()),
		StyleDim.Render("width:"), m.width,
		StyleDim.Render("wrap:"), StyleValue.Render(wrap)))

	if m.err != nil {
		b.WriteString("  " + styleIconError.Render(iconError) + " " + m.err.Error() + "\n")
		return b.String()
	}

	b.WriteString(m.renderLines())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %.1f × %.1f\n",
		StyleDim.Render("needed:"), m.result.NeededWidth, m.result.NeededHeight))

	return b.String()
}

// renderLines draws one proportional bar per computed line. The bars are
// scaled so the available width maps to at most 60 terminal cells.
func (m previewModel) renderLines() string {
	if m.result.LineCount() == 0 {
		return "  " + StyleDim.Render("(no lines)") + "\n"
	}

	scale := 60.0 / m.width
	barStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorDim).
		Foreground(colorWhite)

	var b strings.Builder
	for i, line := range m.result.LineSizes {
		cells := int(line.Width * scale)
		if cells < 1 {
			cells = 1
		}
		label := fmt.Sprintf("%.0f × %.0f", line.Width, line.Height)
		if len(label) > cells {
			label = strings.Repeat("█", cells)
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleHighlight.Render(label),
				StyleDim.Render(fmt.Sprintf("line %d", i))))
			continue
		}
		bar := barStyle.Width(cells).Render(label)
		for j, row := range strings.Split(bar, "\n") {
			if j == 1 {
				b.WriteString(fmt.Sprintf("  %s %s\n", row, StyleDim.Render(fmt.Sprintf("line %d", i))))
			} else {
				b.WriteString("  " + row + "\n")
			}
		}
	}
	return b.String()
}
