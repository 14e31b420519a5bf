// Package cli implements the legend command-line interface.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/chartkit/legend/pkg/buildinfo"
	"github.com/chartkit/legend/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and file names.
	appName = "legend"

	// defaultAvailableWidth is the viewport width assumed when none is given.
	defaultAvailableWidth = 800.0

	// defaultFontSize is the point size used with --font.
	defaultFontSize = 10.0
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger and registers the
// logger-backed layout hooks.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
	observability.SetLayoutHooks(logHooks{logger: c.Logger})
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "legend",
		Short:        "Legend computes chart legend layouts",
		Long:         `Legend is a CLI tool for computing the geometric layout of chart legends: how labeled, colored entries flow into lines or stack vertically, and how much space the legend needs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Layout Hooks
// =============================================================================

// logHooks reports layout passes through the CLI logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnLayoutStart(ctx context.Context, orientation string, entryCount int) {
	h.logger.Debug("layout pass started", "orientation", orientation, "entries", entryCount)
}

func (h logHooks) OnLayoutComplete(ctx context.Context, orientation string, lineCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("layout pass failed", "orientation", orientation, "err", err)
		return
	}
	h.logger.Debug("layout pass finished", "orientation", orientation, "lines", lineCount, "took", d.Round(time.Microsecond))
}
