package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chartkit/legend/pkg/cache"
	apperrors "github.com/chartkit/legend/pkg/errors"
	legendio "github.com/chartkit/legend/pkg/io"
	"github.com/chartkit/legend/pkg/legend"
	"github.com/chartkit/legend/pkg/measure"
	"github.com/chartkit/legend/pkg/observability"
)

// layoutFlags collects the per-invocation layout options. Spacing flags
// only override the config file when the user explicitly set them, which
// resolveConfig detects through the flag set.
type layoutFlags struct {
	output     string
	configPath string
	width      float64
	font       string
	fontSize   float64
	noCache    bool

	orientation     string
	wordWrap        bool
	maxSizePercent  float64
	formSize        float64
	formToTextSpace float64
	xEntrySpace     float64
	yEntrySpace     float64
	stackSpace      float64
	xOffset         float64
	yOffset         float64
}

// layoutCommand creates the layout command for computing legend layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	f := layoutFlags{}
	defaults := legend.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "layout [entries.json]",
		Short: "Compute a legend layout from an entries file",
		Long: `Compute a legend layout from an entries file.

The layout command takes an entries.json file describing the legend items
(labels, forms, per-entry form sizes) and computes where lines break and how
much space the legend needs. The output is a layout.json file that a chart
renderer consumes to place the legend.

Text is measured with fixed per-character metrics by default; pass --font to
measure with a real TrueType face resolved from the system font directories.

Spacing flags override values from the --config file, which in turn overrides
the built-in defaults.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), cmd, args[0], f)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "TOML config file with layout defaults")
	cmd.Flags().Float64VarP(&f.width, "width", "w", defaultAvailableWidth, "available viewport width")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable result caching")

	// Measurement flags
	cmd.Flags().StringVar(&f.font, "font", "", "measure text with this TrueType font (e.g. \"DejaVuSans\")")
	cmd.Flags().Float64Var(&f.fontSize, "font-size", defaultFontSize, "font size in points (with --font)")

	// Layout flags
	cmd.Flags().StringVar(&f.orientation, "orientation", "", "legend orientation: horizontal (default), vertical")
	cmd.Flags().BoolVar(&f.wordWrap, "wrap", defaults.WordWrap, "wrap horizontal legends across multiple lines")
	cmd.Flags().Float64Var(&f.maxSizePercent, "max-size-percent", defaults.MaxSizePercent, "fraction of the viewport width the legend may use")
	cmd.Flags().Float64Var(&f.formSize, "form-size", defaults.FormSize, "default form size")
	cmd.Flags().Float64Var(&f.formToTextSpace, "form-to-text-space", defaults.FormToTextSpace, "space between a form and its label")
	cmd.Flags().Float64Var(&f.xEntrySpace, "x-entry-space", defaults.XEntrySpace, "horizontal space between entries")
	cmd.Flags().Float64Var(&f.yEntrySpace, "y-entry-space", defaults.YEntrySpace, "vertical space between lines")
	cmd.Flags().Float64Var(&f.stackSpace, "stack-space", defaults.StackSpace, "space between stacked forms")
	cmd.Flags().Float64Var(&f.xOffset, "x-offset", defaults.XOffset, "horizontal offset added to the needed width")
	cmd.Flags().Float64Var(&f.yOffset, "y-offset", defaults.YOffset, "vertical offset added to the needed height")

	return cmd
}

// runLayout loads the entries, resolves the config, computes the layout,
// and writes the output file.
func (c *CLI) runLayout(ctx context.Context, cmd *cobra.Command, input string, f layoutFlags) error {
	entries, err := legendio.ReadEntriesFile(input)
	if err != nil {
		return fmt.Errorf("load entries %s: %w", input, err)
	}

	cfg, err := c.resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	m, err := c.newMeasurer(f)
	if err != nil {
		return err
	}

	store := c.newCache(f.noCache)
	defer store.Close()
	key := cache.LayoutKey(entries, cfg, f.width, measurerID(f))

	if len(entries) == 0 {
		printWarning("entries file is empty; the legend occupies only its offsets")
	}

	res, hit, err := c.cachedLayout(ctx, store, key, entries, cfg, m, f.width)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	outputPath := f.output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}
	if err := apperrors.ValidateOutputPath(outputPath); err != nil {
		return err
	}

	if err := legendio.ExportResult(res, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(entries), res.LineCount(), res.NeededWidth, res.NeededHeight)
	if hit {
		printDetail("cached result")
	}
	printNewline()
	printNextStep("Preview", appName+" preview "+input)

	return nil
}

// cacheTTL is how long cached layout results stay valid.
const cacheTTL = 24 * time.Hour

// newCache opens the local result cache, falling back to a null cache when
// caching is disabled or the cache directory is unavailable.
func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		c.Logger.Debug("cache disabled", "err", err)
		return cache.NewNullCache()
	}
	store, err := cache.NewFileCache(filepath.Join(home, ".cache", appName))
	if err != nil {
		c.Logger.Debug("cache disabled", "err", err)
		return cache.NewNullCache()
	}
	return store
}

// measurerID identifies the text measurer in cache keys, so layouts measured
// with different fonts never share entries.
func measurerID(f layoutFlags) string {
	if f.font == "" {
		return "fixed"
	}
	return fmt.Sprintf("face:%s:%g", f.font, f.fontSize)
}

// cachedLayout returns the cached result for key, or computes and stores a
// fresh one. Cache failures are logged and treated as misses.
func (c *CLI) cachedLayout(ctx context.Context, store cache.Cache, key string, entries []legend.Entry, cfg legend.Config, m legend.Measurer, availableWidth float64) (legend.Result, bool, error) {
	if data, ok, err := store.Get(ctx, key); err != nil {
		c.Logger.Debug("cache read failed", "err", err)
	} else if ok {
		var res legend.Result
		if err := json.Unmarshal(data, &res); err == nil {
			return res, true, nil
		}
		c.Logger.Debug("cache entry corrupt, recomputing")
	}

	p := newProgress(c.Logger)
	res, err := calculateWithHooks(ctx, entries, cfg, m, availableWidth)
	if err != nil {
		return legend.Result{}, false, err
	}
	p.done(fmt.Sprintf("Laid out %d entries", len(entries)))

	if data, err := json.Marshal(res); err == nil {
		if err := store.Set(ctx, key, data, cacheTTL); err != nil {
			c.Logger.Debug("cache write failed", "err", err)
		}
	}
	return res, false, nil
}

// resolveConfig layers the config sources: built-in defaults, then the
// --config file, then any flag the user explicitly set.
func (c *CLI) resolveConfig(cmd *cobra.Command, f layoutFlags) (legend.Config, error) {
	base := legend.DefaultConfig()

	if f.configPath != "" {
		overlay, err := legendio.LoadConfigFile(f.configPath)
		if err != nil {
			return legend.Config{}, err
		}
		base, err = overlay.Apply(base)
		if err != nil {
			return legend.Config{}, fmt.Errorf("config %s: %w", f.configPath, err)
		}
		c.Logger.Debug("loaded config file", "path", f.configPath)
	}

	flags := legendio.Config{}
	if f.orientation != "" {
		flags.Orientation = f.orientation
	}
	if cmd.Flags().Changed("wrap") {
		flags.WordWrap = &f.wordWrap
	}
	if cmd.Flags().Changed("max-size-percent") {
		flags.MaxSizePercent = &f.maxSizePercent
	}
	if cmd.Flags().Changed("form-size") {
		flags.FormSize = &f.formSize
	}
	if cmd.Flags().Changed("form-to-text-space") {
		flags.FormToTextSpace = &f.formToTextSpace
	}
	if cmd.Flags().Changed("x-entry-space") {
		flags.XEntrySpace = &f.xEntrySpace
	}
	if cmd.Flags().Changed("y-entry-space") {
		flags.YEntrySpace = &f.yEntrySpace
	}
	if cmd.Flags().Changed("stack-space") {
		flags.StackSpace = &f.stackSpace
	}
	if cmd.Flags().Changed("x-offset") {
		flags.XOffset = &f.xOffset
	}
	if cmd.Flags().Changed("y-offset") {
		flags.YOffset = &f.yOffset
	}

	return flags.Apply(base)
}

// newMeasurer picks the text measurer: a TrueType face when --font is given,
// fixed per-character metrics otherwise.
func (c *CLI) newMeasurer(f layoutFlags) (legend.Measurer, error) {
	if f.font == "" {
		return measure.DefaultFixed(), nil
	}
	face, err := measure.NewFace(f.font, f.fontSize)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", f.font, err)
	}
	c.Logger.Debug("loaded font face", "font", f.font, "size", f.fontSize)
	return face, nil
}

// calculateWithHooks runs a layout pass and reports it through the
// registered observability hooks.
func calculateWithHooks(ctx context.Context, entries []legend.Entry, cfg legend.Config, m legend.Measurer, availableWidth float64) (legend.Result, error) {
	observability.Layout().OnLayoutStart(ctx, cfg.Orientation.String(), len(entries))
	start := time.Now()
	res, err := legend.Calculate(entries, cfg, m, availableWidth)
	observability.Layout().OnLayoutComplete(ctx, cfg.Orientation.String(), res.LineCount(), time.Since(start), err)
	return res, err
}
