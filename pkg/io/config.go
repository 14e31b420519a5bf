package io

import (
	"os"

	"github.com/BurntSushi/toml"

	apperrors "github.com/chartkit/legend/pkg/errors"
	"github.com/chartkit/legend/pkg/legend"
)

var orientationFromString = map[string]legend.Orientation{
	"horizontal": legend.Horizontal,
	"vertical":   legend.Vertical,
}

var directionFromString = map[string]legend.Direction{
	"ltr": legend.LeftToRight,
	"rtl": legend.RightToLeft,
}

// Config is a partial configuration overlay. Only fields present in the
// decoded document override the base config, so the same file can set a
// single spacing value without restating the defaults. It decodes from TOML
// (CLI defaults files) and JSON (HTTP API bodies) alike.
type Config struct {
	Orientation     string   `toml:"orientation" json:"orientation,omitempty"`
	Direction       string   `toml:"direction" json:"direction,omitempty"`
	WordWrap        *bool    `toml:"word-wrap" json:"wordWrap,omitempty"`
	MaxSizePercent  *float64 `toml:"max-size-percent" json:"maxSizePercent,omitempty"`
	FormSize        *float64 `toml:"form-size" json:"formSize,omitempty"`
	FormLineWidth   *float64 `toml:"form-line-width" json:"formLineWidth,omitempty"`
	FormToTextSpace *float64 `toml:"form-to-text-space" json:"formToTextSpace,omitempty"`
	XEntrySpace     *float64 `toml:"x-entry-space" json:"xEntrySpace,omitempty"`
	YEntrySpace     *float64 `toml:"y-entry-space" json:"yEntrySpace,omitempty"`
	StackSpace      *float64 `toml:"stack-space" json:"stackSpace,omitempty"`
	XOffset         *float64 `toml:"x-offset" json:"xOffset,omitempty"`
	YOffset         *float64 `toml:"y-offset" json:"yOffset,omitempty"`
}

// Apply overlays the present fields onto base and validates the outcome.
func (c Config) Apply(base legend.Config) (legend.Config, error) {
	cfg := base

	if c.Orientation != "" {
		o, ok := orientationFromString[c.Orientation]
		if !ok {
			return legend.Config{}, apperrors.New(apperrors.ErrCodeInvalidConfig,
				"unknown orientation %q", c.Orientation)
		}
		cfg.Orientation = o
	}
	if c.Direction != "" {
		d, ok := directionFromString[c.Direction]
		if !ok {
			return legend.Config{}, apperrors.New(apperrors.ErrCodeInvalidConfig,
				"unknown direction %q", c.Direction)
		}
		cfg.Direction = d
	}

	if c.WordWrap != nil {
		cfg.WordWrap = *c.WordWrap
	}
	if c.MaxSizePercent != nil {
		cfg.MaxSizePercent = *c.MaxSizePercent
	}
	if c.FormSize != nil {
		cfg.FormSize = *c.FormSize
	}
	if c.FormLineWidth != nil {
		cfg.FormLineWidth = *c.FormLineWidth
	}
	if c.FormToTextSpace != nil {
		cfg.FormToTextSpace = *c.FormToTextSpace
	}
	if c.XEntrySpace != nil {
		cfg.XEntrySpace = *c.XEntrySpace
	}
	if c.YEntrySpace != nil {
		cfg.YEntrySpace = *c.YEntrySpace
	}
	if c.StackSpace != nil {
		cfg.StackSpace = *c.StackSpace
	}
	if c.XOffset != nil {
		cfg.XOffset = *c.XOffset
	}
	if c.YOffset != nil {
		cfg.YOffset = *c.YOffset
	}

	if err := cfg.Validate(); err != nil {
		return legend.Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile decodes a TOML configuration overlay from path.
func LoadConfigFile(path string) (Config, error) {
	var c Config
	if _, err := os.Stat(path); err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "decode config %s", path)
	}
	return c, nil
}
