// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/lineplot/base/errors"
	"cogentcore.org/lineplot/base/reflectx"
	"cogentcore.org/lineplot/plot"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Config is the plot configuration, read from a TOML or YAML file.
type Config struct {
	Width      int    `toml:"width" yaml:"width" default:"640"`
	Height     int    `toml:"height" yaml:"height" default:"480"`
	Title      string `toml:"title" yaml:"title" default:"lineplot"`
	Background string `toml:"background" yaml:"background" default:"white"`
	Frame      bool   `toml:"frame" yaml:"frame" default:"true"`

	// Color is the color of the data series.
	Color string `toml:"color" yaml:"color" default:"blue"`

	// X configures the Bottom axis and Y the Left axis.
	X AxisConfig `toml:"x" yaml:"x"`
	Y AxisConfig `toml:"y" yaml:"y"`
}

// AxisConfig is the configuration of one axis side.
type AxisConfig struct {
	Label    string  `toml:"label" yaml:"label"`
	Min      float64 `toml:"min" yaml:"min" default:"0"`
	Max      float64 `toml:"max" yaml:"max" default:"10"`
	Step     float64 `toml:"step" yaml:"step" default:"2"`
	SecTicks int     `toml:"sec_ticks" yaml:"sec_ticks" default:"4"`
	Log      bool    `toml:"log" yaml:"log"`
	Grid     bool    `toml:"grid" yaml:"grid" default:"true"`
	SecGrid  bool    `toml:"sec_grid" yaml:"sec_grid"`

	// Fit sets the range from the data.
	Fit bool `toml:"fit" yaml:"fit"`
}

// SetFromDefaults sets the config from its `default:` tags.
// Errors are logged in addition to being returned.
func (cfg *Config) SetFromDefaults() error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// LoadConfig returns the default config updated from the given file,
// whose format is chosen by its extension. An empty filename
// returns the defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := &Config{}
	if err := cfg.SetFromDefaults(); err != nil {
		return nil, err
	}
	if filename == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", filename, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

// ParseColor returns the color with the given SVG color name
// or #rrggbb hex value.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok && len(hex) == 6 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err == nil {
			return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", s)
}

// Apply configures the plot. The first error stops the configuration.
func (cfg *Config) Apply(pt *plot.Plot) error {
	bg, err := ParseColor(cfg.Background)
	if err != nil {
		return err
	}
	pt.Resize(image.Pt(cfg.Width, cfg.Height))
	pt.SetTitle(cfg.Title)
	pt.SetTitleVisible(cfg.Title != "")
	pt.SetFrameVisible(cfg.Frame)
	if err := pt.SetBackground(bg); err != nil {
		return err
	}
	if err := cfg.X.apply(pt, plot.Bottom); err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	if err := cfg.Y.apply(pt, plot.Left); err != nil {
		return fmt.Errorf("y axis: %w", err)
	}
	return nil
}

func (ac *AxisConfig) apply(pt *plot.Plot, a plot.Axis) error {
	if err := pt.SetLogScale(a.Direction(), ac.Log); err != nil {
		return err
	}
	if ac.Log {
		if err := pt.SetLogRange(a, ac.Max, ac.Min); err != nil {
			return err
		}
	} else {
		if err := pt.SetRange(a, ac.Max, ac.Min); err != nil {
			return err
		}
		if err := pt.SetTickStep(a, ac.Step); err != nil {
			return err
		}
	}
	return errors.Join(
		pt.SetSecTickCount(a, ac.SecTicks),
		pt.SetLabel(a, ac.Label),
		pt.SetLabelVisible(a, ac.Label != ""),
		pt.SetGridVisible(a, ac.Grid),
		pt.SetSecGridVisible(a, ac.SecGrid),
		pt.SetSecTicksVisible(a, ac.SecGrid),
	)
}

// applySeries sets the color of the series and fits the ranges
// of the axes configured to fit the data.
func (cfg *Config) applySeries(pt *plot.Plot, series int) error {
	clr, err := ParseColor(cfg.Color)
	if err != nil {
		return err
	}
	if err := pt.SetPlotColor(series, clr); err != nil {
		return err
	}
	if cfg.X.Fit {
		if err := pt.FitRange(plot.Bottom); err != nil {
			return err
		}
	}
	if cfg.Y.Fit {
		if err := pt.FitRange(plot.Left); err != nil {
			return err
		}
	}
	return nil
}
