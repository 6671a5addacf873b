// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/lineplot/base/errors"
	"cogentcore.org/lineplot/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, "lineplot", cfg.Title)
	assert.True(t, cfg.Frame)
	assert.Equal(t, "blue", cfg.Color)
	for _, ac := range []AxisConfig{cfg.X, cfg.Y} {
		assert.Equal(t, 0.0, ac.Min)
		assert.Equal(t, 10.0, ac.Max)
		assert.Equal(t, 2.0, ac.Step)
		assert.Equal(t, 4, ac.SecTicks)
		assert.True(t, ac.Grid)
		assert.False(t, ac.Log)
	}
}

func TestConfigTOML(t *testing.T) {
	fn := writeFile(t, "plot.toml", `
width = 300
title = "Signal"

[x]
label = "time"
max = 1000
step = 100

[y]
log = true
min = 0.1
max = 1000
sec_grid = true
`)
	cfg, err := LoadConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 480, cfg.Height, "defaults are kept")
	assert.Equal(t, "Signal", cfg.Title)
	assert.Equal(t, "time", cfg.X.Label)
	assert.Equal(t, 1000.0, cfg.X.Max)
	assert.Equal(t, 100.0, cfg.X.Step)
	assert.True(t, cfg.Y.Log)
	assert.Equal(t, 0.1, cfg.Y.Min)
	assert.True(t, cfg.Y.SecGrid)

	pt := plot.NewPlot(nil)
	pt.SetPolicy(errors.Reject)
	require.NoError(t, cfg.Apply(pt))
	assert.Equal(t, image.Pt(300, 480), pt.Size())
	assert.Equal(t, "Signal", pt.Title())
	assert.Equal(t, 1000.0, pt.TopRange(plot.Bottom))
	assert.Equal(t, 100.0, pt.TickStep(plot.Bottom))
	assert.Equal(t, "time", pt.Label(plot.Bottom))
	assert.True(t, pt.IsLabelVisible(plot.Bottom))
	assert.False(t, pt.IsLabelVisible(plot.Left))
	assert.True(t, pt.IsLogScale(plot.Vertical))
	assert.Equal(t, 1000.0, pt.LogTopRange(plot.Left))
	assert.Equal(t, 0.1, pt.LogBottomRange(plot.Left))
	assert.True(t, pt.IsSecGridVisible(plot.Left))
}

func TestConfigYAML(t *testing.T) {
	fn := writeFile(t, "plot.yaml", `
height: 200
background: "#102030"
frame: false
y:
  max: 1024
  step: 128
`)
	cfg, err := LoadConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Height)
	assert.False(t, cfg.Frame)
	assert.Equal(t, 1024.0, cfg.Y.Max)
	assert.Equal(t, 128.0, cfg.Y.Step)

	pt := plot.NewPlot(nil)
	require.NoError(t, cfg.Apply(pt))
	assert.False(t, pt.IsFrameVisible())
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 255}, pt.PlotStyle().Background)
}

func TestConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "plot.json", "{}"))
	assert.ErrorContains(t, err, "unsupported extension")
	_, err = LoadConfig(writeFile(t, "plot.toml", "width = "))
	assert.Error(t, err)
	_, err = LoadConfig(filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)

	cfg, err := LoadConfig(writeFile(t, "plot.toml", "[x]\nmin = 5\nmax = 1\n"))
	require.NoError(t, err)
	pt := plot.NewPlot(nil)
	pt.SetPolicy(errors.Reject)
	assert.ErrorIs(t, cfg.Apply(pt), plot.ErrInvalidRange)

	cfg.X.Min, cfg.X.Max = 0, 10
	cfg.Background = "nocolor"
	assert.Error(t, cfg.Apply(pt))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Red")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)
	c, err = ParseColor("#00ff80")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 255, 128, 255}, c)
	_, err = ParseColor("#12")
	assert.Error(t, err)
	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
}
