// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/lineplot/base/iox/imagex"
	"cogentcore.org/lineplot/plot"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDemo(t *testing.T) {
	dir := t.TempDir()
	opts := &renderOptions{
		PNG: filepath.Join(dir, "demo.png"),
		SVG: filepath.Join(dir, "demo.svg"),
	}
	require.NoError(t, renderOnce(opts))

	img, _, err := imagex.Open(opts.PNG)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(640, 480), img.Bounds().Size())

	svg, err := os.ReadFile(opts.SVG)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<desc>101 points</desc>")
	assert.Contains(t, string(svg), "<polyline")
}

func TestLoadRenderFit(t *testing.T) {
	data := writeFile(t, "data.txt", "1 10\n3 30\n2 -5\n")
	cfg, pts, err := loadRender(&renderOptions{Data: data})
	require.NoError(t, err)
	assert.Len(t, pts, 3)
	pt, _, err := buildPlot(cfg, pts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, pt.BottomRange(plot.Bottom))
	assert.Equal(t, 3.0, pt.TopRange(plot.Bottom))
	assert.Equal(t, -5.0, pt.BottomRange(plot.Left))
	assert.Equal(t, 30.0, pt.TopRange(plot.Left))
}

func TestWatched(t *testing.T) {
	files := []string{"a/plot.toml", "data.txt"}
	assert.True(t, watched(files, fsnotify.Event{Name: "a/plot.toml", Op: fsnotify.Write}))
	assert.True(t, watched(files, fsnotify.Event{Name: "./data.txt", Op: fsnotify.Create}))
	assert.False(t, watched(files, fsnotify.Event{Name: "data.txt", Op: fsnotify.Remove}))
	assert.False(t, watched(files, fsnotify.Event{Name: "other.txt", Op: fsnotify.Write}))
}

func TestRenderNothing(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "-q"})
	cmd.SetErr(&strings.Builder{})
	assert.ErrorContains(t, cmd.Execute(), "nothing to write")
}

func TestStreamDevice(t *testing.T) {
	dev := writeFile(t, "device", "junk{100}{200}{300}{bad}{400")
	out := filepath.Join(t.TempDir(), "stream.png")
	opts := &streamOptions{
		Device:   dev,
		PNG:      out,
		Interval: time.Millisecond,
		Capacity: 10,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, runStream(ctx, opts))

	img, _, err := imagex.Open(out)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(640, 480), img.Bounds().Size())
}

func TestStreamErrors(t *testing.T) {
	ctx := context.Background()
	assert.Error(t, runStream(ctx, &streamOptions{Device: "/nonexistent", Interval: time.Millisecond}))
	assert.Error(t, runStream(ctx, &streamOptions{Device: "x", Interval: 0}))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"stream"})
	cmd.SetErr(&strings.Builder{})
	assert.Error(t, cmd.Execute())
}

func TestListPorts(t *testing.T) {
	var b strings.Builder
	require.NoError(t, listPorts(&b, func() ([]string, error) {
		return []string{"/dev/ttyUSB0", "/dev/ttyACM0"}, nil
	}))
	assert.Equal(t, "/dev/ttyUSB0\n/dev/ttyACM0\n", b.String())

	b.Reset()
	require.NoError(t, listPorts(&b, func() ([]string, error) { return nil, nil }))
	assert.Empty(t, b.String())

	err := listPorts(&b, func() ([]string, error) { return nil, os.ErrPermission })
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestStreamFlags(t *testing.T) {
	cmd := newStreamCmd()
	baud, err := cmd.Flags().GetInt("baud")
	require.NoError(t, err)
	assert.Equal(t, 9600, baud)
	sub, _, err := cmd.Find([]string{"ports"})
	require.NoError(t, err)
	assert.Equal(t, "ports", sub.Name())
}

func TestRenderFlatData(t *testing.T) {
	data := writeFile(t, "flat.txt", "0 5\n1 5\n2 5\n")
	out := filepath.Join(t.TempDir(), "flat.svg")
	require.NoError(t, renderOnce(&renderOptions{Data: data, SVG: out}))

	cfg, pts, err := loadRender(&renderOptions{Data: data})
	require.NoError(t, err)
	pt, _, err := buildPlot(cfg, pts)
	require.NoError(t, err)
	assert.Equal(t, 4.5, pt.BottomRange(plot.Left))
	assert.Equal(t, 5.5, pt.TopRange(plot.Left))
}
