// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"
	"math"
)

// Series is one data series of the plot: an ordered sequence of points
// drawn as a polyline, with the buffers derived from them.
type Series struct {

	// Points are the data points, in polyline order.
	Points XYs

	// Color is the line color.
	Color color.RGBA

	// Visible is whether the series is drawn.
	Visible bool

	// Positions has the x, y position of each point in the data space
	// of the transform: raw values on linear axes, log10 on log axes.
	Positions []float32

	// Indices has the segment indices 0, 1, 1, 2, ... into Positions.
	Indices []uint32

	// backend buffers, allocated on first upload.
	vbuf, ibuf BufferID

	// stale is set when Positions and Indices need to be uploaded.
	stale bool
}

// newSeries returns a new empty series, visible and black.
func newSeries() *Series {
	return &Series{Color: color.RGBA{0, 0, 0, 255}, Visible: true}
}

// DrawCount returns the number of indices drawn for the series,
// which is 0 for fewer than 2 points.
func (sr *Series) DrawCount() int {
	n := len(sr.Positions) / 2
	if n < 2 {
		return 0
	}
	return 2 * (n - 1)
}

// SeriesScale has the log state of both directions
// that the series positions depend on.
type SeriesScale struct {
	// LogX and LogY are whether the horizontal and vertical
	// directions are in log mode.
	LogX, LogY bool

	// LogBottomX and LogBottomY are the bottoms of the log ranges
	// of the Bottom and Left axes, which must be > 0.
	LogBottomX, LogBottomY float64
}

// rebuild recomputes the buffers from the points.
func (sr *Series) rebuild(sc SeriesScale) {
	sr.Positions, sr.Indices = BuildSeriesBuffers(sr.Points, sc, sr.Positions[:0], sr.Indices[:0])
	sr.stale = true
}

// BuildSeriesBuffers appends the positions and segment indices for the
// given points to pos and idx, and returns them.
//
// A coordinate <= 0 on a log axis has no logarithm, so the point is
// truncated: its non-positive coordinates are clamped one decade below
// the log bottom of their axis. The neighbor of the point (the next
// point, or the previous one for the last point) decides whether the
// other axis is clamped too: when the neighbor is below the log bottom
// on both log axes, the point goes to the bottom-left corner, otherwise
// when it is below on x (or y) only, that axis is clamped.
func BuildSeriesBuffers(pts XYs, sc SeriesScale, pos []float32, idx []uint32) ([]float32, []uint32) {
	n := len(pts)
	clampX := math.Log10(sc.LogBottomX) - 1
	clampY := math.Log10(sc.LogBottomY) - 1
	for i, p := range pts {
		cx := sc.LogX && p.X <= 0
		cy := sc.LogY && p.Y <= 0
		if (cx || cy) && n > 1 {
			nb := i + 1
			if nb == n {
				nb = i - 1
			}
			q := pts[nb]
			nbx := sc.LogX && q.X < sc.LogBottomX
			nby := sc.LogY && q.Y < sc.LogBottomY
			switch {
			case nbx && nby:
				cx, cy = true, true
			case nbx:
				cx = true
			case nby:
				cy = true
			}
		}
		pos = append(pos, seriesCoord(p.X, sc.LogX, cx, clampX), seriesCoord(p.Y, sc.LogY, cy, clampY))
	}
	switch {
	case n == 1:
		idx = append(idx, 0)
	case n > 1:
		for i := 1; i < n; i++ {
			idx = append(idx, uint32(i-1), uint32(i))
		}
	}
	return pos, idx
}

func seriesCoord(v float64, log, clamped bool, clampTo float64) float32 {
	switch {
	case clamped:
		return float32(clampTo)
	case log:
		return float32(math.Log10(v))
	}
	return float32(v)
}
