// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logScale = SeriesScale{LogX: true, LogY: true, LogBottomX: 0.1, LogBottomY: 0.1}

func TestSeriesBuffersLinear(t *testing.T) {
	pts := XYs{{0, 1}, {-2, 3}, {4, -5}}
	pos, idx := BuildSeriesBuffers(pts, SeriesScale{LogBottomX: 0.1, LogBottomY: 0.1}, nil, nil)
	assert.Equal(t, []float32{0, 1, -2, 3, 4, -5}, pos)
	assert.Equal(t, []uint32{0, 1, 1, 2}, idx)
}

func TestSeriesBuffersEmpty(t *testing.T) {
	pos, idx := BuildSeriesBuffers(nil, logScale, nil, nil)
	assert.Empty(t, pos)
	assert.Empty(t, idx)

	pos, idx = BuildSeriesBuffers(XYs{{10, 100}}, logScale, nil, nil)
	assert.Equal(t, []float32{1, 2}, pos)
	assert.Equal(t, []uint32{0}, idx)
	sr := &Series{Positions: pos, Indices: idx}
	assert.Equal(t, 0, sr.DrawCount())
}

func TestSeriesBuffersLog(t *testing.T) {
	n := 50
	pts := make(XYs, n)
	for i := range pts {
		pts[i] = XY{float64(i + 1), math.Pow(10, float64(i%5))}
	}
	pos, idx := BuildSeriesBuffers(pts, logScale, nil, nil)
	require.Len(t, pos, 2*n)
	require.Len(t, idx, 2*(n-1))
	assert.InDelta(t, math.Log10(3), float64(pos[4]), 1e-6)
	assert.InDelta(t, 2, float64(pos[5]), 1e-6)
	for _, p := range pos {
		assert.False(t, math.IsNaN(float64(p)) || math.IsInf(float64(p), 0))
	}
	sr := &Series{Positions: pos, Indices: idx}
	assert.Equal(t, 2*(n-1), sr.DrawCount())
}

func TestSeriesTruncation(t *testing.T) {
	lg5 := float32(math.Log10(5))
	tests := []struct {
		name string
		pts  XYs
		sc   SeriesScale
		want []float32
	}{
		{"neighbor below on both", XYs{{-1, 5}, {0.01, 0.01}}, logScale,
			[]float32{-2, -2, -2, -2}},
		{"neighbor below on x", XYs{{-1, 5}, {0.01, 5}}, logScale,
			[]float32{-2, lg5, -2, lg5}},
		{"neighbor in range", XYs{{-1, 5}, {1, 5}}, logScale,
			[]float32{-2, lg5, 0, lg5}},
		{"y non-positive, neighbor below on y", XYs{{5, 0}, {5, 0.05}}, logScale,
			[]float32{lg5, -2, lg5, float32(math.Log10(0.05))}},
		{"last point uses previous", XYs{{1, 1}, {-1, 1}}, logScale,
			[]float32{0, 0, -2, 0}},
		{"last point, previous below on both", XYs{{0.01, 0.01}, {-1, 1}}, logScale,
			[]float32{-2, -2, -2, -2}},
		{"lone point", XYs{{-1, 5}}, SeriesScale{LogX: true, LogBottomX: 0.1, LogBottomY: 0.1},
			[]float32{-2, 5}},
		{"linear y ignores neighbor", XYs{{-1, 5}, {0.01, -3}}, SeriesScale{LogX: true, LogBottomX: 1, LogBottomY: 1},
			[]float32{-1, 5, -2, -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, _ := BuildSeriesBuffers(tt.pts, tt.sc, nil, nil)
			assert.InDeltaSlice(t, tt.want, pos, 1e-6)
		})
	}
}

func TestSeriesBuffersReuse(t *testing.T) {
	sr := newSeries()
	sr.Points = XYs{{1, 1}, {2, 2}, {3, 3}}
	sr.rebuild(logScale)
	assert.True(t, sr.stale)
	p := &sr.Positions[0]
	sr.Points = sr.Points[:2]
	sr.rebuild(logScale)
	assert.Same(t, p, &sr.Positions[0])
	assert.Len(t, sr.Positions, 4)
	assert.Equal(t, []uint32{0, 1}, sr.Indices)
}
