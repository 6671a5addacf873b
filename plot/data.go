// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"

	"cogentcore.org/lineplot/base/errors"
	"cogentcore.org/lineplot/math32/minmax"
	"github.com/aclements/go-moremath/stats"
)

var (
	// ErrInfinity is returned for a point with an infinite coordinate.
	ErrInfinity = errors.New("plot: infinite data point")

	// ErrNoData is returned when fitting a range to no usable values.
	ErrNoData = errors.New("plot: no data points")
)

// XY is one data point.
type XY struct {
	X, Y float64
}

// XYs is an ordered sequence of data points, which is
// the render order along the polyline.
type XYs []XY

// Values returns the X and Y values as separate slices.
func (xy XYs) Values() (xs, ys []float64) {
	xs = make([]float64, len(xy))
	ys = make([]float64, len(xy))
	for i, p := range xy {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return
}

// Check returns an error for the first point with an infinite
// coordinate. NaN coordinates are allowed: they are skipped when
// fitting ranges.
func (xy XYs) Check() error {
	for i, p := range xy {
		if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("point %d (%g, %g): %w", i, p.X, p.Y, ErrInfinity)
		}
	}
	return nil
}

// Bounds returns the range of the given values, ignoring NaN and
// Inf values, and for positive, also values <= 0. It returns
// [ErrNoData] if no value qualifies.
func Bounds(vs []float64, positive bool) (minmax.F64, error) {
	fs := make([]float64, 0, len(vs))
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) || (positive && v <= 0) {
			continue
		}
		fs = append(fs, v)
	}
	if len(fs) == 0 {
		return minmax.F64{}, ErrNoData
	}
	mn, mx := stats.Bounds(fs)
	return minmax.F64{Min: mn, Max: mx}, nil
}
