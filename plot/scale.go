// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"

	"cogentcore.org/lineplot/math32/minmax"
)

// maxTicks bounds the number of ticks and labels generated for one
// axis, so that a tiny step relative to the range cannot run away.
const maxTicks = 1 << 14

// maxSecTicks bounds the number of secondary ticks per primary interval.
const maxSecTicks = 100

// AxisScale holds the range and tick state of one axis side.
// Both a linear and a logarithmic range are kept, and the one in
// use is selected by the log mode of the axis [Direction].
type AxisScale struct {

	// Range is the linear range, with Min the bottom and Max the top.
	Range minmax.F64

	// LogRange is the logarithmic range, with Min the bottom and Max the top.
	// Both values are always > 0.
	LogRange minmax.F64

	// Step is the distance between primary ticks in linear mode.
	// In log mode the step is always one decade.
	Step float64

	// SecTicks is the number of secondary ticks drawn between
	// consecutive primary ticks in linear mode.
	SecTicks int
}

// NewAxisScale returns a new [AxisScale] with defaults applied.
func NewAxisScale() AxisScale {
	as := AxisScale{}
	as.Defaults()
	return as
}

// Defaults sets the range to 0-10, the log range to 0.1-10,
// the step to 2 and the number of secondary ticks to 4.
func (as *AxisScale) Defaults() {
	as.Range.Set(0, 10)
	as.LogRange.Set(0.1, 10)
	as.Step = 2
	as.SecTicks = 4
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SetRange sets the linear range. Both bounds are updated together,
// or neither if the range is invalid (top <= bottom).
func (as *AxisScale) SetRange(top, bottom float64) error {
	r := minmax.F64{Min: bottom, Max: top}
	if !finite(top) || !finite(bottom) || !r.IsOpen() {
		return fmt.Errorf("range [%g, %g]: %w", bottom, top, ErrInvalidRange)
	}
	as.Range.Set(bottom, top)
	return nil
}

// SetTopRange sets the top of the linear range, keeping the bottom.
func (as *AxisScale) SetTopRange(top float64) error {
	return as.SetRange(top, as.Range.Min)
}

// SetBottomRange sets the bottom of the linear range, keeping the top.
func (as *AxisScale) SetBottomRange(bottom float64) error {
	return as.SetRange(as.Range.Max, bottom)
}

// SetLogRange sets the logarithmic range. Both bounds must be > 0
// and top > bottom; otherwise the range is left unchanged.
func (as *AxisScale) SetLogRange(top, bottom float64) error {
	r := minmax.F64{Min: bottom, Max: top}
	if !finite(top) || !finite(bottom) || !r.IsPositive() || !r.IsOpen() {
		return fmt.Errorf("log range [%g, %g]: %w", bottom, top, ErrInvalidLogRange)
	}
	as.LogRange.Set(bottom, top)
	return nil
}

// SetLogTopRange sets the top of the log range, keeping the bottom.
func (as *AxisScale) SetLogTopRange(top float64) error {
	return as.SetLogRange(top, as.LogRange.Min)
}

// SetLogBottomRange sets the bottom of the log range, keeping the top.
func (as *AxisScale) SetLogBottomRange(bottom float64) error {
	return as.SetLogRange(as.LogRange.Max, bottom)
}

// Top returns the top of the linear range.
func (as *AxisScale) Top() float64 { return as.Range.Max }

// Bottom returns the bottom of the linear range.
func (as *AxisScale) Bottom() float64 { return as.Range.Min }

// LogTop returns the top of the log range.
func (as *AxisScale) LogTop() float64 { return as.LogRange.Max }

// LogBottom returns the bottom of the log range.
func (as *AxisScale) LogBottom() float64 { return as.LogRange.Min }

// SetStep sets the linear tick step, which must be > 0.
func (as *AxisScale) SetStep(step float64) error {
	if !finite(step) || !(step > 0) {
		return fmt.Errorf("step %g: %w", step, ErrInvalidStep)
	}
	as.Step = step
	return nil
}

// SetTickCount sets the step such that the linear range is
// divided into n intervals.
func (as *AxisScale) SetTickCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("tick count %d: %w", n, ErrInvalidStep)
	}
	as.Step = as.Range.Range() / float64(n)
	return nil
}

// SetSecTicks sets the number of secondary ticks per primary interval,
// which must be in [0, maxSecTicks].
func (as *AxisScale) SetSecTicks(n int) error {
	if n < 0 || n > maxSecTicks {
		return fmt.Errorf("secondary tick count %d: %w", n, ErrInvalidStep)
	}
	as.SecTicks = n
	return nil
}

// TickCount returns the number of primary ticks for the linear
// range and step: ceil((top - bottom) / step).
func (as *AxisScale) TickCount() int {
	return tickCount(as.Range.Range(), as.Step)
}

// LogTickCount returns the number of decades spanned by the log range.
func (as *AxisScale) LogTickCount() int {
	return tickCount(as.LogRange.Log10().Range(), 1)
}

// Bounds returns the range in the space in which ticks are laid
// out: the linear range, or the log10 of the log range.
func (as *AxisScale) Bounds(log bool) minmax.F64 {
	if log {
		return as.LogRange.Log10()
	}
	return as.Range
}

// Norm returns the normalized 0-1 position of the given data value
// along this axis, which is outside of 0-1 for values out of range.
// It returns NaN for non-positive values in log mode.
func (as *AxisScale) Norm(v float64, log bool) float64 {
	b := as.Bounds(log)
	if log {
		if v <= 0 {
			return math.NaN()
		}
		v = math.Log10(v)
	}
	return b.Norm(v)
}

func tickCount(rng, step float64) int {
	n := math.Ceil(snap(rng / step))
	if !(n > 0) {
		return 0
	}
	return int(min(n, maxTicks))
}

// snap returns the nearest integer to v if v is within a small
// tolerance of it, and v otherwise, absorbing floating point error
// in ratios and logarithms that are meant to be integral.
func snap(v float64) float64 {
	r := math.Round(v)
	if math.Abs(v-r) < 1e-9 {
		return r
	}
	return v
}
