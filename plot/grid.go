// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "math"

const (
	// TickLength is the length of primary tick marks,
	// as a fraction of the plot pane.
	TickLength = 0.02

	// SecTickLength is the length of secondary tick marks,
	// as a fraction of the plot pane.
	SecTickLength = 0.01
)

// logSecTicks are the positions of the secondary ticks within one
// decade: log10(2) ... log10(9).
var logSecTicks = func() [8]float64 {
	var ts [8]float64
	for i := range ts {
		ts[i] = math.Log10(float64(i + 2))
	}
	return ts
}()

// GridLines holds the normalized line segment vertices for one axis
// side. Each line is 4 floats: x0, y0, x1, y1, in the [0, 1] unit
// square of the plot pane with Y growing upward. Lines slightly
// outside of the unit square are generated on purpose so that the
// grid reaches the pane edges; the pane clip removes the excess.
type GridLines struct {
	// Primary has full-length lines at the primary ticks.
	Primary []float32

	// Secondary has full-length lines at the secondary ticks.
	Secondary []float32

	// PrimaryTicks has short tick marks at the primary ticks.
	PrimaryTicks []float32

	// SecondaryTicks has short tick marks at the secondary ticks.
	SecondaryTicks []float32
}

// VertexCount returns the number of vertices in the given line list.
func VertexCount(lines []float32) int {
	return len(lines) / 2
}

// tickLayout is the normalized placement of the primary ticks of one axis.
type tickLayout struct {
	// unit is the distance between primary ticks.
	unit float64

	// rem is the position of the first primary tick.
	rem float64

	// count is the number of primary ticks.
	count int
}

// layoutTicks returns the placement of primary ticks for the given
// range and step, with the first tick on the first multiple of step
// that is >= bot. For bot <= 0, rem is |bot mod step| / (top - bot).
func layoutTicks(bot, top, step float64) tickLayout {
	rng := top - bot
	if !(rng > 0) || !(step > 0) {
		return tickLayout{}
	}
	first := math.Ceil(snap(bot/step)) * step
	return tickLayout{
		unit:  step / rng,
		rem:   (first - bot) / rng,
		count: tickCount(rng, step),
	}
}

// Build recomputes the grid lines of the given side from the axis
// scale, in log or linear mode, reusing the existing slices.
func (gl *GridLines) Build(a Axis, as *AxisScale, log bool) {
	gl.Primary = gl.Primary[:0]
	gl.Secondary = gl.Secondary[:0]
	gl.PrimaryTicks = gl.PrimaryTicks[:0]
	gl.SecondaryTicks = gl.SecondaryTicks[:0]

	var tl tickLayout
	if log {
		b := as.LogRange.Log10()
		tl = layoutTicks(b.Min, b.Max, 1)
	} else {
		tl = layoutTicks(as.Range.Min, as.Range.Max, as.Step)
	}
	if tl.count == 0 {
		return
	}

	for i := 0; i < tl.count; i++ {
		p := tl.rem + float64(i)*tl.unit
		gl.Primary = appendLine(gl.Primary, a, p, 1)
		gl.PrimaryTicks = appendLine(gl.PrimaryTicks, a, p, TickLength)
	}

	// secondary ticks cover one extra interval on each side,
	// to fill partial intervals at the pane edges.
	for k := -1; k <= tl.count; k++ {
		base := tl.rem + float64(k)*tl.unit
		if log {
			for _, m := range logSecTicks {
				p := base + m*tl.unit
				gl.Secondary = appendLine(gl.Secondary, a, p, 1)
				gl.SecondaryTicks = appendLine(gl.SecondaryTicks, a, p, SecTickLength)
			}
			continue
		}
		// the total number of secondary lines is also bounded by maxTicks
		n := min(as.SecTicks, maxTicks/(tl.count+2))
		sub := tl.unit / float64(n+1)
		for j := 1; j <= n; j++ {
			p := base + float64(j)*sub
			gl.Secondary = appendLine(gl.Secondary, a, p, 1)
			gl.SecondaryTicks = appendLine(gl.SecondaryTicks, a, p, SecTickLength)
		}
	}
}

// appendLine appends a line at normalized position p for the given
// side, starting at the side's pane edge and extending length into
// the pane. Bottom and Top ticks are vertical lines at x = p, Left
// and Right ticks are horizontal lines at y = p.
func appendLine(dst []float32, a Axis, p, length float64) []float32 {
	v := float32(p)
	l := float32(length)
	switch a {
	case Bottom:
		return append(dst, v, 0, v, l)
	case Top:
		return append(dst, v, 1, v, 1-l)
	case Left:
		return append(dst, 0, v, l, v)
	default:
		return append(dst, 1, v, 1-l, v)
	}
}
