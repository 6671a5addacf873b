// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"

	"cogentcore.org/lineplot/math32"
	"cogentcore.org/lineplot/math32/minmax"
)

// Transform maps series positions into a fixed range: x into [0, 2]
// from bottom to top, and y into [-2, 0], mirrored so that data Y
// grows upward while screen Y grows downward.
type Transform struct {
	XScale, XOffset float64
	YScale, YOffset float64
}

// NewTransform returns the transform for the given horizontal and
// vertical bounds, which are already in log10 space for log axes.
func NewTransform(x, y minmax.F64) Transform {
	var tr Transform
	tr.XScale = 2 / x.Range()
	tr.XOffset = -x.Min * tr.XScale
	tr.YScale = -2 / y.Range()
	tr.YOffset = -y.Min * tr.YScale
	return tr
}

// Normalize returns the position of the given series position
// in the [0, 1] unit square of the plot pane, with y up.
func (tr *Transform) Normalize(x, y float64) (u, v float64) {
	u = 0.5 * (tr.XScale*x + tr.XOffset)
	v = -0.5 * (tr.YScale*y + tr.YOffset)
	return
}

// Projection has the matrices used to draw, all mapping into
// the clip space of the whole frame.
type Projection struct {
	// Grid maps the [0, 1] unit square of the pane, with y up,
	// onto the pane. Gridlines and tick marks use it.
	Grid math32.Matrix4

	// Data maps series positions onto the pane: Grid
	// times the [Transform].
	Data math32.Matrix4

	// Screen maps frame pixels, with y down. The frame uses it.
	Screen math32.Matrix4
}

// NewProjection returns the projection matrices for a frame
// of the given size with the given pane and transform.
func NewProjection(size image.Point, pane math32.Box2, tr Transform) Projection {
	var pr Projection
	pr.Screen = math32.Ortho2D(0, float32(size.X), float32(size.Y), 0)
	ps := pane.Size()
	pr.Grid = pr.Screen.Mul(math32.Translation4(pane.Min.X, pane.Max.Y, 0)).Mul(math32.Scale4(ps.X, -ps.Y, 1))
	norm := math32.Translation4(float32(0.5*tr.XOffset), float32(-0.5*tr.YOffset), 0).
		Mul(math32.Scale4(float32(0.5*tr.XScale), float32(-0.5*tr.YScale), 1))
	pr.Data = pr.Grid.Mul(norm)
	return pr
}
