// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"

	"cogentcore.org/lineplot/math32"
)

// FrameIndices are the line segment indices connecting the four
// corners of [Layout.Frame] into a closed rectangle.
var FrameIndices = [8]uint32{0, 1, 1, 2, 2, 3, 3, 0}

// LayoutInput has everything the layout depends on.
type LayoutInput struct {
	// Size is the widget size in pixels.
	Size image.Point

	// LineHeight is the height of one line of text at size 1.
	LineHeight float32

	// Title is whether the title is visible.
	Title bool

	// Labels is whether the axis label of each side is visible.
	Labels Sides[bool]

	// TickLabels is whether the tick labels of each side are visible.
	TickLabels Sides[bool]
}

// Layout is the result of the layout computation, in widget pixels
// with Y growing downward. Rectangles of hidden elements are zero.
type Layout struct {
	// Pane is the plot pane holding the gridlines and data.
	Pane math32.Box2

	// Title is the title rectangle, above the pane.
	Title math32.Box2

	// Labels are the axis label rectangles.
	Labels Sides[math32.Box2]

	// TickLabels are the tick label rectangles, flush against the pane.
	TickLabels Sides[math32.Box2]

	// Frame has the 4 corners of the pane, clockwise from the top left,
	// as x, y pairs.
	Frame [8]float32
}

// band is a reserved strip of the widget, as the
// [start, end) coordinates across it.
type band struct {
	start, end float32
}

// ComputeLayout computes the layout for the given input into lay.
// Starting from the full widget, it removes a frame margin, then the
// title band, then for each side the axis label band and the tick label
// band, and the remainder is the plot pane. The result only depends
// on the input.
func ComputeLayout(in LayoutInput, lay *Layout) {
	*lay = Layout{}
	w := float32(in.Size.X)
	h := float32(in.Size.Y)
	lh := in.LineHeight

	mx := math32.Min(5, math32.Floor(w*0.05))
	my := math32.Min(5, math32.Floor(h*0.05))
	r := math32.B2(mx, my, w-mx, h-my)

	var title band
	if in.Title {
		th := math32.Min(h*0.15, 3*lh)
		title = band{r.Min.Y, r.Min.Y + th}
		r.Min.Y += th
	}

	labelH := math32.Min(1.5*lh, math32.Floor(h*0.05))
	labelW := math32.Min(1.5*lh, math32.Floor(w*0.05))
	tickH := math32.Min(1.5*lh, math32.Floor(h*0.05))
	tickW := math32.Min(4*1.5*lh, math32.Floor(w*0.05))

	var labels Sides[band]
	reserve := func(vis *Sides[bool], bands *Sides[band], bw, bh float32) {
		if vis.Bottom {
			bands.Bottom = band{r.Max.Y - bh, r.Max.Y}
			r.Max.Y -= bh
		}
		if vis.Top {
			bands.Top = band{r.Min.Y, r.Min.Y + bh}
			r.Min.Y += bh
		}
		if vis.Left {
			bands.Left = band{r.Min.X, r.Min.X + bw}
			r.Min.X += bw
		}
		if vis.Right {
			bands.Right = band{r.Max.X - bw, r.Max.X}
			r.Max.X -= bw
		}
	}
	reserve(&in.Labels, &labels, labelW, labelH)
	var ticks Sides[band]
	reserve(&in.TickLabels, &ticks, tickW, tickH)

	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	pane := r
	lay.Pane = pane

	if in.Title {
		lay.Title = math32.B2(pane.Min.X, title.start, pane.Max.X, title.end)
	}
	place := func(vis *Sides[bool], bands *Sides[band], rects *Sides[math32.Box2]) {
		if vis.Bottom {
			rects.Bottom = math32.B2(pane.Min.X, bands.Bottom.start, pane.Max.X, bands.Bottom.end)
		}
		if vis.Top {
			rects.Top = math32.B2(pane.Min.X, bands.Top.start, pane.Max.X, bands.Top.end)
		}
		if vis.Left {
			rects.Left = math32.B2(bands.Left.start, pane.Min.Y, bands.Left.end, pane.Max.Y)
		}
		if vis.Right {
			rects.Right = math32.B2(bands.Right.start, pane.Min.Y, bands.Right.end, pane.Max.Y)
		}
	}
	place(&in.Labels, &labels, &lay.Labels)
	place(&in.TickLabels, &ticks, &lay.TickLabels)

	lay.Frame = [8]float32{
		pane.Min.X, pane.Min.Y,
		pane.Max.X, pane.Min.Y,
		pane.Max.X, pane.Max.Y,
		pane.Min.X, pane.Max.Y,
	}
}
