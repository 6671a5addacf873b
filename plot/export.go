// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"image/color"
	"slices"
)

// SeriesView is the exported state of one series.
type SeriesView struct {
	Points  XYs
	Color   color.RGBA
	Visible bool
}

// View is a snapshot of everything needed to draw the plot
// without the backend buffers, used by vector export.
type View struct {
	Size       image.Point
	Layout     Layout
	Style      PlotStyle
	Axes       Sides[AxisStyle]
	Scales     Sides[AxisScale]
	TickLabels Sides[[]TickLabel]

	// LogX and LogY are the log modes of the
	// Horizontal and Vertical directions.
	LogX, LogY bool

	Series []SeriesView
}

// IsLog returns whether the direction of the given side is in log mode.
func (v *View) IsLog(a Axis) bool {
	if a.Direction() == Horizontal {
		return v.LogX
	}
	return v.LogY
}

// ExportView returns a consistent snapshot of the plot state.
func (pt *Plot) ExportView() *View {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	v := &View{
		Size:   pt.size,
		Layout: pt.layout,
		Style:  pt.style,
		Axes:   pt.axes,
		Scales: pt.scales,
		LogX:   pt.logX,
		LogY:   pt.logY,
	}
	v.TickLabels.Each(func(a Axis, tl *[]TickLabel) {
		*tl = slices.Clone(*pt.labels.Get(a))
	})
	for _, sr := range pt.series {
		v.Series = append(v.Series, SeriesView{
			Points:  slices.Clone(sr.Points),
			Color:   sr.Color,
			Visible: sr.Visible,
		})
	}
	return v
}

// TickSpacing returns the normalized distance between the primary
// ticks of the given side.
func (v *View) TickSpacing(a Axis) float64 {
	return tickSpacing(v.Scales.Get(a), v.IsLog(a))
}
