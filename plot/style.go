// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"
)

// AxisStyle has the visibility and color properties of one axis side.
type AxisStyle struct {

	// Label is the axis label text.
	Label string

	// LabelVisible is whether the axis label is drawn,
	// which reserves a label band in the layout.
	LabelVisible bool

	// TickLabelVisible is whether the tick labels are drawn,
	// which reserves a tick label band in the layout.
	TickLabelVisible bool

	// GridVisible is whether the primary gridlines are drawn.
	GridVisible bool

	// SecGridVisible is whether the secondary gridlines are drawn.
	SecGridVisible bool

	// TicksVisible is whether the primary tick marks are drawn.
	TicksVisible bool

	// SecTicksVisible is whether the secondary tick marks are drawn.
	SecTicksVisible bool

	// GridColor is the color of the primary gridlines.
	GridColor color.RGBA

	// SecGridColor is the color of the secondary gridlines.
	SecGridColor color.RGBA

	// TickColor is the color of the tick marks.
	TickColor color.RGBA
}

// Defaults sets the default colors, with everything hidden.
func (as *AxisStyle) Defaults() {
	*as = AxisStyle{}
	as.GridColor = color.RGBA{200, 200, 200, 255}
	as.SecGridColor = color.RGBA{232, 232, 232, 255}
	as.TickColor = color.RGBA{0, 0, 0, 255}
}

// SetVisible sets all of the visibility flags of the side.
func (as *AxisStyle) SetVisible(on bool) {
	as.LabelVisible = on
	as.TickLabelVisible = on
	as.GridVisible = on
	as.SecGridVisible = on
	as.TicksVisible = on
	as.SecTicksVisible = on
}

// PlotStyle has the overall plot properties.
type PlotStyle struct {

	// Title is the title text drawn above the plot pane.
	Title string

	// TitleVisible is whether the title is drawn,
	// which reserves a title band in the layout.
	TitleVisible bool

	// FrameVisible is whether the frame border around the pane is drawn.
	FrameVisible bool

	// Background is the color the frame is cleared to.
	Background color.RGBA

	// FrameColor is the color of the frame border.
	FrameColor color.RGBA

	// TextColor is the color of the title and all labels.
	TextColor color.RGBA
}

// Defaults sets the default plot style: white background,
// black frame and text, with the frame and title visible.
func (ps *PlotStyle) Defaults() {
	ps.Title = ""
	ps.TitleVisible = true
	ps.FrameVisible = true
	ps.Background = color.RGBA{255, 255, 255, 255}
	ps.FrameColor = color.RGBA{0, 0, 0, 255}
	ps.TextColor = color.RGBA{0, 0, 0, 255}
}

// defaultSides returns the default axis styles: Bottom and Left
// fully visible, Top and Right hidden.
func defaultSides() Sides[AxisStyle] {
	var ss Sides[AxisStyle]
	ss.Each(func(a Axis, as *AxisStyle) {
		as.Defaults()
		as.SetVisible(a == Bottom || a == Left)
	})
	return ss
}

// toRGBA converts any color to [color.RGBA]. A nil color is an error.
func toRGBA(c color.Color) (color.RGBA, error) {
	switch c := c.(type) {
	case nil:
		return color.RGBA{}, ErrNilColor
	case color.RGBA:
		return c, nil
	}
	return color.RGBAModel.Convert(c).(color.RGBA), nil
}
