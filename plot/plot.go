// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot provides a live 2D line plot: data series drawn inside
// a pane with linear or logarithmic axes on each of its four sides,
// gridlines, tick marks, labels and a title.
//
// The [Plot] owns the axis state and the series, and recomputes its
// layout, grid geometry, series buffers and transform whenever their
// inputs change. Drawing goes through the [Backend] and [TextRenderer]
// interfaces, so the plot does not depend on any graphics API.
//
// All methods of [Plot] are safe for concurrent use: a producer goroutine
// may add points while another goroutine calls [Plot.Render].
package plot

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"
	"sync"

	"cogentcore.org/lineplot/base/errors"
	"cogentcore.org/lineplot/math32/minmax"
)

// DefaultLineHeight is the text line height used for the
// layout when the plot has no [TextRenderer].
const DefaultLineHeight = 13

// Plot is a live 2D line plot.
type Plot struct {
	mu sync.Mutex

	// policy is applied to all validation errors.
	policy errors.Policy

	// text measures and draws text. It may be nil.
	text TextRenderer

	// size is the widget size in pixels.
	size image.Point

	style  PlotStyle
	axes   Sides[AxisStyle]
	scales Sides[AxisScale]

	// logX and logY are the log modes of the
	// Horizontal and Vertical directions.
	logX, logY bool

	series []*Series

	// derived state
	layout    Layout
	grid      Sides[GridLines]
	labels    Sides[[]TickLabel]
	transform Transform
	proj      Projection

	// render state, see draw.go
	backend    Backend
	gridBufs   Sides[gridBuffers]
	frameVB    BufferID
	frameIB    BufferID
	frameStale bool
}

// NewPlot returns a new plot with default settings, using the given
// text renderer for the layout and labels. Text may be nil, in which
// case no text is drawn but the layout still reserves its bands.
func NewPlot(text TextRenderer) *Plot {
	pt := &Plot{policy: errors.DefaultPolicy, text: text}
	pt.style.Defaults()
	pt.axes = defaultSides()
	pt.scales.Each(func(a Axis, as *AxisScale) {
		as.Defaults()
	})
	pt.refresh()
	return pt
}

// SetPolicy sets the policy applied to validation errors,
// which defaults to [errors.DefaultPolicy].
func (pt *Plot) SetPolicy(p errors.Policy) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.policy = p
}

// Policy returns the policy applied to validation errors.
func (pt *Plot) Policy() errors.Policy {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.policy
}

// check reports a non-nil error under the current policy.
func (pt *Plot) check(err error) error {
	return errors.Check(pt.policy, err)
}

// checkAxis returns an error for an axis that is not one of the four sides.
func (pt *Plot) checkAxis(a Axis) error {
	if a.IsValid() {
		return nil
	}
	return pt.check(fmt.Errorf("%s: %w", a, ErrInvalidAxis))
}

// SetTextRenderer sets the text renderer and updates the layout.
func (pt *Plot) SetTextRenderer(text TextRenderer) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.text = text
	pt.relayout()
}

// Resize sets the widget size in pixels and updates the layout.
func (pt *Plot) Resize(size image.Point) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if size == pt.size {
		return
	}
	pt.size = size
	pt.relayout()
}

// Size returns the widget size in pixels.
func (pt *Plot) Size() image.Point {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.size
}

// Refresh recomputes all derived state from scratch.
func (pt *Plot) Refresh() {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.refresh()
}

func (pt *Plot) refresh() {
	for _, a := range Axes {
		pt.regrid(a)
	}
	pt.relayout()
	pt.retransform()
	pt.rebuildSeries()
}

// isLog returns whether the direction of the given side is in log mode.
func (pt *Plot) isLog(a Axis) bool {
	if a.Direction() == Horizontal {
		return pt.logX
	}
	return pt.logY
}

func (pt *Plot) lineHeight() float32 {
	if pt.text == nil {
		return DefaultLineHeight
	}
	return pt.text.LineHeight()
}

// relayout recomputes the layout and the projection.
func (pt *Plot) relayout() {
	in := LayoutInput{
		Size:       pt.size,
		LineHeight: pt.lineHeight(),
		Title:      pt.style.TitleVisible,
	}
	pt.axes.Each(func(a Axis, as *AxisStyle) {
		*in.Labels.Get(a) = as.LabelVisible
		*in.TickLabels.Get(a) = as.TickLabelVisible
	})
	ComputeLayout(in, &pt.layout)
	pt.frameStale = true
	pt.reproject()
}

// regrid recomputes the gridlines and tick labels of the given side.
func (pt *Plot) regrid(a Axis) {
	log := pt.isLog(a)
	sc := pt.scales.Get(a)
	pt.grid.Get(a).Build(a, sc, log)
	lb := pt.labels.Get(a)
	*lb = sc.Labels(log, (*lb)[:0])
	pt.gridBufs.Get(a).stale = true
}

// retransform recomputes the transform from the Bottom and Left
// axes, and the projection.
func (pt *Plot) retransform() {
	pt.transform = NewTransform(pt.scales.Bottom.Bounds(pt.logX), pt.scales.Left.Bounds(pt.logY))
	pt.reproject()
}

func (pt *Plot) reproject() {
	pt.proj = NewProjection(pt.size, pt.layout.Pane, pt.transform)
}

func (pt *Plot) seriesScale() SeriesScale {
	return SeriesScale{
		LogX:       pt.logX,
		LogY:       pt.logY,
		LogBottomX: pt.scales.Bottom.LogRange.Min,
		LogBottomY: pt.scales.Left.LogRange.Min,
	}
}

func (pt *Plot) rebuildSeries() {
	sc := pt.seriesScale()
	for _, sr := range pt.series {
		sr.rebuild(sc)
	}
}

// scaleChanged updates the derived state after the scale
// of the given side changed.
func (pt *Plot) scaleChanged(a Axis) {
	pt.regrid(a)
	if a == Bottom || a == Left {
		pt.retransform()
		if pt.isLog(a) {
			pt.rebuildSeries()
		}
	}
}

//////// Ranges

// SetRange sets the linear range of the given side. If top <= bottom
// the range is rejected and stays unchanged.
func (pt *Plot) SetRange(a Axis, top, bottom float64) error {
	return pt.setScale(a, func(as *AxisScale) error { return as.SetRange(top, bottom) })
}

// SetTopRange sets the top of the linear range of the given side.
func (pt *Plot) SetTopRange(a Axis, top float64) error {
	return pt.setScale(a, func(as *AxisScale) error { return as.SetTopRange(top) })
}

// SetBottomRange sets the bottom of the linear range of the given side.
func (pt *Plot) SetBottomRange(a Axis, bottom float64) error {
	return pt.setScale(a, func(as *AxisScale) error { return as.SetBottomRange(bottom) })
}

// SetLogRange sets the logarithmic range of the given side. If either
// bound is <= 0 or top <= bottom the range is rejected and stays unchanged.
func (pt *Plot) SetLogRange(a Axis, top, bottom float64) error {
	return pt.setScale(a, func(as *AxisScale) error { return as.SetLogRange(top, bottom) })
}

// SetLogTopRange sets the top of the log range of the given side.
func (pt *Plot) SetLogTopRange(a Axis, top float64) error {
	return pt.setScale(a, func(as *AxisScale) error { return as.SetLogTopRange(top) })
}

// SetLogBottomRange sets the bottom of the log range of the given side.
func (pt *Plot) SetLogBottomRange(a Axis, bottom float64) error {
	return pt.setScale(a, func(as *AxisScale) error { return as.SetLogBottomRange(bottom) })
}

// SetTickStep sets the distance between primary ticks of the given side.
func (pt *Plot) SetTickStep(a Axis, step float64) error {
	return pt.setScale(a, func(as *AxisScale) error { return as.SetStep(step) })
}

// SetTickCount sets the tick step of the given side such that
// its linear range is divided into n intervals.
func (pt *Plot) SetTickCount(a Axis, n int) error {
	return pt.setScale(a, func(as *AxisScale) error { return as.SetTickCount(n) })
}

// SetSecTickCount sets the number of secondary ticks between
// primary ticks of the given side.
func (pt *Plot) SetSecTickCount(a Axis, n int) error {
	return pt.setScale(a, func(as *AxisScale) error { return as.SetSecTicks(n) })
}

// setScale applies fun to the scale of the given side, and updates
// the derived state if it succeeds.
func (pt *Plot) setScale(a Axis, fun func(as *AxisScale) error) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if err := pt.checkAxis(a); err != nil {
		return err
	}
	if err := fun(pt.scales.Get(a)); err != nil {
		return pt.check(fmt.Errorf("%s: %w", a, err))
	}
	pt.scaleChanged(a)
	return nil
}

// scale returns a copy of the scale of the given side,
// which is zero for an invalid side.
func (pt *Plot) scale(a Axis) AxisScale {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if !a.IsValid() {
		return AxisScale{}
	}
	return *pt.scales.Get(a)
}

// Scale returns a copy of the scale state of the given side.
func (pt *Plot) Scale(a Axis) AxisScale { return pt.scale(a) }

// TopRange returns the top of the linear range of the given side.
func (pt *Plot) TopRange(a Axis) float64 {
	sc := pt.scale(a)
	return sc.Top()
}

// BottomRange returns the bottom of the linear range of the given side.
func (pt *Plot) BottomRange(a Axis) float64 {
	sc := pt.scale(a)
	return sc.Bottom()
}

// LogTopRange returns the top of the log range of the given side.
func (pt *Plot) LogTopRange(a Axis) float64 {
	sc := pt.scale(a)
	return sc.LogTop()
}

// LogBottomRange returns the bottom of the log range of the given side.
func (pt *Plot) LogBottomRange(a Axis) float64 {
	sc := pt.scale(a)
	return sc.LogBottom()
}

// TickStep returns the tick step of the given side.
func (pt *Plot) TickStep(a Axis) float64 {
	return pt.scale(a).Step
}

// TickCount returns the number of primary ticks of the given side,
// in its current linear or log mode.
func (pt *Plot) TickCount(a Axis) int {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if !a.IsValid() {
		return 0
	}
	if pt.isLog(a) {
		return pt.scales.Get(a).LogTickCount()
	}
	return pt.scales.Get(a).TickCount()
}

// SecTickCount returns the number of secondary ticks between
// primary ticks of the given side.
func (pt *Plot) SecTickCount(a Axis) int {
	return pt.scale(a).SecTicks
}

// FitRange sets the range of the given side to the bounds of the
// visible series data along its direction: X for Bottom and Top,
// Y for Left and Right. In log mode the log range is fitted to
// the positive values.
func (pt *Plot) FitRange(a Axis) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if err := pt.checkAxis(a); err != nil {
		return err
	}
	var vs []float64
	for _, sr := range pt.series {
		if !sr.Visible {
			continue
		}
		xs, ys := sr.Points.Values()
		if a.Direction() == Horizontal {
			vs = append(vs, xs...)
		} else {
			vs = append(vs, ys...)
		}
	}
	log := pt.isLog(a)
	b, err := Bounds(vs, log)
	if err != nil {
		return pt.check(fmt.Errorf("%s: fit range: %w", a, err))
	}
	if b.Min == b.Max {
		b = padRange(b.Min, log)
	}
	sc := pt.scales.Get(a)
	if log {
		err = sc.SetLogRange(b.Max, b.Min)
	} else {
		err = sc.SetRange(b.Max, b.Min)
	}
	if err != nil {
		return pt.check(fmt.Errorf("%s: fit range: %w", a, err))
	}
	pt.scaleChanged(a)
	return nil
}

// padRange returns a range around the single value v, for fitting
// constant data: v ± 0.5 in linear mode, half a decade each way in log mode.
func padRange(v float64, log bool) minmax.F64 {
	if log {
		return minmax.F64{Min: v / math.Sqrt(10), Max: v * math.Sqrt(10)}
	}
	pad := max(0.5, math.Abs(v)*1e-9)
	return minmax.F64{Min: v - pad, Max: v + pad}
}

//////// Scale mode

// SetLogScale sets whether the given direction uses a logarithmic scale.
func (pt *Plot) SetLogScale(d Direction, on bool) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if !d.IsValid() {
		return pt.check(fmt.Errorf("%s: %w", d, ErrInvalidDirection))
	}
	if d == Horizontal {
		if pt.logX == on {
			return nil
		}
		pt.logX = on
		pt.regrid(Bottom)
		pt.regrid(Top)
	} else {
		if pt.logY == on {
			return nil
		}
		pt.logY = on
		pt.regrid(Left)
		pt.regrid(Right)
	}
	pt.retransform()
	pt.rebuildSeries()
	return nil
}

// SetLinearScale sets whether the given direction uses a linear scale.
func (pt *Plot) SetLinearScale(d Direction, on bool) error {
	return pt.SetLogScale(d, !on)
}

// IsLogScale returns whether the given direction uses a logarithmic scale.
func (pt *Plot) IsLogScale(d Direction) bool {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	switch d {
	case Horizontal:
		return pt.logX
	case Vertical:
		return pt.logY
	}
	return false
}

// IsLinearScale returns whether the given direction uses a linear scale.
func (pt *Plot) IsLinearScale(d Direction) bool {
	return d.IsValid() && !pt.IsLogScale(d)
}

//////// Style

// setAxis applies fun to the style of the given side. The layout is
// recomputed when relayout is set.
func (pt *Plot) setAxis(a Axis, relayout bool, fun func(as *AxisStyle)) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if err := pt.checkAxis(a); err != nil {
		return err
	}
	fun(pt.axes.Get(a))
	if relayout {
		pt.relayout()
	}
	return nil
}

// setAxisColor is [Plot.setAxis] for a color setter, which
// rejects a nil color.
func (pt *Plot) setAxisColor(a Axis, clr color.Color, fun func(as *AxisStyle, c color.RGBA)) error {
	c, err := toRGBA(clr)
	if err != nil {
		return pt.check(fmt.Errorf("%s: %w", a, err))
	}
	return pt.setAxis(a, false, func(as *AxisStyle) { fun(as, c) })
}

// axis returns a copy of the style of the given side,
// which is zero for an invalid side.
func (pt *Plot) axis(a Axis) AxisStyle {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if !a.IsValid() {
		return AxisStyle{}
	}
	return *pt.axes.Get(a)
}

// AxisStyle returns a copy of the style of the given side.
func (pt *Plot) AxisStyle(a Axis) AxisStyle { return pt.axis(a) }

// SetAxisVisible sets all of the visibility flags of the given side.
func (pt *Plot) SetAxisVisible(a Axis, on bool) error {
	return pt.setAxis(a, true, func(as *AxisStyle) { as.SetVisible(on) })
}

// SetLabel sets the axis label text of the given side.
func (pt *Plot) SetLabel(a Axis, label string) error {
	return pt.setAxis(a, false, func(as *AxisStyle) { as.Label = label })
}

// Label returns the axis label text of the given side.
func (pt *Plot) Label(a Axis) string { return pt.axis(a).Label }

// SetLabelVisible sets whether the axis label of the given side is shown.
func (pt *Plot) SetLabelVisible(a Axis, on bool) error {
	return pt.setAxis(a, true, func(as *AxisStyle) { as.LabelVisible = on })
}

// IsLabelVisible returns whether the axis label of the given side is shown.
func (pt *Plot) IsLabelVisible(a Axis) bool { return pt.axis(a).LabelVisible }

// SetTickLabelVisible sets whether the tick labels of the given side are shown.
func (pt *Plot) SetTickLabelVisible(a Axis, on bool) error {
	return pt.setAxis(a, true, func(as *AxisStyle) { as.TickLabelVisible = on })
}

// IsTickLabelVisible returns whether the tick labels of the given side are shown.
func (pt *Plot) IsTickLabelVisible(a Axis) bool { return pt.axis(a).TickLabelVisible }

// SetGridVisible sets whether the primary gridlines of the given side are shown.
func (pt *Plot) SetGridVisible(a Axis, on bool) error {
	return pt.setAxis(a, false, func(as *AxisStyle) { as.GridVisible = on })
}

// IsGridVisible returns whether the primary gridlines of the given side are shown.
func (pt *Plot) IsGridVisible(a Axis) bool { return pt.axis(a).GridVisible }

// SetSecGridVisible sets whether the secondary gridlines of the given side are shown.
func (pt *Plot) SetSecGridVisible(a Axis, on bool) error {
	return pt.setAxis(a, false, func(as *AxisStyle) { as.SecGridVisible = on })
}

// IsSecGridVisible returns whether the secondary gridlines of the given side are shown.
func (pt *Plot) IsSecGridVisible(a Axis) bool { return pt.axis(a).SecGridVisible }

// SetTicksVisible sets whether the primary tick marks of the given side are shown.
func (pt *Plot) SetTicksVisible(a Axis, on bool) error {
	return pt.setAxis(a, false, func(as *AxisStyle) { as.TicksVisible = on })
}

// IsTicksVisible returns whether the primary tick marks of the given side are shown.
func (pt *Plot) IsTicksVisible(a Axis) bool { return pt.axis(a).TicksVisible }

// SetSecTicksVisible sets whether the secondary tick marks of the given side are shown.
func (pt *Plot) SetSecTicksVisible(a Axis, on bool) error {
	return pt.setAxis(a, false, func(as *AxisStyle) { as.SecTicksVisible = on })
}

// IsSecTicksVisible returns whether the secondary tick marks of the given side are shown.
func (pt *Plot) IsSecTicksVisible(a Axis) bool { return pt.axis(a).SecTicksVisible }

// SetGridColor sets the primary gridline color of the given side.
func (pt *Plot) SetGridColor(a Axis, clr color.Color) error {
	return pt.setAxisColor(a, clr, func(as *AxisStyle, c color.RGBA) { as.GridColor = c })
}

// SetSecGridColor sets the secondary gridline color of the given side.
func (pt *Plot) SetSecGridColor(a Axis, clr color.Color) error {
	return pt.setAxisColor(a, clr, func(as *AxisStyle, c color.RGBA) { as.SecGridColor = c })
}

// SetTickColor sets the tick mark color of the given side.
func (pt *Plot) SetTickColor(a Axis, clr color.Color) error {
	return pt.setAxisColor(a, clr, func(as *AxisStyle, c color.RGBA) { as.TickColor = c })
}

// PlotStyle returns a copy of the overall plot style.
func (pt *Plot) PlotStyle() PlotStyle {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.style
}

// SetTitle sets the title text.
func (pt *Plot) SetTitle(title string) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.style.Title = title
}

// Title returns the title text.
func (pt *Plot) Title() string {
	return pt.PlotStyle().Title
}

// SetTitleVisible sets whether the title is shown.
func (pt *Plot) SetTitleVisible(on bool) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.style.TitleVisible = on
	pt.relayout()
}

// IsTitleVisible returns whether the title is shown.
func (pt *Plot) IsTitleVisible() bool {
	return pt.PlotStyle().TitleVisible
}

// SetFrameVisible sets whether the frame border is shown.
func (pt *Plot) SetFrameVisible(on bool) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.style.FrameVisible = on
}

// IsFrameVisible returns whether the frame border is shown.
func (pt *Plot) IsFrameVisible() bool {
	return pt.PlotStyle().FrameVisible
}

// SetBackground sets the color the frame is cleared to.
func (pt *Plot) SetBackground(clr color.Color) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	c, err := toRGBA(clr)
	if err != nil {
		return pt.check(err)
	}
	pt.style.Background = c
	return nil
}

// SetFrameColor sets the color of the frame border.
func (pt *Plot) SetFrameColor(clr color.Color) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	c, err := toRGBA(clr)
	if err != nil {
		return pt.check(err)
	}
	pt.style.FrameColor = c
	return nil
}

// SetTextColor sets the color of the title and labels.
func (pt *Plot) SetTextColor(clr color.Color) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	c, err := toRGBA(clr)
	if err != nil {
		return pt.check(err)
	}
	pt.style.TextColor = c
	return nil
}

//////// Derived state

// Layout returns the current layout.
func (pt *Plot) Layout() Layout {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.layout
}

// Transform returns the current data transform.
func (pt *Plot) Transform() Transform {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.transform
}

// Projection returns the current projection matrices.
func (pt *Plot) Projection() Projection {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.proj
}

// GridLines returns a copy of the gridlines of the given side.
func (pt *Plot) GridLines(a Axis) GridLines {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if !a.IsValid() {
		return GridLines{}
	}
	gl := pt.grid.Get(a)
	return GridLines{
		Primary:        slices.Clone(gl.Primary),
		Secondary:      slices.Clone(gl.Secondary),
		PrimaryTicks:   slices.Clone(gl.PrimaryTicks),
		SecondaryTicks: slices.Clone(gl.SecondaryTicks),
	}
}

// TickLabels returns a copy of the tick labels of the given side.
func (pt *Plot) TickLabels(a Axis) []TickLabel {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if !a.IsValid() {
		return nil
	}
	return slices.Clone(*pt.labels.Get(a))
}
