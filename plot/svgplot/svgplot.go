// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgplot writes a snapshot of a plot as an SVG document.
// The data mapping is computed from the axis scales independently
// of the projection matrices used for raster rendering.
package svgplot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"cogentcore.org/lineplot/math32"
	"cogentcore.org/lineplot/plot"
	"github.com/aclements/go-moremath/scale"
	svg "github.com/ajstarks/svgo"
)

// paneClip is the id of the clip path of the plot pane.
const paneClip = "pane"

// mapper maps a data value to the 0-1 range of an axis.
type mapper interface {
	Map(x float64) float64
}

func newMapper(sc *plot.AxisScale, log bool) (mapper, error) {
	if log {
		return scale.NewLog(sc.LogRange.Min, sc.LogRange.Max, 10)
	}
	return scale.Linear{Min: sc.Range.Min, Max: sc.Range.Max}, nil
}

// errWriter records the first write error, which svgo does not report.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// Save writes the view as an SVG document to the given file.
func Save(filename string, v *plot.View, desc string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = Write(f, v, desc)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Write writes the view as an SVG document. The description
// is included as the desc element when it is not empty.
func Write(w io.Writer, v *plot.View, desc string) error {
	xs, err := newMapper(v.Scales.Get(plot.Bottom), v.LogX)
	if err != nil {
		return fmt.Errorf("svgplot: horizontal scale: %w", err)
	}
	ys, err := newMapper(v.Scales.Get(plot.Left), v.LogY)
	if err != nil {
		return fmt.Errorf("svgplot: vertical scale: %w", err)
	}
	ew := &errWriter{w: w}
	dw := &drawer{
		canvas: svg.New(ew),
		view:   v,
		pane:   v.Layout.Pane,
	}
	dw.draw(xs, ys, desc)
	return ew.err
}

type drawer struct {
	canvas *svg.SVG
	view   *plot.View
	pane   math32.Box2
}

func (dw *drawer) draw(xs, ys mapper, desc string) {
	c := dw.canvas
	v := dw.view
	c.Start(v.Size.X, v.Size.Y)
	if v.Style.Title != "" {
		c.Title(v.Style.Title)
	}
	if desc != "" {
		c.Desc(desc)
	}
	c.Rect(0, 0, v.Size.X, v.Size.Y, "fill:"+rgb(v.Style.Background))

	pr := dw.pane.Inset(1).ToRect()
	c.Def()
	c.ClipPath(`id="` + paneClip + `"`)
	c.Rect(pr.Min.X, pr.Min.Y, pr.Dx(), pr.Dy())
	c.ClipEnd()
	c.DefEnd()

	c.Group(`clip-path="url(#` + paneClip + `)"`)
	grids := make([]plot.GridLines, len(plot.Axes))
	for i, a := range plot.Axes {
		grids[i].Build(a, v.Scales.Get(a), v.IsLog(a))
	}
	for i, a := range plot.Axes {
		as := v.Axes.Get(a)
		if as.SecGridVisible {
			dw.lines(grids[i].Secondary, as.SecGridColor)
		}
		if as.SecTicksVisible {
			dw.lines(grids[i].SecondaryTicks, as.TickColor)
		}
	}
	for i, a := range plot.Axes {
		as := v.Axes.Get(a)
		if as.GridVisible {
			dw.lines(grids[i].Primary, as.GridColor)
		}
		if as.TicksVisible {
			dw.lines(grids[i].PrimaryTicks, as.TickColor)
		}
	}
	for _, sv := range v.Series {
		if sv.Visible {
			dw.series(sv, xs, ys)
		}
	}
	c.Gend()

	if v.Style.FrameVisible {
		f := dw.pane.ToRect()
		c.Rect(f.Min.X, f.Min.Y, f.Dx(), f.Dy(), "fill:none;stroke:"+rgb(v.Style.FrameColor))
	}
	dw.text()
	c.End()
}

// toPixel converts a normalized pane position to pixels.
func (dw *drawer) toPixel(u, v float64) (int, int) {
	sz := dw.pane.Size()
	x := float64(dw.pane.Min.X) + u*float64(sz.X)
	y := float64(dw.pane.Max.Y) - v*float64(sz.Y)
	return int(math.Round(x)), int(math.Round(y))
}

// lines draws pairs of normalized pane vertices as line segments.
func (dw *drawer) lines(vs []float32, clr color.RGBA) {
	if len(vs) < 4 {
		return
	}
	dw.canvas.Group("stroke-width:1;stroke:" + rgb(clr))
	for i := 0; i+3 < len(vs); i += 4 {
		x0, y0 := dw.toPixel(float64(vs[i]), float64(vs[i+1]))
		x1, y1 := dw.toPixel(float64(vs[i+2]), float64(vs[i+3]))
		dw.canvas.Line(x0, y0, x1, y1)
	}
	dw.canvas.Gend()
}

// series draws the points of a series as polylines. Points that
// have no position on a log axis split the line.
func (dw *drawer) series(sv plot.SeriesView, xs, ys mapper) {
	style := "fill:none;stroke-width:1.5;stroke:" + rgb(sv.Color)
	var px, py []int
	flush := func() {
		if len(px) > 1 {
			dw.canvas.Polyline(px, py, style)
		}
		px, py = px[:0], py[:0]
	}
	for _, p := range sv.Points {
		u, v := xs.Map(p.X), ys.Map(p.Y)
		if !finite(u) || !finite(v) {
			flush()
			continue
		}
		x, y := dw.toPixel(u, v)
		px = append(px, x)
		py = append(py, y)
	}
	flush()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (dw *drawer) text() {
	v := dw.view
	clr := v.Style.TextColor
	if v.Style.TitleVisible && v.Style.Title != "" {
		dw.textIn(v.Style.Title, v.Layout.Title, plot.AlignCenter, plot.TitleScale, clr)
	}
	for _, a := range plot.Axes {
		as := v.Axes.Get(a)
		if as.LabelVisible && as.Label != "" {
			dw.textIn(as.Label, *v.Layout.Labels.Get(a), plot.AlignCenter, plot.LabelScale, clr)
		}
		if !as.TickLabelVisible {
			continue
		}
		log := v.IsLog(a)
		sc := v.Scales.Get(a)
		band := *v.Layout.TickLabels.Get(a)
		spacing := v.TickSpacing(a)
		align := plot.TickLabelAlign(a)
		for _, tl := range *v.TickLabels.Get(a) {
			r, ok := plot.TickLabelRect(a, band, sc.Norm(tl.Value, log), spacing)
			if !ok {
				continue
			}
			dw.textIn(tl.Text, r, align, plot.LabelScale, clr)
		}
	}
}

// textIn draws text aligned within the rectangle, with a font size
// of at most rel lines that fits the rectangle height.
func (dw *drawer) textIn(text string, r math32.Box2, align plot.Aligns, rel float32, clr color.RGBA) {
	if r.IsEmpty() {
		return
	}
	size := min(r.Size().Y*0.8, plot.DefaultLineHeight*rel)
	c := r.Center()
	x, y := c.X, c.Y
	anchor, baseline := "middle", "central"
	switch align {
	case plot.AlignTopCenter:
		y, baseline = r.Min.Y, "hanging"
	case plot.AlignBottomCenter:
		y, baseline = r.Max.Y, "text-after-edge"
	case plot.AlignLeftMiddle:
		x, anchor = r.Min.X, "start"
	case plot.AlignRightMiddle:
		x, anchor = r.Max.X, "end"
	}
	style := fmt.Sprintf("font-family:sans-serif;font-size:%.3gpx;text-anchor:%s;dominant-baseline:%s;fill:%s",
		size, anchor, baseline, rgb(clr))
	dw.canvas.Text(int(math.Round(float64(x))), int(math.Round(float64(y))), text, style)
}

func rgb(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.R, c.G, c.B, float64(c.A)/255)
}
