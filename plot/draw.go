// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"

	"cogentcore.org/lineplot/math32"
)

// gridBuffers are the backend buffers of the gridlines of one side.
type gridBuffers struct {
	primary, secondary, primaryTicks, secondaryTicks BufferID

	// stale is set when the gridlines need to be uploaded.
	stale bool
}

// Render draws the plot with the given backend, in this order:
// the title and labels, then clipped to the pane the secondary
// gridlines and tick marks, the primary gridlines and tick marks
// and the visible series, and finally the unclipped frame.
// Only buffers whose contents changed are uploaded.
//
// Render holds the plot lock for the whole frame, so the
// frame always shows a consistent state.
func (pt *Plot) Render(b Backend) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.backend != b {
		pt.releaseAll()
		pt.backend = b
	}
	b.Begin(pt.size, pt.style.Background)
	pt.drawText()
	pt.upload()

	b.SetClip(pt.layout.Pane.Inset(1).ToRect())
	for _, a := range Axes {
		as := pt.axes.Get(a)
		gl := pt.grid.Get(a)
		gb := pt.gridBufs.Get(a)
		if as.SecGridVisible {
			b.DrawLines(gb.secondary, VertexCount(gl.Secondary), as.SecGridColor, pt.proj.Grid)
		}
		if as.SecTicksVisible {
			b.DrawLines(gb.secondaryTicks, VertexCount(gl.SecondaryTicks), as.TickColor, pt.proj.Grid)
		}
	}
	for _, a := range Axes {
		as := pt.axes.Get(a)
		gl := pt.grid.Get(a)
		gb := pt.gridBufs.Get(a)
		if as.GridVisible {
			b.DrawLines(gb.primary, VertexCount(gl.Primary), as.GridColor, pt.proj.Grid)
		}
		if as.TicksVisible {
			b.DrawLines(gb.primaryTicks, VertexCount(gl.PrimaryTicks), as.TickColor, pt.proj.Grid)
		}
	}
	for _, sr := range pt.series {
		n := sr.DrawCount()
		if !sr.Visible || n == 0 {
			continue
		}
		b.DrawIndexedLines(sr.vbuf, sr.ibuf, n, sr.Color, pt.proj.Data, true)
	}
	b.ClearClip()

	if pt.style.FrameVisible {
		b.DrawIndexedLines(pt.frameVB, pt.frameIB, len(FrameIndices), pt.style.FrameColor, pt.proj.Screen, false)
	}
	return b.End()
}

// upload allocates missing buffers and uploads all stale ones.
func (pt *Plot) upload() {
	b := pt.backend
	for _, a := range Axes {
		gb := pt.gridBufs.Get(a)
		if !gb.stale && gb.primary != 0 {
			continue
		}
		gl := pt.grid.Get(a)
		uploadVertices(b, &gb.primary, gl.Primary)
		uploadVertices(b, &gb.secondary, gl.Secondary)
		uploadVertices(b, &gb.primaryTicks, gl.PrimaryTicks)
		uploadVertices(b, &gb.secondaryTicks, gl.SecondaryTicks)
		gb.stale = false
	}
	if pt.frameStale || pt.frameVB == 0 {
		uploadVertices(b, &pt.frameVB, pt.layout.Frame[:])
		uploadIndices(b, &pt.frameIB, FrameIndices[:])
		pt.frameStale = false
	}
	for _, sr := range pt.series {
		if !sr.stale && sr.vbuf != 0 {
			continue
		}
		uploadVertices(b, &sr.vbuf, sr.Positions)
		uploadIndices(b, &sr.ibuf, sr.Indices)
		sr.stale = false
	}
}

func uploadVertices(b Backend, id *BufferID, vs []float32) {
	if *id == 0 {
		*id = b.NewBuffer()
	}
	b.Upload(*id, vs)
}

func uploadIndices(b Backend, id *BufferID, idx []uint32) {
	if *id == 0 {
		*id = b.NewBuffer()
	}
	b.UploadIndices(*id, idx)
}

func releaseBuffer(b Backend, id *BufferID) {
	if *id != 0 {
		b.Release(*id)
		*id = 0
	}
}

// releaseAll releases all buffers held on the current backend,
// so that they are allocated again on the next one.
func (pt *Plot) releaseAll() {
	b := pt.backend
	if b == nil {
		return
	}
	for _, a := range Axes {
		gb := pt.gridBufs.Get(a)
		releaseBuffer(b, &gb.primary)
		releaseBuffer(b, &gb.secondary)
		releaseBuffer(b, &gb.primaryTicks)
		releaseBuffer(b, &gb.secondaryTicks)
	}
	releaseBuffer(b, &pt.frameVB)
	releaseBuffer(b, &pt.frameIB)
	for _, sr := range pt.series {
		releaseBuffer(b, &sr.vbuf)
		releaseBuffer(b, &sr.ibuf)
	}
}

// drawText draws the title, the axis labels and the tick labels.
func (pt *Plot) drawText() {
	tr := pt.text
	if tr == nil {
		return
	}
	clr := pt.style.TextColor
	if pt.style.TitleVisible && pt.style.Title != "" {
		drawFitted(tr, pt.style.Title, pt.layout.Title, AlignCenter, TitleScale, clr)
	}
	for _, a := range Axes {
		as := pt.axes.Get(a)
		if as.LabelVisible && as.Label != "" {
			drawFitted(tr, as.Label, *pt.layout.Labels.Get(a), AlignCenter, LabelScale, clr)
		}
		if !as.TickLabelVisible {
			continue
		}
		log := pt.isLog(a)
		sc := pt.scales.Get(a)
		spacing := tickSpacing(sc, log)
		band := *pt.layout.TickLabels.Get(a)
		align := TickLabelAlign(a)
		for _, tl := range *pt.labels.Get(a) {
			norm := sc.Norm(tl.Value, log)
			r, ok := TickLabelRect(a, band, norm, spacing)
			if !ok {
				continue
			}
			drawFitted(tr, tl.Text, r, align, LabelScale, clr)
		}
	}
}

func drawFitted(tr TextRenderer, text string, r math32.Box2, align Aligns, scale float32, clr color.Color) {
	if r.IsEmpty() {
		return
	}
	tr.DrawText(text, r, align, tr.FitSize(text, r, scale), clr)
}

// tickSpacing returns the normalized distance between primary ticks.
func tickSpacing(sc *AxisScale, log bool) float64 {
	b := sc.Bounds(log)
	step := sc.Step
	if log {
		step = 1
	}
	return step / b.Range()
}

// TickLabelRect returns the rectangle of the tick label at the
// normalized position norm within the tick label band of the given
// side, one tick spacing wide along the band. It returns false if
// the position is outside of the pane.
func TickLabelRect(a Axis, band math32.Box2, norm, spacing float64) (math32.Box2, bool) {
	const eps = 1e-6
	if band.IsEmpty() || !(norm >= -eps && norm <= 1+eps) {
		return math32.Box2{}, false
	}
	half := float32(spacing / 2)
	n := float32(norm)
	r := band
	if a.Direction() == Horizontal {
		w := band.Size().X
		c := band.ProjectX(n)
		r.Min.X, r.Max.X = c-half*w, c+half*w
	} else {
		h := band.Size().Y
		c := band.Max.Y - n*h
		r.Min.Y, r.Max.Y = c-half*h, c+half*h
	}
	return r, true
}
