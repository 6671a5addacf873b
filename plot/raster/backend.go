// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides headless implementations of the plot
// drawing interfaces that render into an [image.RGBA].
package raster

import (
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/lineplot/base/iox/imagex"
	"cogentcore.org/lineplot/math32"
	"cogentcore.org/lineplot/plot"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Backend is a [plot.Backend] that rasterizes lines in software.
// Each line segment is filled as a thin antialiased quad.
type Backend struct {
	// LineWidth is the width of plain lines in pixels.
	LineWidth float32

	// SmoothWidth is the width of smooth lines in pixels.
	SmoothWidth float32

	img      *image.RGBA
	vertices map[plot.BufferID][]float32
	indices  map[plot.BufferID][]uint32
	next     plot.BufferID
	clip     image.Rectangle
	z        vector.Rasterizer
}

var _ plot.Backend = (*Backend)(nil)

// NewBackend returns a new raster backend.
func NewBackend() *Backend {
	return &Backend{
		LineWidth:   1,
		SmoothWidth: 1.5,
		vertices:    map[plot.BufferID][]float32{},
		indices:     map[plot.BufferID][]uint32{},
	}
}

// Image returns the image of the last frame.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// SavePNG saves the image of the last frame to the given file.
func (b *Backend) SavePNG(filename string) error {
	return imagex.Save(b.img, filename)
}

func (b *Backend) Begin(size image.Point, background color.Color) {
	if b.img == nil || b.img.Bounds().Size() != size {
		b.img = image.NewRGBA(image.Rectangle{Max: size})
	}
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	b.clip = b.img.Bounds()
}

func (b *Backend) NewBuffer() plot.BufferID {
	b.next++
	return b.next
}

func (b *Backend) Upload(id plot.BufferID, vertices []float32) {
	b.vertices[id] = append(b.vertices[id][:0], vertices...)
}

func (b *Backend) UploadIndices(id plot.BufferID, indices []uint32) {
	b.indices[id] = append(b.indices[id][:0], indices...)
}

func (b *Backend) Release(id plot.BufferID) {
	delete(b.vertices, id)
	delete(b.indices, id)
}

// NumBuffers returns the number of buffers holding data.
func (b *Backend) NumBuffers() int {
	return len(b.vertices) + len(b.indices)
}

func (b *Backend) SetClip(r image.Rectangle) {
	b.clip = r.Intersect(b.img.Bounds())
}

func (b *Backend) ClearClip() {
	b.clip = b.img.Bounds()
}

func (b *Backend) DrawLines(vb plot.BufferID, count int, clr color.Color, m math32.Matrix4) {
	vs := b.vertices[vb]
	count = min(count, len(vs)/2)
	src := image.NewUniform(clr)
	for i := 0; i+1 < count; i += 2 {
		b.segment(b.toPixel(m, vs, i), b.toPixel(m, vs, i+1), b.LineWidth, src)
	}
}

func (b *Backend) DrawIndexedLines(vb, ib plot.BufferID, count int, clr color.Color, m math32.Matrix4, smooth bool) {
	vs := b.vertices[vb]
	idx := b.indices[ib]
	count = min(count, len(idx))
	width := b.LineWidth
	if smooth {
		width = b.SmoothWidth
	}
	src := image.NewUniform(clr)
	nv := uint32(len(vs) / 2)
	for i := 0; i+1 < count; i += 2 {
		i0, i1 := idx[i], idx[i+1]
		if i0 >= nv || i1 >= nv {
			slog.Debug("raster: index out of range", "index", max(i0, i1), "vertices", nv)
			continue
		}
		b.segment(b.toPixel(m, vs, int(i0)), b.toPixel(m, vs, int(i1)), width, src)
	}
}

func (b *Backend) End() error {
	return nil
}

// toPixel transforms vertex i by the matrix into clip space
// and then into frame pixels.
func (b *Backend) toPixel(m math32.Matrix4, vs []float32, i int) math32.Vector2 {
	c := m.MulVector2AsPoint(math32.Vec2(vs[2*i], vs[2*i+1]))
	sz := b.img.Bounds().Size()
	return math32.Vec2((c.X+1)*0.5*float32(sz.X), (1-c.Y)*0.5*float32(sz.Y))
}

// segment fills the quad of the line from p0 to p1 with the given
// width, restricted to the clip rectangle.
func (b *Backend) segment(p0, p1 math32.Vector2, width float32, src image.Image) {
	if math32.IsNaN(p0.X+p0.Y+p1.X+p1.Y) || math32.IsInf(p0.X+p0.Y+p1.X+p1.Y, 0) {
		return
	}
	d := p1.Sub(p0)
	if d.Length() < 1e-6 {
		d = math32.Vec2(1, 0)
	}
	n := d.Normal().Perp().MulScalar(width / 2)
	bb := math32.B2(p0.X, p0.Y, p1.X, p1.Y).Canon()
	bb.Min = bb.Min.Sub(math32.Vector2Scalar(width))
	bb.Max = bb.Max.Add(math32.Vector2Scalar(width))
	r := bb.ToRect().Intersect(b.clip)
	if r.Empty() {
		return
	}
	o := math32.Vector2FromPoint(r.Min)
	q0, q1 := p0.Add(n).Sub(o), p1.Add(n).Sub(o)
	q2, q3 := p1.Sub(n).Sub(o), p0.Sub(n).Sub(o)
	b.z.Reset(r.Dx(), r.Dy())
	b.z.MoveTo(q0.X, q0.Y)
	b.z.LineTo(q1.X, q1.Y)
	b.z.LineTo(q2.X, q2.Y)
	b.z.LineTo(q3.X, q3.Y)
	b.z.ClosePath()
	b.z.Draw(b.img, r, src, image.Point{})
}
