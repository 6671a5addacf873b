// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"

	"cogentcore.org/lineplot/math32"
	"cogentcore.org/lineplot/plot"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Text is a [plot.TextRenderer] drawing into the image of a [Backend]
// with the fixed 7x13 bitmap font. Sizes other than 1 are drawn by
// scaling the text rendered at size 1.
type Text struct {
	backend *Backend
	face    *basicfont.Face
}

var _ plot.TextRenderer = (*Text)(nil)

// NewText returns a text renderer drawing into the given backend.
func NewText(b *Backend) *Text {
	return &Text{backend: b, face: basicfont.Face7x13}
}

func (tx *Text) LineHeight() float32 {
	return float32(tx.face.Metrics().Height.Ceil())
}

// measure returns the size of the text at size 1.
func (tx *Text) measure(text string) math32.Vector2 {
	w := font.MeasureString(tx.face, text).Ceil()
	return math32.Vec2(float32(w), tx.LineHeight())
}

func (tx *Text) FitSize(text string, rect math32.Box2, scale float32) float32 {
	ts := tx.measure(text)
	rs := rect.Size()
	size := scale
	if ts.X > 0 {
		size = math32.Min(size, rs.X/ts.X)
	}
	return math32.Max(0, math32.Min(size, rs.Y/ts.Y))
}

func (tx *Text) DrawText(text string, rect math32.Box2, align plot.Aligns, size float32, clr color.Color) {
	dst := tx.backend.Image()
	if dst == nil || text == "" || size <= 0 {
		return
	}
	ts := tx.measure(text)
	box := alignBox(rect, ts.MulScalar(size), align)
	src := image.NewUniform(clr)
	if size == 1 {
		pos := box.Min.ToPoint()
		d := font.Drawer{Dst: dst, Src: src, Face: tx.face,
			Dot: fixed.P(pos.X, pos.Y+tx.face.Ascent)}
		d.DrawString(text)
		return
	}
	off := image.NewRGBA(image.Rect(0, 0, int(ts.X), int(ts.Y)))
	d := font.Drawer{Dst: off, Src: src, Face: tx.face, Dot: fixed.P(0, tx.face.Ascent)}
	d.DrawString(text)
	draw.ApproxBiLinear.Scale(dst, box.ToRect(), off, off.Bounds(), draw.Over, nil)
}

// alignBox returns the box of the given size placed within rect.
func alignBox(rect math32.Box2, size math32.Vector2, align plot.Aligns) math32.Box2 {
	c := rect.Center()
	x := c.X - size.X/2
	y := c.Y - size.Y/2
	switch align {
	case plot.AlignTopCenter:
		y = rect.Min.Y
	case plot.AlignBottomCenter:
		y = rect.Max.Y - size.Y
	case plot.AlignLeftMiddle:
		x = rect.Min.X
	case plot.AlignRightMiddle:
		x = rect.Max.X - size.X
	}
	return math32.B2(x, y, x+size.X, y+size.Y)
}
