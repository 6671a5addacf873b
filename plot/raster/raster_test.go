// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/lineplot/base/errors"
	"cogentcore.org/lineplot/base/iox/imagex"
	"cogentcore.org/lineplot/math32"
	"cogentcore.org/lineplot/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

// countReddish returns the number of pixels in r that are mostly red.
func countReddish(img image.Image, r image.Rectangle) int {
	r = r.Intersect(img.Bounds())
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := imagex.ColorAt(img, x, y)
			if int(c.R) > int(c.G)+50 {
				n++
			}
		}
	}
	return n
}

func TestBackendLines(t *testing.T) {
	b := NewBackend()
	b.LineWidth = 2
	b.Begin(image.Pt(20, 20), white)
	img := b.Image()
	assert.Equal(t, 400, imagex.CountColor(img, img.Bounds(), white, 0))

	vb := b.NewBuffer()
	b.Upload(vb, []float32{-1, 0, 1, 0})
	b.DrawLines(vb, 2, red, math32.Identity4())
	assert.Equal(t, 40, imagex.CountColor(img, image.Rect(0, 9, 20, 11), red, 8))
	assert.Equal(t, 0, imagex.CountColor(img, image.Rect(0, 0, 20, 8), red, 8))

	b.Begin(image.Pt(20, 20), white)
	b.SetClip(image.Rect(0, 0, 10, 20))
	b.DrawLines(vb, 2, red, math32.Identity4())
	assert.Equal(t, 20, imagex.CountColor(img, img.Bounds(), red, 8))
	b.ClearClip()
	b.DrawLines(vb, 2, red, math32.Identity4())
	assert.Equal(t, 40, imagex.CountColor(img, img.Bounds(), red, 8))
}

func TestBackendIndexed(t *testing.T) {
	b := NewBackend()
	b.LineWidth = 2
	b.SmoothWidth = 2
	b.Begin(image.Pt(20, 20), white)
	img := b.Image()

	vb, ib := b.NewBuffer(), b.NewBuffer()
	assert.Equal(t, plot.BufferID(1), vb)
	assert.Equal(t, plot.BufferID(2), ib)
	// a vertical line through the middle and a bad index pair
	b.Upload(vb, []float32{0, -1, 0, 1})
	b.UploadIndices(ib, []uint32{0, 1, 0, 7})
	b.DrawIndexedLines(vb, ib, 4, red, math32.Identity4(), true)
	assert.Equal(t, 40, imagex.CountColor(img, image.Rect(9, 0, 11, 20), red, 8))
	assert.Equal(t, 40, imagex.CountColor(img, img.Bounds(), red, 8))

	assert.Equal(t, 2, b.NumBuffers())
	b.Release(vb)
	b.Release(ib)
	assert.Equal(t, 0, b.NumBuffers())
}

func TestAlignBox(t *testing.T) {
	rect := math32.B2(0, 0, 100, 50)
	size := math32.Vec2(20, 10)
	assert.Equal(t, math32.B2(40, 20, 60, 30), alignBox(rect, size, plot.AlignCenter))
	assert.Equal(t, math32.B2(40, 0, 60, 10), alignBox(rect, size, plot.AlignTopCenter))
	assert.Equal(t, math32.B2(40, 40, 60, 50), alignBox(rect, size, plot.AlignBottomCenter))
	assert.Equal(t, math32.B2(0, 20, 20, 30), alignBox(rect, size, plot.AlignLeftMiddle))
	assert.Equal(t, math32.B2(80, 20, 100, 30), alignBox(rect, size, plot.AlignRightMiddle))
}

func TestTextFitSize(t *testing.T) {
	tx := NewText(NewBackend())
	assert.Equal(t, float32(13), tx.LineHeight())
	// "abcd" is 28 pixels wide
	assert.Equal(t, float32(2), tx.FitSize("abcd", math32.B2(0, 0, 100, 100), 2))
	assert.Equal(t, float32(0.5), tx.FitSize("abcd", math32.B2(0, 0, 14, 100), 2))
	assert.Equal(t, float32(1), tx.FitSize("abcd", math32.B2(0, 0, 100, 13), 2))
}

func TestRenderPlot(t *testing.T) {
	b := NewBackend()
	pt := plot.NewPlot(NewText(b))
	pt.SetPolicy(errors.Reject)
	pt.Resize(image.Pt(300, 200))
	pt.SetTitle("Demo")
	require.NoError(t, pt.SetRange(plot.Bottom, 100, 0))
	require.NoError(t, pt.SetRange(plot.Left, 1, 0))
	s := errors.Must1(pt.AddSeriesData(0, plot.XYs{{X: -50, Y: 0.5}, {X: 150, Y: 0.5}}))
	require.NoError(t, pt.SetPlotColor(s, colornames.Red))

	require.NoError(t, pt.Render(b))
	img := b.Image()
	require.NotNil(t, img)
	assert.Equal(t, image.Pt(300, 200), img.Bounds().Size())
	assert.Equal(t, white, imagex.ColorAt(img, 0, 0))

	lay := pt.Layout()
	pane := lay.Pane.ToRect()
	assert.Greater(t, countReddish(img, pane), 0)
	// the series extends past the range but is clipped to the pane
	assert.Equal(t, countReddish(img, img.Bounds()), countReddish(img, pane))

	title := lay.Title.ToRect()
	assert.Less(t, imagex.CountColor(img, title, white, 0), title.Dx()*title.Dy(), "title is drawn")

	fn := filepath.Join(t.TempDir(), "plot.png")
	require.NoError(t, b.SavePNG(fn))
	saved, _, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), saved.Bounds())
}
