// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"testing"

	"cogentcore.org/lineplot/math32"
	"github.com/stretchr/testify/assert"
)

func defaultLayoutInput() LayoutInput {
	in := LayoutInput{Size: image.Pt(400, 300), LineHeight: 10, Title: true}
	in.Labels.Bottom, in.Labels.Left = true, true
	in.TickLabels.Bottom, in.TickLabels.Left = true, true
	return in
}

func TestComputeLayout(t *testing.T) {
	var lay Layout
	ComputeLayout(defaultLayoutInput(), &lay)

	assert.Equal(t, math32.B2(40, 35, 395, 265), lay.Pane)
	assert.Equal(t, math32.B2(40, 5, 395, 35), lay.Title)
	assert.Equal(t, math32.B2(40, 280, 395, 295), lay.Labels.Bottom)
	assert.Equal(t, math32.B2(5, 35, 20, 265), lay.Labels.Left)
	assert.Equal(t, math32.B2(40, 265, 395, 280), lay.TickLabels.Bottom)
	assert.Equal(t, math32.B2(20, 35, 40, 265), lay.TickLabels.Left)
	assert.Equal(t, math32.Box2{}, lay.Labels.Top)
	assert.Equal(t, math32.Box2{}, lay.TickLabels.Right)
	assert.Equal(t, [8]float32{40, 35, 395, 35, 395, 265, 40, 265}, lay.Frame)
}

func TestComputeLayoutAllSides(t *testing.T) {
	in := defaultLayoutInput()
	in.Title = false
	in.Labels.SetAll(true)
	in.TickLabels.SetAll(true)
	var lay Layout
	ComputeLayout(in, &lay)

	// margin 5, label 15, tick labels 15 vertically and 20 horizontally
	assert.Equal(t, math32.B2(40, 35, 360, 265), lay.Pane)
	assert.Equal(t, math32.B2(40, 5, 360, 20), lay.Labels.Top)
	assert.Equal(t, math32.B2(40, 20, 360, 35), lay.TickLabels.Top)
	assert.Equal(t, math32.B2(380, 35, 395, 265), lay.Labels.Right)
	assert.Equal(t, math32.B2(360, 35, 380, 265), lay.TickLabels.Right)
	assert.Equal(t, math32.Box2{}, lay.Title)
}

func TestComputeLayoutLineHeight(t *testing.T) {
	in := defaultLayoutInput()
	in.LineHeight = 4
	var lay Layout
	ComputeLayout(in, &lay)
	// title 12, labels 6, tick labels 6 vertically and min(24, 20) horizontally
	assert.Equal(t, math32.B2(5+6+20, 5+12, 395, 295-6-6), lay.Pane)
}

func TestComputeLayoutIdempotent(t *testing.T) {
	in := defaultLayoutInput()
	var a, b Layout
	ComputeLayout(in, &a)
	ComputeLayout(in, &b)
	assert.Equal(t, a, b)

	// the previous contents of the output do not matter
	in.TickLabels.SetAll(true)
	ComputeLayout(in, &b)
	in.TickLabels.Top, in.TickLabels.Right = false, false
	ComputeLayout(in, &b)
	assert.Equal(t, a, b)
}

func TestComputeLayoutTiny(t *testing.T) {
	for _, sz := range []image.Point{{0, 0}, {1, 1}, {10, 10}, {30, 400}} {
		in := defaultLayoutInput()
		in.Size = sz
		in.LineHeight = 100
		in.Labels.SetAll(true)
		in.TickLabels.SetAll(true)
		var lay Layout
		ComputeLayout(in, &lay)
		assert.GreaterOrEqual(t, lay.Pane.Max.X, lay.Pane.Min.X, "%v", sz)
		assert.GreaterOrEqual(t, lay.Pane.Max.Y, lay.Pane.Min.Y, "%v", sz)
	}
}
