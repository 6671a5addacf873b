// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"testing"

	"cogentcore.org/lineplot/math32"
	"cogentcore.org/lineplot/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got math32.Vector2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5, "X of %v", got)
	assert.InDelta(t, want.Y, got.Y, 1e-5, "Y of %v", got)
}

func TestTransform(t *testing.T) {
	tr := NewTransform(minmax.F64{Min: 0, Max: 100}, minmax.F64{Min: 0, Max: 1})
	assert.InDelta(t, 0.02, tr.XScale, 1e-12)
	assert.Equal(t, 0.0, tr.XOffset)
	assert.Equal(t, -2.0, tr.YScale)
	assert.Equal(t, 0.0, tr.YOffset)

	u, v := tr.Normalize(90, 0.5)
	assert.InDelta(t, 0.9, u, 1e-12)
	assert.InDelta(t, 0.5, v, 1e-12)

	tr = NewTransform(minmax.F64{Min: -10, Max: 10}, minmax.F64{Min: 2, Max: 4})
	assert.Equal(t, 0.1, tr.XScale)
	assert.Equal(t, 1.0, tr.XOffset)
	assert.Equal(t, -1.0, tr.YScale)
	assert.Equal(t, 2.0, tr.YOffset)
	u, v = tr.Normalize(-10, 4)
	assert.Equal(t, 0.0, u)
	assert.Equal(t, 1.0, v)
}

func TestProjection(t *testing.T) {
	tr := NewTransform(minmax.F64{Min: 0, Max: 100}, minmax.F64{Min: 0, Max: 1})
	pr := NewProjection(image.Pt(200, 100), math32.B2(20, 10, 180, 90), tr)

	assertVec(t, math32.Vec2(-1, 1), pr.Screen.MulVector2AsPoint(math32.Vec2(0, 0)))
	assertVec(t, math32.Vec2(1, -1), pr.Screen.MulVector2AsPoint(math32.Vec2(200, 100)))

	// unit square corners land on the pane corners
	assertVec(t, math32.Vec2(-0.8, -0.8), pr.Grid.MulVector2AsPoint(math32.Vec2(0, 0)))
	assertVec(t, math32.Vec2(0.8, 0.8), pr.Grid.MulVector2AsPoint(math32.Vec2(1, 1)))

	// (90, 0.5) is at pane pixel (164, 50)
	assertVec(t, math32.Vec2(0.64, 0), pr.Data.MulVector2AsPoint(math32.Vec2(90, 0.5)))
	assertVec(t, math32.Vec2(-0.8, -0.8), pr.Data.MulVector2AsPoint(math32.Vec2(0, 0)))
	assertVec(t, math32.Vec2(0.8, 0.8), pr.Data.MulVector2AsPoint(math32.Vec2(100, 1)))
}

func TestProjectionLog(t *testing.T) {
	as := NewAxisScale()
	tr := NewTransform(as.Bounds(true), as.Bounds(false))
	pr := NewProjection(image.Pt(100, 100), math32.B2(0, 0, 100, 100), tr)
	// log10(1) is halfway through [0.1, 10]
	assertVec(t, math32.Vec2(0, 0), pr.Data.MulVector2AsPoint(math32.Vec2(0, 5)))
	assertVec(t, math32.Vec2(1, 1), pr.Data.MulVector2AsPoint(math32.Vec2(1, 10)))
}
