// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-6

func assertVector(t *testing.T, want, got Vector2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, standardTol)
	assert.InDelta(t, want.Y, got.Y, standardTol)
}

func TestMatrix4(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity4().MulVector2AsPoint(vx))
	assert.Equal(t, vxy, Translation4(1, 1, 0).MulVector2AsPoint(v0))
	assert.Equal(t, vxy.MulScalar(2), Scale4(2, 2, 1).MulVector2AsPoint(vxy))

	// 1,0 -> scale(2) = 2,0 -> trans 1,1 -> 3,1
	// multiplication order is *reverse* of "logical" order:
	assertVector(t, Vec2(3, 1), Translation4(1, 1, 0).Mul(Scale4(2, 2, 1)).MulVector2AsPoint(vx))
	assertVector(t, Vec2(4, 2), Scale4(2, 2, 1).Mul(Translation4(1, 1, 0)).MulVector2AsPoint(vx))

	assert.Equal(t, Identity4(), Identity4().Mul(Identity4()))
}

func TestOrtho2D(t *testing.T) {
	// pixel space with Y growing downward onto clip space.
	m := Ortho2D(0, 1000, 500, 0)
	assertVector(t, Vec2(-1, 1), m.MulVector2AsPoint(Vec2(0, 0)))
	assertVector(t, Vec2(1, 1), m.MulVector2AsPoint(Vec2(1000, 0)))
	assertVector(t, Vec2(-1, -1), m.MulVector2AsPoint(Vec2(0, 500)))
	assertVector(t, Vec2(0, 0), m.MulVector2AsPoint(Vec2(500, 250)))
}
