// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2(10, 20, 110, 70)
	assert.Equal(t, Vec2(100, 50), b.Size())
	assert.Equal(t, Vec2(60, 45), b.Center())
	assert.False(t, b.IsEmpty())
	assert.True(t, B2(5, 5, 5, 10).IsEmpty())

	assert.True(t, b.ContainsPoint(Vec2(10, 70)))
	assert.False(t, b.ContainsPoint(Vec2(9, 70)))
	assert.True(t, b.ContainsBox(b.Inset(1)))
	assert.Equal(t, B2(11, 21, 109, 69), b.Inset(1))

	assert.Equal(t, B2(50, 20, 110, 60), b.Intersect(B2(50, 0, 200, 60)))
	assert.Equal(t, B2(0, 0, 10, 10), B2(10, 10, 0, 0).Canon())
	assert.Equal(t, B2(11, 22, 111, 72), b.Translate(Vec2(1, 2)))

	assert.Equal(t, float32(60), b.ProjectX(0.5))
	assert.Equal(t, float32(70), b.ProjectY(1))

	assert.Equal(t, image.Rect(1, 2, 4, 5), B2(1.5, 2.2, 3.1, 4.9).ToRect())
	assert.Equal(t, B2(1, 2, 3, 4), B2FromRect(image.Rect(1, 2, 3, 4)))
}
