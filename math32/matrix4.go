// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit lineplot functionality.

package math32

// Matrix4 is 4x4 matrix organized internally as column matrix,
// the layout expected by GPU uniform buffers.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation4 returns a [Matrix4] translating by the given amounts.
func Translation4(x, y, z float32) Matrix4 {
	m := Identity4()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// Scale4 returns a [Matrix4] scaling by the given factors.
func Scale4(x, y, z float32) Matrix4 {
	m := Identity4()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// Ortho2D returns an orthographic projection [Matrix4] mapping
// the rectangle [left, right] x [bottom, top] onto the [-1, 1]
// clip space square. Passing top < bottom flips the Y axis.
func Ortho2D(left, right, bottom, top float32) Matrix4 {
	m := Identity4()
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	return m
}

// Mul returns this matrix times other matrix (this * other).
// Transforms are applied right to left: other first.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[k*4+row] * other[col*4+k]
			}
			r[col*4+row] = s
		}
	}
	return r
}

// MulVector2AsPoint multiplies the point (v.X, v.Y, 0, 1) by this
// matrix, returning the resulting X, Y after perspective division.
func (m Matrix4) MulVector2AsPoint(v Vector2) Vector2 {
	x := m[0]*v.X + m[4]*v.Y + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[13]
	w := m[3]*v.X + m[7]*v.Y + m[15]
	if w != 0 && w != 1 {
		x /= w
		y /= w
	}
	return Vector2{x, y}
}
