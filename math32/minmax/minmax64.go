// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import "math"

// F64 represents a min / max range for float64 values.
type F64 struct {
	Min float64
	Max float64
}

// Set sets the min and max values
func (mr *F64) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// IsOpen returns true if Min < Max, i.e., the range has
// a non-zero extent and can be used as an axis range.
func (mr F64) IsOpen() bool {
	return mr.Min < mr.Max
}

// IsPositive returns true if both Min and Max are > 0, which
// is required for a logarithmic range.
func (mr F64) IsPositive() bool {
	return mr.Min > 0 && mr.Max > 0
}

// Range returns Max - Min
func (mr F64) Range() float64 {
	return mr.Max - mr.Min
}

// Norm returns the position of val relative to the range,
// 0 at Min and 1 at Max, without clipping.
func (mr F64) Norm(val float64) float64 {
	return (val - mr.Min) / mr.Range()
}

// Log10 returns the range with both values replaced by their
// base 10 logarithm. The range must be positive.
func (mr F64) Log10() F64 {
	return F64{Min: math.Log10(mr.Min), Max: math.Log10(mr.Max)}
}
