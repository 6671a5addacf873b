// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64(t *testing.T) {
	r := F64{Min: 0, Max: 10}
	assert.True(t, r.IsOpen())
	assert.False(t, r.IsPositive())
	assert.Equal(t, 10.0, r.Range())
	assert.Equal(t, 0.5, r.Norm(5))
	assert.Equal(t, 2.0, r.Norm(20))
	assert.Equal(t, -0.1, r.Norm(-1))

	r.Set(3, 3)
	assert.False(t, r.IsOpen())
	assert.True(t, math.IsNaN(r.Norm(3)))
	r.Set(4, 3)
	assert.False(t, r.IsOpen())
}

func TestF64Log10(t *testing.T) {
	r := F64{Min: 0.01, Max: 1000}
	assert.True(t, r.IsPositive())
	lr := r.Log10()
	assert.InDelta(t, -2, lr.Min, 1e-12)
	assert.InDelta(t, 3, lr.Max, 1e-12)
	assert.InDelta(t, 5, r.Log10().Range(), 1e-12)
}
