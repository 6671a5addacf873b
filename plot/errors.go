// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "cogentcore.org/lineplot/base/errors"

var (
	// ErrIndexOutOfRange is returned when a series or point index
	// is beyond the current bounds.
	ErrIndexOutOfRange = errors.New("plot: index out of range")

	// ErrInvalidRange is returned when a linear range has top <= bottom.
	ErrInvalidRange = errors.New("plot: invalid range: top must be greater than bottom")

	// ErrInvalidLogRange is returned when a log range has a bound <= 0
	// or top <= bottom.
	ErrInvalidLogRange = errors.New("plot: invalid log range: bounds must be positive and top greater than bottom")

	// ErrInvalidStep is returned for a tick step <= 0 or a tick count of 0.
	ErrInvalidStep = errors.New("plot: invalid tick step")

	// ErrInvalidAxis is returned for an axis value outside of the four sides.
	ErrInvalidAxis = errors.New("plot: invalid axis")

	// ErrInvalidDirection is returned for a direction other than
	// [Horizontal] or [Vertical].
	ErrInvalidDirection = errors.New("plot: invalid direction")

	// ErrNilColor is returned when a nil color is given to a color setter.
	ErrNilColor = errors.New("plot: nil color")
)
