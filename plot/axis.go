// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "strconv"

// Axis is one of the four sides of the plot pane. Each side
// has its own independent range, ticks, colors and visibility.
type Axis int32

const (
	// Bottom is the horizontal axis below the plot pane.
	Bottom Axis = iota

	// Top is the horizontal axis above the plot pane.
	Top

	// Left is the vertical axis to the left of the plot pane.
	Left

	// Right is the vertical axis to the right of the plot pane.
	Right
)

// Axes lists all of the axis sides, in drawing order.
var Axes = [...]Axis{Bottom, Top, Left, Right}

func (a Axis) String() string {
	switch a {
	case Bottom:
		return "Bottom"
	case Top:
		return "Top"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Axis(" + strconv.Itoa(int(a)) + ")"
}

// IsValid returns whether the axis is one of the four sides.
func (a Axis) IsValid() bool {
	return a >= Bottom && a <= Right
}

// Direction returns [Horizontal] for Bottom and Top, and
// [Vertical] for Left and Right.
func (a Axis) Direction() Direction {
	if a == Left || a == Right {
		return Vertical
	}
	return Horizontal
}

// Direction is the orientation shared by a pair of opposite axes.
// The log or linear scaling mode is set per direction.
type Direction int32

const (
	// Vertical is the direction of the Left and Right axes.
	Vertical Direction = iota

	// Horizontal is the direction of the Bottom and Top axes.
	Horizontal
)

// IsValid returns whether the direction is [Horizontal] or [Vertical].
func (d Direction) IsValid() bool {
	return d == Vertical || d == Horizontal
}

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// Sides holds one value of type T for each of the four [Axis] sides.
type Sides[T any] struct {
	Bottom T
	Top    T
	Left   T
	Right  T
}

// Get returns a pointer to the value for the given side.
// It panics for an invalid axis, which callers validate first.
func (s *Sides[T]) Get(a Axis) *T {
	switch a {
	case Bottom:
		return &s.Bottom
	case Top:
		return &s.Top
	case Left:
		return &s.Left
	case Right:
		return &s.Right
	}
	panic("plot: invalid axis " + a.String())
}

// Each calls fun for each side in [Axes] order.
func (s *Sides[T]) Each(fun func(a Axis, v *T)) {
	for _, a := range Axes {
		fun(a, s.Get(a))
	}
}

// SetAll sets the value of all four sides.
func (s *Sides[T]) SetAll(v T) {
	s.Bottom, s.Top, s.Left, s.Right = v, v, v, v
}
