// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"
	"strconv"

	"cogentcore.org/lineplot/math32"
)

// Aligns specifies how text is aligned within its target rectangle.
type Aligns int32

const (
	// AlignCenter centers the text in both dimensions.
	AlignCenter Aligns = iota

	// AlignTopCenter places the text at the top, centered horizontally.
	AlignTopCenter

	// AlignBottomCenter places the text at the bottom, centered horizontally.
	AlignBottomCenter

	// AlignLeftMiddle places the text at the left, centered vertically.
	AlignLeftMiddle

	// AlignRightMiddle places the text at the right, centered vertically.
	AlignRightMiddle
)

func (al Aligns) String() string {
	switch al {
	case AlignCenter:
		return "Center"
	case AlignTopCenter:
		return "TopCenter"
	case AlignBottomCenter:
		return "BottomCenter"
	case AlignLeftMiddle:
		return "LeftMiddle"
	case AlignRightMiddle:
		return "RightMiddle"
	}
	return "Aligns(" + strconv.Itoa(int(al)) + ")"
}

// TextRenderer measures and renders text for the plot.
// The plot only supplies target rectangles in widget pixels,
// alignment intents and relative size multipliers.
type TextRenderer interface {
	// LineHeight returns the height of one line of text at size 1,
	// which drives the sizes of the label bands in the layout.
	LineHeight() float32

	// FitSize returns the text size, at most scale, such that
	// the text fits into the given rectangle.
	FitSize(text string, rect math32.Box2, scale float32) float32

	// DrawText renders the text into the rectangle with the given
	// alignment, size and color.
	DrawText(text string, rect math32.Box2, align Aligns, size float32, clr color.Color)
}

const (
	// LabelScale is the relative text size of axis and tick labels.
	LabelScale = 1.0

	// TitleScale is the relative text size of the title.
	TitleScale = 2.0
)

// TickLabelAlign returns the alignment of the tick labels of the given side,
// which keeps the text against the plot pane.
func TickLabelAlign(a Axis) Aligns {
	switch a {
	case Top:
		return AlignBottomCenter
	case Bottom:
		return AlignTopCenter
	case Left:
		return AlignRightMiddle
	default:
		return AlignLeftMiddle
	}
}
