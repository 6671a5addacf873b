// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"strconv"
)

// TickLabel is one labelled primary tick of an axis.
type TickLabel struct {
	// Value is the data value of the tick.
	Value float64

	// Text is the label text for the value.
	Text string
}

// FormatValue returns the default label text for a tick value:
// the shortest representation with at most 6 significant digits.
func FormatValue(v float64) string {
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Labels appends the tick labels of the axis to dst and returns it.
//
// In linear mode, labels start at ceil(bottom/step)*step and advance
// by step while the value is <= top.
//
// In log mode there is one label per decade that is fully or partially
// inside the range, placed on the upper boundary of the decade: for a
// range of [0.1, 1000] the labels are 1, 10, 100 and 1000.
func (as *AxisScale) Labels(log bool, dst []TickLabel) []TickLabel {
	if log {
		return as.logLabels(dst)
	}
	return as.linearLabels(dst)
}

func (as *AxisScale) linearLabels(dst []TickLabel) []TickLabel {
	bot, top, step := as.Range.Min, as.Range.Max, as.Step
	if !(step > 0) {
		return dst
	}
	first := math.Ceil(snap(bot/step)) * step
	eps := 1e-9 * step
	for i := 0; i < maxTicks; i++ {
		v := first + float64(i)*step
		if v > top+eps {
			break
		}
		dst = append(dst, TickLabel{Value: v, Text: FormatValue(v)})
	}
	return dst
}

func (as *AxisScale) logLabels(dst []TickLabel) []TickLabel {
	lr := as.LogRange.Log10()
	first := int(math.Floor(snap(lr.Min))) + 1
	last := int(math.Floor(snap(lr.Max)))
	for e := first; e <= last && e-first < maxTicks; e++ {
		v := math.Pow10(e)
		dst = append(dst, TickLabel{Value: v, Text: FormatValue(v)})
	}
	return dst
}
