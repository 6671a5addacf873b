// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"slices"
)

// NumSeries returns the number of series.
func (pt *Plot) NumSeries() int {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return len(pt.series)
}

// AddSeries inserts a new empty series before the given index and returns
// its index. An index out of range appends the series at the end.
func (pt *Plot) AddSeries(before int) int {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.insertSeries(before, nil)
}

// AddSeriesN inserts a new series of n points at (0, 0) before the
// given index, as a fixed-size buffer to be filled with [Plot.SetPoint].
func (pt *Plot) AddSeriesN(before, n int) int {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.insertSeries(before, make(XYs, max(n, 0)))
}

// AddSeriesData inserts a new series with a copy of the given points
// before the given index. Points with an infinite coordinate are
// rejected and no series is added.
func (pt *Plot) AddSeriesData(before int, pts XYs) (int, error) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if err := pts.Check(); err != nil {
		return -1, pt.check(fmt.Errorf("add series: %w", err))
	}
	return pt.insertSeries(before, slices.Clone(pts)), nil
}

func (pt *Plot) insertSeries(before int, pts XYs) int {
	if before < 0 || before > len(pt.series) {
		before = len(pt.series)
	}
	sr := newSeries()
	sr.Points = pts
	sr.rebuild(pt.seriesScale())
	pt.series = slices.Insert(pt.series, before, sr)
	return before
}

// RemoveSeries removes the series at the given index, shifting later
// series down, and releases its backend buffers.
func (pt *Plot) RemoveSeries(series int) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	sr, err := pt.seriesAt(series)
	if err != nil {
		return err
	}
	if pt.backend != nil {
		releaseBuffer(pt.backend, &sr.vbuf)
		releaseBuffer(pt.backend, &sr.ibuf)
	}
	pt.series = slices.Delete(pt.series, series, series+1)
	return nil
}

// seriesAt returns the series at the given index, or a checked error.
func (pt *Plot) seriesAt(series int) (*Series, error) {
	if series < 0 || series >= len(pt.series) {
		return nil, pt.check(fmt.Errorf("series %d of %d: %w", series, len(pt.series), ErrIndexOutOfRange))
	}
	return pt.series[series], nil
}

// modify applies fun to the series at the given index and rebuilds
// its buffers if fun succeeds.
func (pt *Plot) modify(series int, fun func(sr *Series) error) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	sr, err := pt.seriesAt(series)
	if err != nil {
		return err
	}
	if err := fun(sr); err != nil {
		return pt.check(fmt.Errorf("series %d: %w", series, err))
	}
	sr.rebuild(pt.seriesScale())
	return nil
}

func pointRange(what string, start, end, n int) error {
	if start < 0 || end < start || end > n {
		return fmt.Errorf("%s [%d, %d) of %d: %w", what, start, end, n, ErrIndexOutOfRange)
	}
	return nil
}

// AddPoint inserts a point before the given position of the series,
// which may be equal to the number of points to append.
func (pt *Plot) AddPoint(series, pos int, p XY) error {
	return pt.AddPoints(series, pos, XYs{p})
}

// AddPoints inserts the points before the given position of the series,
// which may be equal to the number of points to append.
func (pt *Plot) AddPoints(series, pos int, pts XYs) error {
	return pt.modify(series, func(sr *Series) error {
		if err := pointRange("insert position", pos, pos, len(sr.Points)); err != nil {
			return err
		}
		if err := pts.Check(); err != nil {
			return err
		}
		sr.Points = slices.Insert(sr.Points, pos, pts...)
		return nil
	})
}

// AppendPoints appends the points to the end of the series.
func (pt *Plot) AppendPoints(series int, pts ...XY) error {
	return pt.modify(series, func(sr *Series) error {
		if err := XYs(pts).Check(); err != nil {
			return err
		}
		sr.Points = append(sr.Points, pts...)
		return nil
	})
}

// SetPoint replaces the point at the given position of the series.
func (pt *Plot) SetPoint(series, pos int, p XY) error {
	return pt.SetPoints(series, pos, XYs{p})
}

// SetPoints replaces the points of the series starting at the given
// position. The points must fit into the existing points.
func (pt *Plot) SetPoints(series, pos int, pts XYs) error {
	return pt.modify(series, func(sr *Series) error {
		if err := pointRange("points", pos, pos+len(pts), len(sr.Points)); err != nil {
			return err
		}
		if err := pts.Check(); err != nil {
			return err
		}
		copy(sr.Points[pos:], pts)
		return nil
	})
}

// SetPointRange replaces the points [start, end) of the series with
// the given points, which may have a different length.
func (pt *Plot) SetPointRange(series, start, end int, pts XYs) error {
	return pt.modify(series, func(sr *Series) error {
		if err := pointRange("points", start, end, len(sr.Points)); err != nil {
			return err
		}
		if err := pts.Check(); err != nil {
			return err
		}
		sr.Points = slices.Replace(sr.Points, start, end, pts...)
		return nil
	})
}

// ClearPoints removes all points of the series.
func (pt *Plot) ClearPoints(series int) error {
	return pt.modify(series, func(sr *Series) error {
		sr.Points = sr.Points[:0]
		return nil
	})
}

// ClearPointRange removes the points [start, end) of the series.
func (pt *Plot) ClearPointRange(series, start, end int) error {
	return pt.modify(series, func(sr *Series) error {
		if err := pointRange("points", start, end, len(sr.Points)); err != nil {
			return err
		}
		sr.Points = slices.Delete(sr.Points, start, end)
		return nil
	})
}

// Points returns a copy of the points of the series.
func (pt *Plot) Points(series int) (XYs, error) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	sr, err := pt.seriesAt(series)
	if err != nil {
		return nil, err
	}
	return slices.Clone(sr.Points), nil
}

// NumPoints returns the number of points of the series,
// or 0 for an invalid series.
func (pt *Plot) NumPoints(series int) int {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if series < 0 || series >= len(pt.series) {
		return 0
	}
	return len(pt.series[series].Points)
}

// SetPlotColor sets the line color of the series.
func (pt *Plot) SetPlotColor(series int, clr color.Color) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	sr, err := pt.seriesAt(series)
	if err != nil {
		return err
	}
	c, err := toRGBA(clr)
	if err != nil {
		return pt.check(fmt.Errorf("series %d: %w", series, err))
	}
	sr.Color = c
	return nil
}

// PlotColor returns the line color of the series.
func (pt *Plot) PlotColor(series int) color.RGBA {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if series < 0 || series >= len(pt.series) {
		return color.RGBA{}
	}
	return pt.series[series].Color
}

// SetPlotVisible sets whether the series is drawn.
func (pt *Plot) SetPlotVisible(series int, on bool) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	sr, err := pt.seriesAt(series)
	if err != nil {
		return err
	}
	sr.Visible = on
	return nil
}

// IsPlotVisible returns whether the series is drawn.
func (pt *Plot) IsPlotVisible(series int) bool {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if series < 0 || series >= len(pt.series) {
		return false
	}
	return pt.series[series].Visible
}

// SeriesBuffers returns copies of the position and index
// buffers of the series.
func (pt *Plot) SeriesBuffers(series int) (pos []float32, idx []uint32, err error) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	sr, err := pt.seriesAt(series)
	if err != nil {
		return nil, nil, err
	}
	return slices.Clone(sr.Positions), slices.Clone(sr.Indices), nil
}
