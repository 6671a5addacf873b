// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import (
	"context"
	"io"
	"sync"

	"cogentcore.org/lineplot/base/errors"
	"cogentcore.org/lineplot/plot"
)

// DefaultCapacity is the default number of points of a sweep.
const DefaultCapacity = 1000

// Sample is one value at its point index within the sweep.
type Sample struct {
	Index int
	Value float64
}

// Point returns the plot point of the sample, with the index as x.
func (s Sample) Point() plot.XY {
	return plot.XY{X: float64(s.Index), Y: s.Value}
}

// Ring assigns successive values to point indexes that wrap
// around at the capacity.
type Ring struct {
	Capacity int
	current  int
}

// NewRing returns a ring with the given capacity,
// or [DefaultCapacity] if it is not positive.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{Capacity: capacity}
}

// Add returns the sample of the value at the current index
// and advances the index.
func (r *Ring) Add(v int) Sample {
	s := Sample{Index: r.current, Value: float64(v)}
	r.current++
	if r.current >= r.Capacity {
		r.current = 0
	}
	return s
}

// Current returns the index of the next sample.
func (r *Ring) Current() int {
	return r.current
}

// Baseline returns the initial points of a sweep series: capacity
// points at the given level with x running from capacity-1 down to 0.
func Baseline(capacity int, level float64) plot.XYs {
	pts := make(plot.XYs, capacity)
	for i := range pts {
		pts[i] = plot.XY{X: float64(capacity - 1 - i), Y: level}
	}
	return pts
}

// Queue holds samples produced on one goroutine until they are
// applied to a plot on another.
type Queue struct {
	mu      sync.Mutex
	samples []Sample
	spare   []Sample
}

// Push adds a sample to the queue.
func (q *Queue) Push(s Sample) {
	q.mu.Lock()
	q.samples = append(q.samples, s)
	q.mu.Unlock()
}

// Len returns the number of queued samples.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.samples)
}

// Drain applies all queued samples to the given series of the plot
// with [plot.Plot.SetPoint] and returns the number applied.
// Samples outside of the series are dropped.
func (q *Queue) Drain(pt *plot.Plot, series int) (int, error) {
	q.mu.Lock()
	samples := q.samples
	q.samples = q.spare[:0]
	q.mu.Unlock()

	n := 0
	var errs []error
	for _, s := range samples {
		if err := pt.SetPoint(series, s.Index, s.Point()); err != nil {
			errs = append(errs, err)
			continue
		}
		n++
	}
	q.mu.Lock()
	q.spare = samples[:0]
	q.mu.Unlock()
	return n, errors.Join(errs...)
}

// Run reads values from the source until it is exhausted or the
// context is done, pushing the samples of the ring onto the queue.
// It returns nil when the source ends with io.EOF or the context
// is canceled.
func Run(ctx context.Context, src Source, r *Ring, q *Queue) error {
	for {
		v, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		q.Push(r.Add(v))
	}
}
