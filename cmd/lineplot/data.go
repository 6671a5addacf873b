// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/lineplot/plot"
)

// ReadXY reads points given as "x y" per line. Blank lines
// and lines starting with # are skipped.
func ReadXY(r io.Reader) (plot.XYs, error) {
	var pts plot.XYs
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		fields := strings.Fields(s)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 values, got %d", line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, plot.XY{X: x, Y: y})
	}
	return pts, sc.Err()
}

// OpenXY reads the points of the given file.
func OpenXY(filename string) (plot.XYs, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pts, err := ReadXY(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return pts, nil
}

// DemoCurve returns n+1 points of a closed parametric curve
// spanning x in [10, 90] and y in [0.1, 0.9].
func DemoCurve(n int) plot.XYs {
	pts := make(plot.XYs, n+1)
	for i := range pts {
		a := float64(i) / float64(n)
		pts[i] = plot.XY{
			X: 40*math.Cos(2*math.Pi*a) + 50,
			Y: 0.4*math.Sin(4*math.Pi*a) + 0.5,
		}
	}
	return pts
}
