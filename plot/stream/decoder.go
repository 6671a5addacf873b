// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stream feeds live integer samples from a device or a
// WebSocket into a plot series, sweeping across a fixed number of
// points like an oscilloscope.
package stream

import (
	"bytes"
	"log/slog"
	"strconv"
)

// MaxPending is the size above which undecoded input is discarded.
const MaxPending = 5000

// Decoder extracts integer values from a byte stream of frames
// of the form {<int>}. Bytes before the first '{' are skipped.
// A frame is only accepted when the text since the previous '}'
// starts with '{'; other frames are dropped.
type Decoder struct {
	buf []byte
}

// Feed appends the input to the pending bytes, appends all complete
// values to dst and returns it.
func (d *Decoder) Feed(p []byte, dst []int) []int {
	d.buf = append(d.buf, p...)
	if i := bytes.IndexByte(d.buf, '{'); i < 0 {
		d.buf = d.buf[:0]
	} else if i > 0 {
		d.buf = append(d.buf[:0], d.buf[i:]...)
	}

	start := 0
	for {
		end := bytes.IndexByte(d.buf[start:], '}')
		if end < 0 {
			break
		}
		end += start
		if frame := d.buf[start:end]; len(frame) > 0 && frame[0] == '{' {
			v, err := strconv.Atoi(string(frame[1:]))
			if err == nil {
				dst = append(dst, v)
			} else {
				slog.Debug("stream: malformed frame", "frame", string(frame)+"}")
			}
		}
		start = end + 1
	}
	d.buf = append(d.buf[:0], d.buf[start:]...)
	if len(d.buf) > MaxPending {
		d.buf = d.buf[:0]
	}
	return dst
}

// Pending returns the number of bytes waiting for a complete frame.
func (d *Decoder) Pending() int {
	return len(d.buf)
}
