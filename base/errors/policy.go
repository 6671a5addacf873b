// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"log/slog"
	"runtime"
	"strconv"
	"strings"
)

// Policy determines what happens when a validation error
// is reported through [Check].
type Policy int32

const (
	// Reject logs the error and returns it, leaving it up to the
	// caller to keep its prior valid state.
	Reject Policy = iota

	// Abort logs the error and then panics with it, which is
	// useful to catch integration bugs early during development.
	Abort
)

// String returns the name of the policy.
func (p Policy) String() string {
	switch p {
	case Reject:
		return "Reject"
	case Abort:
		return "Abort"
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

// Check applies the given policy to the given error.
// It returns nil if err is nil. Otherwise the error is logged
// together with the calling location, and then either returned
// ([Reject]) or raised as a panic ([Abort]).
func Check(p Policy, err error) error {
	if err == nil {
		return nil
	}
	slog.Error(err.Error(), "policy", p, "at", caller())
	if p == Abort {
		panic(err)
	}
	return err
}

// caller returns the first non-errors frame of the current stack
// as a short file:line string.
func caller() string {
	callers := make([]uintptr, 8)
	n := runtime.Callers(3, callers)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(callers[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "base/errors/") {
			file := frame.File
			if i := strings.LastIndex(file, "/"); i >= 0 {
				file = file[i+1:]
			}
			return file + ":" + strconv.Itoa(frame.Line)
		}
		if !more {
			return ""
		}
	}
}
