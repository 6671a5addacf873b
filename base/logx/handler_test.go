// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	b := &bytes.Buffer{}
	lg := slog.New(NewHandler(b, slog.LevelInfo))

	lg.Debug("this is debug")
	lg.Info("this is info", "n", 3)
	lg.Warn("this is warn")

	out := b.String()
	assert.NotContains(t, out, "this is debug")
	assert.Contains(t, out, "this is info")
	assert.Contains(t, out, "n=3")
	assert.Contains(t, out, "this is warn")
	assert.NotContains(t, out, "time=")
}

func TestDefaultLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	UserLevel = slog.LevelDebug
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}
