// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

type fakeT struct {
	errs []any
}

func (f *fakeT) Error(args ...any) {
	f.errs = append(f.errs, args...)
}

func TestLog(t *testing.T) {
	assert.Nil(t, Log(nil))
	assert.Equal(t, errTest, Log(errTest))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errTest) })
	assert.Equal(t, "a", Must1("a", nil))
	assert.Panics(t, func() { Must1("a", errTest) })
}

func TestTest(t *testing.T) {
	ft := &fakeT{}
	assert.Nil(t, Test(ft, nil))
	assert.Empty(t, ft.errs)
	assert.Equal(t, errTest, Test(ft, errTest))
	assert.Len(t, ft.errs, 1)
}

func TestCheck(t *testing.T) {
	assert.Nil(t, Check(Reject, nil))
	assert.Nil(t, Check(Abort, nil))

	wrapped := fmt.Errorf("setting range: %w", errTest)
	err := Check(Reject, wrapped)
	assert.True(t, Is(err, errTest))

	assert.PanicsWithError(t, wrapped.Error(), func() {
		Check(Abort, wrapped)
	})
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "Reject", Reject.String())
	assert.Equal(t, "Abort", Abort.String())
	assert.Equal(t, "Policy(7)", Policy(7).String())
}
