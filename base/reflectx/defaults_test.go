// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type defaultsSub struct {
	Level float64 `default:"0.5"`
}

type defaultsTest struct {
	Name     string        `default:"plot"`
	On       bool          `default:"true"`
	Count    int           `default:"12"`
	Mask     uint8         `default:"0x0f"`
	Scale    float32       `default:"2.5"`
	Interval time.Duration `default:"15ms"`
	Sizes    []int         `default:"1, 2,3"`
	Ptr      *int          `default:"7"`
	Untagged int
	Sub      defaultsSub
	hidden   int `default:"3"`
}

func TestSetFromDefaultTags(t *testing.T) {
	d := &defaultsTest{Untagged: 4}
	require.NoError(t, SetFromDefaultTags(d))
	assert.Equal(t, "plot", d.Name)
	assert.True(t, d.On)
	assert.Equal(t, 12, d.Count)
	assert.Equal(t, uint8(15), d.Mask)
	assert.Equal(t, float32(2.5), d.Scale)
	assert.Equal(t, 15*time.Millisecond, d.Interval)
	assert.Equal(t, []int{1, 2, 3}, d.Sizes)
	require.NotNil(t, d.Ptr)
	assert.Equal(t, 7, *d.Ptr)
	assert.Equal(t, 4, d.Untagged)
	assert.Equal(t, 0.5, d.Sub.Level)
	assert.Equal(t, 0, d.hidden)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	assert.Error(t, SetFromDefaultTags(defaultsTest{}))
	assert.Error(t, SetFromDefaultTags(new(int)))

	type bad struct {
		N    int      `default:"x"`
		B    bool     `default:"true"`
		Chan chan int `default:"1"`
	}
	b := &bad{}
	err := SetFromDefaultTags(b)
	assert.ErrorContains(t, err, "field N")
	assert.ErrorContains(t, err, "field Chan")
	assert.True(t, b.B, "valid fields are still set")
}

func TestSetFromString(t *testing.T) {
	var f float64
	v := reflect.ValueOf(&f).Elem()
	require.NoError(t, SetFromString(v, "1e3"))
	assert.Equal(t, 1000.0, f)
	assert.Error(t, SetFromString(v, "abc"))

	var s []string
	require.NoError(t, SetFromString(reflect.ValueOf(&s).Elem(), ""))
	assert.Empty(t, s)
}

func TestNonPointerValue(t *testing.T) {
	v := 1
	p := &v
	rv := NonPointerValue(reflect.ValueOf(&p))
	assert.Equal(t, reflect.Int, rv.Kind())
	assert.Equal(t, 1, rv.Interface())
}
