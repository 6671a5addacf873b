// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug

package errors

// DefaultPolicy is the [Policy] used by packages that do not
// set their own. Debug builds abort on the first invalid operation.
var DefaultPolicy = Abort
