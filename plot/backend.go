// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"image/color"

	"cogentcore.org/lineplot/math32"
)

// BufferID identifies a vertex or index buffer allocated by a [Backend].
// The zero value is never a valid buffer.
type BufferID uint32

// Backend is the line drawing device used by [Plot.Render].
// Vertex buffers hold x, y float32 pairs that are transformed
// by the matrix given at draw time into clip space, where
// [-1, 1] spans the whole frame and Y grows upward.
type Backend interface {
	// Begin starts a new frame of the given size in pixels,
	// cleared to the background color.
	Begin(size image.Point, background color.Color)

	// NewBuffer allocates a new empty buffer.
	NewBuffer() BufferID

	// Upload replaces the contents of the vertex buffer.
	Upload(id BufferID, vertices []float32)

	// UploadIndices replaces the contents of the index buffer.
	UploadIndices(id BufferID, indices []uint32)

	// Release frees the buffer. The id must not be used afterwards.
	Release(id BufferID)

	// SetClip restricts drawing to the given rectangle, in pixels.
	SetClip(r image.Rectangle)

	// ClearClip removes the clip rectangle.
	ClearClip()

	// DrawLines draws count vertices of the vertex buffer as
	// independent line segments, each consecutive pair being one segment.
	DrawLines(vb BufferID, count int, clr color.Color, m math32.Matrix4)

	// DrawIndexedLines draws count indices of the index buffer as
	// independent line segments into the vertex buffer. Smooth requests
	// antialiased (multisampled) lines.
	DrawIndexedLines(vb, ib BufferID, count int, clr color.Color, m math32.Matrix4, smooth bool)

	// End finishes the frame.
	End() error
}
