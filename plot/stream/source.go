// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import (
	"context"
	"io"

	"cogentcore.org/lineplot/base/websocket"
)

// Source is a producer of integer samples.
type Source interface {
	// Next blocks until the next value is available. It returns
	// io.EOF when the source is exhausted, or the context error
	// when the context is done.
	Next(ctx context.Context) (int, error)
}

// ReaderSource decodes values from an [io.Reader],
// such as a serial device.
type ReaderSource struct {
	r       io.Reader
	dec     Decoder
	chunk   []byte
	pending []int
	err     error
}

// NewReaderSource returns a source decoding values from the reader.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r, chunk: make([]byte, 512)}
}

func (rs *ReaderSource) Next(ctx context.Context) (int, error) {
	for len(rs.pending) == 0 {
		if rs.err != nil {
			return 0, rs.err
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		n, err := rs.r.Read(rs.chunk)
		rs.pending = rs.dec.Feed(rs.chunk[:n], rs.pending[:0])
		rs.err = err
	}
	v := rs.pending[0]
	rs.pending = rs.pending[1:]
	return v, nil
}

// WebSocketSource decodes values from the text messages
// received on a WebSocket connection.
type WebSocketSource struct {
	client *websocket.Client
	values chan int
}

// DialWebSocket connects to the WebSocket server at the given url.
// The connection is closed when the context is done.
func DialWebSocket(ctx context.Context, url string) (*WebSocketSource, error) {
	c, err := websocket.Connect(ctx, url)
	if err != nil {
		return nil, err
	}
	ws := &WebSocketSource{client: c, values: make(chan int, 1024)}
	var dec Decoder
	var vals []int
	c.OnMessage(func(typ websocket.MessageTypes, msg []byte) {
		vals = dec.Feed(msg, vals[:0])
		for _, v := range vals {
			select {
			case ws.values <- v:
			case <-ctx.Done():
				return
			}
		}
	})
	return ws, nil
}

func (ws *WebSocketSource) Next(ctx context.Context) (int, error) {
	select {
	case v := <-ws.values:
		return v, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-ws.client.Done():
	}
	// deliver values received before the close
	select {
	case v := <-ws.values:
		return v, nil
	default:
	}
	if err := ws.client.Err(); err != nil {
		return 0, err
	}
	return 0, io.EOF
}

// Close closes the connection.
func (ws *WebSocketSource) Close() error {
	return ws.client.Close()
}
