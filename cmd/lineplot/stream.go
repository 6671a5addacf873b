// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"cogentcore.org/lineplot/base/errors"
	"cogentcore.org/lineplot/plot/stream"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type streamOptions struct {
	Config   string
	Device   string
	Baud     int
	WS       string
	PNG      string
	Frames   int
	Interval time.Duration
	Capacity int
}

func newStreamCmd() *cobra.Command {
	opts := &streamOptions{}
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Plot live {value} frames from a device or a WebSocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStream(cmd.Context(), opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&opts.Config, "config", "", "plot config file (.toml, .yaml)")
	fs.StringVar(&opts.Device, "device", "", "serial port or capture file to read")
	fs.IntVar(&opts.Baud, "baud", stream.DefaultBaudRate, "serial port baud rate")
	fs.StringVar(&opts.WS, "ws", "", "WebSocket url to read")
	fs.StringVar(&opts.PNG, "png", "", "output PNG file of the last frame")
	fs.IntVar(&opts.Frames, "frames", 0, "number of frames to render (0: until the source ends)")
	fs.DurationVar(&opts.Interval, "interval", 15*time.Millisecond, "time between frames")
	fs.IntVar(&opts.Capacity, "capacity", stream.DefaultCapacity, "number of points of a sweep")
	cmd.MarkFlagsMutuallyExclusive("device", "ws")
	cmd.MarkFlagsOneRequired("device", "ws")
	errors.Must(cmd.MarkFlagFilename("config", "toml", "yaml", "yml"))
	cmd.AddCommand(&cobra.Command{
		Use:   "ports",
		Short: "List the serial ports of the system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPorts(cmd.OutOrStdout(), stream.Ports)
		},
	})
	return cmd
}

// listPorts writes the names returned by ports, one per line.
func listPorts(w io.Writer, ports func() ([]string, error)) error {
	names, err := ports()
	if err != nil {
		return fmt.Errorf("list serial ports: %w", err)
	}
	if len(names) == 0 {
		slog.Warn("no serial ports found")
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// streamConfig returns the config for a sweep display: x over the
// capacity, y over the 10 bit value range, without text.
func streamConfig(capacity int) *Config {
	cfg := &Config{}
	cfg.SetFromDefaults()
	cfg.Title = ""
	cfg.X.Max, cfg.X.Step = float64(capacity), 100
	cfg.Y.Max, cfg.Y.Step = 1024, 100
	return cfg
}

func openSource(ctx context.Context, opts *streamOptions) (stream.Source, error) {
	if opts.WS != "" {
		return stream.DialWebSocket(ctx, opts.WS)
	}
	src, closer, err := stream.OpenDevice(opts.Device, opts.Baud)
	if err != nil {
		return nil, err
	}
	// a blocked read only returns once the device is closed
	context.AfterFunc(ctx, func() { closer.Close() })
	return src, nil
}

func runStream(ctx context.Context, opts *streamOptions) error {
	if opts.Interval <= 0 {
		return fmt.Errorf("invalid interval %v", opts.Interval)
	}
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = stream.DefaultCapacity
	}
	cfg := streamConfig(capacity)
	if opts.Config != "" {
		var err error
		if cfg, err = LoadConfig(opts.Config); err != nil {
			return err
		}
	}
	pt, b, err := buildPlot(cfg, stream.Baseline(capacity, 512))
	if err != nil {
		return err
	}
	const series = 0

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	src, err := openSource(ctx, opts)
	if err != nil {
		return err
	}
	ring := stream.NewRing(capacity)
	var queue stream.Queue

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		err := stream.Run(gctx, src, ring, &queue)
		if gctx.Err() != nil {
			// the source was closed to stop it
			return nil
		}
		return err
	})
	frames := 0
	g.Go(func() error {
		defer cancel()
		tick := time.NewTicker(opts.Interval)
		defer tick.Stop()
		for opts.Frames <= 0 || frames < opts.Frames {
			select {
			case <-gctx.Done():
				return nil
			case <-tick.C:
			}
			if _, err := queue.Drain(pt, series); err != nil {
				slog.Warn("stream", "err", err)
			}
			if err := pt.Render(b); err != nil {
				return err
			}
			frames++
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// samples received after the last frame
	if _, err := queue.Drain(pt, series); err != nil {
		slog.Warn("stream", "err", err)
	}
	if err := pt.Render(b); err != nil {
		return err
	}
	slog.Info("stream done", "frames", frames, "next", ring.Current())
	if opts.PNG == "" {
		return nil
	}
	if err := b.SavePNG(opts.PNG); err != nil {
		return err
	}
	slog.Info("wrote", "file", opts.PNG)
	return nil
}
