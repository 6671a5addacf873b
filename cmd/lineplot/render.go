// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/lineplot/base/errors"
	"cogentcore.org/lineplot/plot"
	"cogentcore.org/lineplot/plot/raster"
	"cogentcore.org/lineplot/plot/svgplot"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	Config string
	Data   string
	PNG    string
	SVG    string
	Watch  bool
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a plot of a data file or of the demo curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.PNG == "" && opts.SVG == "" {
				return fmt.Errorf("nothing to write: give --png or --svg")
			}
			if err := renderOnce(opts); err != nil {
				return err
			}
			if !opts.Watch {
				return nil
			}
			return watch(cmd.Context(), opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&opts.Config, "config", "", "plot config file (.toml, .yaml)")
	fs.StringVar(&opts.Data, "data", "", `data file with "x y" per line (default: demo curve)`)
	fs.StringVar(&opts.PNG, "png", "", "output PNG file")
	fs.StringVar(&opts.SVG, "svg", "", "output SVG file")
	fs.BoolVar(&opts.Watch, "watch", false, "render again when the config or data file changes")
	errors.Must(cmd.MarkFlagFilename("config", "toml", "yaml", "yml"))
	return cmd
}

// loadRender returns the config and points for the options.
// Without a config the ranges suit the demo curve, or are
// fitted to the data.
func loadRender(opts *renderOptions) (*Config, plot.XYs, error) {
	cfg, err := LoadConfig(opts.Config)
	if err != nil {
		return nil, nil, err
	}
	if opts.Data == "" {
		if opts.Config == "" {
			cfg.X.Max, cfg.X.Step = 100, 10
			cfg.Y.Max, cfg.Y.Step = 1, 0.1
		}
		return cfg, DemoCurve(100), nil
	}
	pts, err := OpenXY(opts.Data)
	if err != nil {
		return nil, nil, err
	}
	if opts.Config == "" {
		cfg.X.Fit, cfg.Y.Fit = true, true
	}
	return cfg, pts, nil
}

// buildPlot returns a plot with a raster backend configured by
// the config and holding the points as its only series.
func buildPlot(cfg *Config, pts plot.XYs) (*plot.Plot, *raster.Backend, error) {
	b := raster.NewBackend()
	pt := plot.NewPlot(raster.NewText(b))
	pt.SetPolicy(errors.Reject)
	if err := cfg.Apply(pt); err != nil {
		return nil, nil, err
	}
	s, err := pt.AddSeriesData(0, pts)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.applySeries(pt, s); err != nil {
		return nil, nil, err
	}
	return pt, b, nil
}

func renderOnce(opts *renderOptions) error {
	cfg, pts, err := loadRender(opts)
	if err != nil {
		return err
	}
	pt, b, err := buildPlot(cfg, pts)
	if err != nil {
		return err
	}
	if opts.PNG != "" {
		if err := pt.Render(b); err != nil {
			return err
		}
		if err := b.SavePNG(opts.PNG); err != nil {
			return err
		}
		slog.Info("wrote", "file", opts.PNG, "points", len(pts))
	}
	if opts.SVG != "" {
		desc := fmt.Sprintf("%d points", len(pts))
		if err := svgplot.Save(opts.SVG, pt.ExportView(), desc); err != nil {
			return err
		}
		slog.Info("wrote", "file", opts.SVG, "points", len(pts))
	}
	return nil
}

// watch renders again whenever the config or data file is written,
// until the context is done. The directories are watched so that
// files replaced by editors are still seen.
func watch(ctx context.Context, opts *renderOptions) error {
	var files []string
	for _, f := range []string{opts.Config, opts.Data} {
		if f != "" {
			files = append(files, filepath.Clean(f))
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("--watch needs --config or --data")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	dirs := map[string]bool{}
	for _, f := range files {
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := w.Add(dir); err != nil {
			return err
		}
	}
	slog.Info("watching", "files", files)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched(files, ev) {
				continue
			}
			slog.Debug("changed", "file", ev.Name, "op", ev.Op)
			errors.Log(renderOnce(opts))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch", "err", err)
		}
	}
}

func watched(files []string, ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	name := filepath.Clean(ev.Name)
	for _, f := range files {
		if f == name {
			return true
		}
	}
	return false
}
