// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lineplot renders line plots to PNG and SVG files,
// from data files or from a live stream of values.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/lineplot/base/logx"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var vv, v, q bool
	root := &cobra.Command{
		Use:          "lineplot",
		Short:        "Render axis-scaled 2D line plots",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&v, "verbose", "v", false, "log informational messages")
	pf.BoolVar(&vv, "vv", false, "log debug messages")
	pf.BoolVarP(&q, "quiet", "q", false, "only log errors")
	root.AddCommand(newRenderCmd(), newStreamCmd())
	return root
}
