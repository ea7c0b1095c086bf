// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command knobs plays scenes of knob controls: it renders their frames
// to PNG images, dumps the control states, and lists the angle knob
// presets.
package main

import (
	"os"

	"cogentcore.org/knobs/base/errors"
	"cogentcore.org/knobs/logx"
	"github.com/spf13/cobra"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}

// NewRootCmd returns the knobs command with all of its subcommands.
func NewRootCmd() *cobra.Command {
	c := &Config{}
	root := &cobra.Command{
		Use:           "knobs",
		Short:         "Play scenes of angle, audio and compass controls",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
			logx.SetDefaultLogger(cmd.ErrOrStderr())
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&c.VeryVerbose, "vv", false, "print debug messages")
	pf.BoolVarP(&c.Verbose, "verbose", "v", false, "print informational messages")
	pf.BoolVarP(&c.Quiet, "quiet", "q", false, "only print errors")

	render := &cobra.Command{
		Use:   "render <scene>",
		Short: "Render the frames of a scene to PNG images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Scene = args[0]
			return run(cmd, c, func() error { return Render(c) })
		},
	}
	render.Flags().StringVarP(&c.Output, "output", "o", "frames", "the directory to write the images to")
	render.Flags().BoolVar(&c.Last, "last", false, "only render the last frame")
	render.Flags().BoolVarP(&c.Watch, "watch", "w", false, "render again whenever the scene file changes")

	dump := &cobra.Command{
		Use:   "dump <scene>",
		Short: "Print the state of every control after every frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Scene = args[0]
			return run(cmd, c, func() error { return Dump(c, cmd.OutOrStdout()) })
		},
	}
	dump.Flags().BoolVar(&c.Items, "items", false, "also print the draw items of each frame")
	dump.Flags().BoolVarP(&c.Watch, "watch", "w", false, "dump again whenever the scene file changes")

	presets := &cobra.Command{
		Use:   "presets",
		Short: "List the angle knob presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Presets(cmd.OutOrStdout())
		},
	}

	root.AddCommand(render, dump, presets)
	return root
}

// run runs f once, and then again on every change of the scene file
// if watching is on.
func run(cmd *cobra.Command, c *Config, f func() error) error {
	if !c.Watch {
		return f()
	}
	return Watch(cmd.Context(), c.Scene, f)
}
