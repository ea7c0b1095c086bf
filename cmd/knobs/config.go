// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// Config is the configuration of the knobs command.
type Config struct {

	// Scene is the scene file, in TOML or YAML.
	Scene string

	// Output is the directory that render writes images to.
	Output string

	// Last renders only the final frame.
	Last bool

	// Items makes dump print the draw items of each frame.
	Items bool

	// Watch runs the command again whenever the scene file changes.
	Watch bool

	VeryVerbose bool
	Verbose     bool
	Quiet       bool
}
