// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package angle provides the value constraint rules shared by all
// knob controls: folding an unbounded angle into the range selected
// by a [WrapMode], clamping it to optional limits, and snapping it to
// a grid. It also defines the [Orientation] and [Winding] conventions
// used to map screen vectors onto angle values.
//
// All angles are float32 radians. Screen coordinates have y growing
// downward, so a positive angle rotates +X toward +Y, which is
// clockwise on screen.
package angle
