// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

import (
	"cogentcore.org/knobs/anim"
	"cogentcore.org/knobs/angle"
)

// Context is the state shared by all controls of one host: the
// animation table and the visual palette. It is owned by the host and
// passed to every Update call; it is not safe for concurrent use.
type Context struct {

	// Anim holds the animation state of every control.
	Anim *anim.Table

	// Visuals are the colors and strokes controls are drawn with.
	Visuals Visuals
}

// NewContext returns a new [Context] with the given clock, which may be
// nil to use the system clock, and [DefaultVisuals].
func NewContext(clock anim.Clock) *Context {
	return &Context{Anim: anim.NewTable(clock), Visuals: DefaultVisuals()}
}

func (ctx *Context) table() *anim.Table {
	if ctx.Anim == nil {
		ctx.Anim = anim.NewTable(nil)
	}
	return ctx.Anim
}

// display returns the value to draw a control with. Values that wrap
// around the circle animate along the shortest path.
func (ctx *Context) display(id anim.ID, wrap angle.WrapMode, committed float32, animated, dragging bool) float32 {
	t := ctx.table()
	if wrap == angle.Signed || wrap == angle.Unsigned {
		return t.Angle(id, committed, animated, dragging)
	}
	return t.Value(id, committed, animated, dragging)
}

// release retargets the animation of a control at the end of a drag.
func (ctx *Context) release(id anim.ID, value float32, animated bool) {
	if animated {
		ctx.table().Retarget(id, value)
	}
}
