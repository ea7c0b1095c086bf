// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

import (
	"cogentcore.org/knobs/math32"
	"cogentcore.org/knobs/paint/render"
)

// Control is implemented by every control.
type Control interface {

	// Size returns the size of the control.
	Size() math32.Vector2

	// Update applies the input to value and paints the control at pos.
	Update(ctx *Context, pos math32.Vector2, value Value, in Input) Response
}

// Input is the pointer and modifier state for one control in one frame.
// The host reads it once per frame and passes it to Update.
type Input struct {

	// Pos is the pointer position, local to the control rectangle.
	Pos math32.Vector2

	// Delta is the pointer movement since the previous frame while dragging.
	Delta math32.Vector2

	// Hovered is whether the pointer is over the control.
	Hovered bool

	// Clicked is whether the control was clicked this frame.
	Clicked bool

	// Dragging is whether a drag that started on the control is in progress.
	Dragging bool

	// Released is whether a drag on the control ended this frame.
	Released bool

	// Shift is whether shift is held, selecting the shift snap step.
	Shift bool
}

// Active returns whether the pointer is interacting with the control.
func (in Input) Active() bool {
	return in.Clicked || in.Dragging
}

// Response is the result of updating a control for one frame.
type Response struct {

	// Changed is whether the committed value changed this frame.
	Changed bool

	// Rect is the rectangle occupied by the control.
	Rect math32.Box2

	// Displayed is the value the control was drawn with; it differs
	// from the committed value while animating.
	Displayed float32

	// Animating is whether the displayed value is still moving, so
	// another frame should be requested.
	Animating bool

	// Render is the list of draw items for the control.
	Render render.Render
}
