// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

import (
	"fmt"
	"log/slog"

	"cogentcore.org/knobs/anim"
	"cogentcore.org/knobs/angle"
	"cogentcore.org/knobs/math32"
	"cogentcore.org/knobs/paint"
	"cogentcore.org/knobs/paint/render"
)

// Labels are the names of the four cardinal directions, starting at
// zero and following the winding.
type Labels [4]string

// DefaultLabels are the compass points.
var DefaultLabels = Labels{"N", "E", "S", "W"}

// LinearCompass is a horizontal ribbon scrolling through a window of
// Spread radians around the value. Dragging moves the ribbon with the
// pointer; snapping applies when the drag ends.
type LinearCompass struct {

	// ID identifies the compass for animation.
	ID anim.ID

	// Width is the width of the ribbon.
	Width float32 `default:"256"`

	// Height is the height of the ribbon.
	Height float32 `default:"48"`

	// Spread is the angle visible across the width.
	Spread float32 `default:"3.1415927"`

	// Winding is the direction of increasing values; counterclockwise
	// mirrors the ribbon.
	Winding angle.Winding `default:"clockwise"`

	// Labels are drawn at the cardinal ticks.
	Labels Labels `default:"[N E S W]"`

	angle.Constraint

	angle.Snaps

	// Animated smooths the displayed value after a drag ends.
	Animated bool

	// ShowCursor draws the value arrow and its label at the center.
	ShowCursor bool `default:"true"`

	// Markers are drawn at their angles on the ribbon.
	Markers []Marker
}

// NewLinearCompass returns a new [LinearCompass] with the given ID
// and default settings.
func NewLinearCompass(id anim.ID) *LinearCompass {
	c := &LinearCompass{ID: id}
	c.Defaults()
	return c
}

// Defaults sets the default settings.
func (c *LinearCompass) Defaults() {
	c.Width = 256
	c.Height = 48
	c.Spread = math32.Pi
	c.Winding = angle.Clockwise
	c.Labels = DefaultLabels
	c.Wrap = angle.Unsigned
	c.ShiftStep = angle.Limit(math32.Tau / 36)
	c.ShowCursor = true
}

// Size returns the size of the ribbon.
func (c *LinearCompass) Size() math32.Vector2 {
	return math32.Vec2(c.Width, c.Height)
}

// spread returns the spread signed by the winding.
func (c *LinearCompass) spread() float32 {
	return c.Spread * c.Winding.Sign()
}

// Drag returns the value after a horizontal drag of dx pixels from current.
func (c *LinearCompass) Drag(current, dx float32) float32 {
	return angle.Constrain(current+RibbonDelta(dx, c.Width, c.spread()), current, c.Constraint)
}

// Release returns the value committed when a drag ends: current snapped
// with the step selected by shift and constrained again.
func (c *LinearCompass) Release(current float32, shift bool) float32 {
	return release(c.ID, c.Snaps, c.Constraint, current, shift)
}

// release snaps a ribbon value and constrains the result.
func release(id anim.ID, snaps angle.Snaps, cons angle.Constraint, current float32, shift bool) float32 {
	v, ok := snaps.Apply(current, shift)
	if !ok {
		return current
	}
	slog.Debug("knobs: snapped on release", "id", id, "value", current, "snapped", v)
	return angle.Constrain(v, current, cons)
}

// ScreenX returns the horizontal position of angle a within a ribbon
// whose left edge is at left, when the ribbon shows displayed.
func (c *LinearCompass) ScreenX(left, displayed, a float32) float32 {
	return ScreenX(left+c.Width/2, displayed, a, c.Width, c.spread())
}

// Update applies the input to value and paints the compass at pos.
func (c *LinearCompass) Update(ctx *Context, pos math32.Vector2, value Value, in Input) Response {
	res := Response{Rect: math32.B2FromPosSize(pos, c.Size())}
	cur := value.Get()
	nv := cur
	if in.Dragging {
		nv = c.Drag(nv, in.Delta.X)
	}
	if in.Released {
		ctx.release(c.ID, nv, c.Animated)
		nv = c.Release(nv, in.Shift)
	}
	if nv != cur {
		value.Set(nv)
		res.Changed = true
	}
	res.Displayed = ctx.display(c.ID, c.Wrap, value.Get(), c.Animated, in.Dragging)
	res.Animating = c.Animated && ctx.table().Animating(c.ID)

	pc := paint.NewPainter()
	c.paint(pc, &ctx.Visuals, res.Rect, res.Displayed, ctx.Visuals.Interact(in))
	res.Render = pc.Render
	return res
}

func (c *LinearCompass) paint(pc *paint.Painter, vis *Visuals, rect math32.Box2, value float32, wv WidgetVisuals) {
	top, h := rect.Min.Y, c.Height
	font := h / 4
	x := func(a float32) float32 {
		return c.ScreenX(rect.Min.X, value, a)
	}

	pc.Rect(rect, vis.Rounding, vis.Extreme, vis.Noninteractive)
	pc.PushClip(rect)

	markerAt := func(x float32) (center, label math32.Vector2) {
		return math32.Vec2(x, top+h*0.375), math32.Vec2(x, top+h*0.125)
	}
	for i := range c.Markers {
		m := &c.Markers[i]
		center, label := markerAt(x(angle.Nearest(m.Angle, value)))
		m.paint(pc, center, label, h/6, font, vis.Text)
	}
	if c.ShowCursor {
		center, label := markerAt(x(value))
		Shape(MarkerDownArrow).Paint(pc, center, h/6, wv.Fill, wv.Stroke)
		pc.Text(label, render.AlignCenter, DegreesLabel(value), font, wv.Text)
	}

	for _, t := range Ticks(value, c.Spread) {
		tx := x(t.Angle())
		from := math32.Vec2(tx, top+h*0.5)
		pc.Line(from, from.Add(math32.Vec2(0, h*0.25*t.Scale)), vis.Noninteractive)
		if t.Label >= 0 {
			pc.Text(math32.Vec2(tx, top+h*0.875), render.AlignCenter, c.Labels[t.Label], font, vis.Text)
		}
	}

	stop := func(a float32) {
		sx := x(a)
		pc.Line(math32.Vec2(sx, rect.Min.Y), math32.Vec2(sx, rect.Max.Y), vis.Noninteractive)
	}
	if c.Min != nil {
		stop(*c.Min)
	}
	if c.Max != nil {
		stop(*c.Max)
	}

	pc.PopClip()
}

// DegreesLabel formats an angle in radians as whole degrees.
func DegreesLabel(a float32) string {
	d := math32.Round(math32.RadToDeg(a))
	if d == 0 {
		d = 0 // no negative zero
	}
	return fmt.Sprintf("%.0f°", d)
}
