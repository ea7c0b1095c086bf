// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

import (
	"log/slog"

	"cogentcore.org/knobs/anim"
	"cogentcore.org/knobs/angle"
	"cogentcore.org/knobs/math32"
	"cogentcore.org/knobs/math32/minmax"
	"cogentcore.org/knobs/paint"
	"cogentcore.org/knobs/paint/ppath"
	"cogentcore.org/knobs/paint/render"
)

// AudioKnob is a dial over a numeric range, driven by dragging rather
// than by pointing. The arc from zero to the value is highlighted.
type AudioKnob struct {

	// ID identifies the knob for animation.
	ID anim.ID

	// Range is the range of values.
	Range minmax.F32 `default:"{0 1}"`

	// Diameter is the size of the knob.
	Diameter float32 `default:"32"`

	// Orientation is the direction of the middle of the range.
	Orientation angle.Orientation `default:"top"`

	// Winding is the direction of increasing values.
	Winding angle.Winding `default:"clockwise"`

	// Spread is the fraction of a half turn used on each side of the
	// orientation, in [0, 1].
	Spread float32 `default:"1"`

	// Thickness is the fraction of the radius covered by the track, in [0, 1].
	Thickness float32 `default:"0.66"`

	// Shape is the outline of the dial body.
	Shape WidgetShape `default:"squircle(4)"`

	// Snaps are applied when a drag ends.
	angle.Snaps

	// Animated smooths the displayed value after a drag ends.
	Animated bool `default:"true"`
}

// NewAudioKnob returns a new [AudioKnob] with the given ID and
// default settings.
func NewAudioKnob(id anim.ID) *AudioKnob {
	k := &AudioKnob{ID: id}
	k.Defaults()
	return k
}

// Defaults sets the default settings.
func (k *AudioKnob) Defaults() {
	k.Range.Set(0, 1)
	k.Diameter = 32
	k.Orientation = angle.Top
	k.Winding = angle.Clockwise
	k.Spread = 1
	k.Thickness = 0.66
	k.Shape = Squircle(4)
	k.Animated = true
}

// Size returns the size of the knob.
func (k *AudioKnob) Size() math32.Vector2 {
	return math32.Vector2Scalar(k.Diameter)
}

// ValueAngle returns the dial angle for v, relative to the orientation
// and before winding: -Spread*Pi at the range minimum and +Spread*Pi
// at the maximum.
func (k *AudioKnob) ValueAngle(v float32) float32 {
	spread := math32.Clamp(k.Spread, 0, 1) * math32.Pi
	return math32.Lerp(-spread, spread, k.Range.NormValue(k.Range.ClipValue(v)))
}

// Drag returns the value after a drag by delta pixels from current.
// The delta is rotated into the orientation, so that dragging along the
// winding at the top of the knob increases the value.
func (k *AudioKnob) Drag(current float32, delta math32.Vector2) float32 {
	d := k.Orientation.Rot2().Inverse().MulVector2(delta)
	v := current + (d.X+d.Y*k.Winding.Sign())*k.Range.Range()/k.Diameter
	return k.Range.ClipValue(v)
}

// Release returns the value committed when a drag ends: current snapped
// with the step selected by shift and clipped to the range.
func (k *AudioKnob) Release(current float32, shift bool) float32 {
	v, ok := k.Snaps.Apply(current, shift)
	if !ok {
		return current
	}
	c := k.Range.ClipValue(v)
	if c != v {
		slog.Debug("knobs: audio knob snap clipped", "id", k.ID, "value", v, "clipped", c)
	}
	return c
}

// Update applies the input to value and paints the knob at pos.
func (k *AudioKnob) Update(ctx *Context, pos math32.Vector2, value Value, in Input) Response {
	res := Response{Rect: math32.B2FromPosSize(pos, k.Size())}
	cur := value.Get()
	nv := cur
	if in.Dragging {
		nv = k.Drag(nv, in.Delta)
	}
	if in.Released {
		ctx.release(k.ID, nv, k.Animated)
		nv = k.Release(nv, in.Shift)
	}
	if nv != cur {
		value.Set(nv)
		res.Changed = true
	}
	res.Displayed = ctx.display(k.ID, angle.None, value.Get(), k.Animated, in.Dragging)
	res.Animating = k.Animated && ctx.table().Animating(k.ID)

	pc := paint.NewPainter()
	k.paint(pc, &ctx.Visuals, res.Rect, res.Displayed, ctx.Visuals.Interact(in))
	res.Render = pc.Render
	return res
}

func (k *AudioKnob) paint(pc *paint.Painter, vis *Visuals, rect math32.Box2, value float32, wv WidgetVisuals) {
	center := rect.Center()
	radius := k.Diameter / 2
	o := k.Orientation.Angle()
	sign := k.Winding.Sign()

	k.Shape.Paint(pc, center, radius, o, wv.Fill, vis.Noninteractive)

	outer := radius * 0.75
	inner := outer * (1 - math32.Clamp(k.Thickness, 0, 1))
	screen := func(v float32) float32 {
		return o + k.ValueAngle(v)*sign
	}
	lo, hi := screen(k.Range.Min), screen(k.Range.Max)
	pc.Polygon(ppath.AnnularSector(center, inner, outer, lo, hi), vis.Extreme, render.Stroke{})

	zero := k.Range.ClipValue(0)
	if zero != value {
		pc.Polygon(ppath.AnnularSector(center, inner, outer, screen(zero), screen(value)), vis.Selection, render.Stroke{})
	}

	dir := math32.Vector2Angled(screen(value))
	pc.Line(center.Add(dir.MulScalar(inner)), center.Add(dir.MulScalar(outer)), wv.Stroke)
}
