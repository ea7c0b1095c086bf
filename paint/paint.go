// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"
	"log/slog"

	"cogentcore.org/knobs/math32"
	"cogentcore.org/knobs/paint/render"
)

// Painter builds up a [render.Render] of primitive draw items.
// The zero value is ready to use.
type Painter struct {

	// Render is the list of items painted so far.
	Render render.Render

	// clips is the stack of active clip rectangles, each already
	// intersected with its parent.
	clips []math32.Box2
}

// NewPainter returns a new empty [Painter].
func NewPainter() *Painter {
	return &Painter{}
}

// Reset clears the render list and the clip stack, retaining the
// allocated storage.
func (pc *Painter) Reset() {
	pc.Render.Reset()
	pc.clips = pc.clips[:0]
}

// Line draws a solid line segment.
func (pc *Painter) Line(from, to math32.Vector2, stroke render.Stroke) {
	if stroke.IsNone() {
		return
	}
	pc.Render.Add(&render.Line{From: from, To: to, Stroke: stroke})
}

// DashedLine draws a line segment as dashes of the given length
// separated by gaps.
func (pc *Painter) DashedLine(from, to math32.Vector2, stroke render.Stroke, dash, gap float32) {
	if stroke.IsNone() {
		return
	}
	if dash <= 0 || gap <= 0 {
		pc.Line(from, to, stroke)
		return
	}
	pc.Render.Add(&render.Line{From: from, To: to, Stroke: stroke, Dash: dash, Gap: gap})
}

// Polygon draws a closed polygon. Fewer than three points draw nothing.
func (pc *Painter) Polygon(points []math32.Vector2, fill color.RGBA, stroke render.Stroke) {
	if len(points) < 3 || (fill.A == 0 && stroke.IsNone()) {
		return
	}
	pc.Render.Add(&render.Polygon{Points: points, Fill: fill, Stroke: stroke})
}

// Circle draws a circle.
func (pc *Painter) Circle(center math32.Vector2, radius float32, fill color.RGBA, stroke render.Stroke) {
	if radius <= 0 || (fill.A == 0 && stroke.IsNone()) {
		return
	}
	pc.Render.Add(&render.Circle{Center: center, Radius: radius, Fill: fill, Stroke: stroke})
}

// Rect draws a rectangle with the given corner radius.
func (pc *Painter) Rect(rect math32.Box2, radius float32, fill color.RGBA, stroke render.Stroke) {
	if rect.IsEmpty() || (fill.A == 0 && stroke.IsNone()) {
		return
	}
	pc.Render.Add(&render.Rect{Rect: rect, Radius: radius, Fill: fill, Stroke: stroke})
}

// Text draws a single line of text anchored at pos; see [render.Text.Align].
func (pc *Painter) Text(pos, align math32.Vector2, text string, size float32, clr color.RGBA) {
	if text == "" || size <= 0 || clr.A == 0 {
		return
	}
	pc.Render.Add(&render.Text{Position: pos, Align: align, Text: text, Size: size, Color: clr})
}

// PushClip restricts subsequent drawing to the given rectangle,
// intersected with the current clip. It must be matched by [Painter.PopClip].
func (pc *Painter) PushClip(rect math32.Box2) {
	if cur, ok := pc.Clip(); ok {
		rect = rect.Intersect(cur)
	}
	pc.clips = append(pc.clips, rect)
	pc.Render.Add(&render.ClipPush{Rect: rect})
}

// PopClip removes the most recent clip pushed by [Painter.PushClip].
func (pc *Painter) PopClip() {
	n := len(pc.clips)
	if n == 0 {
		slog.Error("programmer error: paint.Painter.PopClip: clip stack underflow")
		return
	}
	pc.clips = pc.clips[:n-1]
	pc.Render.Add(&render.ClipPop{})
}

// Clip returns the current clip rectangle, and false if none is active.
func (pc *Painter) Clip() (math32.Box2, bool) {
	n := len(pc.clips)
	if n == 0 {
		return math32.Box2{}, false
	}
	return pc.clips[n-1], true
}
