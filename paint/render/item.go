// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"

	"cogentcore.org/knobs/math32"
)

// Item is a union interface for render items:
// [Line], [Polygon], [Circle], [Rect], [Text], [ClipPush] and [ClipPop].
type Item interface {
	IsRenderItem()
}

// Stroke is the outline style of a shape: a width and a color.
// A zero width or a transparent color draws nothing.
type Stroke struct {
	Width float32
	Color color.RGBA
}

// NewStroke returns a new [Stroke] with the given width and color.
func NewStroke(width float32, c color.RGBA) Stroke {
	return Stroke{Width: width, Color: c}
}

// IsNone returns whether the stroke draws nothing.
func (s Stroke) IsNone() bool {
	return s.Width <= 0 || s.Color.A == 0
}

func (s Stroke) String() string {
	return fmt.Sprintf("stroke(%g %s)", s.Width, hex(s.Color))
}

// ClipPush restricts all following items to the intersection of Rect
// with the current clip, until the matching [ClipPop].
type ClipPush struct {
	Rect math32.Box2
}

// interface assertion.
func (p *ClipPush) IsRenderItem() {}

func (p *ClipPush) String() string {
	return fmt.Sprintf("clip-push %v-%v", p.Rect.Min, p.Rect.Max)
}

// ClipPop restores the clip in effect before the matching [ClipPush].
type ClipPop struct{}

// interface assertion.
func (p *ClipPop) IsRenderItem() {}

func (p *ClipPop) String() string {
	return "clip-pop"
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
