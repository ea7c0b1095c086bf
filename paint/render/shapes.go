// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/knobs/math32"
)

// Line is a straight line segment render [Item].
// If Dash is positive the line is dashed, with dashes of length Dash
// separated by gaps of length Gap.
type Line struct {
	From, To math32.Vector2
	Stroke   Stroke
	Dash     float32
	Gap      float32
}

// interface assertion.
func (l *Line) IsRenderItem() {}

func (l *Line) String() string {
	s := fmt.Sprintf("line %v-%v %v", l.From, l.To, l.Stroke)
	if l.Dash > 0 {
		s += fmt.Sprintf(" dash(%g,%g)", l.Dash, l.Gap)
	}
	return s
}

// Polygon is a closed polygon render [Item], filled with the nonzero rule.
type Polygon struct {
	Points []math32.Vector2
	Fill   color.RGBA
	Stroke Stroke
}

// interface assertion.
func (p *Polygon) IsRenderItem() {}

func (p *Polygon) String() string {
	pts := make([]string, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = pt.String()
	}
	return fmt.Sprintf("polygon [%s] fill(%s) %v", strings.Join(pts, " "), hex(p.Fill), p.Stroke)
}

// Circle is a circle render [Item].
type Circle struct {
	Center math32.Vector2
	Radius float32
	Fill   color.RGBA
	Stroke Stroke
}

// interface assertion.
func (c *Circle) IsRenderItem() {}

func (c *Circle) String() string {
	return fmt.Sprintf("circle %v r=%g fill(%s) %v", c.Center, c.Radius, hex(c.Fill), c.Stroke)
}

// Rect is an axis aligned rectangle render [Item], with optionally
// rounded corners.
type Rect struct {
	Rect   math32.Box2
	Radius float32
	Fill   color.RGBA
	Stroke Stroke
}

// interface assertion.
func (r *Rect) IsRenderItem() {}

func (r *Rect) String() string {
	return fmt.Sprintf("rect %v-%v r=%g fill(%s) %v", r.Rect.Min, r.Rect.Max, r.Radius, hex(r.Fill), r.Stroke)
}
