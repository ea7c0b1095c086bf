// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ppath generates the outlines of the shapes painted by the
// knob controls, as closed lists of points in screen coordinates.
package ppath

import (
	"cogentcore.org/knobs/math32"
)

// DefaultSegments is the number of segments used to approximate a
// full circle.
const DefaultSegments = 64

// Angled returns the points center + r*(cos(Tau*f), sin(Tau*f)) for each
// of the given fractions of a turn.
func Angled(center math32.Vector2, r float32, fractions ...float32) []math32.Vector2 {
	pts := make([]math32.Vector2, len(fractions))
	for i, f := range fractions {
		pts[i] = center.Add(math32.Vector2Angled(math32.Tau * f).MulScalar(r))
	}
	return pts
}

// RegularPolygon returns a regular polygon with n vertices on a
// circle of radius r, the first one at angle theta0.
// It returns nil if n is less than 3.
func RegularPolygon(center math32.Vector2, n int, r, theta0 float32) []math32.Vector2 {
	if n < 3 {
		return nil
	}
	dtheta := math32.Tau / float32(n)
	pts := make([]math32.Vector2, n)
	for i := 0; i < n; i++ {
		pts[i] = center.Add(math32.Vector2Angled(theta0 + float32(i)*dtheta).MulScalar(r))
	}
	return pts
}

// StarPolygon returns a star of n points with alternating
// radius outer and inner, the first outer point at angle theta0.
// It returns nil if n is less than 2.
func StarPolygon(center math32.Vector2, n int, outer, inner, theta0 float32) []math32.Vector2 {
	if n < 2 {
		return nil
	}
	n *= 2
	dtheta := math32.Tau / float32(n)
	pts := make([]math32.Vector2, n)
	for i := 0; i < n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts[i] = center.Add(math32.Vector2Angled(theta0 + float32(i)*dtheta).MulScalar(r))
	}
	return pts
}

// Squircle returns the superellipse |x/r|^n + |y/r|^n = 1, approximated
// with the given number of segments. An exponent of 2 gives a circle;
// larger exponents approach a square.
func Squircle(center math32.Vector2, r, exponent float32, segments int) []math32.Vector2 {
	if segments < 3 {
		segments = DefaultSegments
	}
	if exponent <= 0 {
		exponent = 2
	}
	p := 2 / exponent
	pts := make([]math32.Vector2, segments)
	for i := 0; i < segments; i++ {
		s, c := math32.Sincos(math32.Tau * float32(i) / float32(segments))
		x := math32.Sign(c) * math32.Pow(math32.Abs(c), p)
		y := math32.Sign(s) * math32.Pow(math32.Abs(s), p)
		pts[i] = center.Add(math32.Vec2(x, y).MulScalar(r))
	}
	return pts
}

// Arc returns the points of a circular arc of radius r from angle a0 to
// angle a1 (radians, either direction), including both end points.
func Arc(center math32.Vector2, r, a0, a1 float32, segments int) []math32.Vector2 {
	if segments < 1 {
		segments = max(1, int(math32.Abs(a1-a0)/math32.Tau*DefaultSegments+0.5))
	}
	pts := make([]math32.Vector2, segments+1)
	for i := 0; i < segments+1; i++ {
		a := math32.Lerp(a0, a1, float32(i)/float32(segments))
		pts[i] = center.Add(math32.Vector2Angled(a).MulScalar(r))
	}
	return pts
}

// AnnularSector returns the closed outline of the band between radii
// inner and outer, from angle a0 to angle a1.
func AnnularSector(center math32.Vector2, inner, outer, a0, a1 float32) []math32.Vector2 {
	out := Arc(center, outer, a0, a1, 0)
	in := Arc(center, inner, a1, a0, len(out)-1)
	return append(out, in...)
}
