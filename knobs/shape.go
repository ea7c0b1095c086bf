// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/knobs/math32"
	"cogentcore.org/knobs/paint"
	"cogentcore.org/knobs/paint/ppath"
	"cogentcore.org/knobs/paint/render"
)

// WidgetShapeKind is the kind of outline of a dial body.
type WidgetShapeKind int32

const (
	// ShapeCircle is a circle.
	ShapeCircle WidgetShapeKind = iota

	// ShapeSquare is a square, rotated with the orientation.
	ShapeSquare

	// ShapeSquircle is a superellipse with [WidgetShape.Exponent].
	ShapeSquircle

	// ShapePolygon is a regular polygon with [WidgetShape.Sides].
	ShapePolygon
)

var widgetShapeNames = []string{"circle", "square", "squircle", "polygon"}

func (k WidgetShapeKind) String() string {
	if k < 0 || int(k) >= len(widgetShapeNames) {
		return "WidgetShapeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return widgetShapeNames[k]
}

// WidgetShape is the outline of a dial body.
type WidgetShape struct {
	Kind WidgetShapeKind

	// Exponent is the superellipse exponent of a [ShapeSquircle].
	Exponent float32

	// Sides is the number of sides of a [ShapePolygon].
	Sides int
}

// Circle returns a circular [WidgetShape].
func Circle() WidgetShape { return WidgetShape{Kind: ShapeCircle} }

// Square returns a square [WidgetShape].
func Square() WidgetShape { return WidgetShape{Kind: ShapeSquare} }

// Squircle returns a superellipse [WidgetShape] with the given exponent.
func Squircle(exponent float32) WidgetShape {
	return WidgetShape{Kind: ShapeSquircle, Exponent: exponent}
}

// Polygon returns a regular polygon [WidgetShape] with the given
// number of sides.
func Polygon(sides int) WidgetShape {
	return WidgetShape{Kind: ShapePolygon, Sides: sides}
}

// Points returns the outline of the shape with the given center and
// radius, rotated by rotation radians. A circle is approximated by
// [ppath.DefaultSegments] points.
func (s WidgetShape) Points(center math32.Vector2, radius, rotation float32) []math32.Vector2 {
	switch s.Kind {
	case ShapeSquare:
		return ppath.RegularPolygon(center, 4, radius*math32.Sqrt2, rotation+math32.Pi/4)
	case ShapeSquircle:
		pts := ppath.Squircle(math32.Vector2{}, radius, s.Exponent, ppath.DefaultSegments)
		rot := math32.Rot2FromAngle(rotation)
		for i, p := range pts {
			pts[i] = center.Add(rot.MulVector2(p))
		}
		return pts
	case ShapePolygon:
		return ppath.RegularPolygon(center, max(s.Sides, 3), radius, rotation)
	}
	return ppath.RegularPolygon(center, ppath.DefaultSegments, radius, rotation)
}

// Paint draws the shape with the given center, radius and rotation.
func (s WidgetShape) Paint(pc *paint.Painter, center math32.Vector2, radius, rotation float32, fill color.RGBA, stroke render.Stroke) {
	if s.Kind == ShapeCircle {
		pc.Circle(center, radius, fill, stroke)
		return
	}
	pc.Polygon(s.Points(center, radius, rotation), fill, stroke)
}

func (s WidgetShape) String() string {
	switch s.Kind {
	case ShapeSquircle:
		return fmt.Sprintf("squircle(%g)", s.Exponent)
	case ShapePolygon:
		return fmt.Sprintf("polygon(%d)", s.Sides)
	}
	return s.Kind.String()
}

// SetString sets the shape from its string representation:
// "circle", "square", "squircle(n)" or "polygon(n)".
func (s *WidgetShape) SetString(str string) error {
	name, arg, hasArg := parseCall(str)
	switch name {
	case "circle", "square":
		if hasArg {
			return fmt.Errorf("knobs: shape %q takes no argument", name)
		}
		if name == "circle" {
			*s = Circle()
		} else {
			*s = Square()
		}
		return nil
	case "squircle":
		e := 4.0
		if hasArg {
			var err error
			if e, err = strconv.ParseFloat(arg, 32); err != nil {
				return fmt.Errorf("knobs: invalid squircle exponent %q: %w", arg, err)
			}
		}
		*s = Squircle(float32(e))
		return nil
	case "polygon":
		if !hasArg {
			return fmt.Errorf("knobs: polygon shape needs a number of sides")
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("knobs: invalid polygon sides %q: %w", arg, err)
		}
		*s = Polygon(n)
		return nil
	}
	return fmt.Errorf("knobs: %q is not a valid widget shape", str)
}

func (s WidgetShape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *WidgetShape) UnmarshalText(text []byte) error {
	return s.SetString(string(text))
}

// parseCall splits "name(arg)" into its lower-cased name and its
// argument, which keeps its case.
func parseCall(s string) (name, arg string, hasArg bool) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return strings.ToLower(s), "", false
	}
	return strings.ToLower(strings.TrimSpace(s[:open])), strings.TrimSpace(s[open+1 : len(s)-1]), true
}
