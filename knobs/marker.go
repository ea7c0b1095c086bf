// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

import (
	"fmt"
	"image/color"
	"strconv"
	"unicode/utf8"

	"cogentcore.org/knobs/angle"
	"cogentcore.org/knobs/colors"
	"cogentcore.org/knobs/math32"
	"cogentcore.org/knobs/paint"
	"cogentcore.org/knobs/paint/ppath"
	"cogentcore.org/knobs/paint/render"
)

// MarkerKind is the kind of a [MarkerShape].
type MarkerKind int32

const (
	MarkerSquare MarkerKind = iota
	MarkerCircle
	MarkerRightArrow
	MarkerUpArrow
	MarkerLeftArrow
	MarkerDownArrow
	MarkerDiamond

	// MarkerStar is a star with [MarkerShape.Points] points.
	MarkerStar

	// MarkerGlyph is the single character [MarkerShape.Glyph].
	MarkerGlyph
)

var markerKindNames = []string{"square", "circle", "right-arrow", "up-arrow", "left-arrow", "down-arrow", "diamond", "star", "glyph"}

func (k MarkerKind) String() string {
	if k < 0 || int(k) >= len(markerKindNames) {
		return "MarkerKind(" + strconv.Itoa(int(k)) + ")"
	}
	return markerKindNames[k]
}

// MarkerShape is the shape a marker is drawn with.
type MarkerShape struct {
	Kind MarkerKind

	// Points is the number of points of a [MarkerStar].
	Points int

	// Ratio is the inner to outer radius ratio of a [MarkerStar].
	Ratio float32

	// Glyph is the character drawn by a [MarkerGlyph].
	Glyph rune
}

// Shape returns a [MarkerShape] of a kind that takes no parameters.
func Shape(kind MarkerKind) MarkerShape {
	return MarkerShape{Kind: kind}
}

// Star returns a star [MarkerShape].
func Star(points int, ratio float32) MarkerShape {
	return MarkerShape{Kind: MarkerStar, Points: points, Ratio: ratio}
}

// Glyph returns a [MarkerShape] drawing the given character.
func Glyph(r rune) MarkerShape {
	return MarkerShape{Kind: MarkerGlyph, Glyph: r}
}

func (s MarkerShape) String() string {
	switch s.Kind {
	case MarkerStar:
		return fmt.Sprintf("star(%d, %g)", s.Points, s.Ratio)
	case MarkerGlyph:
		return fmt.Sprintf("glyph(%c)", s.Glyph)
	}
	return s.Kind.String()
}

// SetString sets the shape from its string representation, which is
// a kind name, "star(points, ratio)" or "glyph(c)".
func (s *MarkerShape) SetString(str string) error {
	name, arg, hasArg := parseCall(str)
	switch name {
	case "star":
		*s = Star(5, 0.5)
		if hasArg {
			if _, err := fmt.Sscanf(arg, "%d, %g", &s.Points, &s.Ratio); err != nil {
				return fmt.Errorf("knobs: invalid star %q: %w", arg, err)
			}
		}
		return nil
	case "glyph":
		r, n := utf8.DecodeRuneInString(arg)
		if !hasArg || n == 0 || n != len(arg) {
			return fmt.Errorf("knobs: glyph marker needs exactly one character, got %q", arg)
		}
		*s = Glyph(r)
		return nil
	}
	for i, nm := range markerKindNames {
		if nm == name && MarkerKind(i) != MarkerStar && MarkerKind(i) != MarkerGlyph {
			*s = Shape(MarkerKind(i))
			return nil
		}
	}
	return fmt.Errorf("knobs: %q is not a valid marker shape", str)
}

func (s MarkerShape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *MarkerShape) UnmarshalText(text []byte) error {
	return s.SetString(string(text))
}

// Paint draws the shape centered at center with the given radius.
// Glyphs are drawn as text in the fill color.
func (s MarkerShape) Paint(pc *paint.Painter, center math32.Vector2, radius float32, fill color.RGBA, stroke render.Stroke) {
	switch s.Kind {
	case MarkerSquare:
		side := radius * math32.Sqrt2
		pc.Rect(math32.B2FromCenterSize(center, math32.Vector2Scalar(side)), 0, fill, stroke)
	case MarkerCircle:
		pc.Circle(center, radius, fill, stroke)
	case MarkerRightArrow:
		pc.Polygon(ppath.Angled(center, radius, 0, 4.0/12, 8.0/12), fill, stroke)
	case MarkerUpArrow:
		pc.Polygon(ppath.Angled(center, radius, 1.0/12, 5.0/12, 9.0/12), fill, stroke)
	case MarkerLeftArrow:
		pc.Polygon(ppath.Angled(center, radius, 2.0/12, 6.0/12, 10.0/12), fill, stroke)
	case MarkerDownArrow:
		pc.Polygon(ppath.Angled(center, radius, 3.0/12, 7.0/12, 11.0/12), fill, stroke)
	case MarkerDiamond:
		pc.Polygon(ppath.Angled(center, radius, 0, 0.25, 0.5, 0.75), fill, stroke)
	case MarkerStar:
		pc.Polygon(ppath.StarPolygon(center, s.Points, radius, radius*s.Ratio, -math32.Pi/2), fill, stroke)
	case MarkerGlyph:
		pc.Text(center, render.AlignCenter, string(s.Glyph), radius*2, fill)
	}
}

// Marker is a labeled point of interest on a compass.
type Marker struct {

	// Angle is the direction of the marker, in [0, 2*Pi).
	Angle float32

	Shape MarkerShape

	// Label is optional text drawn with the marker.
	Label string

	// Color fills the marker; its label and outline are tinted
	// toward the text color.
	Color color.RGBA
}

// NewMarker returns a gray square [Marker] at the given angle,
// folded into [0, 2*Pi).
func NewMarker(a float32) Marker {
	return Marker{Angle: angle.FoldUnsigned(a), Shape: Shape(MarkerSquare), Color: colors.Gray}
}

// SetShape sets the shape and returns the marker.
func (m Marker) SetShape(s MarkerShape) Marker {
	m.Shape = s
	return m
}

// SetLabel sets the label and returns the marker.
func (m Marker) SetLabel(label string) Marker {
	m.Label = label
	return m
}

// SetColor sets the color and returns the marker.
func (m Marker) SetColor(c color.RGBA) Marker {
	m.Color = c
	return m
}

// paint draws the marker shape at center with the label centered at
// labelAt, using the tinted color for the outline and label.
func (m *Marker) paint(pc *paint.Painter, center, labelAt math32.Vector2, radius, fontSize float32, text color.RGBA) {
	tinted := colors.Tint(m.Color, text)
	m.Shape.Paint(pc, center, radius, m.Color, render.NewStroke(1, tinted))
	if m.Label != "" {
		pc.Text(labelAt, render.AlignCenter, m.Label, fontSize, tinted)
	}
}
