// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

import (
	"testing"

	"cogentcore.org/knobs/base/tolassert"
	"cogentcore.org/knobs/colors"
	"cogentcore.org/knobs/math32"
	"cogentcore.org/knobs/paint"
	"cogentcore.org/knobs/paint/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarker(t *testing.T) {
	m := NewMarker(math32.DegToRad(553))
	tolassert.EqualTol(t, math32.DegToRad(193), m.Angle, 1e-4)
	assert.Equal(t, MarkerSquare, m.Shape.Kind)
	assert.Equal(t, colors.Gray, m.Color)

	m = NewMarker(-math32.Pi / 2).SetShape(Star(5, 0.5)).SetLabel("Test")
	tolassert.EqualTol(t, math32.Pi*1.5, m.Angle, 1e-5)
	assert.Equal(t, "Test", m.Label)
	assert.Equal(t, 5, m.Shape.Points)
}

func TestMarkerShapeText(t *testing.T) {
	tests := []struct {
		text string
		want MarkerShape
	}{
		{"square", Shape(MarkerSquare)},
		{"Down-Arrow", Shape(MarkerDownArrow)},
		{"diamond", Shape(MarkerDiamond)},
		{"star(6, 0.4)", Star(6, 0.4)},
		{"star", Star(5, 0.5)},
		{"glyph(🐱)", Glyph('🐱')},
	}
	for _, tt := range tests {
		var s MarkerShape
		require.NoError(t, s.UnmarshalText([]byte(tt.text)), tt.text)
		assert.Equal(t, tt.want, s, tt.text)

		text, err := s.MarshalText()
		require.NoError(t, err)
		var back MarkerShape
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}

	var s MarkerShape
	assert.Error(t, s.SetString("hexagon"))
	assert.Error(t, s.SetString("glyph(ab)"))
	assert.Error(t, s.SetString("glyph"))
}

func TestMarkerShapePaint(t *testing.T) {
	pc := paint.NewPainter()
	center := math32.Vec2(10, 10)
	st := render.NewStroke(1, colors.White)
	Shape(MarkerDownArrow).Paint(pc, center, 4, colors.Gray, st)
	Shape(MarkerUpArrow).Paint(pc, center, 4, colors.Gray, st)
	Shape(MarkerSquare).Paint(pc, center, 4, colors.Gray, st)
	Shape(MarkerCircle).Paint(pc, center, 4, colors.Gray, st)
	Star(5, 0.5).Paint(pc, center, 4, colors.Gray, st)
	Glyph('x').Paint(pc, center, 4, colors.Gray, st)

	polys := render.Filter[*render.Polygon](pc.Render)
	require.Len(t, polys, 3)
	// the down arrow points down, the up arrow up
	tolassert.EqualTol(t, 14, polys[0].Points[0].Y, 1e-5)
	tolassert.EqualTol(t, 6, polys[1].Points[2].Y, 1e-5)
	assert.Len(t, polys[2].Points, 10)

	rects := render.Filter[*render.Rect](pc.Render)
	require.Len(t, rects, 1)
	tolassert.EqualTol(t, 4*math32.Sqrt2, rects[0].Rect.Width(), 1e-5)

	txt := render.Filter[*render.Text](pc.Render)
	require.Len(t, txt, 1)
	assert.Equal(t, "x", txt[0].Text)
	assert.Equal(t, float32(8), txt[0].Size)
}

func TestWidgetShape(t *testing.T) {
	tests := []struct {
		text string
		want WidgetShape
	}{
		{"circle", Circle()},
		{"Square", Square()},
		{"squircle(4)", Squircle(4)},
		{"squircle", Squircle(4)},
		{"polygon(6)", Polygon(6)},
	}
	for _, tt := range tests {
		var s WidgetShape
		require.NoError(t, s.UnmarshalText([]byte(tt.text)), tt.text)
		assert.Equal(t, tt.want, s)
	}
	var s WidgetShape
	assert.Error(t, s.SetString("polygon"))
	assert.Error(t, s.SetString("circle(2)"))
	assert.Error(t, s.SetString("blob"))

	center := math32.Vec2(5, 5)
	assert.Len(t, Polygon(6).Points(center, 2, 0), 6)
	sq := Square().Points(center, 2, 0)
	require.Len(t, sq, 4)
	tolassert.EqualTol(t, 7, sq[0].X, 1e-5)
	tolassert.EqualTol(t, 7, sq[0].Y, 1e-5)

	pc := paint.NewPainter()
	Circle().Paint(pc, center, 2, 0, colors.Gray, render.Stroke{})
	Squircle(4).Paint(pc, center, 2, 0, colors.Gray, render.Stroke{})
	assert.Equal(t, 1, render.Count[*render.Circle](pc.Render))
	assert.Equal(t, 1, render.Count[*render.Polygon](pc.Render))
}

func TestValue(t *testing.T) {
	x := float32(1)
	v := Ptr(&x)
	v.Set(2)
	assert.Equal(t, float32(2), x)
	assert.Equal(t, float32(2), v.Get())

	stored := map[string]float32{"heading": 3}
	f := Funcs(func() float32 { return stored["heading"] }, func(a float32) { stored["heading"] = a })
	assert.Equal(t, float32(3), f.Get())
	f.Set(4)
	assert.Equal(t, float32(4), stored["heading"])
}
