// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"cogentcore.org/knobs/base/tolassert"
	"cogentcore.org/knobs/math32"
	"github.com/stretchr/testify/assert"
)

func tolEqualVec2(t *testing.T, a, b math32.Vector2) {
	t.Helper()
	tolassert.EqualTol(t, a.X, b.X, 1e-4)
	tolassert.EqualTol(t, a.Y, b.Y, 1e-4)
}

func TestAngled(t *testing.T) {
	c := math32.Vec2(10, 10)
	pts := Angled(c, 2, 0, 0.25, 0.5)
	assert.Len(t, pts, 3)
	tolEqualVec2(t, math32.Vec2(12, 10), pts[0])
	tolEqualVec2(t, math32.Vec2(10, 12), pts[1])
	tolEqualVec2(t, math32.Vec2(8, 10), pts[2])
}

func TestRegularPolygon(t *testing.T) {
	assert.Nil(t, RegularPolygon(math32.Vector2{}, 2, 1, 0))
	pts := RegularPolygon(math32.Vector2{}, 4, 1, 0)
	assert.Len(t, pts, 4)
	tolEqualVec2(t, math32.Vec2(0, 1), pts[1])
	for _, p := range pts {
		tolassert.EqualTol(t, 1, p.Length(), 1e-5)
	}
}

func TestStarPolygon(t *testing.T) {
	pts := StarPolygon(math32.Vector2{}, 5, 2, 1, 0)
	assert.Len(t, pts, 10)
	for i, p := range pts {
		want := float32(2)
		if i%2 == 1 {
			want = 1
		}
		tolassert.EqualTol(t, want, p.Length(), 1e-5)
	}
}

func TestSquircle(t *testing.T) {
	circle := Squircle(math32.Vector2{}, 3, 2, 32)
	for _, p := range circle {
		tolassert.EqualTol(t, 3, p.Length(), 1e-4)
	}
	// a high exponent pushes the diagonal out toward the corner
	square := Squircle(math32.Vector2{}, 1, 16, 8)
	assert.Greater(t, square[1].X, float32(0.9))
	assert.Greater(t, square[1].Y, float32(0.9))
}

func TestArc(t *testing.T) {
	pts := Arc(math32.Vector2{}, 1, 0, math32.Pi, 4)
	assert.Len(t, pts, 5)
	tolEqualVec2(t, math32.Vec2(1, 0), pts[0])
	tolEqualVec2(t, math32.Vec2(0, 1), pts[2])
	tolEqualVec2(t, math32.Vec2(-1, 0), pts[4])

	band := AnnularSector(math32.Vector2{}, 1, 2, 0, math32.Pi/2)
	assert.Equal(t, 0, len(band)%2)
	tolEqualVec2(t, math32.Vec2(2, 0), band[0])
	tolEqualVec2(t, math32.Vec2(1, 0), band[len(band)-1])
}
