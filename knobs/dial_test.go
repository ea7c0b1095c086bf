// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

import (
	"testing"

	"cogentcore.org/knobs/angle"
	"cogentcore.org/knobs/base/tolassert"
	"cogentcore.org/knobs/math32"
	"github.com/stretchr/testify/assert"
)

// angleNear asserts that two angles are equal modulo whole turns.
func angleNear(t *testing.T, expected, actual float32) {
	t.Helper()
	tolassert.EqualTol(t, 0, angle.FoldSigned(actual-expected), 1e-4)
}

func TestPointerAngleTopClockwise(t *testing.T) {
	center := math32.Vec2(16, 16)
	tests := []struct {
		theta, want float32
	}{
		{0, math32.Pi / 2},
		{math32.Pi / 2, math32.Pi},
		{math32.Pi, math32.Pi * 1.5},
		{math32.Pi * 1.5, 0},
	}
	for _, tt := range tests {
		pointer := center.Add(math32.Vector2Angled(tt.theta).MulScalar(10))
		got, ok := PointerAngle(center, pointer, angle.Top, angle.Clockwise)
		assert.True(t, ok)
		angleNear(t, tt.want, got)
		angleNear(t, tt.theta+math32.Pi/2, got)
	}
}

func TestPointerAngleCounterclockwise(t *testing.T) {
	got, ok := PointerAngle(math32.Vector2{}, math32.Vec2(0, -5), angle.Right, angle.Counterclockwise)
	assert.True(t, ok)
	tolassert.EqualTol(t, math32.Pi/2, got, 1e-6)
}

func TestPointerAngleCenter(t *testing.T) {
	c := math32.Vec2(3, 4)
	_, ok := PointerAngle(c, c, angle.Top, angle.Clockwise)
	assert.False(t, ok)
}

func TestDialDirection(t *testing.T) {
	d := DialDirection(0, angle.Top, angle.Clockwise)
	tolassert.EqualTol(t, 0, d.X, 1e-6)
	tolassert.EqualTol(t, -1, d.Y, 1e-6)

	d = DialDirection(math32.Pi/2, angle.Top, angle.Counterclockwise)
	tolassert.EqualTol(t, -1, d.X, 1e-6)
	tolassert.EqualTol(t, 0, d.Y, 1e-6)
}

func TestStopAlpha(t *testing.T) {
	assert.Equal(t, float32(1), StopAlpha(1, 1))
	assert.Equal(t, float32(0), StopAlpha(0, math32.Pi*1.5))
	assert.Equal(t, float32(0), StopAlpha(0, 10))
	mid := StopAlpha(0, math32.Pi*0.75)
	tolassert.EqualTol(t, 1-1.0/32, mid, 1e-5)
}
