// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package angle

import (
	"testing"

	"cogentcore.org/knobs/base/tolassert"
	"cogentcore.org/knobs/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrientationRot2(t *testing.T) {
	// the zero direction of each orientation, in screen space
	tests := []struct {
		o    Orientation
		zero math32.Vector2
	}{
		{Right, math32.Vec2(1, 0)},
		{Bottom, math32.Vec2(0, 1)},
		{Left, math32.Vec2(-1, 0)},
		{Top, math32.Vec2(0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.o.String(), func(t *testing.T) {
			v := tt.o.Rot2().MulVector2(math32.Vec2(1, 0))
			tolassert.EqualTol(t, tt.zero.X, v.X, 1e-6)
			tolassert.EqualTol(t, tt.zero.Y, v.Y, 1e-6)
			assert.False(t, tt.o.IsCustom())
		})
	}
	assert.True(t, Custom(0.25).IsCustom())
	assert.Equal(t, float32(0.25), Custom(0.25).Angle())
}

func TestOrientationText(t *testing.T) {
	for _, o := range []Orientation{Top, Right, Bottom, Left, Custom(0.5)} {
		b, err := o.MarshalText()
		require.NoError(t, err)
		var got Orientation
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, o, got)
	}
	assert.Equal(t, "custom(0.5)", Custom(0.5).String())

	var o Orientation
	require.NoError(t, o.SetString("1.25"))
	assert.Equal(t, Custom(1.25), o)
	assert.Error(t, o.SetString("sideways"))
}

func TestWinding(t *testing.T) {
	assert.Equal(t, float32(1), Clockwise.Sign())
	assert.Equal(t, float32(-1), Counterclockwise.Sign())

	var w Winding
	require.NoError(t, w.UnmarshalText([]byte("ccw")))
	assert.Equal(t, Counterclockwise, w)
	b, err := w.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "counterclockwise", string(b))
	assert.Error(t, w.SetString("sideways"))
}

func TestWrapModeText(t *testing.T) {
	for _, m := range WrapModeValues() {
		b, err := m.MarshalText()
		require.NoError(t, err)
		var got WrapMode
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, m, got)
	}
	var m WrapMode
	require.NoError(t, m.SetString("SpinAround"))
	assert.Equal(t, SpinAround, m)
	require.NoError(t, m.SetString("spin_around"))
	assert.Equal(t, SpinAround, m)
	assert.Error(t, m.SetString("twice"))
	assert.Equal(t, "WrapMode(9)", WrapMode(9).String())
}
