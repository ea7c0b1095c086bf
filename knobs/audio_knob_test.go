// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

import (
	"testing"
	"time"

	"cogentcore.org/knobs/anim"
	"cogentcore.org/knobs/angle"
	"cogentcore.org/knobs/base/tolassert"
	"cogentcore.org/knobs/math32"
	"cogentcore.org/knobs/paint/render"
	"github.com/stretchr/testify/assert"
)

func TestAudioKnobValueAngle(t *testing.T) {
	k := NewAudioKnob("a")
	assert.True(t, k.Animated)
	tolassert.EqualTol(t, -math32.Pi, k.ValueAngle(0), 1e-6)
	tolassert.EqualTol(t, 0, k.ValueAngle(0.5), 1e-6)
	tolassert.EqualTol(t, math32.Pi, k.ValueAngle(1), 1e-6)
	tolassert.EqualTol(t, math32.Pi, k.ValueAngle(3), 1e-6)

	k.Spread = 0.5
	k.Range.Set(-1, 1)
	tolassert.EqualTol(t, -math32.Pi/2, k.ValueAngle(-1), 1e-6)
	tolassert.EqualTol(t, 0, k.ValueAngle(0), 1e-6)
}

func TestAudioKnobDrag(t *testing.T) {
	k := NewAudioKnob("a")
	tolassert.EqualTol(t, 0.25, k.Drag(0, math32.Vec2(0, -8)), 1e-5)
	tolassert.EqualTol(t, 0.25, k.Drag(0, math32.Vec2(8, 0)), 1e-5)
	tolassert.EqualTol(t, 0.5, k.Drag(0.75, math32.Vec2(0, 8)), 1e-5)
	assert.Equal(t, float32(1), k.Drag(0.9, math32.Vec2(8, 0)))
	assert.Equal(t, float32(0), k.Drag(0.1, math32.Vec2(-8, 0)))

	k.Winding = angle.Counterclockwise
	tolassert.EqualTol(t, 0.25, k.Drag(0.5, math32.Vec2(8, 0)), 1e-5)
}

func TestAudioKnobRelease(t *testing.T) {
	k := NewAudioKnob("a")
	assert.Equal(t, float32(0.3), k.Release(0.3, false))
	k.Step = angle.Limit(0.25)
	assert.Equal(t, float32(0.25), k.Release(0.3, false))
	k.Range.Set(0, 0.9)
	assert.Equal(t, float32(0.9), k.Release(0.95, false))
}

func TestAudioKnobUpdate(t *testing.T) {
	clock := &anim.ManualClock{}
	ctx := NewContext(clock)
	k := NewAudioKnob("a")
	k.Step = angle.Limit(0.25)
	v := float32(0.3)

	res := k.Update(ctx, math32.Vector2{}, Ptr(&v), Input{})
	assert.Equal(t, float32(0.3), res.Displayed)
	assert.Equal(t, 3, render.Count[*render.Polygon](res.Render))
	assert.Equal(t, 1, render.Count[*render.Line](res.Render))

	res = k.Update(ctx, math32.Vector2{}, Ptr(&v), Input{Released: true})
	assert.True(t, res.Changed)
	assert.Equal(t, float32(0.25), v)
	tolassert.EqualTol(t, 0.3, res.Displayed, 1e-5)
	assert.True(t, res.Animating)

	clock.Advance(anim.DefaultDuration / 2)
	res = k.Update(ctx, math32.Vector2{}, Ptr(&v), Input{})
	assert.Less(t, res.Displayed, float32(0.3))
	assert.Greater(t, res.Displayed, float32(0.25))

	clock.Advance(time.Second)
	res = k.Update(ctx, math32.Vector2{}, Ptr(&v), Input{})
	assert.Equal(t, float32(0.25), res.Displayed)
	assert.False(t, res.Animating)
}
