// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/knobs/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1e-5)

func tolAssertEqualVector(t *testing.T, expected, actual Vector2, tolerance ...float32) {
	t.Helper()
	tol := standardTol
	if len(tolerance) > 0 {
		tol = tolerance[0]
	}
	tolassert.EqualTol(t, expected.X, actual.X, tol)
	tolassert.EqualTol(t, expected.Y, actual.Y, tol)
}

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	assert.True(t, Vector2{}.IsZero())
	assert.False(t, Vec2(0, 1e-9).IsZero())
}

func TestVector2Arithmetic(t *testing.T) {
	a := Vec2(3, 4)
	b := Vec2(1, -2)
	assert.Equal(t, Vec2(4, 2), a.Add(b))
	assert.Equal(t, Vec2(2, 6), a.Sub(b))
	assert.Equal(t, Vec2(6, 8), a.MulScalar(2))
	assert.Equal(t, float32(5), a.Length())
	assert.Equal(t, float32(25), a.LengthSquared())
	assert.Equal(t, float32(-5), a.Dot(b))
	assert.Equal(t, float32(-10), a.Cross(b))
	assert.Equal(t, Vec2(2, 1), a.Lerp(b, 0.5))
}

func TestVector2Angle(t *testing.T) {
	tolassert.EqualTol(t, 0, Vec2(1, 0).Angle(), standardTol)
	tolassert.EqualTol(t, Pi/2, Vec2(0, 1).Angle(), standardTol)
	tolassert.EqualTol(t, Pi, Vec2(-1, 0).Angle(), standardTol)
	tolassert.EqualTol(t, -Pi/2, Vec2(0, -1).Angle(), standardTol)

	tolAssertEqualVector(t, Vec2(0, 1), Vector2Angled(Pi/2))
	tolAssertEqualVector(t, Vec2(-1, 0), Vector2Angled(Pi))

	tolassert.EqualTol(t, Pi/2, Vec2(1, 0).AngleTo(Vec2(0, 1)), standardTol)
	tolassert.EqualTol(t, -Pi/2, Vec2(0, 1).AngleTo(Vec2(1, 0)), standardTol)
}
