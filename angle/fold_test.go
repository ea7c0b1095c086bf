// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package angle

import (
	"math/rand"
	"testing"

	"cogentcore.org/knobs/base/tolassert"
	"cogentcore.org/knobs/math32"
	"github.com/stretchr/testify/assert"
)

// samples returns a deterministic spread of angles, including the
// values sitting exactly on the wrap boundaries.
func samples() []float32 {
	xs := []float32{0, Pi, -Pi, Tau, -Tau, 3 * Pi, -3 * Pi, 1e-7, -1e-7, Tau - 1e-6, 100, -100}
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		xs = append(xs, (rnd.Float32()*2-1)*50)
	}
	return xs
}

func TestFoldSigned(t *testing.T) {
	for _, x := range samples() {
		v := FoldSigned(x)
		assert.Greater(t, v, -Pi, "x = %g", x)
		assert.LessOrEqual(t, v, Pi, "x = %g", x)
		assert.Equal(t, v, FoldSigned(v), "not idempotent for x = %g", x)
		assert.Equal(t, v, Constrain(x, 0, Constraint{Wrap: Signed}))
	}
	assert.Equal(t, Pi, FoldSigned(-Pi))
	assert.Equal(t, Pi, FoldSigned(Pi))
	assert.Equal(t, float32(0.5), FoldSigned(0.5))
	tolassert.EqualTol(t, -Pi/2, FoldSigned(3*Pi/2), 1e-5)
}

func TestFoldUnsigned(t *testing.T) {
	for _, x := range samples() {
		v := FoldUnsigned(x)
		assert.GreaterOrEqual(t, v, float32(0), "x = %g", x)
		assert.Less(t, v, Tau, "x = %g", x)
		assert.Equal(t, v, FoldUnsigned(v), "not idempotent for x = %g", x)
	}
	assert.Equal(t, float32(0), FoldUnsigned(Tau))
	assert.Equal(t, float32(0), FoldUnsigned(0))
	tolassert.EqualTol(t, 3*Pi/2, FoldUnsigned(-Pi/2), 1e-5)
}

func TestContinue(t *testing.T) {
	// a candidate just short of a full turn continues below zero
	v := Continue(6.3, 0.1)
	assert.LessOrEqual(t, math32.Abs(v-0.1), Pi)
	tolassert.EqualTol(t, FoldUnsigned(6.3), FoldUnsigned(v), 1e-5)

	// several turns in, the raw atan2 angle is lifted to the current turn
	prev := 4*Tau + 3
	v = Continue(-3, prev)
	assert.LessOrEqual(t, math32.Abs(v-prev), Pi)
	tolassert.EqualTol(t, FoldSigned(-3), FoldSigned(v), 1e-4)

	for _, prev := range samples() {
		for _, x := range []float32{-3, -1, 0, 1, 3} {
			v := Continue(x, prev)
			assert.LessOrEqual(t, math32.Abs(v-prev), Pi+1e-4, "x = %g prev = %g", x, prev)
		}
	}
}

func TestNearest(t *testing.T) {
	tolassert.EqualTol(t, Tau+0.1, Nearest(0.1, Tau-0.1), 1e-5)
	tolassert.EqualTol(t, -0.1, Nearest(Tau-0.1, 0.1), 1e-5)
	assert.Equal(t, float32(1), Nearest(1, 1))
}

func TestFold(t *testing.T) {
	assert.Equal(t, float32(100), Fold(100, None, 0))
	assert.Equal(t, FoldSigned(100), Fold(100, Signed, 0))
	assert.Equal(t, FoldUnsigned(100), Fold(100, Unsigned, 0))
	assert.Equal(t, Continue(1, 20), Fold(1, SpinAround, 20))
}
