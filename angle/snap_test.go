// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package angle

import (
	"testing"

	"cogentcore.org/knobs/base/tolassert"
	"cogentcore.org/knobs/math32"
	"github.com/stretchr/testify/assert"
)

func TestSnap(t *testing.T) {
	step := Tau / 36
	for _, x := range samples() {
		v := Snap(x, step)
		n := v / step
		tolassert.EqualTol(t, math32.Round(n), n, 1e-3, "x = %g", x)
		assert.LessOrEqual(t, math32.Abs(v-x), step/2+1e-4, "x = %g", x)
	}
	assert.Equal(t, float32(15), Snap(14, 5))
	assert.Equal(t, float32(10), Snap(12.4, 5))
	assert.Equal(t, float32(-15), Snap(-12.6, 5))
}

func TestSnapNonPositive(t *testing.T) {
	assert.PanicsWithValue(t, "non-positive snap angles are not supported", func() { Snap(1, 0) })
	assert.PanicsWithValue(t, "non-positive snap angles are not supported", func() { Snap(1, -0.5) })
	assert.Panics(t, func() { Snap(1, math32.NaN()) })
}

func TestSnaps(t *testing.T) {
	s := Snaps{Step: Limit(1), ShiftStep: Limit(5)}
	assert.Equal(t, float32(1), *s.Select(false))
	assert.Equal(t, float32(5), *s.Select(true))

	v, ok := s.Apply(3.4, false)
	assert.True(t, ok)
	assert.Equal(t, float32(3), v)

	v, ok = s.Apply(3.4, true)
	assert.True(t, ok)
	assert.Equal(t, float32(5), v)

	v, ok = Snaps{}.Apply(3.4, true)
	assert.False(t, ok)
	assert.Equal(t, float32(3.4), v)
}
