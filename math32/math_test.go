// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/knobs/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestDegRad(t *testing.T) {
	tolassert.EqualTol(t, Pi, DegToRad(180), standardTol)
	tolassert.EqualTol(t, 90, RadToDeg(Pi/2), 1e-4)
	assert.Equal(t, float32(Tau), float32(2*Pi))
}

func TestSpecialFuncs(t *testing.T) {
	assert.Equal(t, float32(5), Clamp(float32(7), 0, 5))
	assert.Equal(t, float32(0), Clamp(float32(-1), 0, 5))
	assert.Equal(t, float32(-1), Sign(-3))
	assert.Equal(t, float32(1), Sign(0))
	assert.Equal(t, float32(2.5), Lerp(0, 10, 0.25))
	assert.Equal(t, float32(-1), Mod(-7, 3))
}
