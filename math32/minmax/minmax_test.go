// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32(t *testing.T) {
	r := F32{-1, 1}
	assert.True(t, r.IsValid())
	assert.Equal(t, float32(2), r.Range())
	assert.Equal(t, float32(0.5), r.Scale())
	assert.Equal(t, float32(0.75), r.NormValue(0.5))
	assert.Equal(t, float32(1), r.NormValue(3))
	assert.Equal(t, float32(-1), r.ClipValue(-2))

	assert.Equal(t, float32(1), r.ClipValue(1))

	r.Set(2, 2)
	assert.Equal(t, float32(0), r.Scale())
	assert.Equal(t, float32(0), r.NormValue(5))
}
