// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/knobs/math32"
	"cogentcore.org/knobs/paint"
	"cogentcore.org/knobs/paint/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func TestRasterizeCircle(t *testing.T) {
	pc := paint.NewPainter()
	pc.Circle(math32.Vec2(16, 16), 8, red, render.Stroke{})
	img := NewImage(32, 32, white)
	require.NoError(t, Rasterize(pc.Render, img))
	assert.Equal(t, red, img.RGBAAt(16, 16))
	assert.Equal(t, white, img.RGBAAt(1, 1))
}

func TestRasterizeClip(t *testing.T) {
	pc := paint.NewPainter()
	pc.PushClip(math32.B2(0, 0, 16, 32))
	pc.Rect(math32.B2(0, 0, 32, 32), 0, red, render.Stroke{})
	pc.PopClip()
	img := NewImage(32, 32, white)
	require.NoError(t, Rasterize(pc.Render, img))
	assert.Equal(t, red, img.RGBAAt(4, 16))
	assert.Equal(t, white, img.RGBAAt(28, 16))
}

func TestRasterizeText(t *testing.T) {
	pc := paint.NewPainter()
	pc.Text(math32.Vec2(32, 16), render.AlignCenter, "NESW", 20, red)
	img := NewImage(64, 32, white)
	require.NoError(t, Rasterize(pc.Render, img))
	inked := 0
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if img.RGBAAt(x, y) != white {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 20)
}

func TestRenderOnto(t *testing.T) {
	src := NewImage(8, 8, white)
	pc := paint.NewPainter()
	pc.Rect(math32.B2(0, 0, 8, 8), 0, red, render.Stroke{})
	out, err := RenderOnto(pc.Render, src)
	require.NoError(t, err)
	assert.Equal(t, red, out.RGBAAt(4, 4))
	assert.Equal(t, white, src.RGBAAt(4, 4))
	assert.Equal(t, image.Rect(0, 0, 8, 8), out.Bounds())
}

func TestFaceCache(t *testing.T) {
	a, err := Face(12)
	require.NoError(t, err)
	b, err := Face(12)
	require.NoError(t, err)
	assert.Same(t, a, b)
}
