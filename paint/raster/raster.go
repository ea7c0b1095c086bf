// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster draws a [render.Render] onto an image, using
// https://github.com/fogleman/gg for anti-aliased paths and
// the Go fonts for text.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"sync"

	"cogentcore.org/knobs/base/errors"
	"cogentcore.org/knobs/math32"
	"cogentcore.org/knobs/paint/render"
	"github.com/anthonynsimon/bild/clone"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontOnce sync.Once
	regular  *opentype.Font

	facesMu sync.Mutex
	faces   = map[float32]font.Face{}
)

// Face returns the regular Go font face at the given pixel size,
// caching faces by size.
func Face(size float32) (font.Face, error) {
	fontOnce.Do(func() {
		regular = errors.Must1(opentype.Parse(goregular.TTF))
	})
	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(regular, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: font face of size %g: %w", size, err)
	}
	faces[size] = f
	return f, nil
}

// NewImage returns a new image of the given size filled with bg.
func NewImage(width, height int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if bg != nil {
		dc := gg.NewContextForRGBA(img)
		dc.SetColor(bg)
		dc.Clear()
	}
	return img
}

// RenderOnto draws r onto a copy of src and returns the copy;
// src is not modified.
func RenderOnto(r render.Render, src image.Image) (*image.RGBA, error) {
	img := clone.AsRGBA(src)
	return img, Rasterize(r, img)
}

// Rasterize draws every item of r onto img, in order. Clip items
// restrict the drawing of the items between them. The first text error
// is returned after all other items have been drawn.
func Rasterize(r render.Render, img *image.RGBA) error {
	dc := gg.NewContextForRGBA(img)
	depth := 0
	var firstErr error
	for _, it := range r {
		switch x := it.(type) {
		case *render.ClipPush:
			dc.Push()
			dc.DrawRectangle(rect(x.Rect))
			dc.Clip()
			depth++
		case *render.ClipPop:
			if depth == 0 {
				slog.Error("programmer error: raster.Rasterize: clip pop without push")
				continue
			}
			dc.Pop()
			depth--
		case *render.Line:
			if !setStroke(dc, x.Stroke) {
				continue
			}
			if x.Dash > 0 {
				dc.SetDash(float64(x.Dash), float64(x.Gap))
			}
			dc.DrawLine(float64(x.From.X), float64(x.From.Y), float64(x.To.X), float64(x.To.Y))
			dc.Stroke()
			dc.SetDash()
		case *render.Polygon:
			for i, p := range x.Points {
				if i == 0 {
					dc.MoveTo(float64(p.X), float64(p.Y))
				} else {
					dc.LineTo(float64(p.X), float64(p.Y))
				}
			}
			dc.ClosePath()
			fillStroke(dc, x.Fill, x.Stroke)
		case *render.Circle:
			dc.DrawCircle(float64(x.Center.X), float64(x.Center.Y), float64(x.Radius))
			fillStroke(dc, x.Fill, x.Stroke)
		case *render.Rect:
			if x.Radius > 0 {
				px, py, w, h := rect(x.Rect)
				dc.DrawRoundedRectangle(px, py, w, h, float64(x.Radius))
			} else {
				dc.DrawRectangle(rect(x.Rect))
			}
			fillStroke(dc, x.Fill, x.Stroke)
		case *render.Text:
			face, err := Face(x.Size)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			dc.SetFontFace(face)
			dc.SetColor(x.Color)
			// gg anchors against the baseline; Align.Y of 0 puts the top at Position
			dc.DrawStringAnchored(x.Text, float64(x.Position.X), float64(x.Position.Y), float64(x.Align.X), float64(1-x.Align.Y))
		default:
			slog.Error("programmer error: raster.Rasterize: unknown render item", "type", fmt.Sprintf("%T", it))
		}
	}
	for ; depth > 0; depth-- {
		dc.Pop()
	}
	return firstErr
}

func rect(b math32.Box2) (x, y, w, h float64) {
	return float64(b.Min.X), float64(b.Min.Y), float64(b.Width()), float64(b.Height())
}

// setStroke sets the stroke color and width, returning false if
// there is nothing to stroke.
func setStroke(dc *gg.Context, s render.Stroke) bool {
	if s.IsNone() {
		return false
	}
	dc.SetColor(s.Color)
	dc.SetLineWidth(float64(s.Width))
	return true
}

func fillStroke(dc *gg.Context, fill color.RGBA, s render.Stroke) {
	if fill.A > 0 {
		dc.SetColor(fill)
		dc.FillPreserve()
	}
	if setStroke(dc, s) {
		dc.StrokePreserve()
	}
	dc.ClearPath()
}
