// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the color helpers used to paint the knob
// controls. Colors are [color.RGBA] values, which are alpha premultiplied.
package colors

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Commonly used colors.
var (
	Transparent = color.RGBA{}
	Black       = color.RGBA{0, 0, 0, 255}
	White       = color.RGBA{255, 255, 255, 255}
	Gray        = color.RGBA{160, 160, 160, 255}
	DarkGray    = color.RGBA{96, 96, 96, 255}
	LightGray   = color.RGBA{220, 220, 220, 255}
)

// AsRGBA returns the given color as an RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromRGB makes a new opaque RGBA color from the given
// RGB uint8 values.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// FromHex parses the given hex color string ("#rrggbb" or "#rgb")
// and returns the resulting opaque color.
func FromHex(hex string) (color.RGBA, error) {
	if len(hex) == 4 && hex[0] == '#' {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w", err)
	}
	r, g, b := c.RGB255()
	return FromRGB(r, g, b), nil
}

// AsHex returns the hex string ("#rrggbb" or "#rrggbbaa") of the
// given color, with the alpha premultiplication undone.
func AsHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// MultiplyAlpha scales all of the premultiplied channels of c by the
// given factor in [0, 1], fading the color toward transparent.
func MultiplyAlpha(c color.RGBA, factor float32) color.RGBA {
	if factor >= 1 {
		return c
	}
	if factor <= 0 {
		return Transparent
	}
	mul := func(v uint8) uint8 {
		return uint8(float32(v)*factor + 0.5)
	}
	return color.RGBA{mul(c.R), mul(c.G), mul(c.B), mul(c.A)}
}

// Tint moves the color c halfway toward the target color, in RGB
// space, keeping the alpha of c. A fully transparent c stays transparent.
func Tint(c, target color.RGBA) color.RGBA {
	if c.A == 0 {
		return Transparent
	}
	cc, _ := colorful.MakeColor(color.NRGBAModel.Convert(c).(color.NRGBA))
	tc, ok := colorful.MakeColor(color.NRGBAModel.Convert(target).(color.NRGBA))
	if !ok {
		return c
	}
	cc = cc.BlendRgb(tc, 0.5).Clamped()
	r, g, b := cc.RGB255()
	return AsRGBA(color.NRGBA{r, g, b, c.A})
}
