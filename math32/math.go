// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based math package for the 2D geometry
// used by the knob controls: angles, vectors, rotations and boxes.
//
// The scalar functions forward to github.com/chewxy/math32, so that
// angle math stays in single precision throughout.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

const (
	Pi = math.Pi

	// Tau is one full turn in radians.
	Tau = 2 * math.Pi

	Sqrt2 = math.Sqrt2
)

func DegToRad(degrees float32) float32 { return degrees * (Pi / 180) }

func RadToDeg(radians float32) float32 { return radians * (180 / Pi) }

func Abs(x float32) float32 { return math32.Abs(x) }

func Atan2(y, x float32) float32 { return math32.Atan2(y, x) }

func Ceil(x float32) float32 { return math32.Ceil(x) }

func Exp(x float32) float32 { return math32.Exp(x) }

func Floor(x float32) float32 { return math32.Floor(x) }

func Log10(x float32) float32 { return math32.Log10(x) }

func Max(x, y float32) float32 { return math32.Max(x, y) }

func Min(x, y float32) float32 { return math32.Min(x, y) }

// Mod is the remainder of x/y with the sign of x; see [math.Mod].
func Mod(x, y float32) float32 { return math32.Mod(x, y) }

func NaN() float32 { return math32.NaN() }

func Pow(x, y float32) float32 { return math32.Pow(x, y) }

// Round rounds half away from zero.
func Round(x float32) float32 { return math32.Round(x) }

func Sincos(x float32) (sin, cos float32) { return math32.Sincos(x) }

func Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Sign returns -1 for negative x and 1 otherwise, including for zero.
func Sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}

// Lerp returns start moved toward stop by the given fraction.
func Lerp(start, stop, amount float32) float32 {
	return (1-amount)*start + amount*stop
}

// Clamp limits x to [lo, hi].
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	return min(max(x, lo), hi)
}
