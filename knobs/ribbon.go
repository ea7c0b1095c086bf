// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

import (
	"fmt"

	"cogentcore.org/knobs/math32"
)

// RibbonDelta returns the change of value for a horizontal drag of dx
// pixels on a ribbon of the given width showing spread radians.
// Dragging right decreases the value, moving the ribbon with the pointer.
func RibbonDelta(dx, width, spread float32) float32 {
	return -dx / width * spread
}

// ScreenX returns the horizontal screen position of angle a on a ribbon
// centered at centerX that currently shows displayed. The displayed
// value maps to centerX; displayed+spread/2 maps to the right edge
// and displayed-spread/2 to the left edge.
func ScreenX(centerX, displayed, a, width, spread float32) float32 {
	return centerX - (displayed-a)*(width/spread)
}

// Tick is one graduation of a compass scale.
type Tick struct {

	// Degrees is the whole-degree angle of the tick.
	Degrees int

	// Scale is the length of the tick relative to a cardinal tick.
	Scale float32

	// Label is the index into the four cardinal labels, or -1.
	Label int
}

// Angle returns the tick angle in radians.
func (t Tick) Angle() float32 {
	return math32.DegToRad(float32(t.Degrees))
}

// TickTier returns the tick for the given whole-degree angle, which
// must be a multiple of 5. Multiples of 90 are full length and labeled
// with label (degrees/90) mod 4, multiples of 30 are 3/4 length,
// multiples of 10 are 1/2 length, and other multiples of 5 are 3/10.
func TickTier(degrees int) Tick {
	switch {
	case degrees%90 == 0:
		return Tick{Degrees: degrees, Scale: 1, Label: euclidMod(degrees/90, 4)}
	case degrees%30 == 0:
		return Tick{Degrees: degrees, Scale: 0.75, Label: -1}
	case degrees%10 == 0:
		return Tick{Degrees: degrees, Scale: 0.5, Label: -1}
	case degrees%5 == 0:
		return Tick{Degrees: degrees, Scale: 0.3, Label: -1}
	}
	panic(fmt.Sprintf("knobs.TickTier: %d degrees is not a multiple of 5", degrees))
}

// Ticks returns the ticks visible on a ribbon showing spread radians
// around displayed: every 5 degrees over the window rounded outward to
// whole 10 degrees.
func Ticks(displayed, spread float32) []Tick {
	half := math32.Abs(spread) / 2
	start := int(math32.Floor(math32.RadToDeg(displayed-half)/10) * 10)
	end := int(math32.Ceil(math32.RadToDeg(displayed+half)/10) * 10)
	ticks := make([]Tick, 0, (end-start)/5+1)
	for d := start; d <= end; d += 5 {
		ticks = append(ticks, TickTier(d))
	}
	return ticks
}

// euclidMod returns a mod n in [0, n).
func euclidMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
