// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

import (
	"cogentcore.org/knobs/angle"
	"cogentcore.org/knobs/math32"
)

// PointerAngle returns the angle of pointer around center, measured
// from the orientation and signed by the winding. It returns false if
// the pointer is exactly at the center, where no angle is defined.
func PointerAngle(center, pointer math32.Vector2, orientation angle.Orientation, winding angle.Winding) (float32, bool) {
	v := pointer.Sub(center)
	if v.IsZero() {
		return 0, false
	}
	v = orientation.Rot2().Inverse().MulVector2(v)
	return v.Angle() * winding.Sign(), true
}

// DialDirection returns the unit vector on screen for the value a on a
// dial with the given orientation and winding.
func DialDirection(a float32, orientation angle.Orientation, winding angle.Winding) math32.Vector2 {
	return orientation.Rot2().MulVector2(math32.Vector2Angled(a * winding.Sign()))
}

// StopAlpha returns the opacity of a stop line at angle stop when the
// dial shows value. It stays near 1 until the stop is far from the
// value and reaches 0 at a distance of 1.5*Pi.
func StopAlpha(stop, value float32) float32 {
	d := math32.Clamp(math32.Abs(stop-value)/(math32.Pi*1.5), 0, 1)
	return 1 - math32.Pow(d, 5)
}
