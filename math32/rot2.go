// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Rot2 is a 2D rotation, stored as the sine and cosine of its angle.
// The zero value is not a valid rotation; use [Identity2] or [Rot2FromAngle].
type Rot2 struct {
	S float32
	C float32
}

// Identity2 returns the identity rotation.
func Identity2() Rot2 {
	return Rot2{S: 0, C: 1}
}

// Rot2FromAngle returns the rotation by the given angle in radians.
// Positive angles rotate +X toward +Y, which is clockwise on screen.
func Rot2FromAngle(angle float32) Rot2 {
	s, c := Sincos(angle)
	return Rot2{S: s, C: c}
}

// Angle returns the angle of the rotation in [-Pi, Pi].
func (r Rot2) Angle() float32 {
	return Atan2(r.S, r.C)
}

// Inverse returns the rotation that undoes this one.
func (r Rot2) Inverse() Rot2 {
	return Rot2{S: -r.S, C: r.C}
}

// Mul returns the composition of the two rotations.
func (r Rot2) Mul(o Rot2) Rot2 {
	return Rot2{S: r.S*o.C + r.C*o.S, C: r.C*o.C - r.S*o.S}
}

// MulVector2 rotates the given vector.
func (r Rot2) MulVector2(v Vector2) Vector2 {
	return Vector2{r.C*v.X - r.S*v.Y, r.S*v.X + r.C*v.Y}
}
