// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/knobs/base/tolassert"
)

func TestRot2(t *testing.T) {
	id := Identity2()
	tolAssertEqualVector(t, Vec2(3, 4), id.MulVector2(Vec2(3, 4)))

	quarter := Rot2FromAngle(Pi / 2)
	tolAssertEqualVector(t, Vec2(0, 1), quarter.MulVector2(Vec2(1, 0)))
	tolAssertEqualVector(t, Vec2(-1, 0), quarter.MulVector2(Vec2(0, 1)))
	tolAssertEqualVector(t, Vec2(1, 0), quarter.Inverse().MulVector2(Vec2(0, 1)))

	tolassert.EqualTol(t, Pi/2, quarter.Angle(), standardTol)
	// a half turn may land on either side of the seam
	half := quarter.Mul(quarter)
	tolAssertEqualVector(t, Vec2(-1, 0), half.MulVector2(Vec2(1, 0)))
	tolassert.EqualTol(t, Pi, Abs(half.Angle()), standardTol)
	tolassert.EqualTol(t, 0, quarter.Mul(quarter.Inverse()).Angle(), standardTol)
}
