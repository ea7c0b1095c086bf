// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package angle

import "cogentcore.org/knobs/math32"

// Tau is one full turn in radians.
const Tau = float32(math32.Tau)

// Pi is half a turn in radians.
const Pi = float32(math32.Pi)

// FoldSigned folds x into (-Pi, Pi]. Values already in range are
// returned unchanged, so the fold is idempotent.
func FoldSigned(x float32) float32 {
	if x > -Pi && x <= Pi {
		return x
	}
	m := math32.Mod(x+Pi, Tau)
	if m <= 0 {
		m += Tau
	}
	r := m - Pi
	if r <= -Pi {
		// m was too small to survive the subtraction
		r = Pi
	}
	return r
}

// FoldUnsigned folds x into [0, 2*Pi). Values already in range are
// returned unchanged, so the fold is idempotent.
func FoldUnsigned(x float32) float32 {
	if x >= 0 && x < Tau {
		return x
	}
	m := math32.Mod(x, Tau)
	if m < 0 {
		m += Tau
	}
	if m >= Tau {
		m = 0
	}
	return m
}

// Continue returns the copy of x, shifted by whole turns, that
// continues on from previous: the number of turns of previous is added
// to x, then one turn is removed or added if that leaves the result
// more than Pi away from previous.
func Continue(x, previous float32) float32 {
	turns := math32.Round(previous / Tau)
	x += turns * Tau
	if x-previous > Pi {
		x -= Tau
	} else if x-previous < -Pi {
		x += Tau
	}
	return x
}

// Nearest returns the copy of x, shifted by whole turns, that is
// closest to ref. The result is within Pi of ref.
func Nearest(x, ref float32) float32 {
	return ref + FoldSigned(x-ref)
}

// Fold applies the given wrap mode to x. The previous value is only
// used by [SpinAround].
func Fold(x float32, mode WrapMode, previous float32) float32 {
	switch mode {
	case Signed:
		return FoldSigned(x)
	case Unsigned:
		return FoldUnsigned(x)
	case SpinAround:
		return Continue(x, previous)
	}
	return x
}
