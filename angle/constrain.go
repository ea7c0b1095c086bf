// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package angle

// Constraint is the set of rules applied to every committed value.
// Min and Max are optional; nil means no limit. A Min greater than Max
// is a caller error and gives undefined results.
type Constraint struct {

	// Wrap is the wrap mode. It defaults to [Unsigned].
	Wrap WrapMode `default:"unsigned"`

	// Min is the optional minimum value.
	Min *float32

	// Max is the optional maximum value.
	Max *float32
}

// Limit returns a pointer to v, for use as an optional [Constraint]
// limit or snap step.
func Limit(v float32) *float32 {
	return &v
}

// Constrain folds the candidate value according to c.Wrap, using
// previous for [SpinAround] continuity, and then clamps it to c.Min
// and c.Max, applying the minimum first.
func Constrain(candidate, previous float32, c Constraint) float32 {
	return c.Clamp(Fold(candidate, c.Wrap, previous))
}

// Clamp clamps v to the optional limits, minimum first.
func (c Constraint) Clamp(v float32) float32 {
	if c.Min != nil && v < *c.Min {
		v = *c.Min
	}
	if c.Max != nil && v > *c.Max {
		v = *c.Max
	}
	return v
}
