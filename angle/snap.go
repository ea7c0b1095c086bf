// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package angle

import "cogentcore.org/knobs/math32"

// Snap rounds value to the nearest multiple of step.
// It panics if step is not positive.
func Snap(value, step float32) float32 {
	if !(step > 0) {
		panic("non-positive snap angles are not supported")
	}
	return math32.Round(value/step) * step
}

// Snaps holds the optional primary and shift snap steps of a control.
// Which one applies is decided by whether shift is held when the
// value is committed.
type Snaps struct {

	// Step is the optional snap step used without shift.
	Step *float32

	// ShiftStep is the optional snap step used while shift is held.
	ShiftStep *float32
}

// Select returns the step that applies for the given shift state,
// or nil if that step is not set.
func (s Snaps) Select(shift bool) *float32 {
	if shift {
		return s.ShiftStep
	}
	return s.Step
}

// Apply snaps value with the step selected by shift. It returns the
// value unchanged and false if no step is set.
func (s Snaps) Apply(value float32, shift bool) (float32, bool) {
	step := s.Select(shift)
	if step == nil {
		return value, false
	}
	return Snap(value, *step), true
}
