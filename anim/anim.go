// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim smooths the displayed value of a control toward its
// committed value. State is kept per widget [ID] in a [Table] that the
// caller owns and passes to the controls every frame.
package anim

import (
	"time"

	"cogentcore.org/knobs/angle"
	"cogentcore.org/knobs/math32"
)

// DefaultDuration is the settle time used by all animated controls.
const DefaultDuration = 100 * time.Millisecond

// stiffness is the critically damped rate, in units of 1/duration.
// The residual (1+k)e^-k at the end of the duration is below 0.5%.
const stiffness = 8

// ID identifies one logical control across frames.
type ID string

// Table holds the animation state of every control, keyed by [ID].
// A Table is not safe for concurrent use; it belongs to the goroutine
// that evaluates the controls. State for controls that are no longer
// evaluated is harmless and is overwritten if the ID is reused.
type Table struct {

	// Clock is the time source. It defaults to a [SystemClock].
	Clock Clock

	// Duration is the settle time. It defaults to [DefaultDuration].
	Duration time.Duration

	states map[ID]*state
}

// state is one interpolation from a start value toward a target.
type state struct {

	// from is the displayed value when the interpolation started.
	from float32

	// to is the interpolation end point. For angles it may differ
	// from target by whole turns.
	to float32

	// target is the committed value the interpolation settles on.
	target float32

	// start is the clock reading when the interpolation started.
	start time.Duration
}

// NewTable returns a new [Table] using the given clock, which may be
// nil to use a [SystemClock].
func NewTable(clock Clock) *Table {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &Table{Clock: clock, Duration: DefaultDuration, states: map[ID]*state{}}
}

func (t *Table) init() {
	if t.Clock == nil {
		t.Clock = NewSystemClock()
	}
	if t.Duration <= 0 {
		t.Duration = DefaultDuration
	}
	if t.states == nil {
		t.states = map[ID]*state{}
	}
}

// Value returns the value to display for the control with the given
// id. While dragging, or when animation is not enabled, it returns the
// committed value and pins the state there. Otherwise it returns a
// value that approaches committed along a critically damped curve,
// restarting from the currently displayed value whenever committed
// changes, and equal to committed once the duration has passed.
func (t *Table) Value(id ID, committed float32, enabled, dragging bool) float32 {
	return t.value(id, committed, enabled, dragging, false)
}

// Angle is like [Table.Value] for angular values: each interpolation
// takes the shortest way around the circle, so a committed value that
// wrapped from just below 2*Pi to just above 0 moves forward a little
// instead of spinning back a full turn. Intermediate values may lie
// outside the wrap range; the settled value is committed exactly.
func (t *Table) Angle(id ID, committed float32, enabled, dragging bool) float32 {
	return t.value(id, committed, enabled, dragging, true)
}

func (t *Table) value(id ID, committed float32, enabled, dragging, turns bool) float32 {
	t.init()
	now := t.Clock.Now()
	s, ok := t.states[id]
	if !ok || !enabled || dragging {
		t.pin(id, committed, now)
		return committed
	}
	if committed != s.target {
		cur := s.at(now, t.Duration)
		to := committed
		if turns {
			to = angle.Nearest(committed, cur)
		}
		*s = state{from: cur, to: to, target: committed, start: now}
	}
	return s.at(now, t.Duration)
}

// Retarget discards any running animation for id and pins its state at
// value. Controls call it when a drag ends, so that the following
// settle is a fresh animation starting at the released value.
func (t *Table) Retarget(id ID, value float32) {
	t.init()
	t.pin(id, value, t.Clock.Now())
}

// Forget drops the state for id.
func (t *Table) Forget(id ID) {
	delete(t.states, id)
}

// Len returns the number of controls with animation state.
func (t *Table) Len() int {
	return len(t.states)
}

// Animating returns whether the control with the given id has an
// unfinished interpolation, so that the host knows to request another frame.
func (t *Table) Animating(id ID) bool {
	t.init()
	s, ok := t.states[id]
	if !ok {
		return false
	}
	return s.from != s.to && t.Clock.Now()-s.start < t.Duration
}

func (t *Table) pin(id ID, value float32, now time.Duration) {
	s, ok := t.states[id]
	if !ok {
		s = &state{}
		t.states[id] = s
	}
	*s = state{from: value, to: value, target: value, start: now}
}

// at returns the interpolated value at the given time.
func (s *state) at(now, duration time.Duration) float32 {
	elapsed := now - s.start
	if elapsed >= duration || s.from == s.to {
		return s.target
	}
	k := stiffness * float32(elapsed) / float32(duration)
	return s.to + (s.from-s.to)*(1+k)*math32.Exp(-k)
}
