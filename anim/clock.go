// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "time"

// Clock is a monotonic time source for animations.
// Now returns the time elapsed since an arbitrary fixed origin.
type Clock interface {
	Now() time.Duration
}

// SystemClock is a [Clock] driven by the wall clock's monotonic reading.
type SystemClock struct {
	origin time.Time
}

// NewSystemClock returns a new [SystemClock] with its origin at the current time.
func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

func (c *SystemClock) Now() time.Duration {
	return time.Since(c.origin)
}

// ManualClock is a [Clock] that only moves when told to.
// It is used for tests and for replaying recorded interactions.
type ManualClock struct {
	now time.Duration
}

func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d. Negative durations are ignored
// so that the clock stays monotonic.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}
