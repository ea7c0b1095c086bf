// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package angle

import (
	"fmt"
	"strings"
)

// Winding is the sign convention that maps the on-screen rotation
// direction to the sign of the value.
type Winding int32

const (
	// Clockwise makes values grow clockwise on screen.
	Clockwise Winding = iota

	// Counterclockwise makes values grow counterclockwise on screen.
	Counterclockwise
)

// Sign returns the multiplier of the winding: +1 or -1.
func (w Winding) Sign() float32 {
	if w == Counterclockwise {
		return -1
	}
	return 1
}

func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "clockwise"
	case Counterclockwise:
		return "counterclockwise"
	}
	return fmt.Sprintf("Winding(%d)", int32(w))
}

// SetString sets the winding from its string representation.
// The short forms cw and ccw are also accepted.
func (w *Winding) SetString(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clockwise", "cw":
		*w = Clockwise
	case "counterclockwise", "anticlockwise", "ccw":
		*w = Counterclockwise
	default:
		return fmt.Errorf("%q is not a valid value for type Winding", s)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (w Winding) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (w *Winding) UnmarshalText(text []byte) error {
	return w.SetString(string(text))
}
