// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package angle

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/knobs/math32"
)

// Orientation is the screen direction that corresponds to a value of
// zero, given as the rotation in radians from the +X axis. The named
// orientations cover the usual cases; any other angle is a custom
// orientation.
type Orientation float32

const (
	// Right puts zero at the right of the control.
	Right Orientation = 0

	// Bottom puts zero at the bottom of the control.
	Bottom Orientation = math32.Pi * 0.5

	// Left puts zero at the left of the control.
	Left Orientation = math32.Pi

	// Top puts zero at the top of the control.
	Top Orientation = math32.Pi * 1.5
)

// Custom returns a custom orientation with zero at the given angle.
func Custom(angle float32) Orientation {
	return Orientation(angle)
}

// Rot2 returns the rotation transform of the orientation.
func (o Orientation) Rot2() math32.Rot2 {
	return math32.Rot2FromAngle(float32(o))
}

// Angle returns the orientation angle in radians.
func (o Orientation) Angle() float32 {
	return float32(o)
}

var orientationNames = map[Orientation]string{
	Right:  "right",
	Bottom: "bottom",
	Left:   "left",
	Top:    "top",
}

// IsCustom returns whether o is not one of the named orientations.
func (o Orientation) IsCustom() bool {
	_, ok := orientationNames[o]
	return !ok
}

func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return "custom(" + strconv.FormatFloat(float64(o), 'g', -1, 32) + ")"
}

// SetString sets the orientation from a name (top, right, bottom, left),
// a custom(radians) form, or a bare number of radians.
func (o *Orientation) SetString(s string) error {
	norm := strings.ToLower(strings.TrimSpace(s))
	for v, name := range orientationNames {
		if name == norm {
			*o = v
			return nil
		}
	}
	if strings.HasPrefix(norm, "custom(") && strings.HasSuffix(norm, ")") {
		norm = norm[len("custom(") : len(norm)-1]
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(norm), 32)
	if err != nil {
		return fmt.Errorf("%q is not a valid orientation: %w", s, err)
	}
	*o = Orientation(f)
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (o *Orientation) UnmarshalText(text []byte) error {
	return o.SetString(string(text))
}
