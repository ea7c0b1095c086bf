// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package angle

import (
	"fmt"
	"strings"
)

// WrapMode is the policy for folding an unbounded angle into a
// canonical range, or leaving it unbounded.
type WrapMode int32

const (
	// None leaves values unbounded and unchanged.
	None WrapMode = iota

	// Signed folds values into (-Pi, Pi].
	Signed

	// Unsigned folds values into [0, 2*Pi).
	Unsigned

	// SpinAround leaves values unbounded but keeps successive values
	// continuous: a new value only changes by whole turns, when that is
	// needed to stay within Pi of the previous value.
	SpinAround
)

var wrapModeNames = [...]string{"none", "signed", "unsigned", "spin-around"}

func (i WrapMode) String() string {
	if i < 0 || int(i) >= len(wrapModeNames) {
		return fmt.Sprintf("WrapMode(%d)", int32(i))
	}
	return wrapModeNames[i]
}

// WrapModeValues returns all possible values for the type WrapMode.
func WrapModeValues() []WrapMode {
	return []WrapMode{None, Signed, Unsigned, SpinAround}
}

// SetString sets the WrapMode value from its string representation,
// and returns an error if the string is invalid.
func (i *WrapMode) SetString(s string) error {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if norm == "spinaround" {
		norm = "spin-around"
	}
	for v, name := range wrapModeNames {
		if name == norm {
			*i = WrapMode(v)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type WrapMode", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i WrapMode) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *WrapMode) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
