// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

// F32 is a closed float32 interval.
type F32 struct {
	Min float32 `toml:"min" yaml:"min"`
	Max float32 `toml:"max" yaml:"max"`
}

// Set sets both ends of the interval.
func (mr *F32) Set(mn, mx float32) {
	mr.Min, mr.Max = mn, mx
}

// IsValid reports whether Min <= Max.
func (mr *F32) IsValid() bool { return mr.Min <= mr.Max }

// Range is the width of the interval.
func (mr *F32) Range() float32 { return mr.Max - mr.Min }

// Scale is 1 / Range, or 0 for an empty interval.
func (mr *F32) Scale() float32 {
	if r := mr.Range(); r != 0 {
		return 1 / r
	}
	return 0
}

// NormValue maps val into [0, 1], clipping it first.
func (mr *F32) NormValue(val float32) float32 {
	return (mr.ClipValue(val) - mr.Min) * mr.Scale()
}

// ClipValue limits val to the interval. NaN passes through.
func (mr *F32) ClipValue(val float32) float32 {
	switch {
	case val < mr.Min:
		return mr.Min
	case val > mr.Max:
		return mr.Max
	}
	return val
}
