// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

// Value is access to the scalar backing a control.
type Value interface {

	// Get returns the current committed value.
	Get() float32

	// Set commits a new value.
	Set(v float32)
}

// Ptr returns a [Value] reading and writing the given variable.
func Ptr(p *float32) Value {
	return ptrValue{p}
}

type ptrValue struct {
	p *float32
}

func (v ptrValue) Get() float32  { return *v.p }
func (v ptrValue) Set(x float32) { *v.p = x }

// Funcs returns a [Value] calling the given functions, for values
// that are computed or stored elsewhere.
func Funcs(get func() float32, set func(float32)) Value {
	return funcValue{get, set}
}

type funcValue struct {
	get func() float32
	set func(float32)
}

func (v funcValue) Get() float32  { return v.get() }
func (v funcValue) Set(x float32) { v.set(x) }
