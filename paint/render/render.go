// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render defines the primitive draw commands produced by the
// knob controls. A [Render] is an ordered list of [Item]s with final
// coordinates, which any drawing surface can replay.
package render

import (
	"fmt"
	"strings"
)

// Render represents a collection of render [Item]s to be rendered.
type Render []Item

// Add adds item(s) to render.
func (r *Render) Add(item ...Item) Render {
	*r = append(*r, item...)
	return *r
}

// Reset resets back to an empty Render state.
// It preserves the existing slice memory for re-use.
func (r *Render) Reset() Render {
	*r = (*r)[:0]
	return *r
}

// String returns one line per item, in draw order.
func (r Render) String() string {
	var b strings.Builder
	for _, it := range r {
		fmt.Fprintln(&b, it)
	}
	return b.String()
}

// Count returns the number of items of the type of the given item.
func Count[T Item](r Render) int {
	n := 0
	for _, it := range r {
		if _, ok := it.(T); ok {
			n++
		}
	}
	return n
}

// Filter returns all items of type T, in draw order.
func Filter[T Item](r Render) []T {
	var res []T
	for _, it := range r {
		if t, ok := it.(T); ok {
			res = append(res, t)
		}
	}
	return res
}
