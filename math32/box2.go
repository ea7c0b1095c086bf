// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Box2 is an axis aligned rectangle given by its top-left corner Min
// and bottom-right corner Max. Controls occupy one each.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns the [Box2] with corners (x0, y0) and (x1, y1).
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2FromCenterSize returns the [Box2] of the given size around center.
func B2FromCenterSize(center, size Vector2) Box2 {
	half := size.MulScalar(0.5)
	return Box2{center.Sub(half), center.Add(half)}
}

// B2FromPosSize returns the [Box2] of the given size whose top-left
// corner is pos.
func B2FromPosSize(pos, size Vector2) Box2 {
	return Box2{pos, pos.Add(size)}
}

// IsEmpty returns whether the box has a negative extent on either axis.
// A box of zero width or height is not empty.
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

func (b Box2) Width() float32 {
	return b.Max.X - b.Min.X
}

func (b Box2) Height() float32 {
	return b.Max.Y - b.Min.Y
}

// ContainsPoint returns whether p is inside the box, edges included.
func (b Box2) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Intersect returns the overlap of the boxes, which is empty if they
// do not overlap.
func (b Box2) Intersect(o Box2) Box2 {
	o.Min.SetMax(b.Min)
	o.Max.SetMin(b.Max)
	return o
}
