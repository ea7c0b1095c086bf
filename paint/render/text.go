// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"

	"cogentcore.org/knobs/math32"
)

// Common text anchors, as fractions of the text extent.
var (
	AlignCenter = math32.Vec2(0.5, 0.5)
	AlignTop    = math32.Vec2(0.5, 0)
	AlignBottom = math32.Vec2(0.5, 1)
)

// Text is a single line text render [Item].
type Text struct {

	// Position is the anchor point of the text.
	Position math32.Vector2

	// Align is the point of the text extent placed at Position, as
	// fractions of its width and height; (0.5, 0.5) centers the text.
	Align math32.Vector2

	// Text is the string to draw.
	Text string

	// Size is the font size in pixels.
	Size float32

	// Color is the text color.
	Color color.RGBA
}

// interface assertion.
func (tx *Text) IsRenderItem() {}

func (tx *Text) String() string {
	return fmt.Sprintf("text %q at %v align %v size=%g %s", tx.Text, tx.Position, tx.Align, tx.Size, hex(tx.Color))
}
