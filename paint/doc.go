// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package paint records the drawing done by the knob controls.

A [Painter] appends primitive items to a [render.Render] list in final
screen coordinates, maintaining a stack of clip rectangles. The list can
be consumed by any host, or rasterized onto an image with the
[cogentcore.org/knobs/paint/raster] package, which uses
https://github.com/fogleman/gg for the actual drawing.
*/
package paint
