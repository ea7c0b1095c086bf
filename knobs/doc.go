// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package knobs provides angular input controls: an angle dial
// ([AngleKnob]), an audio style dial over a numeric range ([AudioKnob]),
// and linear and polar compass ribbons ([LinearCompass], [PolarCompass]).
//
// Controls are plain configuration structs. Each frame the host calls
// Update with a [Context], the position of the control, access to the
// backing [Value], and the [Input] for the control. Update applies the
// input to the value and returns a [Response] containing the draw
// items for the control, in the coordinates of the host.
//
// The pointer position in [Input] is local to the control: (0, 0) is the
// top-left corner of its rectangle.
package knobs
