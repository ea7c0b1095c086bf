// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

import (
	"image/color"

	"cogentcore.org/knobs/colors"
	"cogentcore.org/knobs/paint/render"
)

// WidgetVisuals are the colors of a control in one interaction state.
type WidgetVisuals struct {

	// Fill is the background of the control body.
	Fill color.RGBA

	// Stroke is used for outlines and value indicators.
	Stroke render.Stroke

	// Text is the color of text and hubs.
	Text color.RGBA
}

// Visuals is the palette controls are drawn with.
type Visuals struct {

	// Inactive applies when the pointer is not over the control.
	Inactive WidgetVisuals

	// Hovered applies when the pointer is over the control.
	Hovered WidgetVisuals

	// Active applies while the control is clicked or dragged.
	Active WidgetVisuals

	// Extreme is the background of ribbons and tracks.
	Extreme color.RGBA

	// Selection fills the value band of the audio knob.
	Selection color.RGBA

	// Text is the color of labels that do not depend on interaction.
	Text color.RGBA

	// Noninteractive is the stroke of frames, ticks and stops.
	Noninteractive render.Stroke

	// Window is the stroke of reference axes and rings.
	Window render.Stroke

	// Rounding is the corner radius of rectangular frames.
	Rounding float32
}

// DefaultVisuals returns a dark palette.
func DefaultVisuals() Visuals {
	return Visuals{
		Inactive: WidgetVisuals{
			Fill:   colors.FromRGB(60, 60, 60),
			Stroke: render.NewStroke(1, colors.FromRGB(180, 180, 180)),
			Text:   colors.FromRGB(180, 180, 180),
		},
		Hovered: WidgetVisuals{
			Fill:   colors.FromRGB(70, 70, 70),
			Stroke: render.NewStroke(1.5, colors.FromRGB(240, 240, 240)),
			Text:   colors.FromRGB(240, 240, 240),
		},
		Active: WidgetVisuals{
			Fill:   colors.FromRGB(55, 55, 55),
			Stroke: render.NewStroke(2, colors.White),
			Text:   colors.White,
		},
		Extreme:        colors.FromRGB(10, 10, 10),
		Selection:      colors.FromRGB(0, 92, 128),
		Text:           colors.FromRGB(140, 140, 140),
		Noninteractive: render.NewStroke(1, colors.FromRGB(140, 140, 140)),
		Window:         render.NewStroke(1, colors.FromRGB(60, 60, 60)),
		Rounding:       2,
	}
}

// Interact returns the widget visuals for the given input state.
func (v *Visuals) Interact(in Input) WidgetVisuals {
	switch {
	case in.Active():
		return v.Active
	case in.Hovered:
		return v.Hovered
	}
	return v.Inactive
}
