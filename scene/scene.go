// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene describes a set of knob controls and a script of
// pointer input for them, read from TOML or YAML files, and plays the
// script frame by frame on a manual clock.
//
// Angles in scene files are in degrees; they are converted to radians
// when the controls are built. The values of audio knobs are plain
// numbers in their range.
package scene

import (
	"fmt"
	"strings"
	"time"

	"cogentcore.org/knobs/angle"
	"cogentcore.org/knobs/base/errors"
	"cogentcore.org/knobs/colors"
	"cogentcore.org/knobs/knobs"
)

// Kind is the kind of a [Control].
type Kind int32

const (
	AngleKnob Kind = iota
	AudioKnob
	LinearCompass
	PolarCompass
)

var kindNames = []string{"angle-knob", "audio-knob", "linear-compass", "polar-compass"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}

// SetString sets the kind from its name. The suffix may be omitted:
// "angle" is the same as "angle-knob".
func (k *Kind) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, nm := range kindNames {
		short, _, _ := strings.Cut(nm, "-")
		if s == nm || s == short {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("scene: %q is not a valid control kind", s)
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(text []byte) error { return k.SetString(string(text)) }

// Duration is a [time.Duration] written as a string such as "16ms".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Scene is a canvas with controls and a script of input frames.
type Scene struct {

	// Width of the canvas. Zero fits the controls.
	Width int `toml:"width" yaml:"width"`

	// Height of the canvas. Zero fits the controls.
	Height int `toml:"height" yaml:"height"`

	// Background is the canvas color, as hex.
	Background string `toml:"background" yaml:"background" default:"#1b1b1b"`

	Controls []Control `toml:"controls" yaml:"controls"`

	Frames []Frame `toml:"frames" yaml:"frames"`
}

// Control is one control of a [Scene]. Fields that do not apply to the
// kind are ignored; nil fields keep the defaults of the control.
type Control struct {
	Kind Kind `toml:"kind" yaml:"kind"`

	// ID names the control in frames and identifies it for animation.
	ID string `toml:"id" yaml:"id"`

	// Pos is the top-left corner of the control on the canvas.
	Pos [2]float32 `toml:"pos" yaml:"pos"`

	// Value is the initial value.
	Value float32 `toml:"value" yaml:"value"`

	Preset *knobs.AngleKnobPreset `toml:"preset" yaml:"preset"`

	Diameter *float32 `toml:"diameter" yaml:"diameter"`
	Width    *float32 `toml:"width" yaml:"width"`
	Height   *float32 `toml:"height" yaml:"height"`

	Orientation *angle.Orientation `toml:"orientation" yaml:"orientation"`
	Winding     *angle.Winding     `toml:"winding" yaml:"winding"`
	Wrap        *angle.WrapMode    `toml:"wrap" yaml:"wrap"`

	Min       *float32 `toml:"min" yaml:"min"`
	Max       *float32 `toml:"max" yaml:"max"`
	Snap      *float32 `toml:"snap" yaml:"snap"`
	ShiftSnap *float32 `toml:"shift_snap" yaml:"shift_snap"`

	Animated   *bool `toml:"animated" yaml:"animated"`
	ShowAxes   *bool `toml:"show_axes" yaml:"show_axes"`
	AxisCount  *int  `toml:"axis_count" yaml:"axis_count"`
	ShowCursor *bool `toml:"show_cursor" yaml:"show_cursor"`

	Shape  *knobs.WidgetShape `toml:"shape" yaml:"shape"`
	Spread *float32           `toml:"spread" yaml:"spread"`
	Labels *knobs.Labels      `toml:"labels" yaml:"labels"`

	// Range is the value range of an audio knob.
	Range     *[2]float32 `toml:"range" yaml:"range"`
	Thickness *float32    `toml:"thickness" yaml:"thickness"`

	LabelHeight    *float32             `toml:"label_height" yaml:"label_height"`
	MaxDistance    *float32             `toml:"max_distance" yaml:"max_distance"`
	RingCount      *int                 `toml:"ring_count" yaml:"ring_count"`
	Scale          *knobs.DistanceScale `toml:"scale" yaml:"scale"`
	Overflow       *knobs.PolarOverflow `toml:"overflow" yaml:"overflow"`
	MarkerNearSize *float32             `toml:"marker_near_size" yaml:"marker_near_size"`
	MarkerFarSize  *float32             `toml:"marker_far_size" yaml:"marker_far_size"`

	Markers []Marker `toml:"markers" yaml:"markers"`
}

// Marker is a compass marker.
type Marker struct {

	// Angle is the direction in degrees.
	Angle float32 `toml:"angle" yaml:"angle"`

	Shape *knobs.MarkerShape `toml:"shape" yaml:"shape"`

	Label string `toml:"label" yaml:"label"`

	// Color is the hex fill color.
	Color string `toml:"color" yaml:"color"`

	// Distance places the marker on a polar compass.
	Distance float32 `toml:"distance" yaml:"distance"`
}

// Frame is one step of the script.
type Frame struct {

	// Advance is the time that passes before the frame.
	Advance Duration `toml:"advance" yaml:"advance"`

	// Input is the input for the controls named in it. The other
	// controls get no input.
	Input []Input `toml:"input" yaml:"input"`
}

// Input is the input for one control in one frame.
type Input struct {

	// Control is the ID of the control.
	Control string `toml:"control" yaml:"control"`

	// Pos is the pointer position, local to the control.
	Pos [2]float32 `toml:"pos" yaml:"pos"`

	// Delta is the drag movement.
	Delta [2]float32 `toml:"delta" yaml:"delta"`

	Hovered  bool `toml:"hovered" yaml:"hovered"`
	Clicked  bool `toml:"clicked" yaml:"clicked"`
	Dragging bool `toml:"dragging" yaml:"dragging"`
	Released bool `toml:"released" yaml:"released"`
	Shift    bool `toml:"shift" yaml:"shift"`
}

// Defaults sets the default values of unset fields.
func (sc *Scene) Defaults() {
	if sc.Background == "" {
		sc.Background = "#1b1b1b"
	}
}

// Validate checks the scene for duplicate or unknown control IDs,
// bad colors and invalid snap steps.
func (sc *Scene) Validate() error {
	var errs []error
	if _, err := colors.FromHex(sc.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	ids := map[string]bool{}
	for i, c := range sc.Controls {
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("control %d: missing id", i))
			continue
		}
		if ids[c.ID] {
			errs = append(errs, fmt.Errorf("control %d: duplicate id %q", i, c.ID))
		}
		ids[c.ID] = true
		for _, step := range []*float32{c.Snap, c.ShiftSnap} {
			if step != nil && !(*step > 0) {
				errs = append(errs, fmt.Errorf("control %q: snap steps must be positive, got %g", c.ID, *step))
			}
		}
		for j, m := range c.Markers {
			if m.Color == "" {
				continue
			}
			if _, err := colors.FromHex(m.Color); err != nil {
				errs = append(errs, fmt.Errorf("control %q: marker %d: %w", c.ID, j, err))
			}
		}
	}
	for i, f := range sc.Frames {
		for _, in := range f.Input {
			if !ids[in.Control] {
				errs = append(errs, fmt.Errorf("frame %d: unknown control %q", i, in.Control))
			}
		}
	}
	return errors.Join(errs...)
}
