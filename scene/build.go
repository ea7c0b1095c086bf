// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/knobs/anim"
	"cogentcore.org/knobs/angle"
	"cogentcore.org/knobs/base/errors"
	"cogentcore.org/knobs/colors"
	"cogentcore.org/knobs/knobs"
	"cogentcore.org/knobs/math32"
)

// Build returns the control described by c, with its initial value.
func (c *Control) Build() (knobs.Control, float32, error) {
	id := anim.ID(c.ID)
	switch c.Kind {
	case AngleKnob:
		k := knobs.NewAngleKnob(id)
		if c.Preset != nil {
			k.ApplyPreset(*c.Preset)
		}
		set(&k.Diameter, c.Diameter)
		c.direction(&k.Orientation, &k.Winding)
		c.constraint(&k.Constraint)
		c.snaps(&k.Snaps)
		set(&k.Animated, c.Animated)
		set(&k.ShowAxes, c.ShowAxes)
		set(&k.AxisCount, c.AxisCount)
		set(&k.Shape, c.Shape)
		return k, math32.DegToRad(c.Value), nil
	case AudioKnob:
		k := knobs.NewAudioKnob(id)
		if c.Range != nil {
			k.Range.Set(c.Range[0], c.Range[1])
			if !k.Range.IsValid() || k.Range.Range() == 0 {
				return nil, 0, fmt.Errorf("control %q: invalid range %v", c.ID, *c.Range)
			}
		}
		set(&k.Diameter, c.Diameter)
		c.direction(&k.Orientation, &k.Winding)
		set(&k.Spread, c.Spread)
		set(&k.Thickness, c.Thickness)
		set(&k.Shape, c.Shape)
		set(&k.Animated, c.Animated)
		// audio snap steps are in value units
		k.Step, k.ShiftStep = c.Snap, c.ShiftSnap
		return k, c.Value, nil
	case LinearCompass:
		k := knobs.NewLinearCompass(id)
		set(&k.Width, c.Width)
		set(&k.Height, c.Height)
		if c.Spread != nil {
			k.Spread = math32.DegToRad(*c.Spread)
		}
		if c.Winding != nil {
			k.Winding = *c.Winding
		}
		set(&k.Labels, c.Labels)
		c.constraint(&k.Constraint)
		c.snaps(&k.Snaps)
		set(&k.Animated, c.Animated)
		set(&k.ShowCursor, c.ShowCursor)
		for i, m := range c.Markers {
			km, err := m.build()
			if err != nil {
				return nil, 0, fmt.Errorf("control %q: marker %d: %w", c.ID, i, err)
			}
			k.Markers = append(k.Markers, km)
		}
		return k, math32.DegToRad(c.Value), nil
	case PolarCompass:
		k := knobs.NewPolarCompass(id)
		set(&k.Diameter, c.Diameter)
		c.direction(&k.Orientation, &k.Winding)
		set(&k.Labels, c.Labels)
		set(&k.LabelHeight, c.LabelHeight)
		c.constraint(&k.Constraint)
		c.snaps(&k.Snaps)
		set(&k.Animated, c.Animated)
		set(&k.ShowCursor, c.ShowCursor)
		set(&k.MaxDistance, c.MaxDistance)
		set(&k.RingCount, c.RingCount)
		set(&k.Scale, c.Scale)
		set(&k.Overflow, c.Overflow)
		set(&k.MarkerNearSize, c.MarkerNearSize)
		set(&k.MarkerFarSize, c.MarkerFarSize)
		for i, m := range c.Markers {
			km, err := m.build()
			if err != nil {
				return nil, 0, fmt.Errorf("control %q: marker %d: %w", c.ID, i, err)
			}
			k.Markers = append(k.Markers, knobs.PolarMarker{Marker: km, Distance: m.Distance})
		}
		return k, math32.DegToRad(c.Value), nil
	}
	return nil, 0, errors.Log(fmt.Errorf("programmer error: scene.Control.Build: unknown kind %v", c.Kind))
}

// set sets *dst to *src if src is not nil.
func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (c *Control) direction(o *angle.Orientation, w *angle.Winding) {
	set(o, c.Orientation)
	set(w, c.Winding)
}

// constraint sets the wrap mode and the limits, in degrees.
func (c *Control) constraint(cons *angle.Constraint) {
	set(&cons.Wrap, c.Wrap)
	if c.Min != nil {
		cons.Min = angle.Limit(math32.DegToRad(*c.Min))
	}
	if c.Max != nil {
		cons.Max = angle.Limit(math32.DegToRad(*c.Max))
	}
}

// snaps sets the snap steps, in degrees.
func (c *Control) snaps(s *angle.Snaps) {
	if c.Snap != nil {
		s.Step = angle.Limit(math32.DegToRad(*c.Snap))
	}
	if c.ShiftSnap != nil {
		s.ShiftStep = angle.Limit(math32.DegToRad(*c.ShiftSnap))
	}
}

func (m *Marker) build() (knobs.Marker, error) {
	km := knobs.NewMarker(math32.DegToRad(m.Angle)).SetLabel(m.Label)
	if m.Shape != nil {
		km.Shape = *m.Shape
	}
	if m.Color != "" {
		c, err := colors.FromHex(m.Color)
		if err != nil {
			return km, err
		}
		km.Color = c
	}
	return km, nil
}
