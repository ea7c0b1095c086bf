// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/knobs/anim"
	"cogentcore.org/knobs/angle"
	"cogentcore.org/knobs/colors"
	"cogentcore.org/knobs/math32"
	"cogentcore.org/knobs/paint"
)

// AngleKnob is a dial whose value is the angle of the pointer around
// its center. Snapping applies continuously while dragging.
type AngleKnob struct {

	// ID identifies the knob for animation.
	ID anim.ID

	// Diameter is the size of the knob.
	Diameter float32 `default:"32"`

	// Orientation is the direction of the zero angle.
	Orientation angle.Orientation `default:"top"`

	// Winding is the direction of increasing values.
	Winding angle.Winding `default:"clockwise"`

	// Shape is the outline of the dial body.
	Shape WidgetShape `default:"circle"`

	angle.Constraint

	angle.Snaps

	// ShowAxes draws dashed reference axes.
	ShowAxes bool `default:"true"`

	// AxisCount is the number of radial axes drawn when ShowAxes is
	// set; 4 draws two perpendicular lines through the center.
	AxisCount int `default:"4"`

	// Animated smooths the displayed value after programmatic changes.
	Animated bool
}

// NewAngleKnob returns a new [AngleKnob] with the given ID and
// default settings.
func NewAngleKnob(id anim.ID) *AngleKnob {
	k := &AngleKnob{ID: id}
	k.Defaults()
	return k
}

// Defaults sets the default settings.
func (k *AngleKnob) Defaults() {
	k.Diameter = 32
	k.Orientation = angle.Top
	k.Winding = angle.Clockwise
	k.Shape = Circle()
	k.Wrap = angle.Unsigned
	k.ShowAxes = true
	k.AxisCount = 4
}

// ApplyPreset sets the orientation, winding and wrap mode of the
// given preset.
func (k *AngleKnob) ApplyPreset(p AngleKnobPreset) *AngleKnob {
	k.Orientation, k.Winding, k.Wrap = p.Properties()
	return k
}

// Size returns the size of the knob.
func (k *AngleKnob) Size() math32.Vector2 {
	return math32.Vector2Scalar(k.Diameter)
}

// Apply returns the value for the pointer at the given local position,
// given the current value: the pointer angle is wrapped, snapped with
// the step selected by shift, and clamped. It returns false if the
// pointer is at the center.
func (k *AngleKnob) Apply(current float32, pos math32.Vector2, shift bool) (float32, bool) {
	raw, ok := PointerAngle(k.Size().MulScalar(0.5), pos, k.Orientation, k.Winding)
	if !ok {
		return current, false
	}
	v := angle.Fold(raw, k.Wrap, current)
	if s, snapped := k.Snaps.Apply(v, shift); snapped {
		v = s
		// a snapped value can land exactly on the excluded bound
		if k.Wrap == angle.Signed || k.Wrap == angle.Unsigned {
			v = angle.Fold(v, k.Wrap, current)
		}
	}
	c := k.Clamp(v)
	if c != v {
		slog.Debug("knobs: angle knob value clamped", "id", k.ID, "value", v, "clamped", c)
	}
	return c, true
}

// Update applies the input to value and paints the knob at pos.
func (k *AngleKnob) Update(ctx *Context, pos math32.Vector2, value Value, in Input) Response {
	res := Response{Rect: math32.B2FromPosSize(pos, k.Size())}
	if in.Active() {
		cur := value.Get()
		if v, ok := k.Apply(cur, in.Pos, in.Shift); ok && v != cur {
			value.Set(v)
			res.Changed = true
		}
	}
	res.Displayed = ctx.display(k.ID, k.Wrap, value.Get(), k.Animated, in.Dragging)
	res.Animating = k.Animated && ctx.table().Animating(k.ID)

	pc := paint.NewPainter()
	k.paint(pc, &ctx.Visuals, res.Rect, res.Displayed, ctx.Visuals.Interact(in))
	res.Render = pc.Render
	return res
}

func (k *AngleKnob) paint(pc *paint.Painter, vis *Visuals, rect math32.Box2, value float32, wv WidgetVisuals) {
	center := rect.Center()
	radius := k.Diameter / 2

	k.Shape.Paint(pc, center, radius, k.Orientation.Angle(), wv.Fill, wv.Stroke)

	if k.ShowAxes && k.AxisCount > 0 {
		for i := 0; i < k.AxisCount; i++ {
			dir := k.Orientation.Rot2().MulVector2(math32.Vector2Angled(math32.Tau * float32(i) / float32(k.AxisCount)))
			pc.DashedLine(center, center.Add(dir.MulScalar(radius)), vis.Window, 1, 1)
		}
	}

	stop := func(a float32) {
		st := wv.Stroke
		st.Color = colors.MultiplyAlpha(st.Color, StopAlpha(a, value))
		pc.Line(center, center.Add(DialDirection(a, k.Orientation, k.Winding).MulScalar(radius)), st)
	}
	if k.Min != nil {
		stop(*k.Min)
	}
	if k.Max != nil {
		stop(*k.Max)
	}

	end := center.Add(DialDirection(value, k.Orientation, k.Winding).MulScalar(radius))
	pc.Line(center, end, wv.Stroke)
	hub := k.Diameter / 24
	pc.Circle(center, hub, wv.Text, wv.Stroke)
	pc.Circle(end, hub, wv.Text, wv.Stroke)
}

// AngleKnobPreset is the orientation, winding and wrap mode of the
// angle controls of a well known application.
type AngleKnobPreset int32

const (
	PresetAdobePhotoshop AngleKnobPreset = iota
	PresetAdobePremierePro
	PresetGimp
	PresetGoogleChromeDevTools
	PresetKrita
	PresetLibreOffice
	PresetQtWidgets
)

var presetNames = []string{"adobe-photoshop", "adobe-premiere-pro", "gimp", "google-chrome-devtools", "krita", "libreoffice", "qt-widgets"}

// AngleKnobPresetValues returns all presets.
func AngleKnobPresetValues() []AngleKnobPreset {
	v := make([]AngleKnobPreset, len(presetNames))
	for i := range v {
		v[i] = AngleKnobPreset(i)
	}
	return v
}

// Properties returns the orientation, winding and wrap mode of the preset.
func (p AngleKnobPreset) Properties() (angle.Orientation, angle.Winding, angle.WrapMode) {
	switch p {
	case PresetAdobePhotoshop, PresetKrita:
		return angle.Right, angle.Counterclockwise, angle.Signed
	case PresetAdobePremierePro:
		return angle.Top, angle.Clockwise, angle.SpinAround
	case PresetGimp, PresetLibreOffice:
		return angle.Right, angle.Counterclockwise, angle.Unsigned
	case PresetGoogleChromeDevTools:
		return angle.Top, angle.Clockwise, angle.Unsigned
	case PresetQtWidgets:
		return angle.Bottom, angle.Clockwise, angle.Unsigned
	}
	slog.Error("programmer error: knobs.AngleKnobPreset.Properties: unknown preset", "preset", int32(p))
	return angle.Top, angle.Clockwise, angle.Unsigned
}

func (p AngleKnobPreset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return "AngleKnobPreset(" + strconv.Itoa(int(p)) + ")"
	}
	return presetNames[p]
}

// SetString sets the preset from its name; dashes, underscores and
// case are ignored.
func (p *AngleKnobPreset) SetString(s string) error {
	key := func(s string) string {
		return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	}
	for i, nm := range presetNames {
		if key(nm) == key(s) {
			*p = AngleKnobPreset(i)
			return nil
		}
	}
	return fmt.Errorf("knobs: %q is not a valid angle knob preset", s)
}

func (p AngleKnobPreset) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *AngleKnobPreset) UnmarshalText(text []byte) error {
	return p.SetString(string(text))
}
