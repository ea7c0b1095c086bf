// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knobs

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/knobs/anim"
	"cogentcore.org/knobs/angle"
	"cogentcore.org/knobs/colors"
	"cogentcore.org/knobs/math32"
	"cogentcore.org/knobs/paint"
	"cogentcore.org/knobs/paint/ppath"
	"cogentcore.org/knobs/paint/render"
)

// PolarOverflow is what a [PolarCompass] does with markers further
// away than its maximum distance.
type PolarOverflow int32

const (
	// Saturate draws far markers on the outer ring.
	Saturate PolarOverflow = iota

	// Clip hides far markers.
	Clip
)

// DistanceScale maps marker distances to radii on a [PolarCompass].
type DistanceScale int32

const (
	// Logarithmic spaces powers of ten evenly.
	Logarithmic DistanceScale = iota

	// Linear is proportional to the distance.
	Linear
)

var (
	overflowNames = []string{"saturate", "clip"}
	scaleNames    = []string{"logarithmic", "linear"}
)

func (o PolarOverflow) String() string { return enumName(overflowNames, int(o), "PolarOverflow") }

func (o *PolarOverflow) SetString(s string) error {
	i, err := enumValue(overflowNames, s, "polar overflow")
	*o = PolarOverflow(i)
	return err
}

func (o PolarOverflow) MarshalText() ([]byte, error)    { return []byte(o.String()), nil }
func (o *PolarOverflow) UnmarshalText(text []byte) error { return o.SetString(string(text)) }

func (d DistanceScale) String() string { return enumName(scaleNames, int(d), "DistanceScale") }

func (d *DistanceScale) SetString(s string) error {
	i, err := enumValue(scaleNames, s, "distance scale")
	*d = DistanceScale(i)
	return err
}

func (d DistanceScale) MarshalText() ([]byte, error)    { return []byte(d.String()), nil }
func (d *DistanceScale) UnmarshalText(text []byte) error { return d.SetString(string(text)) }

func enumName(names []string, i int, typ string) string {
	if i < 0 || i >= len(names) {
		return typ + "(" + strconv.Itoa(i) + ")"
	}
	return names[i]
}

// enumValue returns the index of s in names, ignoring case. On error it
// returns 0 so that the receiver is left at the default value.
func enumValue(names []string, s, what string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, nm := range names {
		if nm == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("knobs: %q is not a valid %s", s, what)
}

// PolarMarker is a [Marker] at a distance from the center of a
// [PolarCompass].
type PolarMarker struct {
	Marker

	// Distance is the distance of the marker, in the units of
	// [PolarCompass.MaxDistance].
	Distance float32
}

// NewPolarMarker returns a gray square [PolarMarker].
func NewPolarMarker(a, distance float32) PolarMarker {
	return PolarMarker{Marker: NewMarker(a), Distance: distance}
}

// PolarCompass is a circular compass whose scale rotates with the value
// under a fixed heading cursor. Markers are placed at their direction
// and at a radius given by their distance.
type PolarCompass struct {

	// ID identifies the compass for animation.
	ID anim.ID

	// Diameter is the size of the compass.
	Diameter float32 `default:"256"`

	// Orientation is the direction of the heading cursor.
	Orientation angle.Orientation `default:"top"`

	// Winding is the direction of increasing values.
	Winding angle.Winding `default:"clockwise"`

	// Labels are drawn at the cardinal ticks.
	Labels Labels `default:"[N E S W]"`

	// LabelHeight is the width of the band outside the rings that
	// holds the tick labels.
	LabelHeight float32 `default:"24"`

	angle.Constraint

	angle.Snaps

	// Animated smooths the displayed value after a drag ends.
	Animated bool

	// ShowCursor draws the heading cursor and its label.
	ShowCursor bool `default:"true"`

	// MaxDistance is the distance of the outer ring.
	MaxDistance float32 `default:"10000"`

	// RingCount is the number of distance rings.
	RingCount int `default:"4"`

	// Scale maps distances to radii.
	Scale DistanceScale `default:"logarithmic"`

	// Overflow is the policy for markers beyond MaxDistance.
	Overflow PolarOverflow `default:"saturate"`

	// MarkerNearSize is the size of a marker at the center.
	MarkerNearSize float32 `default:"16"`

	// MarkerFarSize is the size of a marker on the outer ring.
	MarkerFarSize float32 `default:"8"`

	Markers []PolarMarker
}

// NewPolarCompass returns a new [PolarCompass] with the given ID and
// default settings.
func NewPolarCompass(id anim.ID) *PolarCompass {
	c := &PolarCompass{ID: id}
	c.Defaults()
	return c
}

// Defaults sets the default settings.
func (c *PolarCompass) Defaults() {
	c.Diameter = 256
	c.Orientation = angle.Top
	c.Winding = angle.Clockwise
	c.Labels = DefaultLabels
	c.LabelHeight = 24
	c.Wrap = angle.Unsigned
	c.ShiftStep = angle.Limit(math32.Tau / 36)
	c.ShowCursor = true
	c.MaxDistance = 10000
	c.RingCount = 4
	c.MarkerNearSize = 16
	c.MarkerFarSize = 8
}

// Size returns the size of the compass.
func (c *PolarCompass) Size() math32.Vector2 {
	return math32.Vector2Scalar(c.Diameter)
}

// Drag returns the value after the pointer moved by delta to the local
// position pos. The scale follows the pointer around the center, so
// turning it clockwise decreases a clockwise value. Moves starting or
// ending at the center leave the value unchanged.
func (c *PolarCompass) Drag(current float32, pos, delta math32.Vector2) float32 {
	center := c.Size().MulScalar(0.5)
	to := pos.Sub(center)
	from := to.Sub(delta)
	if to.IsZero() || from.IsZero() {
		return current
	}
	return angle.Constrain(current-from.AngleTo(to)*c.Winding.Sign(), current, c.Constraint)
}

// Release returns the value committed when a drag ends: current snapped
// with the step selected by shift and constrained again.
func (c *PolarCompass) Release(current float32, shift bool) float32 {
	return release(c.ID, c.Snaps, c.Constraint, current, shift)
}

// DistanceFraction returns the radius of a marker at distance d as a
// fraction of the outer ring radius, and false if the marker is hidden.
func (c *PolarCompass) DistanceFraction(d float32) (float32, bool) {
	if c.MaxDistance <= 0 {
		return 0, false
	}
	if d > c.MaxDistance {
		if c.Overflow == Clip {
			return 0, false
		}
		return 1, true
	}
	d = max(d, 0)
	if c.Scale == Linear {
		return d / c.MaxDistance, true
	}
	return math32.Log10(1+d) / math32.Log10(1+c.MaxDistance), true
}

// ScreenAngle returns the direction on screen of angle a when the
// compass shows displayed.
func (c *PolarCompass) ScreenAngle(displayed, a float32) float32 {
	return c.Orientation.Angle() + (a-displayed)*c.Winding.Sign()
}

// Update applies the input to value and paints the compass at pos.
func (c *PolarCompass) Update(ctx *Context, pos math32.Vector2, value Value, in Input) Response {
	res := Response{Rect: math32.B2FromPosSize(pos, c.Size())}
	cur := value.Get()
	nv := cur
	if in.Dragging {
		nv = c.Drag(nv, in.Pos, in.Delta)
	}
	if in.Released {
		ctx.release(c.ID, nv, c.Animated)
		nv = c.Release(nv, in.Shift)
	}
	if nv != cur {
		value.Set(nv)
		res.Changed = true
	}
	res.Displayed = ctx.display(c.ID, c.Wrap, value.Get(), c.Animated, in.Dragging)
	res.Animating = c.Animated && ctx.table().Animating(c.ID)

	pc := paint.NewPainter()
	c.paint(pc, &ctx.Visuals, res.Rect, res.Displayed, ctx.Visuals.Interact(in))
	res.Render = pc.Render
	return res
}

func (c *PolarCompass) paint(pc *paint.Painter, vis *Visuals, rect math32.Box2, value float32, wv WidgetVisuals) {
	center := rect.Center()
	radius := c.Diameter / 2
	ring := max(radius-c.LabelHeight, 0)
	font := c.LabelHeight * 2 / 3
	at := func(a, r float32) math32.Vector2 {
		return center.Add(math32.Vector2Angled(c.ScreenAngle(value, a)).MulScalar(r))
	}

	pc.Circle(center, radius, vis.Extreme, vis.Noninteractive)
	pc.PushClip(rect)

	for i := 1; i <= c.RingCount; i++ {
		pc.Circle(center, ring*float32(i)/float32(c.RingCount), colors.Transparent, vis.Window)
	}

	for d := 0; d < 360; d += 5 {
		t := TickTier(d)
		a := t.Angle()
		pc.Line(at(a, ring), at(a, ring-c.LabelHeight/2*t.Scale), vis.Noninteractive)
		if t.Label >= 0 {
			pc.Text(at(a, ring+c.LabelHeight/2), render.AlignCenter, c.Labels[t.Label], font, vis.Text)
		}
	}

	stop := func(a float32) {
		pc.Line(center, at(a, ring), vis.Noninteractive)
	}
	if c.Min != nil {
		stop(*c.Min)
	}
	if c.Max != nil {
		stop(*c.Max)
	}

	for i := range c.Markers {
		m := &c.Markers[i]
		f, ok := c.DistanceFraction(m.Distance)
		if !ok {
			continue
		}
		size := math32.Lerp(c.MarkerNearSize, c.MarkerFarSize, f)
		p := at(m.Angle, ring*f)
		m.paint(pc, p, p.Add(math32.Vec2(0, size)), size/2, font/2, vis.Text)
	}

	if c.ShowCursor {
		o := c.Orientation.Angle() / math32.Tau
		cr := c.LabelHeight / 3
		pc.Polygon(ppath.Angled(center, cr, o, o+5.0/12, o+7.0/12), wv.Fill, wv.Stroke)
		pc.Text(center.Add(math32.Vec2(0, c.LabelHeight*0.75)), render.AlignCenter, DegreesLabel(value), font/2, wv.Text)
	}

	pc.PopClip()
}
