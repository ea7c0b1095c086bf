// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"time"

	"cogentcore.org/knobs/anim"
	"cogentcore.org/knobs/knobs"
	"cogentcore.org/knobs/math32"
	"cogentcore.org/knobs/paint/render"
)

// margin is the space left around the controls when the canvas size
// is fitted to them.
const margin = 8

// Player plays the frames of a [Scene]. Time only advances as the
// frames say, so playing a scene is deterministic.
type Player struct {

	// Scene is the scene being played.
	Scene *Scene

	// Clock is the clock driving the animations.
	Clock *anim.ManualClock

	// Context is shared by all the controls.
	Context *knobs.Context

	controls []knobs.Control
	values   []float32
	index    map[string]int
	frame    int
}

// State is the state of one control after a frame.
type State struct {
	ID   string
	Kind Kind

	// Value is the committed value, in the units of the control.
	Value float32

	// Displayed is the value drawn.
	Displayed float32

	Changed   bool
	Animating bool
}

// Result is the outcome of one frame.
type Result struct {

	// Frame is the frame number; 0 is the initial state.
	Frame int

	// Time is the clock reading during the frame.
	Time time.Duration

	States []State

	// Render holds the draw items of all the controls.
	Render render.Render
}

// Changed returns whether any control changed its value.
func (r *Result) Changed() bool {
	for _, s := range r.States {
		if s.Changed {
			return true
		}
	}
	return false
}

// NewPlayer builds the controls of the scene.
func NewPlayer(sc *Scene) (*Player, error) {
	clock := &anim.ManualClock{}
	p := &Player{Scene: sc, Clock: clock, Context: knobs.NewContext(clock), index: map[string]int{}}
	for i := range sc.Controls {
		c := &sc.Controls[i]
		ctrl, v, err := c.Build()
		if err != nil {
			return nil, err
		}
		p.index[c.ID] = len(p.controls)
		p.controls = append(p.controls, ctrl)
		p.values = append(p.values, v)
	}
	return p, nil
}

// Size returns the canvas size: the scene size if set, or else the
// size that fits all the controls.
func (p *Player) Size() (width, height int) {
	width, height = p.Scene.Width, p.Scene.Height
	if width > 0 && height > 0 {
		return
	}
	var ext math32.Vector2
	for i, ctrl := range p.controls {
		pos := p.pos(i)
		ext.SetMax(pos.Add(ctrl.Size()))
	}
	if width <= 0 {
		width = int(math32.Ceil(ext.X)) + margin
	}
	if height <= 0 {
		height = int(math32.Ceil(ext.Y)) + margin
	}
	return
}

// Value returns the committed value of the control with the given id.
func (p *Player) Value(id string) (float32, bool) {
	i, ok := p.index[id]
	if !ok {
		return 0, false
	}
	return p.values[i], true
}

func (p *Player) pos(i int) math32.Vector2 {
	pos := p.Scene.Controls[i].Pos
	return math32.Vec2(pos[0], pos[1])
}

// Step advances the clock and evaluates every control once with the
// input of the frame.
func (p *Player) Step(f *Frame) (Result, error) {
	inputs := map[int]knobs.Input{}
	for _, in := range f.Input {
		i, ok := p.index[in.Control]
		if !ok {
			return Result{}, fmt.Errorf("scene: frame %d: unknown control %q", p.frame+1, in.Control)
		}
		inputs[i] = knobs.Input{
			Pos:      math32.Vec2(in.Pos[0], in.Pos[1]),
			Delta:    math32.Vec2(in.Delta[0], in.Delta[1]),
			Hovered:  in.Hovered,
			Clicked:  in.Clicked,
			Dragging: in.Dragging,
			Released: in.Released,
			Shift:    in.Shift,
		}
	}
	p.Clock.Advance(time.Duration(f.Advance))
	p.frame++
	return p.evaluate(inputs), nil
}

// Initial evaluates every control without input, giving frame 0.
func (p *Player) Initial() Result {
	return p.evaluate(nil)
}

func (p *Player) evaluate(inputs map[int]knobs.Input) Result {
	res := Result{Frame: p.frame, Time: p.Clock.Now()}
	for i, ctrl := range p.controls {
		r := ctrl.Update(p.Context, p.pos(i), knobs.Ptr(&p.values[i]), inputs[i])
		c := &p.Scene.Controls[i]
		res.States = append(res.States, State{
			ID:        c.ID,
			Kind:      c.Kind,
			Value:     p.values[i],
			Displayed: r.Displayed,
			Changed:   r.Changed,
			Animating: r.Animating,
		})
		res.Render.Add(r.Render...)
	}
	return res
}

// Run plays the whole scene and returns the initial state followed by
// the result of every frame.
func (p *Player) Run() ([]Result, error) {
	results := []Result{p.Initial()}
	for i := range p.Scene.Frames {
		r, err := p.Step(&p.Scene.Frames[i])
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}
