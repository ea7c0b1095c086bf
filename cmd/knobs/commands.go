// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/knobs/colors"
	"cogentcore.org/knobs/knobs"
	"cogentcore.org/knobs/math32"
	"cogentcore.org/knobs/paint/raster"
	"cogentcore.org/knobs/scene"
	"github.com/anthonynsimon/bild/imgio"
)

// play opens the scene file of c and plays it.
func play(c *Config) (*scene.Player, []scene.Result, error) {
	sc, err := scene.Open(c.Scene)
	if err != nil {
		return nil, nil, err
	}
	p, err := scene.NewPlayer(sc)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", c.Scene, err)
	}
	results, err := p.Run()
	return p, results, err
}

// Render renders the frames of the scene to PNG images named
// frame-000.png, frame-001.png and so on in the output directory.
func Render(c *Config) error {
	p, results, err := play(c)
	if err != nil {
		return err
	}
	bg, err := colors.FromHex(p.Scene.Background)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.Output, 0755); err != nil {
		return err
	}
	if c.Last {
		results = results[len(results)-1:]
	}
	w, h := p.Size()
	for _, r := range results {
		img := raster.NewImage(w, h, bg)
		if err := raster.Rasterize(r.Render, img); err != nil {
			return fmt.Errorf("frame %d: %w", r.Frame, err)
		}
		fn := filepath.Join(c.Output, fmt.Sprintf("frame-%03d.png", r.Frame))
		if err := imgio.Save(fn, img, imgio.PNGEncoder()); err != nil {
			return err
		}
		slog.Debug("knobs: rendered frame", "file", fn, "items", len(r.Render))
	}
	slog.Info("knobs: rendered scene", "scene", c.Scene, "frames", len(results), "output", c.Output)
	return nil
}

// Dump writes the state of every control after every frame to w.
// Angles are written in degrees.
func Dump(c *Config, w io.Writer) error {
	_, results, err := play(c)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(w, "frame %d at %v\n", r.Frame, r.Time)
		for _, s := range r.States {
			var flags []string
			if s.Changed {
				flags = append(flags, "changed")
			}
			if s.Animating {
				flags = append(flags, "animating")
			}
			fmt.Fprintf(w, "\t%s\t%s\t%s\t%s\t%s\n", s.ID, s.Kind, value(s.Kind, s.Value), value(s.Kind, s.Displayed), strings.Join(flags, ","))
		}
		if c.Items {
			io.WriteString(w, r.Render.String())
		}
	}
	return nil
}

// value formats a control value, in degrees for angular controls.
func value(k scene.Kind, v float32) string {
	if k == scene.AudioKnob {
		return fmt.Sprintf("%.4g", v)
	}
	return fmt.Sprintf("%.2f°", math32.RadToDeg(v))
}

// Presets writes the angle knob presets and their properties to w.
func Presets(w io.Writer) error {
	for _, p := range knobs.AngleKnobPresetValues() {
		o, wd, wrap := p.Properties()
		if _, err := fmt.Fprintf(w, "%-24s %-8s %-18s %s\n", p, o, wd, wrap); err != nil {
			return err
		}
	}
	return nil
}
