// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures structured logging for the knobs tools.
package logx

import (
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level that the user has selected for what
// logging messages should be shown. Messages at levels at or above this
// level are shown. It defaults to [slog.LevelInfo], or [slog.LevelDebug]
// and [slog.LevelWarn] with the debug and release build tags.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the level corresponding to the given user flag
// options, evaluated in order: vv is [slog.LevelDebug], v is
// [slog.LevelInfo], q is [slog.LevelError], and the default is
// [slog.LevelWarn].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// userLeveler reports the current [UserLevel], so that changes take
// effect on existing handlers.
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// NewHandler returns a text handler writing to w that filters by
// [UserLevel] and colors the level names when w is a terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	colors := map[slog.Level]termenv.Color{
		slog.LevelDebug: out.Color("8"),
		slog.LevelInfo:  out.Color("4"),
		slog.LevelWarn:  out.Color("3"),
		slog.LevelError: out.Color("1"),
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			c, ok := colors[lvl]
			if !ok {
				return a
			}
			return slog.String(a.Key, out.String(lvl.String()).Foreground(c).String())
		},
	})
}

// SetDefaultLogger sets the default [slog] logger to one using
// [NewHandler] on w.
func SetDefaultLogger(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w)))
}
