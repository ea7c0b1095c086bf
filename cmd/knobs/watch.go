// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/knobs/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch runs f, and then runs it again every time the given file is
// written, until ctx is done or the process is interrupted. Errors from
// f are logged, not returned.
func Watch(ctx context.Context, filename string, f func() error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	// editors often replace files, so the directory is watched
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	errors.Log(f())
	slog.Info("knobs: watching for changes", "file", abs)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			slog.Debug("knobs: file changed", "file", ev.Name, "op", ev.Op)
			errors.Log(f())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
