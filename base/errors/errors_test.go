// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var b bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&b, nil)))
	t.Cleanup(func() { slog.SetDefault(old) })
	return &b
}

func TestLog(t *testing.T) {
	b := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, b.String())

	err := New("broken")
	assert.Same(t, err, Log(err))
	assert.Contains(t, b.String(), "broken")
	assert.Contains(t, b.String(), "TestLog")

	b.Reset()
	assert.Equal(t, 3, Log1(3, nil))
	assert.Empty(t, b.String())
	Log1(0, err)
	assert.Contains(t, b.String(), "broken")
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("x")) })
	assert.Equal(t, "ok", Must1("ok", nil))
	assert.Panics(t, func() { Must1(1, New("x")) })
}

func TestWrapping(t *testing.T) {
	err := Join(New("a"), &fs.PathError{Op: "open", Path: "p", Err: fs.ErrNotExist})
	assert.True(t, Is(err, fs.ErrNotExist))
	var pe *fs.PathError
	assert.True(t, As(err, &pe))
	assert.Equal(t, "p", pe.Path)
	assert.Nil(t, Join(nil, nil))
}
