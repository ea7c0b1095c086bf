// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is an interface for standard decoder types.
type Decoder interface {

	// Decode decodes from the reader specified at creation.
	Decode(v any) error
}

// DecoderFunc is a function that creates a new [Decoder] for the given reader.
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc returns a [DecoderFunc] for a specific [Decoder] type.
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// TOML decodes TOML, rejecting unknown keys.
var TOML = NewDecoderFunc(func(r io.Reader) *toml.Decoder {
	return toml.NewDecoder(r).DisallowUnknownFields()
})

// YAML decodes YAML, rejecting unknown keys.
var YAML = NewDecoderFunc(func(r io.Reader) *yaml.Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
})

// DecoderFor returns the [DecoderFunc] for the extension of filename.
func DecoderFor(filename string) (DecoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return nil, fmt.Errorf("scene: unsupported file type %q (want .toml, .yaml or .yml)", filepath.Ext(filename))
}

// Open reads a [Scene] from the given file, choosing the decoder from
// its extension.
func Open(filename string) (*Scene, error) {
	f, err := DecoderFor(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	sc, err := Read(bufio.NewReader(fp), f)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", filename, err)
	}
	return sc, nil
}

// Read reads a [Scene] from the given reader using the given [DecoderFunc].
func Read(reader io.Reader, f DecoderFunc) (*Scene, error) {
	sc := &Scene{}
	if err := f(reader).Decode(sc); err != nil {
		return nil, err
	}
	sc.Defaults()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// ReadBytes reads a [Scene] from the given bytes using the given [DecoderFunc].
func ReadBytes(data []byte, f DecoderFunc) (*Scene, error) {
	return Read(bytes.NewReader(data), f)
}
