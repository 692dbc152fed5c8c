package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/cognicore/retag/pkg/retag/bytecodec"
	"github.com/cognicore/retag/pkg/retag/internalerr"
)

// Loader loads a run configuration file and resolves it into ready-to-use
// pipeline settings.
type Loader struct {
	Path string
}

// Components holds the resolved configuration
type Components struct {
	SamplePath  string
	ParseRadix  bytecodec.Radix
	RenderRadix bytecodec.Radix
	TagStart    rune
	TagEnd      rune
}

// Load reads the configuration file, validates it, and returns the resolved
// components.
func (l *Loader) Load() (*Components, error) {
	run, err := LoadRun(l.Path)
	if err != nil {
		return nil, fmt.Errorf("load run config: %w", err)
	}

	comp := &Components{
		SamplePath:  run.Sample,
		ParseRadix:  bytecodec.Radix(run.ParseRadix),
		RenderRadix: bytecodec.Radix(run.RenderRadix),
	}

	if comp.SamplePath == "" {
		return nil, fmt.Errorf("%w: sample path missing", internalerr.ErrInvalidConfig)
	}
	if !comp.ParseRadix.Valid() {
		return nil, fmt.Errorf("%w: parse_radix %d not one of 2, 8, 10, 16", internalerr.ErrInvalidConfig, run.ParseRadix)
	}
	if !comp.RenderRadix.Valid() {
		return nil, fmt.Errorf("%w: render_radix %d not one of 2, 8, 10, 16", internalerr.ErrInvalidConfig, run.RenderRadix)
	}

	comp.TagStart, err = singleRune("tags.start", run.Tags.Start)
	if err != nil {
		return nil, err
	}
	comp.TagEnd, err = singleRune("tags.end", run.Tags.End)
	if err != nil {
		return nil, err
	}

	return comp, nil
}

// singleRune decodes a config field that must hold exactly one rune.
func singleRune(field, s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || r == utf8.RuneError && size <= 1 {
		return 0, fmt.Errorf("%w: %s must be a single character, got %q", internalerr.ErrInvalidConfig, field, s)
	}
	if size != len(s) {
		return 0, fmt.Errorf("%w: %s must be a single character, got %q", internalerr.ErrInvalidConfig, field, s)
	}
	return r, nil
}
