// Package retag chains byte decoding, rendering, and frequency-preserving
// tag substitution into one pipeline.
package retag

import (
	"fmt"
	"strings"

	"github.com/cognicore/retag/pkg/retag/bytecodec"
	"github.com/cognicore/retag/pkg/retag/freq"
	"github.com/cognicore/retag/pkg/retag/internalerr"
	"github.com/cognicore/retag/pkg/retag/report"
	"github.com/cognicore/retag/pkg/retag/subst"
	"github.com/cognicore/retag/pkg/retag/tagset"
)

// Pipeline is the main substitution pipeline facade
type Pipeline struct {
	parseRadix  bytecodec.Radix
	renderRadix bytecodec.Radix
	tagStart    rune
	tagEnd      rune
	reports     *report.Builder
}

// Options configures a Pipeline instance
type Options struct {
	ParseRadix  bytecodec.Radix
	RenderRadix bytecodec.Radix
	TagStart    rune
	TagEnd      rune
}

// New creates a Pipeline with the given settings. Both radixes must be one
// of 2, 8, 10 or 16.
func New(opts Options) (*Pipeline, error) {
	if !opts.ParseRadix.Valid() {
		return nil, fmt.Errorf("%w: parse radix %d", internalerr.ErrInvalidConfig, int(opts.ParseRadix))
	}
	if !opts.RenderRadix.Valid() {
		return nil, fmt.Errorf("%w: render radix %d", internalerr.ErrInvalidConfig, int(opts.RenderRadix))
	}
	return &Pipeline{
		parseRadix:  opts.ParseRadix,
		renderRadix: opts.RenderRadix,
		tagStart:    opts.TagStart,
		tagEnd:      opts.TagEnd,
		reports:     report.New(),
	}, nil
}

// Run decodes the sample under the parse radix, renders it back under the
// render radix, substitutes the rendered tokens into a fresh tag alphabet
// built from the configured range, and reports both frequency profiles.
// Every run consumes its own alphabet, so repeated runs are independent.
func (p *Pipeline) Run(sampleText string) (*report.Report, error) {
	bytes, err := bytecodec.Parse(sampleText, p.parseRadix)
	if err != nil {
		return nil, fmt.Errorf("parse sample: %w", err)
	}

	rendered, err := bytecodec.Render(bytes, p.renderRadix)
	if err != nil {
		return nil, fmt.Errorf("render bytes: %w", err)
	}

	tokens := strings.Fields(rendered)

	alphabet := tagset.BuildRange(p.tagStart, p.tagEnd)
	tagged, err := subst.Substitute(tokens, alphabet)
	if err != nil {
		return nil, fmt.Errorf("substitute tags: %w", err)
	}

	tokenCounts, err := freq.Count(tokens)
	if err != nil {
		return nil, fmt.Errorf("count tokens: %w", err)
	}
	tagCounts, err := freq.Count(tagged)
	if err != nil {
		return nil, fmt.Errorf("count tags: %w", err)
	}

	tokenDist, err := freq.Distribution(tokenCounts)
	if err != nil {
		return nil, fmt.Errorf("token distribution: %w", err)
	}
	tagDist, err := freq.Distribution(tagCounts)
	if err != nil {
		return nil, fmt.Errorf("tag distribution: %w", err)
	}

	rep := p.reports.Build(rendered, string(tagged), tokenCounts, tagCounts, tokenDist, distEqual(tokenDist, tagDist))
	return &rep, nil
}

// distEqual compares two sorted count distributions element-wise.
func distEqual(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
