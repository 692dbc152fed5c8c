// Package report assembles the result of one substitution run.
package report

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// Builder constructs run reports with unique IDs
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Report represents the outcome of one parse-render-substitute run
type Report struct {
	ID           string            `json:"id"`
	Rendered     string            `json:"rendered"`
	Tagged       string            `json:"tagged"`
	TokenCounts  map[string]uint32 `json:"token_counts"`
	TagCounts    map[string]uint32 `json:"tag_counts"`
	Distribution []uint32          `json:"distribution"`
	Preserved    bool              `json:"preserved"`
}

// Build creates a report from the run's intermediate results. Tag counts
// are keyed by the tag rune's string form so the report serializes cleanly.
func (b *Builder) Build(rendered, tagged string, tokenCounts map[string]uint32, tagCounts map[rune]uint32, dist []uint32, preserved bool) Report {
	tags := make(map[string]uint32, len(tagCounts))
	for tag, n := range tagCounts {
		tags[string(tag)] = n
	}

	return Report{
		ID:           ulid.MustNew(ulid.Now(), b.entropy).String(),
		Rendered:     rendered,
		Tagged:       tagged,
		TokenCounts:  tokenCounts,
		TagCounts:    tags,
		Distribution: dist,
		Preserved:    preserved,
	}
}
