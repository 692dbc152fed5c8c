// Package freq computes occurrence counts and count distributions over
// token sequences.
package freq

import (
	"sort"

	"github.com/cognicore/retag/pkg/retag/internalerr"
)

// Count builds the occurrence count per distinct token in a single
// left-to-right pass. Empty input fails with internalerr.ErrEmptyInput.
// The sum of all counts equals len(tokens).
func Count[T comparable](tokens []T) (map[T]uint32, error) {
	if len(tokens) == 0 {
		return nil, internalerr.ErrEmptyInput
	}

	counts := make(map[T]uint32, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	return counts, nil
}

// Distribution extracts the occurrence counts sorted ascending. The result
// is an order-independent fingerprint of a frequency profile: two token
// sequences have equal distributions exactly when their count multisets
// match. Empty input fails with internalerr.ErrEmptyInput.
func Distribution[T comparable](counts map[T]uint32) ([]uint32, error) {
	if len(counts) == 0 {
		return nil, internalerr.ErrEmptyInput
	}

	dist := make([]uint32, 0, len(counts))
	for _, n := range counts {
		dist = append(dist, n)
	}
	sort.Slice(dist, func(i, j int) bool { return dist[i] < dist[j] })

	return dist, nil
}
