// Package subst replaces a token sequence with tags from a disjoint
// alphabet while preserving the frequency distribution.
package subst

import (
	"github.com/cognicore/retag/pkg/retag/internalerr"
	"github.com/cognicore/retag/pkg/retag/tagset"
)

// Substitute maps src into the tag alphabet. Each distinct token is bound to
// one fresh tag on first sight, in first-occurrence order; repeat tokens
// emit their bound tag. The token-to-tag assignment is injective, so the
// output carries the same sorted count multiset as the input.
//
// The capacity check compares the full source length, not the distinct
// token count, against the alphabet's remaining tags. That is stricter than
// strictly necessary but also rejects reuse of a partially drawn alphabet.
// Preconditions, first failing one wins:
//
//	len(src) > tags.Len()  ->  internalerr.ErrNotEnoughTags
//	len(src) == 0          ->  internalerr.ErrEmptyInput
func Substitute[S comparable, T comparable](src []S, tags *tagset.Alphabet[T]) ([]T, error) {
	if len(src) > tags.Len() {
		return nil, internalerr.ErrNotEnoughTags
	}
	if len(src) == 0 {
		return nil, internalerr.ErrEmptyInput
	}

	assigned := make(map[S]T, len(src))
	out := make([]T, 0, len(src))
	for _, tok := range src {
		tag, ok := assigned[tok]
		if !ok {
			tag, ok = tags.Draw()
			if !ok {
				// Unreachable: the capacity check above guarantees at
				// least len(src) tags were available.
				panic("subst: tag alphabet exhausted despite capacity check")
			}
			assigned[tok] = tag
		}
		out = append(out, tag)
	}

	return out, nil
}
