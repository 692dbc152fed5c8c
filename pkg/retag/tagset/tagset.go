// Package tagset materializes tag alphabets and hands out their tags in a
// fixed, non-repeating enumeration order.
package tagset

import "golang.org/x/exp/constraints"

// Alphabet is a set of substitute tags consumed through a draw cursor.
// Each tag is drawn at most once; an Alphabet is single-use and a fresh one
// must be built for every substitution run.
type Alphabet[T comparable] struct {
	tags []T
	next int
}

// New builds an alphabet from an explicit tag list. Duplicates are removed,
// keeping the first occurrence, so the enumeration order is the order of
// first appearance.
func New[T comparable](tags []T) *Alphabet[T] {
	seen := make(map[T]struct{}, len(tags))
	uniq := make([]T, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		uniq = append(uniq, t)
	}
	return &Alphabet[T]{tags: uniq}
}

// BuildRange materializes every value from start to end inclusive, in
// ascending order. If start > end the alphabet is empty.
func BuildRange[T constraints.Integer](start, end T) *Alphabet[T] {
	if start > end {
		return &Alphabet[T]{}
	}
	tags := make([]T, 0, int(end-start)+1)
	for t := start; ; t++ {
		tags = append(tags, t)
		if t == end {
			break
		}
	}
	return &Alphabet[T]{tags: tags}
}

// Len returns the number of tags that can still be drawn.
func (a *Alphabet[T]) Len() int {
	return len(a.tags) - a.next
}

// Draw returns the next undrawn tag in the enumeration. It reports false
// when the alphabet is exhausted. A drawn tag is never returned again.
func (a *Alphabet[T]) Draw() (T, bool) {
	if a.next >= len(a.tags) {
		var zero T
		return zero, false
	}
	t := a.tags[a.next]
	a.next++
	return t, true
}
