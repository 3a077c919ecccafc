// Package set provides the set view of a nominal hash trie: membership over
// elements with a trivial codomain. Sets are persistent; Add returns a new
// value and the receiver stays valid.
package set

import (
	"github.com/go-nominal/nomtrie/engine"
	"github.com/go-nominal/nomtrie/trie"
)

// Set is a persistent set of X, a thin view over a trie of entries with a
// Unit codomain.
type Set[X trie.Key[X]] struct {
	t *trie.Trie[trie.Entry[X, trie.Unit]]
}

// New returns an empty set, optionally pre-populated with elts.
func New[X trie.Key[X]](elts ...X) Set[X] {
	s := Set[X]{t: trie.Empty[trie.Entry[X, trie.Unit]](trie.Meta{MinDepth: 1})}
	for _, x := range elts {
		s = s.Add(x)
	}
	return s
}

// FromTrie wraps an existing trie as a set. The trie must be in the
// canonical shape produced by trie.Empty/trie.Extend.
func FromTrie[X trie.Key[X]](t *trie.Trie[trie.Entry[X, trie.Unit]]) Set[X] {
	return Set[X]{t: t}
}

// Trie exposes the underlying trie for fold-based consumers.
func (s Set[X]) Trie() *trie.Trie[trie.Entry[X, trie.Unit]] {
	return s.t
}

// Add returns s with x added. Re-adding a member yields an equal set.
func (s Set[X]) Add(x X) Set[X] {
	return s.AddNamed(engine.Unit(), x)
}

// AddNamed is Add under a caller-chosen identity, for callers that key
// engine reuse on where an element came from.
func (s Set[X]) AddNamed(nm engine.Name, x X) Set[X] {
	return Set[X]{t: trie.Extend(nm, s.t, trie.Entry[X, trie.Unit]{Dom: x})}
}

// Has reports membership. The element's hash is recomputed per query.
func (s Set[X]) Has(x X) bool {
	e := trie.Entry[X, trie.Unit]{Dom: x}
	_, ok := trie.Find(s.t, e, e.Hash64())
	return ok
}

// Empty reports whether the set has no members.
func (s Set[X]) Empty() bool {
	return trie.IsEmpty(s.t)
}

// Len counts the members.
func (s Set[X]) Len() int {
	return trie.Fold(s.t, 0, func(_ trie.Entry[X, trie.Unit], n int) int { return n + 1 })
}

// Equal reports whether two sets hold the same members, independent of
// insertion order and caching strategy.
func (s Set[X]) Equal(o Set[X]) bool {
	return trie.Equal(s.t, o.t)
}

// Fold reduces the set in an unspecified order.
func Fold[X trie.Key[X], R any](s Set[X], init R, f func(X, R) R) R {
	return trie.Fold(s.Trie(), init, func(e trie.Entry[X, trie.Unit], acc R) R {
		return f(e.Dom, acc)
	})
}
