// Package dict provides the map view of a nominal hash trie: a persistent
// finite map placed and compared by its domain. Set returns a new value and
// the receiver stays valid.
//
// Removal and merging are deliberately unsupported: callers needing them
// must rebuild, and both panic rather than silently degrade.
package dict

import (
	"github.com/go-nominal/nomtrie/engine"
	"github.com/go-nominal/nomtrie/trie"
)

// Dict is a persistent map from D to C, a thin view over a trie of entries.
// The codomain is unconstrained: only the domain takes part in placement
// and comparison.
type Dict[D trie.Key[D], C any] struct {
	t *trie.Trie[trie.Entry[D, C]]
}

// New returns an empty dict.
func New[D trie.Key[D], C any]() Dict[D, C] {
	return Dict[D, C]{t: trie.Empty[trie.Entry[D, C]](trie.Meta{MinDepth: 1})}
}

// Trie exposes the underlying trie for fold-based consumers.
func (d Dict[D, C]) Trie() *trie.Trie[trie.Entry[D, C]] {
	return d.t
}

// Set returns d with key bound to val, replacing any previous binding.
func (d Dict[D, C]) Set(key D, val C) Dict[D, C] {
	return d.Extend(engine.Unit(), key, val)
}

// Extend is Set under a caller-chosen identity, for callers that key
// engine reuse on where a binding came from.
func (d Dict[D, C]) Extend(nm engine.Name, key D, val C) Dict[D, C] {
	return Dict[D, C]{t: trie.Extend(nm, d.t, trie.Entry[D, C]{Dom: key, Cod: val})}
}

// Get returns the value bound to key. Only the domain is compared at the
// leaves; an unbound key is a normal (zero, false) result.
func (d Dict[D, C]) Get(key D) (C, bool) {
	probe := trie.Entry[D, C]{Dom: key}
	e, ok := trie.Find(d.t, probe, probe.Hash64())
	return e.Cod, ok
}

// Empty reports whether the dict has no bindings.
func (d Dict[D, C]) Empty() bool {
	return trie.IsEmpty(d.t)
}

// Len counts the bindings.
func (d Dict[D, C]) Len() int {
	return trie.Fold(d.t, 0, func(_ trie.Entry[D, C], n int) int { return n + 1 })
}

// Del is unsupported: the structure has no removal.
func (d Dict[D, C]) Del(D) Dict[D, C] {
	panic("dict: Del is not supported, rebuild without the key instead")
}

// Merge is unsupported: the structure has no union.
func (d Dict[D, C]) Merge(Dict[D, C]) Dict[D, C] {
	panic("dict: Merge is not supported, rebuild from both dicts instead")
}

// Fold reduces the dict in an unspecified order, destructuring each binding.
func Fold[D trie.Key[D], C, R any](d Dict[D, C], init R, f func(D, C, R) R) R {
	return trie.Fold(d.Trie(), init, func(e trie.Entry[D, C], acc R) R {
		return f(e.Dom, e.Cod, acc)
	})
}
