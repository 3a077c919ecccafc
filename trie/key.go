package trie

import (
	"encoding/binary"

	"github.com/twmb/murmur3"
)

// PlacementSeed seeds every placement hash.
const PlacementSeed uint64 = 42

// Key is the contract an element type must satisfy to be stored in a Trie.
//
// Hash64 is the placement key: it decides the element's path, one low-order
// bit per branch level. It is recomputed at every call site that needs it,
// so implementations must be pure functions of the element's content.
// Equals decides whether two elements are the same set member.
type Key[X any] interface {
	Hash64() uint64
	Equals(X) bool
}

// U64 is an unsigned integer element.
type U64 uint64

// Hash64 implements Key.
func (k U64) Hash64() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k))
	return murmur3.SeedSum64(PlacementSeed, buf[:])
}

// Equals implements Key.
func (k U64) Equals(o U64) bool {
	return k == o
}

// Str is a string element.
type Str string

// Hash64 implements Key.
func (k Str) Hash64() uint64 {
	return murmur3.SeedSum64(PlacementSeed, []byte(k))
}

// Equals implements Key.
func (k Str) Equals(o Str) bool {
	return k == o
}

// Unit is the trivial element, used as the codomain of set entries.
type Unit struct{}

// Hash64 implements Key.
func (Unit) Hash64() uint64 {
	return murmur3.SeedSum64(PlacementSeed, nil)
}

// Equals implements Key.
func (Unit) Equals(Unit) bool {
	return true
}

// Entry pairs a domain value with a codomain value. Placement and equality
// are keyed on the domain alone: extending a trie with an entry whose domain
// is already present replaces that entry's codomain instead of splitting two
// entries that could never be told apart by placement bits. A set is a trie
// of Entry[X, Unit]; a map is a trie of Entry[D, C].
type Entry[D Key[D], C any] struct {
	Dom D
	Cod C
}

// Hash64 implements Key.
func (e Entry[D, C]) Hash64() uint64 {
	return e.Dom.Hash64()
}

// Equals implements Key.
func (e Entry[D, C]) Equals(o Entry[D, C]) bool {
	return e.Dom.Equals(o.Dom)
}
