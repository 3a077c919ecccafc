package trie

import (
	"github.com/go-nominal/nomtrie/bitstring"
	"github.com/go-nominal/nomtrie/engine"
)

// Extend inserts elt into t, returning a new trie; t stays valid and shares
// all untouched subtrees with the result. t must be in the canonical
// Name(Art(...)) shape produced by Empty or a prior Extend; any other shape
// panics.
//
// nm is forked into a root name and a recursion name, and the result is
// rewrapped as Name(nmRoot, Art(Root(meta, Name(nmRec, Art(subtree))))).
// This two-level renaming is what lets an engine cache each insertion
// independently: an edit recomputes only the path from the root to the
// touched leaf, while sibling subtrees keep their prior identities and are
// reused without being forced again.
func Extend[X Key[X]](nm engine.Name, t *Trie[X], elt X) *Trie[X] {
	nmRoot, nmRec := engine.Fork(nm)
	return Name(nmRoot, Art(engine.Put(rootPlace(nmRec, t, elt))))
}

// rootPlace unwraps the entry wrappers down to the Root, places elt into
// the root's subtree, and rebuilds the Root with a renamed articulation.
func rootPlace[X Key[X]](nm engine.Name, t *Trie[X], elt X) *Trie[X] {
	cur := t
	for {
		if cur.kind != nameT || cur.sub.kind != artT {
			panic("trie: Extend entered without the canonical name/articulation wrapper")
		}
		forced := engine.Force(cur.sub.art)
		switch forced.kind {
		case nameT:
			cur = forced
		case rootT:
			// The placement hash is recomputed per insertion, never cached
			// on the element.
			h := elt.Hash64()
			sub := place(forced.meta, forced.sub, bitstring.BS{}, elt, h)
			return Root(forced.meta, Name(nm, Art(engine.Put(sub))))
		default:
			panic("trie: no root beneath the Extend entry wrappers")
		}
	}
}

// place descends t consuming one low-order bit of h per level: even goes
// left, odd goes right, h shifts right on every step. Under MinDepth a Nil
// is forced into a branch before elt may come to rest; an equal element is
// rebuilt in place (which replaces the codomain of an Entry); a colliding
// leaf is split and placement retried at the same position.
func place[X Key[X]](meta Meta, t *Trie[X], bs bitstring.BS, elt X, h uint64) *Trie[X] {
	switch t.kind {
	case nilT:
		if bs.Len() < meta.MinDepth {
			bs0 := bitstring.Prepend(0, bs)
			bs1 := bitstring.Prepend(1, bs)
			if h&1 == 0 {
				return Bin(bs, place(meta, Nil[X](bs0), bs0, elt, h>>1), Nil[X](bs1))
			}
			return Bin(bs, Nil[X](bs0), place(meta, Nil[X](bs1), bs1, elt, h>>1))
		}
		return Leaf(bs, elt)

	case leafT:
		if t.elt.Equals(elt) {
			return Leaf(bs, elt)
		}
		if bs.Len() >= bitstring.MaxLen {
			panic("trie: hash space exhausted, distinct elements collide on every placement bit")
		}
		return place(meta, SplitAtomic(t), bs, elt, h)

	case binT:
		bs0 := bitstring.Prepend(0, bs)
		bs1 := bitstring.Prepend(1, bs)
		if h&1 == 0 {
			return Bin(bs, place(meta, t.left, bs0, elt, h>>1), t.right)
		}
		return Bin(bs, t.left, place(meta, t.right, bs1, elt, h>>1))

	case nameT:
		if t.sub.kind == artT {
			return place(meta, engine.Force(t.sub.art), bs, elt, h)
		}
	}
	panic("trie: malformed " + t.kind.String() + " node during placement")
}

// SplitAtomic converts a leaf into a branch, making room for a second
// element at the same path. The resident element's own hash decides which
// child it moves to: its path bits are exactly the low bits of that hash,
// so the one-bit-longer suffix test reads the next undecided bit. Nil and
// Bin pass through unchanged; splitting any other node is a caller error.
func SplitAtomic[X Key[X]](t *Trie[X]) *Trie[X] {
	switch t.kind {
	case nilT, binT:
		return t
	case leafT:
		bs0 := bitstring.Prepend(0, t.bs)
		bs1 := bitstring.Prepend(1, t.bs)
		if bs1.SuffixOf(t.elt.Hash64()) {
			return Bin(t.bs, Nil[X](bs0), Leaf(bs1, t.elt))
		}
		return Bin(t.bs, Leaf(bs0, t.elt), Nil[X](bs1))
	}
	panic("trie: split of a " + t.kind.String() + " node")
}
