package trie

import (
	"go.uber.org/zap"

	"github.com/go-nominal/nomtrie/bitstring"
	"github.com/go-nominal/nomtrie/engine"
)

type kind byte

const (
	nilT kind = iota
	leafT
	binT
	rootT
	nameT
	artT
)

func (k kind) String() string {
	switch k {
	case nilT:
		return "Nil"
	case leafT:
		return "Leaf"
	case binT:
		return "Bin"
	case rootT:
		return "Root"
	case nameT:
		return "Name"
	case artT:
		return "Art"
	}
	return "?"
}

var log = zap.NewNop()

// SetLogger routes the package's diagnostics to l. The default is a no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Meta is per-trie configuration, fixed when the trie is created.
type Meta struct {
	// MinDepth is the number of branch levels enforced before any leaf may
	// appear; Empty clamps it to [0, bitstring.MaxLen].
	MinDepth int
}

// Trie is one node of a persistent hash trie over elements of type X. Nodes
// are immutable once constructed; edits build new nodes that share subtrees
// with their inputs.
type Trie[X Key[X]] struct {
	kind  kind
	bs    bitstring.BS
	elt   X                        // leafT
	left  *Trie[X]                 // binT
	right *Trie[X]                 // binT
	meta  Meta                     // rootT
	nm    engine.Name              // nameT
	sub   *Trie[X]                 // rootT, nameT
	art   engine.Art[*Trie[X]]     // artT
}

// Nil returns the canonical empty node at path bs.
func Nil[X Key[X]](bs bitstring.BS) *Trie[X] {
	return &Trie[X]{kind: nilT, bs: bs}
}

// Leaf returns a node holding exactly one element at path bs.
func Leaf[X Key[X]](bs bitstring.BS, x X) *Trie[X] {
	return &Trie[X]{kind: leafT, bs: bs, elt: x}
}

// Bin returns a branch at path bs owning l and r.
func Bin[X Key[X]](bs bitstring.BS, l, r *Trie[X]) *Trie[X] {
	return &Trie[X]{kind: binT, bs: bs, left: l, right: r}
}

// Root wraps t as the authoritative top of a trie carrying meta.
func Root[X Key[X]](meta Meta, t *Trie[X]) *Trie[X] {
	return &Trie[X]{kind: rootT, meta: meta, sub: t}
}

// Name associates the stable identity nm with t.
func Name[X Key[X]](nm engine.Name, t *Trie[X]) *Trie[X] {
	return &Trie[X]{kind: nameT, nm: nm, sub: t}
}

// Art wraps a cache-backed reference as a trie node.
func Art[X Key[X]](a engine.Art[*Trie[X]]) *Trie[X] {
	return &Trie[X]{kind: artT, art: a}
}

// Empty builds a fresh empty trie in the canonical entry shape
// Name(Art(Root(meta, Name(Art(Nil))))). The double naming lets an engine
// recognize the empty trie as one reusable unit instead of re-deriving it
// on every call.
func Empty[X Key[X]](meta Meta) *Trie[X] {
	if meta.MinDepth > bitstring.MaxLen {
		log.Warn("min depth exceeds path capacity, clamping",
			zap.Int("min_depth", meta.MinDepth),
			zap.Int("max_len", bitstring.MaxLen))
		meta.MinDepth = bitstring.MaxLen
	}
	if meta.MinDepth < 0 {
		meta.MinDepth = 0
	}
	nm1, nm2 := engine.Fork(engine.OfString("empty"))
	inner := Name(nm2, Art(engine.Put(Nil[X](bitstring.BS{}))))
	return Name(nm1, Art(engine.Put(Root(meta, inner))))
}

// Singleton builds a one-element trie.
func Singleton[X Key[X]](meta Meta, nm engine.Name, x X) *Trie[X] {
	return Extend(nm, Empty[X](meta), x)
}

// resolve forces articulation references until a non-Art node remains. It
// is the single normalization step every structural consumer goes through,
// so no visitor or fold ever sees an Art node.
func (t *Trie[X]) resolve() *Trie[X] {
	for t.kind == artT {
		t = engine.Force(t.art)
	}
	return t
}

// String renders the node structure for debugging, with names and
// articulations shown but not followed past one level of forcing.
func (t *Trie[X]) String() string {
	t = t.resolve()
	switch t.kind {
	case nilT:
		return "Nil(" + t.bs.String() + ")"
	case leafT:
		return "Leaf(" + t.bs.String() + ")"
	case binT:
		return "Bin(" + t.bs.String() + ", " + t.left.String() + ", " + t.right.String() + ")"
	case rootT:
		return "Root(" + t.sub.String() + ")"
	default:
		return "Name(" + t.nm.String() + ", " + t.sub.String() + ")"
	}
}
