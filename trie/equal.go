package trie

import (
	"encoding/binary"

	"github.com/twmb/murmur3"
)

// structSeed seeds the structural hash so it cannot collide with element
// placement hashes by construction.
const structSeed uint64 = 0x747269652e676f00

// stripOne forces articulations and drops name wrappers until a structural
// node (Nil, Leaf, Bin or Root) remains.
func stripOne[X Key[X]](t *Trie[X]) *Trie[X] {
	for {
		t = t.resolve()
		if t.kind != nameT {
			return t
		}
		t = t.sub
	}
}

// Equal reports whether a and b hold the same elements. The relation is
// structural but insensitive to Name and Art wrappers: where those occur
// along the way is a caching strategy, not content. Two tries built by
// inserting the same elements in any order compare equal, because placement
// is a pure function of each element's hash.
func Equal[X Key[X]](a, b *Trie[X]) bool {
	a, b = stripOne(a), stripOne(b)
	if a.kind != b.kind || a.bs != b.bs {
		return false
	}
	switch a.kind {
	case nilT:
		return true
	case leafT:
		return a.elt.Equals(b.elt)
	case binT:
		return Equal(a.left, b.left) && Equal(a.right, b.right)
	default: // rootT
		return a.meta == b.meta && Equal(a.sub, b.sub)
	}
}

// Hash64 returns a structural hash of t that agrees with Equal: equal tries
// hash equal regardless of where caching wrappers occur.
func Hash64[X Key[X]](t *Trie[X]) uint64 {
	t = stripOne(t)
	switch t.kind {
	case nilT:
		return mixWords(1, t.bs.Value, uint64(t.bs.Length))
	case leafT:
		return mixWords(2, t.bs.Value, uint64(t.bs.Length), t.elt.Hash64())
	case binT:
		return mixWords(3, t.bs.Value, uint64(t.bs.Length), Hash64(t.left), Hash64(t.right))
	default: // rootT
		return mixWords(4, uint64(t.meta.MinDepth), Hash64(t.sub))
	}
}

func mixWords(words ...uint64) uint64 {
	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[8*i:], w)
	}
	return murmur3.SeedSum64(structSeed, buf)
}
