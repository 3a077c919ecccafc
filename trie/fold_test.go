package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-nominal/nomtrie/bitstring"
	"github.com/go-nominal/nomtrie/engine"
)

func TestFoldVisitsEveryLeafOnce(t *testing.T) {
	t.Parallel()

	s := newSet(1, 2, 3, 4, 5, 5, 5)

	sum := Fold(s, U64(0), func(x U64, acc U64) U64 { return acc + x })
	count := Fold(s, 0, func(_ U64, n int) int { return n + 1 })

	assert.Equal(t, U64(15), sum)
	assert.Equal(t, 5, count, "re-inserted elements must not add leaves")
}

func TestFoldSeqDeterministicOrder(t *testing.T) {
	t.Parallel()

	collect := func(s *Trie[U64]) []U64 {
		return FoldSeq(s, nil,
			func(x U64, acc []U64) []U64 { return append(acc, x) },
			func(acc []U64) []U64 { return acc },
			func(_ engine.Name, acc []U64) []U64 { return acc })
	}

	a := collect(newSet(7, 1, 8))
	b := collect(newSet(8, 7, 1))

	require.Len(t, a, 3)
	assert.Equal(t, a, b, "in-order traversal must not depend on insertion order")
}

func TestFoldSeqBinHook(t *testing.T) {
	t.Parallel()

	// One binFn call per branch on the in-order walk.
	branches := FoldSeq(newSet(7, 1, 8), 0,
		func(_ U64, acc int) int { return acc },
		func(acc int) int { return acc + 1 },
		func(_ engine.Name, acc int) int { return acc })

	assert.Greater(t, branches, 0)
}

func TestFoldSeqNmThreadsEnclosingName(t *testing.T) {
	t.Parallel()

	s := newSet(7, 1, 8)

	named := 0
	leaves := 0
	FoldSeqNm(s, nil, struct{}{},
		func(nm *engine.Name, _ U64, acc struct{}) struct{} {
			leaves++
			if nm != nil {
				named++
			}
			return acc
		},
		func(acc struct{}) struct{} { return acc },
		func(acc struct{}) struct{} { return acc })

	require.Equal(t, 3, leaves)
	assert.Equal(t, leaves, named,
		"every leaf of an extended trie sits under a Name wrapper")
}

func TestFoldSeqNmNilOutsideNames(t *testing.T) {
	t.Parallel()

	bare := Leaf(bitstring.BS{}, U64(7))

	FoldSeqNm(bare, nil, struct{}{},
		func(nm *engine.Name, _ U64, acc struct{}) struct{} {
			assert.Nil(t, nm)
			return acc
		},
		func(acc struct{}) struct{} { return acc },
		func(acc struct{}) struct{} { return acc })
}

// wrapperFree reports whether t contains only structural nodes.
func wrapperFree(t *Trie[U64]) bool {
	switch t.kind {
	case nilT, leafT:
		return true
	case binT:
		return wrapperFree(t.left) && wrapperFree(t.right)
	case rootT:
		return wrapperFree(t.sub)
	default:
		return false
	}
}

func TestStrip(t *testing.T) {
	t.Parallel()

	s := newSet(7, 1, 8)
	bare := Strip(s)

	assert.True(t, wrapperFree(bare), "Strip must remove every Name and Art")
	assert.True(t, Equal(s, bare), "caching wrappers never change content")
	assert.Equal(t, Hash64(s), Hash64(bare))
}

func TestStripMatchesBareConstruction(t *testing.T) {
	t.Parallel()

	// A singleton with MinDepth 1 has exactly one forced branch above its
	// leaf; the stripped trie must equal the same shape built by hand.
	elt := U64(7)
	bs0 := bitstring.Prepend(0, bitstring.BS{})
	bs1 := bitstring.Prepend(1, bitstring.BS{})

	var branch *Trie[U64]
	if elt.Hash64()&1 == 0 {
		branch = Bin(bitstring.BS{}, Leaf(bs0, elt), Nil[U64](bs1))
	} else {
		branch = Bin(bitstring.BS{}, Nil[U64](bs0), Leaf(bs1, elt))
	}
	byHand := Root(Meta{MinDepth: 1}, branch)

	assert.True(t, Equal(byHand, Strip(newSet(7))))
}

func TestFoldUpShapePreserving(t *testing.T) {
	t.Parallel()

	s := newSet(1, 2, 3)

	leaves := FoldUp(s,
		func(bitstring.BS) int { return 0 },
		func(bitstring.BS, U64) int { return 1 },
		func(_ bitstring.BS, l, r int) int { return l + r },
		func(_ Meta, n int) int { return n },
		func(_ engine.Name, n int) int { return n })

	assert.Equal(t, 3, leaves)
}
