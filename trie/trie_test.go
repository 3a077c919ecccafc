package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/go-nominal/nomtrie/bitstring"
	"github.com/go-nominal/nomtrie/engine"
)

func newSet(elts ...U64) *Trie[U64] {
	t := Empty[U64](Meta{MinDepth: 1})
	for _, e := range elts {
		t = Extend(engine.Unit(), t, e)
	}
	return t
}

func mem(t *Trie[U64], e U64) bool {
	_, ok := Find(t, e, e.Hash64())
	return ok
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(Nil[U64](bitstring.BS{})))
	assert.True(t, IsEmpty(newSet()))

	assert.False(t, IsEmpty(Leaf(bitstring.BS{}, U64(0))))
	assert.False(t, IsEmpty(Singleton(Meta{MinDepth: 1}, engine.Unit(), U64(7))))
}

func TestEmptyLaws(t *testing.T) {
	t.Parallel()

	e := newSet()
	for _, x := range []U64{0, 1, 7, 8, 1 << 40} {
		assert.False(t, mem(e, x))
	}
	assert.False(t, IsEmpty(Extend(engine.Unit(), e, U64(3))))
}

func TestMembership(t *testing.T) {
	t.Parallel()

	s := newSet(7, 1, 8)

	assert.True(t, mem(s, 1))
	assert.True(t, mem(s, 7))
	assert.True(t, mem(s, 8))
	assert.False(t, mem(s, 0))
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	s := newSet(7, 1, 8)
	once := Extend(engine.Unit(), s, U64(7))
	twice := Extend(engine.Unit(), once, U64(7))

	assert.True(t, Equal(once, twice))
	assert.Equal(t, Hash64(once), Hash64(twice))
}

func TestOrderIndependence(t *testing.T) {
	t.Parallel()

	for _, order := range [][]U64{
		{8, 7, 1},
		{1, 8, 7},
		{7, 8, 1},
	} {
		assert.True(t, Equal(newSet(7, 1, 8), newSet(order...)),
			"insertion order %v must not matter", order)
		assert.Equal(t, Hash64(newSet(7, 1, 8)), Hash64(newSet(order...)))
	}
}

func TestUnequal(t *testing.T) {
	t.Parallel()

	assert.False(t, Equal(newSet(), newSet(7)))
	assert.False(t, Equal(newSet(7), newSet(8)))
	assert.False(t, Equal(newSet(7, 1), newSet(7, 1, 8)))
}

func TestEqualIgnoresCachingWrappers(t *testing.T) {
	t.Parallel()

	s := newSet(7, 1, 8)
	wrapped := Name(engine.OfString("extra"), Art(engine.Put(s)))

	assert.True(t, Equal(s, wrapped))
	assert.Equal(t, Hash64(s), Hash64(wrapped))
}

func minLeafDepth(t *Trie[U64]) int {
	return FoldUp(t,
		func(bitstring.BS) int { return bitstring.MaxLen + 1 },
		func(bs bitstring.BS, _ U64) int { return bs.Len() },
		func(_ bitstring.BS, l, r int) int {
			if l < r {
				return l
			}
			return r
		},
		func(_ Meta, d int) int { return d },
		func(_ engine.Name, d int) int { return d })
}

func TestMinDepthInvariant(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{0, 1, 3, 6} {
		s := Empty[U64](Meta{MinDepth: depth})
		for x := U64(0); x < 20; x++ {
			s = Extend(engine.Unit(), s, x)
			require.GreaterOrEqual(t, minLeafDepth(s), depth,
				"min depth %d violated after inserting %d", depth, x)
		}
	}
}

func TestMinDepthClamped(t *testing.T) {
	// Not parallel: swaps the package logger.
	core, logged := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	s := Extend(engine.Unit(), Empty[U64](Meta{MinDepth: bitstring.MaxLen + 10}), U64(7))

	require.Equal(t, 1, logged.Len(), "clamping must be diagnosed")
	assert.True(t, mem(s, 7))
	assert.LessOrEqual(t, minLeafDepth(s), bitstring.MaxLen)
}

func TestExtendRejectsMalformedEntry(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name string
		Trie *Trie[U64]
	}{
		{"bare nil", Nil[U64](bitstring.BS{})},
		{"bare leaf", Leaf(bitstring.BS{}, U64(7))},
		{"unwrapped root", Root(Meta{MinDepth: 1}, Nil[U64](bitstring.BS{}))},
		{"name without articulation", Name(engine.Unit(), Nil[U64](bitstring.BS{}))},
		{"wrappers without a root", Name(engine.Unit(), Art(engine.Put(Nil[U64](bitstring.BS{}))))},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			require.Panics(t, func() {
				Extend(engine.Unit(), tcase.Trie, U64(1))
			})
		})
	}
}

func TestSplitAtomic(t *testing.T) {
	t.Parallel()

	elt := U64(7)
	split := SplitAtomic(Leaf(bitstring.BS{}, elt))

	require.Equal(t, binT, split.kind)
	if elt.Hash64()&1 == 1 {
		assert.Equal(t, nilT, split.left.kind)
		assert.Equal(t, leafT, split.right.kind)
		assert.True(t, split.right.elt.Equals(elt))
	} else {
		assert.Equal(t, leafT, split.left.kind)
		assert.Equal(t, nilT, split.right.kind)
		assert.True(t, split.left.elt.Equals(elt))
	}
}

func TestSplitAtomicPassesStructuralNodes(t *testing.T) {
	t.Parallel()

	empty := Nil[U64](bitstring.BS{})
	assert.Same(t, empty, SplitAtomic(empty))

	branch := Bin(bitstring.BS{}, Nil[U64](bitstring.Prepend(0, bitstring.BS{})),
		Nil[U64](bitstring.Prepend(1, bitstring.BS{})))
	assert.Same(t, branch, SplitAtomic(branch))
}

func TestSplitAtomicRejectsWrappers(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		SplitAtomic(Name(engine.Unit(), Nil[U64](bitstring.BS{})))
	})
	require.Panics(t, func() {
		SplitAtomic(Root(Meta{MinDepth: 1}, Nil[U64](bitstring.BS{})))
	})
}

// degenerate is an element whose placement hash is constant, so any two
// distinct values collide on every placement bit.
type degenerate int

func (degenerate) Hash64() uint64             { return 0 }
func (d degenerate) Equals(o degenerate) bool { return d == o }

func TestHashExhaustion(t *testing.T) {
	t.Parallel()

	s := Extend(engine.Unit(), Empty[degenerate](Meta{MinDepth: 1}), degenerate(1))

	require.Panics(t, func() {
		Extend(engine.Unit(), s, degenerate(2))
	})
}

func TestPersistence(t *testing.T) {
	t.Parallel()

	s1 := newSet(7)
	s2 := Extend(engine.Unit(), s1, U64(1))

	// The pre-edit value stays valid and unchanged.
	assert.True(t, mem(s1, 7))
	assert.False(t, mem(s1, 1))
	assert.True(t, mem(s2, 7))
	assert.True(t, mem(s2, 1))
}

func TestStringRender(t *testing.T) {
	t.Parallel()

	assert.Contains(t, newSet(7).String(), "Root")
	assert.Contains(t, newSet(7).String(), "Leaf")
}
