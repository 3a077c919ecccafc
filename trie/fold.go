package trie

import (
	"github.com/go-nominal/nomtrie/bitstring"
	"github.com/go-nominal/nomtrie/engine"
)

// Fold reduces t by visiting every leaf exactly once, in an unspecified
// order (here: right subtree before left). Callers must not depend on the
// order; element sets are semantically unordered.
func Fold[X Key[X], R any](t *Trie[X], init R, leafFn func(X, R) R) R {
	return ElimArg(t, init,
		func(_ bitstring.BS, acc R) R { return acc },
		func(_ bitstring.BS, x X, acc R) R { return leafFn(x, acc) },
		func(_ bitstring.BS, l, r *Trie[X], acc R) R {
			return Fold(l, Fold(r, acc, leafFn), leafFn)
		},
		func(_ Meta, sub *Trie[X], acc R) R { return Fold(sub, acc, leafFn) },
		func(_ engine.Name, sub *Trie[X], acc R) R { return Fold(sub, acc, leafFn) })
}

// FoldSeq reduces t strictly left to right: for a branch it folds the left
// subtree, applies binFn to the intermediate result, then folds the right
// subtree. nameFn runs after a named subtree has been folded; installing a
// memoizing hook there is how a consumer keys partial results on the
// subtree's identity. FoldSeq is the combinator for deterministic, ordered
// output.
func FoldSeq[X Key[X], R any](t *Trie[X], init R,
	leafFn func(X, R) R,
	binFn func(R) R,
	nameFn func(engine.Name, R) R,
) R {
	return ElimArg(t, init,
		func(_ bitstring.BS, acc R) R { return acc },
		func(_ bitstring.BS, x X, acc R) R { return leafFn(x, acc) },
		func(_ bitstring.BS, l, r *Trie[X], acc R) R {
			acc = FoldSeq(l, acc, leafFn, binFn, nameFn)
			acc = binFn(acc)
			return FoldSeq(r, acc, leafFn, binFn, nameFn)
		},
		func(_ Meta, sub *Trie[X], acc R) R {
			return FoldSeq(sub, acc, leafFn, binFn, nameFn)
		},
		func(nm engine.Name, sub *Trie[X], acc R) R {
			return nameFn(nm, FoldSeq(sub, acc, leafFn, binFn, nameFn))
		})
}

// FoldSeqNm is FoldSeq with the identity of the innermost enclosing Name
// node threaded down to the leaf visitor (nil when no Name encloses the
// leaf), so leaves can re-tag derived output with the identity of the
// subtree they came from.
func FoldSeqNm[X Key[X], R any](t *Trie[X], nm *engine.Name, init R,
	leafFn func(*engine.Name, X, R) R,
	binFn func(R) R,
	nameFn func(R) R,
) R {
	return ElimArg(t, init,
		func(_ bitstring.BS, acc R) R { return acc },
		func(_ bitstring.BS, x X, acc R) R { return leafFn(nm, x, acc) },
		func(_ bitstring.BS, l, r *Trie[X], acc R) R {
			acc = FoldSeqNm(l, nm, acc, leafFn, binFn, nameFn)
			acc = binFn(acc)
			return FoldSeqNm(r, nm, acc, leafFn, binFn, nameFn)
		},
		func(_ Meta, sub *Trie[X], acc R) R {
			return FoldSeqNm(sub, nm, acc, leafFn, binFn, nameFn)
		},
		func(inner engine.Name, sub *Trie[X], acc R) R {
			return nameFn(FoldSeqNm(sub, &inner, acc, leafFn, binFn, nameFn))
		})
}

// FoldUp rebuilds a value bottom-up, one case at a time, preserving the
// shape of t. It is the combinator behind canonical copies: every case
// handler sees its children already reduced.
func FoldUp[X Key[X], R any](t *Trie[X],
	nilFn func(bitstring.BS) R,
	leafFn func(bitstring.BS, X) R,
	binFn func(bitstring.BS, R, R) R,
	rootFn func(Meta, R) R,
	nameFn func(engine.Name, R) R,
) R {
	return Elim(t,
		nilFn,
		leafFn,
		func(bs bitstring.BS, l, r *Trie[X]) R {
			return binFn(bs,
				FoldUp(l, nilFn, leafFn, binFn, rootFn, nameFn),
				FoldUp(r, nilFn, leafFn, binFn, rootFn, nameFn))
		},
		func(meta Meta, sub *Trie[X]) R {
			return rootFn(meta, FoldUp(sub, nilFn, leafFn, binFn, rootFn, nameFn))
		},
		func(nm engine.Name, sub *Trie[X]) R {
			return nameFn(nm, FoldUp(sub, nilFn, leafFn, binFn, rootFn, nameFn))
		})
}

// Strip returns a canonical, de-cached copy of t: the same structural nodes
// with every Name and Art wrapper removed. Two runs that build a trie under
// different caching strategies strip to equal values.
func Strip[X Key[X]](t *Trie[X]) *Trie[X] {
	return FoldUp(t,
		func(bs bitstring.BS) *Trie[X] { return Nil[X](bs) },
		func(bs bitstring.BS, x X) *Trie[X] { return Leaf(bs, x) },
		func(bs bitstring.BS, l, r *Trie[X]) *Trie[X] { return Bin(bs, l, r) },
		func(meta Meta, sub *Trie[X]) *Trie[X] { return Root(meta, sub) },
		func(_ engine.Name, sub *Trie[X]) *Trie[X] { return sub })
}
