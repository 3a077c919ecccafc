package trie

import (
	"github.com/go-nominal/nomtrie/bitstring"
	"github.com/go-nominal/nomtrie/engine"
)

// Elim dispatches on the structure of t with one handler per case. Art
// references are forced before dispatch, so handlers never see them. The
// five handlers cover every remaining case; none may be nil.
func Elim[X Key[X], R any](t *Trie[X],
	nilFn func(bitstring.BS) R,
	leafFn func(bitstring.BS, X) R,
	binFn func(bitstring.BS, *Trie[X], *Trie[X]) R,
	rootFn func(Meta, *Trie[X]) R,
	nameFn func(engine.Name, *Trie[X]) R,
) R {
	t = t.resolve()
	switch t.kind {
	case nilT:
		return nilFn(t.bs)
	case leafT:
		return leafFn(t.bs, t.elt)
	case binT:
		return binFn(t.bs, t.left, t.right)
	case rootT:
		return rootFn(t.meta, t.sub)
	default:
		return nameFn(t.nm, t.sub)
	}
}

// ElimArg is Elim with one extra caller-supplied value threaded into every
// handler, which keeps recursive consumers free of closures over mutable
// accumulators.
func ElimArg[X Key[X], A, R any](t *Trie[X], arg A,
	nilFn func(bitstring.BS, A) R,
	leafFn func(bitstring.BS, X, A) R,
	binFn func(bitstring.BS, *Trie[X], *Trie[X], A) R,
	rootFn func(Meta, *Trie[X], A) R,
	nameFn func(engine.Name, *Trie[X], A) R,
) R {
	t = t.resolve()
	switch t.kind {
	case nilT:
		return nilFn(t.bs, arg)
	case leafT:
		return leafFn(t.bs, t.elt, arg)
	case binT:
		return binFn(t.bs, t.left, t.right, arg)
	case rootT:
		return rootFn(t.meta, t.sub, arg)
	default:
		return nameFn(t.nm, t.sub, arg)
	}
}

// Find descends t along successive low-order bits of h (even goes left, odd
// goes right, shifting right each step) and returns the stored element if a
// leaf equal to elt is reached. Not finding an element is a normal result,
// not an error.
func Find[X Key[X]](t *Trie[X], elt X, h uint64) (X, bool) {
	type res struct {
		x  X
		ok bool
	}
	r := Elim(t,
		func(bitstring.BS) res { return res{} },
		func(_ bitstring.BS, x X) res {
			if elt.Equals(x) {
				return res{x: x, ok: true}
			}
			return res{}
		},
		func(_ bitstring.BS, l, r *Trie[X]) res {
			next := l
			if h&1 == 1 {
				next = r
			}
			x, ok := Find(next, elt, h>>1)
			return res{x: x, ok: ok}
		},
		func(_ Meta, sub *Trie[X]) res {
			x, ok := Find(sub, elt, h)
			return res{x: x, ok: ok}
		},
		func(_ engine.Name, sub *Trie[X]) res {
			x, ok := Find(sub, elt, h)
			return res{x: x, ok: ok}
		})
	return r.x, r.ok
}

// IsEmpty reports whether every reachable node of t is Nil.
func IsEmpty[X Key[X]](t *Trie[X]) bool {
	return Elim(t,
		func(bitstring.BS) bool { return true },
		func(bitstring.BS, X) bool { return false },
		func(bitstring.BS, *Trie[X], *Trie[X]) bool { return false },
		func(_ Meta, sub *Trie[X]) bool { return IsEmpty(sub) },
		func(_ engine.Name, sub *Trie[X]) bool { return IsEmpty(sub) })
}
