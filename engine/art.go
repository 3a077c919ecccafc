package engine

import "go.uber.org/zap"

// cell is the shared backing store of an Art. A cell is written by the
// engine (registration, nominal reuse) and read by Force; once forced it is
// immutable until the engine swaps its contents under the same name.
type cell[T any] struct {
	nm    Name
	named bool
	val   T
	valid bool
	comp  func() T
}

// Art is a shared handle to a possibly not-yet-computed value. Copies of an
// Art alias one cell, so a trie holding an Art and the engine's memo table
// observe the same contents.
type Art[T any] struct {
	c *cell[T]
}

// Put eagerly wraps an already-computed value. No engine is involved: the
// result is anonymous and is never matched against other articulations.
func Put[T any](v T) Art[T] {
	return Art[T]{c: &cell[T]{val: v, valid: true}}
}

// Cell registers a named cell holding v with the engine. Under the Nominal
// mode, a cell already registered under an equal name is updated in place
// and returned, so every holder of the previous Art observes the new value;
// under the Naive mode every call yields a fresh, unregistered cell.
func Cell[T any](e *Engine, nm Name, v T) Art[T] {
	c := register(e, nm, func(c *cell[T]) {
		c.val = v
		c.valid = true
		c.comp = nil
	})
	return Art[T]{c: c}
}

// Thunk registers a named, demand-driven cell. The computation runs on the
// first Force and its result is retained; nominal re-registration under the
// same name swaps the computation and invalidates the retained result.
func Thunk[T any](e *Engine, nm Name, f func() T) Art[T] {
	c := register(e, nm, func(c *cell[T]) {
		var zero T
		c.val = zero
		c.valid = false
		c.comp = f
	})
	return Art[T]{c: c}
}

// register funnels Cell and Thunk through the engine's memo table. It is a
// free function because Go methods cannot carry type parameters.
func register[T any](e *Engine, nm Name, fill func(*cell[T])) *cell[T] {
	nm = e.scoped(nm)
	if e.mode == Nominal {
		if prev, ok := e.table.Get(nm); ok {
			if c, ok := prev.(*cell[T]); ok {
				fill(c)
				e.hits++
				debugName(e.log, "nominal cell reused", nm)
				return c
			}
		}
	}
	c := &cell[T]{nm: nm, named: true}
	fill(c)
	if e.mode == Nominal {
		e.table.Add(nm, c)
	}
	e.misses++
	return c
}

// Force resolves a to its value, running the suspended computation if one
// is pending. Forcing an eager or already-forced Art just reads the cell.
func Force[T any](a Art[T]) T {
	if a.c == nil {
		panic("engine: force of a zero Art")
	}
	if !a.c.valid {
		a.c.val = a.c.comp()
		a.c.valid = true
	}
	return a.c.val
}

func debugName(l *zap.Logger, msg string, nm Name) {
	if ce := l.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(zap.Stringer("name", nm))
	}
}
