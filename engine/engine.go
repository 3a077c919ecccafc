// Package engine provides the identity and caching services an
// incrementally-maintained structure is built against: stable names with
// deterministic forking, articulation cells that share possibly-deferred
// values, and an execution context that either memoizes named cells
// (Nominal) or recomputes everything from scratch (Naive). The two modes
// exist so a memoized run can be checked against a from-scratch baseline in
// the same process.
package engine

import (
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

// Mode selects how an Engine treats named articulations.
type Mode int

const (
	// Naive never reuses a cell: the from-scratch baseline.
	Naive Mode = iota
	// Nominal matches cells by name and updates matched slots in place,
	// which is what makes incremental reuse observable.
	Nominal
)

const defaultCacheSize = 4096

// Config parameterizes an Engine. The zero value is a usable naive engine.
type Config struct {
	Mode Mode
	// CacheSize bounds the memo table; defaultCacheSize if zero or negative.
	CacheSize int
	Logger    *zap.Logger
}

// Engine is an explicit execution context. It is deliberately not a process
// global: two engines in different modes can coexist in one process without
// contaminating each other's memo tables.
//
// An Engine is single-threaded, matching the synchronous execution model of
// the structures built on it.
type Engine struct {
	mode      Mode
	table     *lru.Cache
	log       *zap.Logger
	prefix    Name
	hasPrefix bool

	hits   uint64
	misses uint64
}

// New creates an engine from cfg.
func New(cfg Config) *Engine {
	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	table, _ := lru.New(size) // never errors for a positive size
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		mode:  cfg.Mode,
		table: table,
		log:   log,
	}
}

// Mode returns the engine's execution mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Stats returns how many named registrations matched an existing cell and
// how many created a fresh one. A naive engine only ever misses.
func (e *Engine) Stats() (hits, misses uint64) {
	return e.hits, e.misses
}

// scoped applies the current namespace prefix to nm.
func (e *Engine) scoped(nm Name) Name {
	if e.hasPrefix {
		return Pair(e.prefix, nm)
	}
	return nm
}

// Ns runs f with every name registered inside prefixed by nm, keeping
// identities minted in unrelated scopes from colliding.
func Ns[T any](e *Engine, nm Name, f func() T) T {
	oldPrefix, oldHas := e.prefix, e.hasPrefix
	e.prefix, e.hasPrefix = e.scoped(nm), true
	defer func() {
		e.prefix, e.hasPrefix = oldPrefix, oldHas
	}()
	return f()
}
