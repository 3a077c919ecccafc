// Package trie implements a persistent, probabilistically balanced binary
// hash trie whose construction is annotated with stable identities, so an
// incremental-computation engine can memoize sub-results and reuse them
// after small edits.
//
// Node cases:
//
//   - Nil:  empty subtree at a path
//   - Leaf: one element at a path
//   - Bin:  branch owning a 0-subtree and a 1-subtree
//   - Root: authoritative top of a trie, carrying its Meta
//   - Name: stable identity attached to the wrapped subtree
//   - Art:  shared, possibly-deferred reference into the engine's cache
//
// Placement consumes one low-order bit of the element's 64-bit hash per
// level (even goes left, odd goes right, shifting right each step). A leaf
// holding a colliding element is split using that element's own hash, and a
// minimum branch depth is enforced before any leaf may appear, which bounds
// worst-case imbalance independent of hash quality.
//
// Example shape after inserting two elements with MinDepth 1:
//
//	Name ─ Art ─ Root ─ Name ─ Art ─ Bin(ε)
//	                                  ├── Leaf(0/1, a)
//	                                  └── Leaf(1/1, b)
//
// Every operation that inspects a node first forces Art references and,
// except for the name-aware fold hooks, passes through Name wrappers, so
// callers never handle the caching cases themselves.
//
// Values are immutable: Extend returns a new trie sharing unmodified
// subtrees with its input, and the input stays valid.
package trie
