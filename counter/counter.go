// Package counter provides a persistent multiset over a nominal hash trie
// dict: each key carries how many times it has been counted.
package counter

import (
	"github.com/go-nominal/nomtrie/dict"
	"github.com/go-nominal/nomtrie/trie"
)

// Counter is a persistent multiset of X.
type Counter[X trie.Key[X]] struct {
	d dict.Dict[X, int]
}

// New returns an empty counter.
func New[X trie.Key[X]]() Counter[X] {
	return Counter[X]{d: dict.New[X, int]()}
}

// Incr returns c with the count of key raised by one.
func (c Counter[X]) Incr(key X) Counter[X] {
	return c.IncBy(key, 1)
}

// IncBy returns c with the count of key raised by n.
func (c Counter[X]) IncBy(key X, n int) Counter[X] {
	prev, _ := c.d.Get(key)
	return Counter[X]{d: c.d.Set(key, prev+n)}
}

// Get returns the count of key; zero for a key never counted.
func (c Counter[X]) Get(key X) int {
	n, _ := c.d.Get(key)
	return n
}

// Len counts the distinct keys.
func (c Counter[X]) Len() int {
	return c.d.Len()
}

// Empty reports whether no key was ever counted.
func (c Counter[X]) Empty() bool {
	return c.d.Empty()
}

// Total sums every key's count.
func (c Counter[X]) Total() int {
	return dict.Fold(c.d, 0, func(_ X, n int, acc int) int { return acc + n })
}
