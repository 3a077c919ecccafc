// Package bitstring provides the fixed-capacity bit vectors used as trie
// addresses: the sequence of branch choices leading from a trie's root down
// to a node. Bits are stored least-significant-first, so the bit chosen at
// depth d occupies position d of Value.
package bitstring

import (
	"strconv"

	"github.com/hideo55/go-popcount"
)

// MaxLen is the maximum number of bits a path can hold. It equals the bit
// width of the 64-bit placement hash: once a path is this long there are no
// hash bits left to distinguish elements.
const MaxLen = 64

// BS is a bit string of bounded length. The zero value is the empty path.
type BS struct {
	Length int
	Value  uint64
}

// Prepend extends bs with one more branch choice. bit must be 0 or 1.
func Prepend(bit uint64, bs BS) BS {
	return BS{
		Length: bs.Length + 1,
		Value:  bs.Value | bit<<uint(bs.Length),
	}
}

// Len returns the number of bits in bs.
func (bs BS) Len() int {
	return bs.Length
}

// SuffixOf reports whether every 1-bit of bs is also set in h, i.e. whether
// a path whose 1-branches are bs.Value is consistent with hash h.
func (bs BS) SuffixOf(h uint64) bool {
	return bs.Value&h == bs.Value
}

// Ones returns the number of 1-branches taken along the path.
func (bs BS) Ones() uint64 {
	return popcount.Count(bs.Value)
}

// String renders the path bits in branch order, root first.
func (bs BS) String() string {
	if bs.Length == 0 {
		return "ε"
	}
	buf := make([]byte, bs.Length)
	for i := 0; i < bs.Length; i++ {
		buf[i] = '0' + byte(bs.Value>>uint(i)&1)
	}
	return string(buf) + "/" + strconv.Itoa(bs.Length)
}
