package engine

import (
	"encoding/binary"
	"fmt"

	"github.com/twmb/murmur3"
)

// nameSeed initializes every name digest chain. It is unrelated to the
// placement seed so that identity bits and placement bits never correlate.
const nameSeed uint64 = 0x6e6f6d696e616c21

// Name is a stable identity for a computation. Names are plain comparable
// values: equal names denote the same computation across edits, which is
// what lets a memoizing engine match a new run against a cached one.
//
// Names are derived, never minted at random. The derivation rules are pure:
// equal inputs always produce equal names, and the two children of Fork are
// distinct from each other and from their parent.
type Name struct {
	digest uint64
}

// Unit returns the distinguished base name.
func Unit() Name {
	return Name{digest: mix(nameSeed, nil)}
}

// OfString derives a name from a string label.
func OfString(s string) Name {
	return Name{digest: mix(nameSeed, []byte(s))}
}

// OfUint64 derives a name from an integer label.
func OfUint64(n uint64) Name {
	return Name{digest: mix(nameSeed, le64(n))}
}

// Pair combines two names into one.
func Pair(a, b Name) Name {
	return Name{digest: mix(a.digest, le64(b.digest))}
}

// Fork deterministically derives two child names from nm. The children are
// distinct from each other and from nm, so sibling computations that each
// fork their own name can never collide on identity.
func Fork(nm Name) (Name, Name) {
	return Name{digest: mix(nm.digest, []byte{0})},
		Name{digest: mix(nm.digest, []byte{1})}
}

func (n Name) String() string {
	return fmt.Sprintf("n:%016x", n.digest)
}

func mix(seed uint64, data []byte) uint64 {
	return murmur3.SeedSum64(seed, data)
}

func le64(n uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	return buf[:]
}
