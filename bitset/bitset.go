// Package bitset implements a fixed-width dynamic bitset backed by a slice
// of 64-bit words. It backs the per-vertex neighborhood masks consumed by
// the clique algorithms in package algo, where word-parallel intersection
// and population count are what keeps Bron-Kerbosch's exponential worst
// case cheap in practice.
package bitset

import "math/bits"

const wordBits = 64

// Set is a bitset of fixed width V, stored as ⌈V/64⌉ 64-bit words. The zero
// value is not usable; construct one with New.
//
// Bits at index >= V are never set by any Set method and are always zero.
// Callers that hand-construct or mutate the underlying word slice directly
// must preserve that invariant; every read-only method assumes it.
type Set struct {
	v     int
	words []uint64
}

// New returns an empty Set of width v.
func New(v int) *Set {
	if v < 0 {
		v = 0
	}
	return &Set{
		v:     v,
		words: make([]uint64, wordCount(v)),
	}
}

func wordCount(v int) int {
	return (v + wordBits - 1) / wordBits
}

// Len returns the bitset's width V (not its population count).
func (s *Set) Len() int { return s.v }

// Set sets bit i. It panics if i is out of range.
func (s *Set) Set(i int) {
	s.checkRange(i)
	s.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Clear clears bit i. It panics if i is out of range.
func (s *Set) Clear(i int) {
	s.checkRange(i)
	s.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Test reports whether bit i is set. It panics if i is out of range.
func (s *Set) Test(i int) bool {
	s.checkRange(i)
	return s.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

func (s *Set) checkRange(i int) {
	if i < 0 || i >= s.v {
		panic("bitset: index out of range")
	}
}

// Count returns the population count (number of set bits).
func (s *Set) Count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether no bits are set.
func (s *Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	out := New(s.v)
	copy(out.words, s.words)
	return out
}

// Union returns the bitwise OR of a and b. a and b must share the same
// width.
func Union(a, b *Set) *Set {
	out := New(a.v)
	for i := range out.words {
		out.words[i] = a.words[i] | b.words[i]
	}
	return out
}

// Intersect returns the bitwise AND of a and b.
func Intersect(a, b *Set) *Set {
	out := New(a.v)
	for i := range out.words {
		out.words[i] = a.words[i] & b.words[i]
	}
	return out
}

// Difference returns the bits set in a but not in b (a &^ b).
func Difference(a, b *Set) *Set {
	out := New(a.v)
	for i := range out.words {
		out.words[i] = a.words[i] &^ b.words[i]
	}
	return out
}

// IntersectCount returns |a ∩ b| without materializing the intersection,
// used by the Tomita pivot choice (§4.4) which only needs the cardinality.
func IntersectCount(a, b *Set) int {
	n := 0
	for i := range a.words {
		n += bits.OnesCount64(a.words[i] & b.words[i])
	}
	return n
}

// Bits appends the ascending indices of every set bit to dst and returns
// the result. Ascending order is relied on by the Bron-Kerbosch recursion
// (§4.4/§4.5), which must iterate candidates by increasing vertex index to
// produce deterministic, testable tie-breaks.
func (s *Set) Bits(dst []int) []int {
	for wi, w := range s.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			idx := wi*wordBits + bit
			if idx >= s.v {
				break
			}
			dst = append(dst, idx)
			w &^= 1 << uint(bit)
		}
	}
	return dst
}
