package domain

import (
	"math/bits"
	"strconv"
	"strings"
)

// ValueSet is a set of cell values (small positive integers) backed by a
// bitmask. The zero value is the empty set. Operations return a new set;
// the receiver is never mutated.
type ValueSet uint64

const maxValue = 63

// NewValueSet builds a set from the given values.
func NewValueSet(values ...int) ValueSet {
	var s ValueSet
	for _, v := range values {
		s = s.Add(v)
	}
	return s
}

// FullDomain returns the set {1..n}.
func FullDomain(n int) ValueSet {
	var s ValueSet
	for v := 1; v <= n; v++ {
		s = s.Add(v)
	}
	return s
}

// Has reports whether v is in the set.
func (s ValueSet) Has(v int) bool {
	if v < 1 || v > maxValue {
		return false
	}
	return s&(1<<uint(v)) != 0
}

// Add returns the set with v included.
func (s ValueSet) Add(v int) ValueSet {
	if v < 1 || v > maxValue {
		return s
	}
	return s | 1<<uint(v)
}

// Remove returns the set with v excluded.
func (s ValueSet) Remove(v int) ValueSet {
	if v < 1 || v > maxValue {
		return s
	}
	return s &^ (1 << uint(v))
}

// Toggle flips v's membership, the single-element symmetric difference.
func (s ValueSet) Toggle(v int) ValueSet {
	if v < 1 || v > maxValue {
		return s
	}
	return s ^ 1<<uint(v)
}

// Intersect returns the values present in both sets.
func (s ValueSet) Intersect(o ValueSet) ValueSet { return s & o }

// Len returns the number of values in the set.
func (s ValueSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Values returns the members in ascending order.
func (s ValueSet) Values() []int {
	out := make([]int, 0, s.Len())
	for m := uint64(s); m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(m))
	}
	return out
}

func (s ValueSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s.Values() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('}')
	return b.String()
}
