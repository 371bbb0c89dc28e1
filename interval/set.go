package interval

import (
	"math"
	"sort"
	"strings"
)

// Set is a collection of intervals. Members may be unsorted, may touch
// and may overlap; only Normalize gives ordering guarantees.
type Set []Interval

// NewSet builds a Set from ivs, dropping empty intervals.
func NewSet(ivs ...Interval) Set {
	s := make(Set, 0, len(ivs))
	for _, iv := range ivs {
		if !iv.Empty() {
			s = append(s, iv)
		}
	}

	return s
}

// FromPairs builds a Set from a flat list start0, len0, start1, len1, ...
// Zero-length pairs contribute nothing.
// Returns ErrOddPairs for an odd count and ErrOverflow when a pair does
// not fit in 64 bits.
// Complexity: O(len(pairs)).
func FromPairs(pairs ...uint64) (Set, error) {
	if len(pairs)%2 != 0 {
		return nil, ErrOddPairs
	}
	s := make(Set, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		iv, err := FromLength(pairs[i], pairs[i+1])
		if err != nil {
			return nil, err
		}
		if !iv.Empty() {
			s = append(s, iv)
		}
	}

	return s, nil
}

// Len returns the total number of values over all members, counting
// overlapping values once per member. The sum saturates at math.MaxUint64.
func (s Set) Len() uint64 {
	var total uint64
	for _, iv := range s {
		n := iv.Len()
		if n > math.MaxUint64-total {
			return math.MaxUint64
		}
		total += n
	}

	return total
}

// Min returns the smallest value held by the set.
// ok is false when the set holds no values.
func (s Set) Min() (lowest uint64, ok bool) {
	for _, iv := range s {
		if iv.Empty() {
			continue
		}
		if !ok || iv.Start < lowest {
			lowest, ok = iv.Start, true
		}
	}

	return lowest, ok
}

// Contains reports whether any member holds x.
func (s Set) Contains(x uint64) bool {
	for _, iv := range s {
		if iv.Contains(x) {
			return true
		}
	}

	return false
}

// Normalize returns a new set holding the same values, sorted by Start,
// with empty members dropped and overlapping or touching members merged.
// The receiver is not modified.
// Complexity: O(k log k) time, O(k) memory.
func (s Set) Normalize() Set {
	out := NewSet(s...)
	if len(out) < 2 {
		return out
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })

	w := 0
	for _, iv := range out[1:] {
		if iv.Start <= out[w].End {
			if iv.End > out[w].End {
				out[w].End = iv.End
			}
			continue
		}
		w++
		out[w] = iv
	}

	return out[:w+1]
}

// Partition splits the set into at most n contiguous chunks of members
// with sizes differing by at most one. Chunks share the receiver's
// backing array. Returns nil for an empty set; n < 1 is treated as 1.
func (s Set) Partition(n int) []Set {
	if len(s) == 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > len(s) {
		n = len(s)
	}

	chunks := make([]Set, 0, n)
	size, rest := len(s)/n, len(s)%n
	lo := 0
	for i := 0; i < n; i++ {
		hi := lo + size
		if i < rest {
			hi++
		}
		chunks = append(chunks, s[lo:hi:hi])
		lo = hi
	}

	return chunks
}

// String renders members in order, e.g. "{[1, 3) [7, 9)}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, iv := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(iv.String())
	}
	b.WriteByte('}')

	return b.String()
}
