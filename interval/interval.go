package interval

import (
	"fmt"
	"math"
)

// Interval is the half-open range [Start, End) of uint64 values.
// The zero value is empty.
type Interval struct {
	Start uint64 // inclusive
	End   uint64 // exclusive
}

// New returns [start, end). No validation is done; an interval with
// end <= start is simply empty.
func New(start, end uint64) Interval {
	return Interval{Start: start, End: end}
}

// FromLength returns [start, start+length).
// Returns ErrOverflow if start+length does not fit in 64 bits.
// A zero length yields an empty interval, not an error.
func FromLength(start, length uint64) (Interval, error) {
	if length > math.MaxUint64-start {
		return Interval{}, fmt.Errorf("%w: start=%d length=%d", ErrOverflow, start, length)
	}

	return Interval{Start: start, End: start + length}, nil
}

// Empty reports whether the interval holds no values.
func (iv Interval) Empty() bool {
	return iv.End <= iv.Start
}

// Len returns the number of values in the interval.
func (iv Interval) Len() uint64 {
	if iv.Empty() {
		return 0
	}

	return iv.End - iv.Start
}

// Contains reports whether x lies in [Start, End).
func (iv Interval) Contains(x uint64) bool {
	return iv.Start <= x && x < iv.End
}

// Overlaps reports whether iv and o share at least one value.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start < o.End && o.Start < iv.End && !iv.Empty() && !o.Empty()
}

// Intersect returns the values common to iv and o. If they do not overlap
// the result is empty with unspecified bounds.
func (iv Interval) Intersect(o Interval) Interval {
	if iv.Start < o.Start {
		iv.Start = o.Start
	}
	if iv.End > o.End {
		iv.End = o.End
	}
	if iv.End < iv.Start {
		iv.End = iv.Start
	}

	return iv
}

// Shift moves the interval so that the value from lands on to, keeping
// its length. The caller guarantees from <= Start and that the shifted
// bounds fit in 64 bits.
func (iv Interval) Shift(from, to uint64) Interval {
	return Interval{
		Start: to + (iv.Start - from),
		End:   to + (iv.End - from),
	}
}

// String renders the interval as "[Start, End)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}
