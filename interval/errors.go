package interval

import "errors"

var (
	// ErrOverflow indicates that start+length exceeds math.MaxUint64.
	ErrOverflow = errors.New("interval: start+length overflows uint64")
	// ErrOddPairs indicates that a flat (start, length) list has an odd length.
	ErrOddPairs = errors.New("interval: (start, length) list must have an even number of values")
)
