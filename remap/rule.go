package remap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/almanac/interval"
)

// Rule maps [SourceStart, SourceStart+Length) onto
// [DestStart, DestStart+Length), preserving offsets.
type Rule struct {
	DestStart   uint64
	SourceStart uint64
	Length      uint64
}

// NewRule builds a rule in input-line order (dest, source, length).
// Returns ErrEmptyRule for length 0 and ErrOverflow when either range
// would end past math.MaxUint64.
func NewRule(dest, source, length uint64) (Rule, error) {
	r := Rule{DestStart: dest, SourceStart: source, Length: length}
	if err := r.validate(); err != nil {
		return Rule{}, err
	}

	return r, nil
}

// validate enforces the rule invariants; NewStage re-runs it for rules
// built as literals.
func (r Rule) validate() error {
	if r.Length == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyRule, r)
	}
	if r.Length > math.MaxUint64-r.SourceStart || r.Length > math.MaxUint64-r.DestStart {
		return fmt.Errorf("%w: %s", ErrOverflow, r)
	}

	return nil
}

// Source returns the source interval.
func (r Rule) Source() interval.Interval {
	return interval.Interval{Start: r.SourceStart, End: r.SourceStart + r.Length}
}

// Dest returns the destination interval.
func (r Rule) Dest() interval.Interval {
	return interval.Interval{Start: r.DestStart, End: r.DestStart + r.Length}
}

// Apply maps a source value. v must lie in Source().
func (r Rule) Apply(v uint64) uint64 {
	return r.DestStart + (v - r.SourceStart)
}

// Invert maps a destination value back. v must lie in Dest().
func (r Rule) Invert(v uint64) uint64 {
	return r.SourceStart + (v - r.DestStart)
}

func (r Rule) sourceEnd() uint64 { return r.SourceStart + r.Length }

func (r Rule) destEnd() uint64 { return r.DestStart + r.Length }

// String renders the rule in input-line order: "dest source length".
func (r Rule) String() string {
	return fmt.Sprintf("%d %d %d", r.DestStart, r.SourceStart, r.Length)
}
