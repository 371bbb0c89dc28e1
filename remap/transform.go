package remap

import (
	"sort"

	"github.com/katalvlaran/almanac/interval"
)

// Transform pushes every value of in through the stage and returns the
// resulting set.
//
// Algorithm Outline:
//  1. For each non-empty input interval [a, b), binary search the first
//     rule whose source range ends after a.
//  2. Walk rules in source order while they start before b:
//     - emit the gap [cursor, rule.start) unchanged, if non-empty;
//     - emit [cursor, min(b, rule.end)) shifted to the destination side.
//  3. Emit the tail [cursor, b) unchanged, if non-empty.
//
// Empty input members are dropped, adjacent rules never produce an empty
// gap, and the output is neither sorted nor merged. The total number of
// values is preserved.
//
// Complexity: O(k log r + m) for k input intervals producing m outputs.
func (s *Stage) Transform(in interval.Set) interval.Set {
	out := make(interval.Set, 0, len(in))
	for _, iv := range in {
		out = s.transformInterval(out, iv)
	}

	return out
}

// transformInterval appends the image of iv to out.
func (s *Stage) transformInterval(out interval.Set, iv interval.Interval) interval.Set {
	if iv.Empty() {
		return out
	}
	cursor := iv.Start
	i := sort.Search(len(s.bySource), func(i int) bool { return s.bySource[i].sourceEnd() > cursor })
	for ; i < len(s.bySource) && cursor < iv.End; i++ {
		r := s.bySource[i]
		if r.SourceStart >= iv.End {
			break
		}
		if r.SourceStart > cursor {
			out = append(out, interval.New(cursor, r.SourceStart))
			cursor = r.SourceStart
		}
		end := min(iv.End, r.sourceEnd())
		out = append(out, interval.New(cursor, end).Shift(r.SourceStart, r.DestStart))
		cursor = end
	}
	if cursor < iv.End {
		out = append(out, interval.New(cursor, iv.End))
	}

	return out
}
