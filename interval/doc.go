// Package interval provides half-open uint64 intervals and sets of them,
// the value type that carries a batch of identifiers through a remapping
// pipeline without enumerating the identifiers one by one.
//
// What:
//
//   - Interval is [Start, End). An interval with End <= Start is empty.
//   - Set is a plain slice of intervals. Members need not be sorted or
//     merged; Normalize produces the sorted, merged equivalent.
//
// Why:
//
//   - A batch of (start, length) ranges may cover billions of values.
//     Working on bounds keeps every operation proportional to the number
//     of intervals, not to the number of values they hold.
//
// Complexity:
//
//   - Interval methods: O(1).
//   - Set.Len, Set.Min, Set.Contains: O(k) for k intervals.
//   - Set.Normalize: O(k log k) time, O(k) memory.
//
// Errors:
//
//   - ErrOverflow: start+length does not fit in 64 bits.
//   - ErrOddPairs: FromPairs received an odd number of values.
package interval
