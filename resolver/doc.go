// Package resolver answers the two lowest-location questions over an
// immutable remap.Pipeline and runs the work on a bounded set of
// goroutines.
//
// 🚀 Modes
//
//	LowestScalar  - every seed is one identifier; minimum of Forward(seed).
//	LowestRange   - seeds are (start, length) ranges; the whole set is
//	                pushed through every stage as intervals and the lowest
//	                surviving start is returned.
//	ReverseScan   - cross-check for mode (b): walks final values upward,
//	                maps each back and stops at the first one whose seed is
//	                in the set. Needs invertible stages and a limit.
//
// ⚙️ Concurrency
//
// Inputs are split into at most WithWorkers(n) chunks (default
// runtime.GOMAXPROCS(0)) and evaluated under golang.org/x/sync/errgroup;
// per-chunk minima are reduced at the end. The pipeline is read-only so
// no locking is involved. ctx is checked between chunks and stages, and
// every 64Ki values in the scans.
//
// Complexity:
//
//	LowestScalar: O(n·s·log r)
//	LowestRange:  O(s·(k + r)·log r) with k the interval count, which grows
//	              by at most r per stage.
//	ReverseScan:  O(limit·s·log r) worst case.
//
// Errors: ErrNilPipeline, ErrNoSeeds, ErrNotInvertible, ErrNotFound, or
// ctx.Err() when cancelled.
package resolver
