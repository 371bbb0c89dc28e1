// Package almanac maps identifiers through a fixed chain of range tables
// and finds the lowest identifier that comes out the other end.
//
// 🚀 What is almanac?
//
//	A small, immutable remapping pipeline with two query modes:
//		• Scalar mode: every seed is one identifier; report min Forward(seed).
//		• Range mode: seeds are (start, length) ranges, possibly billions of
//		  values wide; whole intervals are pushed through every stage.
//
// ✨ Why interval propagation?
//
//   - Work grows with the number of rules and intervals, never with the
//     number of identifiers covered.
//   - Stages are sorted once and queried by binary search.
//   - The pipeline is read-only, so queries fan out over goroutines freely.
//
// Packages:
//
//	interval/        half-open [Start, End) intervals and interval sets
//	remap/           Rule, Stage and Pipeline: scalar lookup, inverse lookup, set transform
//	parser/          the plain-text table format (read and write)
//	resolver/        LowestScalar, LowestRange, ReverseScan over bounded workers
//	synth/           reproducible random tables for tests and benchmarks
//	config/          YAML settings for the command
//	cmd/almanac/     solve, trace and gen commands
//
// Quick example (one stage):
//
//	seeds: 79 14
//
//	seed-to-soil map:
//	52 50 48
//
//	79 lies in [50, 98) and maps to 81; 14 passes through unchanged.
//
//	go install github.com/katalvlaran/almanac/cmd/almanac@latest
package almanac
