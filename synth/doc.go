// Package synth generates deterministic synthetic pipelines and seed
// batches for tests, benchmarks and the "gen" command.
//
// The package offers:
//
//   - Configuration primitives:
//     – Option:        a function that mutates synthConfig before use.
//     – synthConfig:   stage count, rules per stage, value span, RNG, layout.
//   - Generators:
//     – Pipeline:      a *remap.Pipeline with WithStages stages of WithRules rules.
//     – Seeds:         an interval.Set of random (start, length) ranges.
//     – Scalars:       a slice of random scalar seeds.
//   - Layouts:
//     – scattered (default): disjoint source ranges at random positions,
//     random destinations; stages may be non-invertible.
//     – bijective (WithBijective): the span [0, WithSpan) is cut into
//     pieces whose destinations are a shuffled tiling of the same span,
//     so every stage is a permutation and Reverse undoes Forward.
//
// Guarantees:
//
//   - Same options ⇒ same output. Seeding is explicit via WithSeed or
//     WithRand; without either a fixed default seed is used.
//   - Option constructors panic on meaningless values (zero stages, zero
//     span); generators return ErrSpanTooSmall when the span cannot hold
//     the requested rules.
//
// Complexity: Pipeline is O(s·r log r) for s stages of r rules.
package synth
