// Package remap implements staged categorical translation tables: rules
// that shift a contiguous source range onto a contiguous destination range,
// stages that combine disjoint rules with an identity fallback, and
// pipelines that chain stages from a first category to a final one.
//
// 🚀 What is a stage?
//
//	A stage holds rules "dest source length". A value v inside
//	[source, source+length) becomes dest+(v-source); any other value is
//	passed through unchanged. Chaining seven such stages turns a seed into
//	a location:
//
//	  seed ─▶ soil ─▶ fertilizer ─▶ water ─▶ light ─▶ temperature ─▶ humidity ─▶ location
//
// ✨ Key features:
//   - Resolve / Forward: scalar lookup by binary search over sorted rules.
//   - ResolveInverse / Reverse: the same lookup over destination ranges.
//   - Transform: pushes a whole interval.Set through a stage by splitting
//     every interval at rule boundaries; cost grows with the number of
//     boundaries met, never with the number of values covered.
//   - Construction validates every rule (non-empty, no 64-bit overflow) and
//     rejects overlapping source ranges inside one stage.
//
// ⚙️ Usage:
//
//	r1, _ := remap.NewRule(50, 98, 2)
//	r2, _ := remap.NewRule(52, 50, 48)
//	st, _ := remap.NewStage("seed", "soil", r1, r2)
//	p, _ := remap.NewPipeline([]*remap.Stage{st})
//	p.Forward(79)                       // 81
//	p.Transform(interval.Set{{79, 93}}) // {[81, 95)}
//
// Performance:
//
//   - NewStage:  O(r log r) for r rules.
//   - Resolve:   O(log r).
//   - Transform: O(k log r + k + b) for k input intervals meeting b boundaries.
//
// Stages and pipelines are immutable after construction and safe for
// concurrent use without locking.
package remap
