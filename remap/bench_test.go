package remap_test

import (
	"testing"

	"github.com/katalvlaran/almanac/synth"
)

// benchmarkTransform pushes a batch of n wide ranges through a seven-stage
// pipeline with r rules per stage spread over a 2^40 span.
func benchmarkTransform(b *testing.B, rules, n int) {
	p, err := synth.Pipeline(synth.WithSeed(1), synth.WithRules(rules), synth.WithSpan(1<<40))
	if err != nil {
		b.Fatalf("synth.Pipeline: %v", err)
	}
	set, err := synth.Seeds(n, synth.WithSeed(2), synth.WithSpan(1<<40), synth.WithMaxLength(1<<36))
	if err != nil {
		b.Fatalf("synth.Seeds: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := p.Transform(set).Min(); !ok {
			b.Fatal("empty result")
		}
	}
}

// BenchmarkTransform_Small benchmarks 10 ranges through 30-rule stages.
func BenchmarkTransform_Small(b *testing.B) { benchmarkTransform(b, 30, 10) }

// BenchmarkTransform_Large benchmarks 1000 ranges through 200-rule stages.
func BenchmarkTransform_Large(b *testing.B) { benchmarkTransform(b, 200, 1000) }

// BenchmarkForward benchmarks scalar resolution over the same kind of table.
func BenchmarkForward(b *testing.B) {
	p, err := synth.Pipeline(synth.WithSeed(1), synth.WithRules(30), synth.WithSpan(1<<40))
	if err != nil {
		b.Fatalf("synth.Pipeline: %v", err)
	}
	b.ResetTimer()
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink += p.Forward(uint64(i) << 20)
	}
	_ = sink
}
