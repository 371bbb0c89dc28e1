package resolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/parser"
	"github.com/katalvlaran/almanac/remap"
	"github.com/katalvlaran/almanac/resolver"
	"github.com/katalvlaran/almanac/synth"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sampleText = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// loadSample parses the canonical table and returns it with its range set.
func loadSample(t testing.TB) (*parser.Almanac, interval.Set) {
	t.Helper()
	a, err := parser.ParseString(sampleText, parser.WithChainCheck())
	require.NoError(t, err)
	set, err := a.Ranges()
	require.NoError(t, err)

	return a, set
}

// TestResolver_Sample checks both modes and the reverse scan on the
// canonical table for several worker counts.
func TestResolver_Sample(t *testing.T) {
	a, set := loadSample(t)
	ctx := context.Background()

	for _, w := range []int{1, 2, 3, 16} {
		r, err := resolver.New(a.Pipeline, resolver.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, w, r.Workers())

		low, err := r.LowestScalar(ctx, a.Seeds)
		require.NoError(t, err)
		assert.Equal(t, uint64(35), low, "scalar, workers=%d", w)

		low, err = r.LowestRange(ctx, set)
		require.NoError(t, err)
		assert.Equal(t, uint64(46), low, "range, workers=%d", w)
	}

	r, err := resolver.New(a.Pipeline)
	require.NoError(t, err)
	low, err := r.ReverseScan(ctx, set, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(46), low)

	_, err = r.ReverseScan(ctx, set, 46)
	assert.ErrorIs(t, err, resolver.ErrNotFound)
	low, err = r.ReverseScan(ctx, set, 47)
	require.NoError(t, err)
	assert.Equal(t, uint64(46), low)
}

// TestResolver_Errors covers argument validation.
func TestResolver_Errors(t *testing.T) {
	_, err := resolver.New(nil)
	assert.ErrorIs(t, err, resolver.ErrNilPipeline)

	a, _ := loadSample(t)
	r, err := resolver.New(a.Pipeline)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = r.LowestScalar(ctx, nil)
	assert.ErrorIs(t, err, resolver.ErrNoSeeds)
	_, err = r.LowestRange(ctx, nil)
	assert.ErrorIs(t, err, resolver.ErrNoSeeds)
	_, err = r.LowestRange(ctx, interval.Set{interval.New(5, 5)})
	assert.ErrorIs(t, err, resolver.ErrNoSeeds)
	_, err = r.ReverseScan(ctx, interval.Set{}, 10)
	assert.ErrorIs(t, err, resolver.ErrNoSeeds)

	r1, err := remap.NewRule(0, 0, 5)
	require.NoError(t, err)
	r2, err := remap.NewRule(0, 10, 5)
	require.NoError(t, err)
	st, err := remap.NewStage("a", "b", r1, r2)
	require.NoError(t, err)
	p, err := remap.NewPipeline([]*remap.Stage{st})
	require.NoError(t, err)
	r, err = resolver.New(p)
	require.NoError(t, err)
	_, err = r.ReverseScan(ctx, interval.Set{interval.New(0, 20)}, 100)
	assert.ErrorIs(t, err, resolver.ErrNotInvertible)
}

// TestResolver_Cancelled verifies that a cancelled context is reported.
func TestResolver_Cancelled(t *testing.T) {
	a, set := loadSample(t)
	r, err := resolver.New(a.Pipeline, resolver.WithWorkers(2))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.LowestScalar(ctx, a.Seeds)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = r.LowestRange(ctx, set)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = r.ReverseScan(ctx, set, 100)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestOptions_Panics verifies option validation.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { resolver.WithWorkers(0) })
	assert.Panics(t, func() { resolver.WithLogger(nil) })
	assert.NotPanics(t, func() { resolver.WithLogger(zap.NewNop()) })
}

// TestResolver_Logging checks the per-stage debug entries and the result
// entry.
func TestResolver_Logging(t *testing.T) {
	a, set := loadSample(t)
	core, logs := observer.New(zap.DebugLevel)
	r, err := resolver.New(a.Pipeline, resolver.WithWorkers(4), resolver.WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = r.LowestRange(context.Background(), set)
	require.NoError(t, err)

	// two disjoint seed ranges give two chunks
	assert.Equal(t, 2*a.Pipeline.Len(), logs.FilterMessage("stage applied").Len())
	result := logs.FilterMessage("lowest range location").All()
	require.Len(t, result, 1)
	assert.Equal(t, uint64(46), result[0].ContextMap()["location"])
	assert.Equal(t, uint64(27), result[0].ContextMap()["values"])
}

// TestResolver_BruteForce compares both modes with exhaustive evaluation
// on small generated tables.
func TestResolver_BruteForce(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 25; seed++ {
		opts := []synth.Option{synth.WithSeed(seed), synth.WithSpan(300), synth.WithRules(5), synth.WithMaxLength(40)}
		p, err := synth.Pipeline(opts...)
		require.NoError(t, err)
		set, err := synth.Seeds(6, opts...)
		require.NoError(t, err)
		r, err := resolver.New(p, resolver.WithWorkers(3))
		require.NoError(t, err)

		var scalars []uint64
		want := ^uint64(0)
		for _, iv := range set {
			for v := iv.Start; v < iv.End; v++ {
				scalars = append(scalars, v)
				if loc := p.Forward(v); loc < want {
					want = loc
				}
			}
		}

		got, err := r.LowestRange(ctx, set)
		require.NoError(t, err)
		assert.Equal(t, want, got, "range, seed=%d", seed)

		got, err = r.LowestScalar(ctx, scalars)
		require.NoError(t, err)
		assert.Equal(t, want, got, "scalar, seed=%d", seed)
	}
}

// TestResolver_ReverseScanAgrees checks that the reverse scan matches the
// forward answer on bijective tables.
func TestResolver_ReverseScanAgrees(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 10; seed++ {
		opts := []synth.Option{synth.WithSeed(seed), synth.WithSpan(200), synth.WithRules(4), synth.WithMaxLength(30), synth.WithBijective()}
		p, err := synth.Pipeline(opts...)
		require.NoError(t, err)
		set, err := synth.Seeds(3, opts...)
		require.NoError(t, err)
		r, err := resolver.New(p)
		require.NoError(t, err)

		want, err := r.LowestRange(ctx, set)
		require.NoError(t, err)
		got, err := r.ReverseScan(ctx, set, 1<<12)
		require.NoError(t, err)
		assert.Equal(t, want, got, "seed=%d", seed)
	}
}
