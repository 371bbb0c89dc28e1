package synth

import (
	"math/rand"
	"sort"
	"strconv"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/remap"
)

// Pipeline generates a pipeline according to opts.
// Returns ErrSpanTooSmall when a stage cannot hold the requested rules.
// Complexity: O(s·r log r) time, O(s·r) memory.
func Pipeline(opts ...Option) (*remap.Pipeline, error) {
	cfg := newSynthConfig(opts...)
	if cfg.bijective && cfg.span < uint64(cfg.rules) {
		return nil, synthErrorf(MethodPipeline, ErrSpanTooSmall, "bijective span %d < rules %d", cfg.span, cfg.rules)
	}
	if !cfg.bijective && cfg.span < 2*uint64(cfg.rules) {
		return nil, synthErrorf(MethodPipeline, ErrSpanTooSmall, "span %d < 2*rules %d", cfg.span, cfg.rules)
	}

	names := categories(cfg.stages)
	stages := make([]*remap.Stage, 0, cfg.stages)
	for i := 0; i < cfg.stages; i++ {
		var rules []remap.Rule
		if cfg.bijective {
			rules = tiledRules(cfg.rng, cfg.span, cfg.rules)
		} else {
			rules = scatteredRules(cfg.rng, cfg.span, cfg.rules)
		}
		st, err := remap.NewStage(names[i], names[i+1], rules...)
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}

	return remap.NewPipeline(stages, remap.WithChainCheck())
}

// Seeds generates n ranges with starts in [0, span) and lengths in
// [1, maxLength]. Ranges may overlap.
func Seeds(n int, opts ...Option) (interval.Set, error) {
	if n < 1 {
		return nil, synthErrorf(MethodSeeds, ErrBadCount, "n=%d", n)
	}
	cfg := newSynthConfig(opts...)
	out := make(interval.Set, 0, n)
	for i := 0; i < n; i++ {
		start := draw(cfg.rng, cfg.span)
		out = append(out, interval.New(start, start+1+draw(cfg.rng, cfg.maxLength)))
	}

	return out, nil
}

// Scalars generates n values in [0, span).
func Scalars(n int, opts ...Option) ([]uint64, error) {
	if n < 1 {
		return nil, synthErrorf(MethodScalars, ErrBadCount, "n=%d", n)
	}
	cfg := newSynthConfig(opts...)
	out := make([]uint64, n)
	for i := range out {
		out[i] = draw(cfg.rng, cfg.span)
	}

	return out, nil
}

// scatteredRules places k disjoint, non-empty source ranges at random
// inside [0, span) and gives each a random destination start in [0, span).
// Requires span ≥ 2k.
func scatteredRules(rng *rand.Rand, span uint64, k int) []remap.Rule {
	cuts := distinct(rng, span, 2*k)
	rules := make([]remap.Rule, 0, k)
	for i := 0; i < len(cuts); i += 2 {
		rules = append(rules, remap.Rule{
			DestStart:   draw(rng, span),
			SourceStart: cuts[i],
			Length:      cuts[i+1] - cuts[i],
		})
	}

	return rules
}

// tiledRules cuts [0, span) into k pieces and lays them back out in a
// shuffled order, so the stage permutes [0, span). Requires span ≥ k.
func tiledRules(rng *rand.Rand, span uint64, k int) []remap.Rule {
	bounds := make([]uint64, 0, k+1)
	bounds = append(bounds, 0)
	if k > 1 {
		for _, c := range distinct(rng, span-1, k-1) {
			bounds = append(bounds, c+1) // cut points in [1, span)
		}
	}
	bounds = append(bounds, span)

	rules := make([]remap.Rule, k)
	var offset uint64
	for _, j := range rng.Perm(k) {
		length := bounds[j+1] - bounds[j]
		rules[j] = remap.Rule{DestStart: offset, SourceStart: bounds[j], Length: length}
		offset += length
	}

	return rules
}

// distinct draws n different values from [0, limit) and returns them sorted.
// Requires n ≤ limit.
func distinct(rng *rand.Rand, limit uint64, n int) []uint64 {
	seen := make(map[uint64]struct{}, n)
	out := make([]uint64, 0, n)
	for len(out) < n {
		v := draw(rng, limit)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// draw returns a value in [0, n). n must be > 0.
func draw(rng *rand.Rand, n uint64) uint64 {
	return rng.Uint64() % n
}

// categories names the stages' categories: the seed-to-location chain for
// seven stages, "c0".."cN" otherwise.
func categories(stages int) []string {
	if stages == len(categoryNames)-1 {
		return categoryNames
	}
	out := make([]string, stages+1)
	for i := range out {
		out[i] = "c" + strconv.Itoa(i)
	}

	return out
}
