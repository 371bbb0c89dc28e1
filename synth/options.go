package synth

import "math/rand"

// Option customizes a generator by mutating synthConfig.
// Option constructors panic on meaningless values; generators never do.
type Option func(*synthConfig)

// WithSeed seeds a fresh *rand.Rand, making output reproducible.
func WithSeed(seed int64) Option {
	return func(c *synthConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for every random draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *synthConfig) {
		c.rng = r
	}
}

// WithStages sets the number of stages. Panics if n < 1.
func WithStages(n int) Option {
	if n < 1 {
		panic("synth: WithStages(n<1)")
	}
	return func(c *synthConfig) {
		c.stages = n
	}
}

// WithRules sets the number of rules per stage. Panics if n < 1.
func WithRules(n int) Option {
	if n < 1 {
		panic("synth: WithRules(n<1)")
	}
	return func(c *synthConfig) {
		c.rules = n
	}
}

// WithSpan bounds generated values to [0, span).
// Panics if span == 0 or span > MaxSpan.
func WithSpan(span uint64) Option {
	if span == 0 || span > MaxSpan {
		panic("synth: WithSpan out of (0, MaxSpan]")
	}
	return func(c *synthConfig) {
		c.span = span
	}
}

// WithMaxLength bounds the length of each range drawn by Seeds.
// Panics if n == 0 or n > MaxSpan.
func WithMaxLength(n uint64) Option {
	if n == 0 || n > MaxSpan {
		panic("synth: WithMaxLength out of (0, MaxSpan]")
	}
	return func(c *synthConfig) {
		c.maxLength = n
	}
}

// WithBijective makes every generated stage a permutation of [0, span).
func WithBijective() Option {
	return func(c *synthConfig) {
		c.bijective = true
	}
}
