package parser

// DefaultStageCount is the number of stage sections a table must carry
// unless WithStageCount says otherwise: seed → soil → fertilizer → water →
// light → temperature → humidity → location.
const DefaultStageCount = 7

// Option customizes Parse.
type Option func(*parseConfig)

type parseConfig struct {
	stages     int
	checkChain bool
	filename   string
}

// WithStageCount requires exactly n stage sections. Panics if n < 1.
func WithStageCount(n int) Option {
	if n < 1 {
		panic("parser: WithStageCount(n<1)")
	}
	return func(c *parseConfig) {
		c.stages = n
	}
}

// WithChainCheck requires each section's target category to equal the
// next section's source category.
func WithChainCheck() Option {
	return func(c *parseConfig) {
		c.checkChain = true
	}
}

// WithFilename sets the name reported in error positions.
func WithFilename(name string) Option {
	return func(c *parseConfig) {
		c.filename = name
	}
}

func newParseConfig(opts ...Option) parseConfig {
	cfg := parseConfig{stages: DefaultStageCount}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
