package synth

import "math/rand"

// synthConfig aggregates all generator knobs.
// It is passed by value to generators.
type synthConfig struct {
	rng       *rand.Rand
	stages    int
	rules     int
	span      uint64
	maxLength uint64 // upper bound for Seeds range lengths
	bijective bool
}

// Deterministic defaults.
const (
	// DefaultStages matches the seven-stage seed-to-location chain.
	DefaultStages = 7
	// DefaultRules is the number of rules per stage.
	DefaultRules = 4
	// DefaultSpan bounds every generated value to [0, DefaultSpan).
	DefaultSpan = uint64(1000)
	// DefaultMaxLength bounds each Seeds range length.
	DefaultMaxLength = uint64(100)
	// MaxSpan keeps dest+length and start+length far from 64-bit overflow.
	MaxSpan = uint64(1) << 62

	defaultSeed = int64(1)
)

// Generator names used as error prefixes.
const (
	MethodPipeline = "Pipeline"
	MethodSeeds    = "Seeds"
	MethodScalars  = "Scalars"
)

// categoryNames is the default chain for seven stages.
var categoryNames = []string{
	"seed", "soil", "fertilizer", "water", "light", "temperature", "humidity", "location",
}

// newSynthConfig applies opts over the defaults, last option wins.
// Complexity: O(len(opts)).
func newSynthConfig(opts ...Option) synthConfig {
	cfg := synthConfig{
		stages:    DefaultStages,
		rules:     DefaultRules,
		span:      DefaultSpan,
		maxLength: DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}
