package remap

import (
	"fmt"

	"github.com/katalvlaran/almanac/interval"
)

// Pipeline is an immutable ordered chain of stages.
type Pipeline struct {
	stages []*Stage
}

// PipelineOption customizes NewPipeline.
type PipelineOption func(*pipelineConfig)

type pipelineConfig struct {
	checkChain bool
}

// WithChainCheck makes NewPipeline verify that every stage's target
// category equals the next stage's source category.
func WithChainCheck() PipelineOption {
	return func(c *pipelineConfig) { c.checkChain = true }
}

// NewPipeline chains stages in the given order.
// Returns ErrNoStages for an empty list, ErrNilStage for a nil entry and,
// under WithChainCheck, ErrBrokenChain for mismatched categories.
// Complexity: O(n) for n stages.
func NewPipeline(stages []*Stage, opts ...PipelineOption) (*Pipeline, error) {
	var cfg pipelineConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(stages) == 0 {
		return nil, ErrNoStages
	}
	for i, st := range stages {
		if st == nil {
			return nil, fmt.Errorf("stage %d: %w", i, ErrNilStage)
		}
		if cfg.checkChain && i > 0 && stages[i-1].to != st.from {
			return nil, fmt.Errorf("%w: %q then %q", ErrBrokenChain, stages[i-1].Name(), st.Name())
		}
	}
	p := &Pipeline{stages: make([]*Stage, len(stages))}
	copy(p.stages, stages)

	return p, nil
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Stages returns the stages in order. The slice is a copy; the stages
// themselves are immutable.
func (p *Pipeline) Stages() []*Stage {
	out := make([]*Stage, len(p.stages))
	copy(out, p.stages)

	return out
}

// Categories returns the category chain: the first stage's source
// followed by every stage's target.
func (p *Pipeline) Categories() []string {
	out := make([]string, 0, len(p.stages)+1)
	out = append(out, p.stages[0].from)
	for _, st := range p.stages {
		out = append(out, st.to)
	}

	return out
}

// Invertible reports whether every stage is invertible, i.e. whether
// Reverse undoes Forward.
func (p *Pipeline) Invertible() bool {
	for _, st := range p.stages {
		if !st.invertible {
			return false
		}
	}

	return true
}

// Forward resolves seed through every stage in order.
func (p *Pipeline) Forward(seed uint64) uint64 {
	v := seed
	for _, st := range p.stages {
		v = st.Resolve(v)
	}

	return v
}

// Reverse resolves a final value back through every stage in reverse
// order. Reverse(Forward(v)) == v holds when Invertible() is true and each
// stage is a bijection.
func (p *Pipeline) Reverse(final uint64) uint64 {
	v := final
	for i := len(p.stages) - 1; i >= 0; i-- {
		v = p.stages[i].ResolveInverse(v)
	}

	return v
}

// Trace returns seed followed by its value after each stage;
// the last element equals Forward(seed).
func (p *Pipeline) Trace(seed uint64) []uint64 {
	out := make([]uint64, 0, len(p.stages)+1)
	v := seed
	out = append(out, v)
	for _, st := range p.stages {
		v = st.Resolve(v)
		out = append(out, v)
	}

	return out
}

// Transform pushes set through every stage in order.
func (p *Pipeline) Transform(set interval.Set) interval.Set {
	out := set
	for _, st := range p.stages {
		out = st.Transform(out)
	}

	return out
}
