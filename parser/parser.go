package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/remap"
)

// Almanac is a parsed table: the seed line and the stage pipeline.
type Almanac struct {
	// Seeds holds the seed line in order. Mode (a) reads it as scalars,
	// mode (b) through Ranges as (start, length) pairs.
	Seeds []uint64

	// Pipeline chains the stage sections in file order.
	Pipeline *remap.Pipeline
}

// Ranges reads Seeds as (start, length) pairs. Zero-length pairs are
// dropped. Returns ErrOddSeeds for an odd count and interval.ErrOverflow
// when start+length does not fit in 64 bits.
func (a *Almanac) Ranges() (interval.Set, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrOddSeeds, len(a.Seeds))
	}

	return interval.FromPairs(a.Seeds...)
}

// Parse reads a whole table from r.
func Parse(r io.Reader, opts ...Option) (*Almanac, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: read: %w", err)
	}

	return ParseString(string(data), opts...)
}

// ParseString parses a table held in memory.
// Complexity: O(n) in the input size plus O(r log r) per stage.
func ParseString(text string, opts ...Option) (*Almanac, error) {
	cfg := newParseConfig(opts...)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	tree, err := tableParser.ParseString(cfg.filename, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	switch n := len(tree.Sections); {
	case n < cfg.stages:
		return nil, fmt.Errorf("%w: got %d of %d", ErrMissingSection, n, cfg.stages)
	case n > cfg.stages:
		return nil, fmt.Errorf("%w: %s: got %d, want %d",
			ErrExtraSection, tree.Sections[cfg.stages].Pos, n, cfg.stages)
	}

	seeds := make([]uint64, 0, len(tree.Seeds))
	for _, tok := range tree.Seeds {
		v, err := tok.value()
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, v)
	}

	stages := make([]*remap.Stage, 0, len(tree.Sections))
	for _, sec := range tree.Sections {
		st, err := sec.stage()
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}

	var popts []remap.PipelineOption
	if cfg.checkChain {
		popts = append(popts, remap.WithChainCheck())
	}
	p, err := remap.NewPipeline(stages, popts...)
	if err != nil {
		return nil, err
	}

	return &Almanac{Seeds: seeds, Pipeline: p}, nil
}

// stage converts a section into a validated remap.Stage.
func (s *sectionGrammar) stage() (*remap.Stage, error) {
	from, to := splitHeader(s.Header)
	rules := make([]remap.Rule, 0, len(s.Rules))
	for _, rg := range s.Rules {
		r, err := rg.rule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	st, err := remap.NewStage(from, to, rules...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Pos, err)
	}

	return st, nil
}

// rule converts one line into a validated remap.Rule.
func (r *ruleGrammar) rule() (remap.Rule, error) {
	var vals [3]uint64
	for i, tok := range []numberToken{r.Dest, r.Source, r.Length} {
		v, err := tok.value()
		if err != nil {
			return remap.Rule{}, err
		}
		vals[i] = v
	}
	rule, err := remap.NewRule(vals[0], vals[1], vals[2])
	if err != nil {
		return remap.Rule{}, fmt.Errorf("%s: %w", r.Pos, err)
	}

	return rule, nil
}

func (t numberToken) value() (uint64, error) {
	v, err := strconv.ParseUint(t.Text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %q", t.Pos, ErrBadNumber, t.Text)
	}

	return v, nil
}

// splitHeader turns "seed-to-soil" into ("seed", "soil"). A header
// without "-to-" becomes the source name with an empty target.
func splitHeader(h string) (from, to string) {
	from, to, _ = strings.Cut(h, "-to-")

	return from, to
}
