package remap

import (
	"fmt"
	"sort"
)

// Stage is one translation layer: disjoint rules plus identity fallback.
//
// Rules are stored once and indexed twice: bySource sorted by SourceStart
// for forward lookups and transforms, byDest sorted by DestStart for
// inverse lookups. A Stage is immutable after NewStage.
type Stage struct {
	from, to   string
	bySource   []Rule
	byDest     []Rule
	invertible bool // destination ranges are pairwise disjoint
}

// NewStage validates rules and builds a stage mapping category from to
// category to. Category names are informational and may be empty.
//
// Returns ErrEmptyRule or ErrOverflow for an invalid rule and ErrOverlap
// when two source ranges share a value. Rule order is irrelevant.
// Complexity: O(r log r) time, O(r) memory.
func NewStage(from, to string, rules ...Rule) (*Stage, error) {
	bySource := make([]Rule, len(rules))
	copy(bySource, rules)
	for i, r := range bySource {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("stage %s: rule %d: %w", stageName(from, to), i, err)
		}
	}
	sort.Slice(bySource, func(i, j int) bool { return bySource[i].SourceStart < bySource[j].SourceStart })
	for i := 1; i < len(bySource); i++ {
		prev, cur := bySource[i-1], bySource[i]
		if cur.SourceStart < prev.sourceEnd() {
			return nil, fmt.Errorf("stage %s: %w: %v and %v",
				stageName(from, to), ErrOverlap, prev.Source(), cur.Source())
		}
	}

	byDest := make([]Rule, len(bySource))
	copy(byDest, bySource)
	sort.Slice(byDest, func(i, j int) bool { return byDest[i].DestStart < byDest[j].DestStart })
	invertible := true
	for i := 1; i < len(byDest); i++ {
		if byDest[i].DestStart < byDest[i-1].destEnd() {
			invertible = false
			break
		}
	}

	return &Stage{
		from:       from,
		to:         to,
		bySource:   bySource,
		byDest:     byDest,
		invertible: invertible,
	}, nil
}

// From returns the source category name.
func (s *Stage) From() string { return s.from }

// To returns the target category name.
func (s *Stage) To() string { return s.to }

// Name returns "from-to-to", or "?" parts for unnamed categories.
func (s *Stage) Name() string { return stageName(s.from, s.to) }

// Rules returns a copy of the rules sorted by source start.
func (s *Stage) Rules() []Rule {
	out := make([]Rule, len(s.bySource))
	copy(out, s.bySource)

	return out
}

// Invertible reports whether destination ranges are pairwise disjoint,
// which ResolveInverse needs to be well defined.
func (s *Stage) Invertible() bool { return s.invertible }

// Resolve maps v through the stage: the rule whose source range holds v
// shifts it, otherwise v is returned unchanged.
// Complexity: O(log r).
func (s *Stage) Resolve(v uint64) uint64 {
	i := sort.Search(len(s.bySource), func(i int) bool { return s.bySource[i].SourceStart > v }) - 1
	if i >= 0 && v < s.bySource[i].sourceEnd() {
		return s.bySource[i].Apply(v)
	}

	return v
}

// ResolveInverse maps v backwards through the stage: the rule whose
// destination range holds v shifts it back, otherwise v is returned
// unchanged. The result is only meaningful when Invertible() is true.
// Complexity: O(log r).
func (s *Stage) ResolveInverse(v uint64) uint64 {
	i := sort.Search(len(s.byDest), func(i int) bool { return s.byDest[i].DestStart > v }) - 1
	if i >= 0 && v < s.byDest[i].destEnd() {
		return s.byDest[i].Invert(v)
	}

	return v
}

func stageName(from, to string) string {
	if from == "" {
		from = "?"
	}
	if to == "" {
		to = "?"
	}

	return from + "-to-" + to
}
