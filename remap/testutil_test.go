// Package remap_test provides the canonical seven-stage fixture shared
// across *_test.go files in this package.
package remap_test

import (
	"testing"

	"github.com/katalvlaran/almanac/remap"
	"github.com/stretchr/testify/require"
)

// sampleTable is the canonical seed-to-location table, rules in
// (dest, source, length) order.
var sampleTable = []struct {
	from, to string
	rules    [][3]uint64
}{
	{"seed", "soil", [][3]uint64{{50, 98, 2}, {52, 50, 48}}},
	{"soil", "fertilizer", [][3]uint64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer", "water", [][3]uint64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water", "light", [][3]uint64{{88, 18, 7}, {18, 25, 70}}},
	{"light", "temperature", [][3]uint64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature", "humidity", [][3]uint64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity", "location", [][3]uint64{{60, 56, 37}, {56, 93, 4}}},
}

// mustStage builds a stage from (dest, source, length) triples.
func mustStage(t testing.TB, from, to string, triples ...[3]uint64) *remap.Stage {
	t.Helper()
	rules := make([]remap.Rule, 0, len(triples))
	for _, tr := range triples {
		r, err := remap.NewRule(tr[0], tr[1], tr[2])
		require.NoError(t, err)
		rules = append(rules, r)
	}
	st, err := remap.NewStage(from, to, rules...)
	require.NoError(t, err)

	return st
}

// samplePipeline builds the canonical seven-stage pipeline.
func samplePipeline(t testing.TB) *remap.Pipeline {
	t.Helper()
	stages := make([]*remap.Stage, 0, len(sampleTable))
	for _, s := range sampleTable {
		stages = append(stages, mustStage(t, s.from, s.to, s.rules...))
	}
	p, err := remap.NewPipeline(stages, remap.WithChainCheck())
	require.NoError(t, err)

	return p
}
