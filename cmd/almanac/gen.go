package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/almanac/parser"
	"github.com/katalvlaran/almanac/synth"
)

type genFlags struct {
	seed      int64
	stages    int
	rules     int
	ranges    int
	span      uint64
	maxLength uint64
	bijective bool
}

func newGenCmd(a *app) *cobra.Command {
	f := genFlags{}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a random table in the input format",
		Long: `Write a reproducible random table. The seed line holds --ranges
(start, length) pairs, so the output is valid for every solve mode.
Tables with --stages other than the configured stage count need a
matching "stages" config value to be solved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.gen(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.Int64Var(&f.seed, "seed", 1, "Random seed")
	fl.IntVar(&f.stages, "stages", synth.DefaultStages, "Number of stages")
	fl.IntVar(&f.rules, "rules", synth.DefaultRules, "Rules per stage")
	fl.IntVar(&f.ranges, "ranges", 2, "Seed ranges on the seed line")
	fl.Uint64Var(&f.span, "span", synth.DefaultSpan, "Values are drawn from [0, span)")
	fl.Uint64Var(&f.maxLength, "max-length", synth.DefaultMaxLength, "Longest seed range")
	fl.BoolVar(&f.bijective, "bijective", false, "Make every stage a permutation of [0, span)")

	return cmd
}

func (a *app) gen(cmd *cobra.Command, f genFlags) error {
	if f.stages < 1 || f.rules < 1 || f.ranges < 1 {
		return fmt.Errorf("stages, rules and ranges must be > 0")
	}
	if f.span == 0 || f.span > synth.MaxSpan || f.maxLength == 0 || f.maxLength > synth.MaxSpan {
		return fmt.Errorf("span and max-length must be in (0, %d]", synth.MaxSpan)
	}

	opts := []synth.Option{
		synth.WithRand(rand.New(rand.NewSource(f.seed))),
		synth.WithStages(f.stages),
		synth.WithRules(f.rules),
		synth.WithSpan(f.span),
		synth.WithMaxLength(f.maxLength),
	}
	if f.bijective {
		opts = append(opts, synth.WithBijective())
	}

	p, err := synth.Pipeline(opts...)
	if err != nil {
		return err
	}
	set, err := synth.Seeds(f.ranges, opts...)
	if err != nil {
		return err
	}
	seeds := make([]uint64, 0, 2*len(set))
	for _, iv := range set {
		seeds = append(seeds, iv.Start, iv.Len())
	}

	a.logger.Debug("table generated",
		zap.Int64("seed", f.seed),
		zap.Int("stages", p.Len()),
		zap.String("coverage", comma(set.Len())))

	return parser.Format(cmd.OutOrStdout(), &parser.Almanac{Seeds: seeds, Pipeline: p})
}
