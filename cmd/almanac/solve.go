package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/almanac/resolver"
)

// Solve modes.
const (
	modeScalar  = "scalar"
	modeRange   = "range"
	modeBoth    = "both"
	modeReverse = "reverse"
)

func newSolveCmd(a *app) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "solve <file|->",
		Short: "Print the lowest location for the table's seeds",
		Long: `Print the lowest location reachable from the seed line.

Modes:
  scalar   every seed is one identifier
  range    seeds are (start, length) pairs
  both     scalar then range
  reverse  range answer by scanning locations upward (invertible tables only)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, args[0], mode)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", modeBoth, "scalar, range, both or reverse")

	return cmd
}

func (a *app) solve(cmd *cobra.Command, path, mode string) error {
	switch mode {
	case modeScalar, modeRange, modeBoth, modeReverse:
	default:
		return fmt.Errorf("unknown mode %q (want scalar, range, both or reverse)", mode)
	}

	alm, err := a.load(cmd, path)
	if err != nil {
		return err
	}
	var opts []resolver.Option
	if a.cfg.Workers > 0 {
		opts = append(opts, resolver.WithWorkers(a.cfg.Workers))
	}
	opts = append(opts, resolver.WithLogger(a.logger))
	r, err := resolver.New(alm.Pipeline, opts...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if mode == modeScalar || mode == modeBoth {
		low, err := r.LowestScalar(ctx, alm.Seeds)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d\n", modeScalar, low)
	}
	if mode == modeScalar {
		return nil
	}

	set, err := alm.Ranges()
	if err != nil {
		return err
	}
	a.logger.Info("seed ranges",
		zap.Int("ranges", len(set)),
		zap.String("coverage", comma(set.Len())))

	if mode == modeReverse {
		low, err := r.ReverseScan(ctx, set, a.cfg.ReverseLimit)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d\n", modeReverse, low)

		return nil
	}

	low, err := r.LowestRange(ctx, set)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %d\n", modeRange, low)

	return nil
}
