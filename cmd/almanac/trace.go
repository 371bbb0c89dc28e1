package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTraceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <file|-> <seed>",
		Short: "Print a seed's value after every stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("seed %q: %w", args[1], err)
			}
			alm, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			names := alm.Pipeline.Categories()
			out := cmd.OutOrStdout()
			for i, v := range alm.Pipeline.Trace(seed) {
				name := names[i]
				if name == "" {
					name = "stage" + strconv.Itoa(i)
				}
				fmt.Fprintf(out, "%-12s %d\n", name, v)
			}

			return nil
		},
	}
}
