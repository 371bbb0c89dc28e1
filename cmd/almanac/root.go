package main

import (
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/almanac/config"
	"github.com/katalvlaran/almanac/internal/logging"
	"github.com/katalvlaran/almanac/parser"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	verbose    bool
	workers    int
	logFormat  string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "almanac",
		Short: "Map seeds through a chain of range tables",
		Long: `almanac reads a seed table: a seed line followed by stage sections of
"destStart sourceStart length" rules. It reports the lowest final location
either for every seed as a single identifier or for the seeds read as
(start, length) ranges.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "almanac.yaml", "Config file (YAML); missing file means defaults")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().IntVarP(&a.workers, "workers", "w", 0, "Worker goroutines (default: config, then GOMAXPROCS)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log encoding: json or console")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newTraceCmd(a))
	root.AddCommand(newGenCmd(a))

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.With(
		zap.String("run", uuid.NewString()),
		zap.String("cmd", cmd.Name()))

	return nil
}

// load parses the table at path, or standard input for "-".
func (a *app) load(cmd *cobra.Command, path string) (*parser.Almanac, error) {
	var r io.Reader
	name := path
	if path == "-" {
		r = cmd.InOrStdin()
		name = "<stdin>"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open table: %w", err)
		}
		defer f.Close()
		r = f
	}

	opts := []parser.Option{
		parser.WithStageCount(a.cfg.Stages),
		parser.WithFilename(name),
	}
	if a.cfg.CheckChain {
		opts = append(opts, parser.WithChainCheck())
	}
	alm, err := parser.Parse(r, opts...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("table loaded",
		zap.String("path", name),
		zap.Int("seeds", len(alm.Seeds)),
		zap.Int("stages", alm.Pipeline.Len()))

	return alm, nil
}

// comma renders a uint64 with thousands separators.
func comma(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}
