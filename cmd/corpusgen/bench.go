package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SenseUnit/corpusgen/bench"
	"github.com/SenseUnit/corpusgen/config"
	"github.com/SenseUnit/corpusgen/logging"
	"github.com/SenseUnit/corpusgen/prefixgen"
	"github.com/SenseUnit/corpusgen/util"
)

type benchOptions struct {
	binary     string
	prefixFile string
	algorithms string
	epsilons   string
	parallel   int
	outputDir  string
	tempDir    string
}

func newBenchCmd(opts *globalOptions) *cobra.Command {
	o := &benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench [DATASET]...",
		Short: "Run prefix-search fullbenchmark over corpora and summarize as CSV",
		Long: `Runs "prefix-search fullbenchmark" once per dataset and algorithm, collects
the JSON results and writes one eps<E>.csv summary per epsilon value.
Without arguments every *.txt corpus in the dataset directory is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := o.apply(cmd, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runBench(cmd, opts, o, cfg, args)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&o.binary, "binary", config.DefaultBinary, "prefix-search executable")
	fs.StringVarP(&o.prefixFile, "prefix-file", "p", "", "prefix query file (default <prefix-dir>/pref<count>.txt)")
	fs.StringVarP(&o.algorithms, "algorithms", "a", bench.DefaultListString, "colon-separated algorithms")
	fs.StringVarP(&o.epsilons, "epsilons", "l", config.EpsilonsToString(config.DefaultEpsilons), "colon-separated epsilon values")
	fs.IntVarP(&o.parallel, "parallel", "j", config.DefaultParallel, "benchmark runs executed at once")
	fs.StringVarP(&o.outputDir, "output-dir", "o", config.DefaultBenchOutDir, "directory for CSV summaries")
	fs.StringVar(&o.tempDir, "temp-dir", "", "directory for intermediate JSON results")
	return cmd
}

func (o *benchOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	if fs.Changed("binary") {
		cfg.Bench.Binary = o.binary
	}
	if fs.Changed("prefix-file") {
		cfg.Bench.PrefixFile = o.prefixFile
	}
	if fs.Changed("algorithms") {
		lst, err := bench.StringToList(o.algorithms)
		if err != nil {
			return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
		cfg.Bench.Algorithms = make([]string, len(lst))
		for i, alg := range lst {
			cfg.Bench.Algorithms[i] = string(alg)
		}
	}
	if fs.Changed("epsilons") {
		lst, err := config.StringToEpsilons(o.epsilons)
		if err != nil {
			return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
		cfg.Bench.Epsilons = lst
	}
	if fs.Changed("parallel") {
		cfg.Bench.Parallel = o.parallel
	}
	if fs.Changed("output-dir") {
		cfg.Bench.OutputDir = o.outputDir
	}
	return nil
}

func runBench(cmd *cobra.Command, opts *globalOptions, o *benchOptions, cfg *config.Config, datasets []string) error {
	algorithms, err := bench.NamesToList(cfg.Bench.Algorithms)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	prefixFile := cfg.Bench.PrefixFile
	if prefixFile == "" {
		prefixFile, err = util.ResolveIn(cfg.PrefixDir, prefixgen.LettersFileName(cfg.Prefixes.Count))
		if err != nil {
			return err
		}
	}
	if len(datasets) == 0 {
		datasets, err = bench.ListDatasets(cfg.DatasetDir)
		if err != nil {
			return err
		}
	}
	if len(datasets) == 0 {
		return fmt.Errorf("no datasets found in %s", cfg.DatasetDir)
	}
	if err := opts.ensureDir(cfg.Bench.OutputDir); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner, err := bench.New(&bench.Config{
		Binary:      cfg.Bench.Binary,
		PrefixFile:  prefixFile,
		Algorithms:  algorithms,
		Epsilons:    cfg.Bench.Epsilons,
		Parallel:    cfg.Bench.Parallel,
		TempDir:     o.tempDir,
		BaseContext: ctx,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	logging.Info("starting benchmarks", "datasets", len(datasets), "algorithms", bench.ListToString(algorithms), "prefixes", prefixFile)
	rep, err := runner.Run(datasets)
	if err != nil {
		return err
	}
	paths, err := rep.WriteCSV(cfg.Bench.OutputDir)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rep.Render())
	logging.UserSuccess("wrote %d summaries to %s", len(paths), cfg.Bench.OutputDir)
	return nil
}
