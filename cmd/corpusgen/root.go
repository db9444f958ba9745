package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/SenseUnit/corpusgen/addrgen"
	"github.com/SenseUnit/corpusgen/config"
	"github.com/SenseUnit/corpusgen/dataset"
	"github.com/SenseUnit/corpusgen/logging"
	"github.com/SenseUnit/corpusgen/randsrc"
)

type globalOptions struct {
	configPath string
	envFiles   []string
	verbose    bool
	jsonOutput bool
	seed       int64
	createDirs bool
	datasetDir string
	prefixDir  string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   ProgName,
		Short: "Generate synthetic corpora for prefix-search benchmarks",
		Long: `corpusgen writes the datasets used to benchmark prefix-search structures:

  - address corpora (ip<N>.txt) built from random, non-overlapping subnets
  - word corpora (w<N>.txt) sampled from a dictionary
  - prefix query files (pref<K>.txt, ip_pref<K>.txt)

and runs the external prefix-search binary over them to produce CSV summaries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(opts.verbose, opts.jsonOutput, cmd.ErrOrStderr())
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	pf.StringArrayVar(&opts.envFiles, "env-file", nil, "dotenv file with CORPUSGEN_* variables (default .env, if present)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&opts.jsonOutput, "json", false, "Output logs in JSON format")
	pf.Int64Var(&opts.seed, "seed", 0, "random seed; 0 picks one and logs it")
	pf.BoolVar(&opts.createDirs, "create-dirs", false, "create output directories when missing")
	pf.StringVarP(&opts.datasetDir, "dataset-dir", "d", "", "directory for ip<N>.txt and w<N>.txt corpora")
	pf.StringVar(&opts.prefixDir, "prefix-dir", "", "directory for prefix query files")

	root.AddCommand(
		newIPsCmd(opts),
		newWordsCmd(opts),
		newPrefixesCmd(opts),
		newAllCmd(opts),
		newBenchCmd(opts),
		newVersionCmd(),
	)
	return root
}

// loadConfig merges the config file, the environment and persistent flags.
func (opts *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadEnvFiles(opts.envFiles...); err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("dataset-dir") {
		cfg.DatasetDir = opts.datasetDir
	}
	if flags.Changed("prefix-dir") {
		cfg.PrefixDir = opts.prefixDir
	}
	return cfg, nil
}

func (opts *globalOptions) ensureDir(dir string) error {
	if !opts.createDirs {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("can't create directory %q: %w", dir, err)
	}
	return nil
}

// generator holds what one invocation shares between corpora.
type generator struct {
	rng     *rand.Rand
	seed    int64
	session *dataset.Session
}

func newGenerator(cfg *config.Config) (*generator, error) {
	universe, err := addrgen.ParseAddrSet(cfg.IPs.Universe)
	if err != nil {
		return nil, fmt.Errorf("%w: ips.universe: %v", config.ErrInvalidConfig, err)
	}
	rng, seed := randsrc.New(cfg.Seed)
	logging.Info("generation session started", "seed", seed)
	return &generator{
		rng:     rng,
		seed:    seed,
		session: dataset.NewSession(addrgen.NewSampler(rng, universe), cfg.IPs.MaxRetries),
	}, nil
}
