package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/SenseUnit/corpusgen/config"
	"github.com/SenseUnit/corpusgen/logging"
	"github.com/SenseUnit/corpusgen/prefixgen"
	"github.com/SenseUnit/corpusgen/util"
)

type ipsOptions struct {
	cardinalities string
	universe      string
	maxRetries    int
	prefixCount   int
	noPrefixes    bool
}

func (o *ipsOptions) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.cardinalities, "cardinalities", config.CardinalitiesToString(config.DefaultCardinalities),
		"colon-separated address corpus sizes")
	fs.StringVar(&o.universe, "universe", config.DefaultUniverseSpec,
		"comma-separated address ranges to sample from (CIDR, first..last or single address)")
	fs.IntVar(&o.maxRetries, "max-retries", config.DefaultMaxRetries,
		"consecutive rejected blocks tolerated before giving up")
	fs.IntVar(&o.prefixCount, "ip-prefix-count", config.DefaultPrefixCount, "number of IP prefixes to write")
	fs.BoolVar(&o.noPrefixes, "no-ip-prefixes", false, "skip the ip_pref<K>.txt query file")
}

func (o *ipsOptions) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("cardinalities") {
		lst, err := config.StringToCardinalities(o.cardinalities)
		if err != nil {
			return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
		cfg.IPs.Cardinalities = lst
	}
	if fs.Changed("universe") {
		cfg.IPs.Universe = o.universe
	}
	if fs.Changed("max-retries") {
		cfg.IPs.MaxRetries = o.maxRetries
	}
	if fs.Changed("ip-prefix-count") {
		cfg.IPs.PrefixCount = o.prefixCount
	}
	return nil
}

func newIPsCmd(opts *globalOptions) *cobra.Command {
	o := &ipsOptions{}
	cmd := &cobra.Command{
		Use:   "ips",
		Short: "Generate subnet-structured IPv4 address corpora",
		Long: `Writes one ip<N>.txt file per cardinality. Each corpus holds exactly N
distinct addresses made of random mask-aligned blocks; no block base is
reused between corpora of the same run. Unless disabled, an ip_pref<K>.txt
query file is derived from the block bases afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := o.apply(cmd.Flags(), cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			gen, err := newGenerator(cfg)
			if err != nil {
				return err
			}
			return runIPs(opts, o, cfg, gen)
		},
	}
	o.register(cmd.Flags())
	return cmd
}

func runIPs(opts *globalOptions, o *ipsOptions, cfg *config.Config, gen *generator) error {
	if err := opts.ensureDir(cfg.DatasetDir); err != nil {
		return err
	}
	paths, err := gen.session.GenerateAll(cfg.DatasetDir, cfg.IPs.Cardinalities)
	if err != nil {
		return err
	}
	logging.UserSuccess("wrote %d address corpora to %s (seed %d)", len(paths), cfg.DatasetDir, gen.seed)

	if o.noPrefixes {
		return nil
	}
	return writeIPPrefixes(opts, cfg, gen)
}

func writeIPPrefixes(opts *globalOptions, cfg *config.Config, gen *generator) error {
	if err := opts.ensureDir(cfg.PrefixDir); err != nil {
		return err
	}
	used := gen.session.UsedBases()
	bases := make([]string, len(used))
	for i, b := range used {
		bases[i] = b.String()
	}
	prefixes, err := prefixgen.IPs(gen.rng, bases, cfg.IPs.PrefixCount, cfg.IPs.MaxRetries)
	if err != nil {
		return err
	}
	path, err := util.ResolveIn(cfg.PrefixDir, prefixgen.IPsFileName(cfg.IPs.PrefixCount))
	if err != nil {
		return err
	}
	if err := util.WriteLines(path, prefixes, false); err != nil {
		return fmt.Errorf("can't write ip prefixes: %w", err)
	}
	logging.Info("ip prefixes written", "count", len(prefixes), "bases", len(bases), "path", path)
	logging.UserSuccess("wrote %d ip prefixes to %s", len(prefixes), path)
	return nil
}
