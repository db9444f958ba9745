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

type prefixesOptions struct {
	count int
}

func (o *prefixesOptions) register(fs *pflag.FlagSet) {
	fs.IntVar(&o.count, "count", config.DefaultPrefixCount, "number of letter prefixes")
}

func (o *prefixesOptions) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("count") {
		cfg.Prefixes.Count = o.count
	}
}

func newPrefixesCmd(opts *globalOptions) *cobra.Command {
	o := &prefixesOptions{}
	cmd := &cobra.Command{
		Use:   "prefixes",
		Short: "Generate a file of random lowercase prefixes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			o.apply(cmd.Flags(), cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			gen, err := newGenerator(cfg)
			if err != nil {
				return err
			}
			return runPrefixes(opts, cfg, gen)
		},
	}
	o.register(cmd.Flags())
	return cmd
}

func runPrefixes(opts *globalOptions, cfg *config.Config, gen *generator) error {
	if err := opts.ensureDir(cfg.PrefixDir); err != nil {
		return err
	}
	prefixes, err := prefixgen.Letters(gen.rng, cfg.Prefixes.Count)
	if err != nil {
		return err
	}
	path, err := util.ResolveIn(cfg.PrefixDir, prefixgen.LettersFileName(cfg.Prefixes.Count))
	if err != nil {
		return err
	}
	if err := util.WriteLines(path, prefixes, true); err != nil {
		return fmt.Errorf("can't write prefixes: %w", err)
	}
	logging.UserSuccess("wrote %d prefixes to %s", len(prefixes), path)
	return nil
}
