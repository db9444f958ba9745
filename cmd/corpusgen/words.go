package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/SenseUnit/corpusgen/config"
	"github.com/SenseUnit/corpusgen/logging"
	"github.com/SenseUnit/corpusgen/util"
	"github.com/SenseUnit/corpusgen/wordsample"
)

type wordsOptions struct {
	source        string
	cardinalities string
}

func (o *wordsOptions) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.source, "source", "s", "", "dictionary file, one word per line")
	fs.StringVar(&o.cardinalities, "word-cardinalities", "",
		"colon-separated word corpus sizes (default: powers of two up to the dictionary size)")
}

func (o *wordsOptions) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("source") {
		cfg.Words.Source = o.source
	}
	if fs.Changed("word-cardinalities") {
		lst, err := config.StringToCardinalities(o.cardinalities)
		if err != nil {
			return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
		cfg.Words.Cardinalities = lst
	}
	return nil
}

func newWordsCmd(opts *globalOptions) *cobra.Command {
	o := &wordsOptions{}
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Sample word corpora from a dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := o.apply(cmd.Flags(), cfg); err != nil {
				return err
			}
			if cfg.Words.Source == "" {
				return fmt.Errorf("%w: no dictionary given (--source or words.source)", config.ErrInvalidConfig)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			gen, err := newGenerator(cfg)
			if err != nil {
				return err
			}
			return runWords(opts, cfg, gen)
		},
	}
	o.register(cmd.Flags())
	return cmd
}

func runWords(opts *globalOptions, cfg *config.Config, gen *generator) error {
	if err := opts.ensureDir(cfg.DatasetDir); err != nil {
		return err
	}
	words, err := util.ReadLines(cfg.Words.Source)
	if err != nil {
		return fmt.Errorf("can't read dictionary: %w", err)
	}
	paths, err := wordsample.GenerateAll(gen.rng, words, cfg.DatasetDir, cfg.Words.Cardinalities)
	if err != nil {
		return err
	}
	logging.UserSuccess("wrote %d word corpora to %s", len(paths), cfg.DatasetDir)
	return nil
}
