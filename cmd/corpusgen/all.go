package main

import (
	"github.com/spf13/cobra"

	"github.com/SenseUnit/corpusgen/logging"
)

func newAllCmd(opts *globalOptions) *cobra.Command {
	ipsOpts := &ipsOptions{}
	wordsOpts := &wordsOptions{}
	prefixesOpts := &prefixesOptions{}
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Generate address corpora, word corpora and prefix files in one session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if err := ipsOpts.apply(fs, cfg); err != nil {
				return err
			}
			if err := wordsOpts.apply(fs, cfg); err != nil {
				return err
			}
			prefixesOpts.apply(fs, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			gen, err := newGenerator(cfg)
			if err != nil {
				return err
			}

			if err := runIPs(opts, ipsOpts, cfg, gen); err != nil {
				return err
			}
			if cfg.Words.Source != "" {
				if err := runWords(opts, cfg, gen); err != nil {
					return err
				}
			} else {
				logging.UserWarning("no dictionary configured, skipping word corpora")
			}
			return runPrefixes(opts, cfg, gen)
		},
	}
	ipsOpts.register(cmd.Flags())
	wordsOpts.register(cmd.Flags())
	prefixesOpts.register(cmd.Flags())
	return cmd
}
