package main

import (
	"errors"
	"os"

	"github.com/SenseUnit/corpusgen/bench"
	"github.com/SenseUnit/corpusgen/config"
	"github.com/SenseUnit/corpusgen/dataset"
	"github.com/SenseUnit/corpusgen/logging"
	"github.com/SenseUnit/corpusgen/prefixgen"
)

const ProgName = "corpusgen"

const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitConfigError     = 2
	ExitExhausted       = 3
	ExitBenchmarkFailed = 4
)

var version = "undefined"

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, dataset.ErrExhaustedAddressSpace), errors.Is(err, prefixgen.ErrExhausted):
		return ExitExhausted
	case errors.Is(err, bench.ErrBenchmarkFailed):
		return ExitBenchmarkFailed
	}
	return ExitGeneralError
}

func run() int {
	err := newRootCmd().Execute()
	if err != nil {
		logging.UserError("%v", err)
	}
	return exitCode(err)
}

func main() {
	os.Exit(run())
}
