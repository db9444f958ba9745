// Package config loads generator and benchmark settings from a TOML file,
// the environment and command-line flags, in increasing order of priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	DefaultDatasetDir   = "resources/dataset"
	DefaultPrefixDir    = "resources/prefixes"
	DefaultMaxRetries   = 1000
	DefaultPrefixCount  = 1000
	DefaultBinary       = "prefix-search"
	DefaultBenchOutDir  = "resources/results"
	DefaultParallel     = 1
	DefaultUniverseSpec = "0.0.0.1..255.255.255.255"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvSeed       = "CORPUSGEN_SEED"
	EnvDatasetDir = "CORPUSGEN_DATASET_DIR"
	EnvPrefixDir  = "CORPUSGEN_PREFIX_DIR"
	EnvBinary     = "CORPUSGEN_BINARY"
)

var (
	DefaultCardinalities = []int{8, 16, 32, 64, 128, 256, 512}
	DefaultAlgorithms    = []string{"lprc", "psrc"}
	DefaultEpsilons      = []float64{1, 5}
)

type Config struct {
	// Seed for the session generator; zero picks a random one.
	Seed       int64          `toml:"seed"`
	DatasetDir string         `toml:"dataset_dir"`
	PrefixDir  string         `toml:"prefix_dir"`
	IPs        IPConfig       `toml:"ips"`
	Words      WordsConfig    `toml:"words"`
	Prefixes   PrefixesConfig `toml:"prefixes"`
	Bench      BenchConfig    `toml:"bench"`
}

type IPConfig struct {
	Cardinalities []int  `toml:"cardinalities"`
	Universe      string `toml:"universe"`
	MaxRetries    int    `toml:"max_retries"`
	PrefixCount   int    `toml:"prefix_count"`
}

type WordsConfig struct {
	Source        string `toml:"source"`
	Cardinalities []int  `toml:"cardinalities"`
}

type PrefixesConfig struct {
	Count int `toml:"count"`
}

type BenchConfig struct {
	Binary     string    `toml:"binary"`
	PrefixFile string    `toml:"prefix_file"`
	Algorithms []string  `toml:"algorithms"`
	Epsilons   []float64 `toml:"epsilons"`
	OutputDir  string    `toml:"output_dir"`
	Parallel   int       `toml:"parallel"`
}

// Load reads the TOML file at path, or starts from defaults when path is
// empty. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := new(Config)
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: can't decode %q: %v", ErrInvalidConfig, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return nil, fmt.Errorf("%w: unknown keys in %q: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
		}
	}
	return cfg.populateDefaults(), nil
}

func (cfg *Config) populateDefaults() *Config {
	newCfg := new(Config)
	*newCfg = *cfg
	cfg = newCfg
	if cfg.DatasetDir == "" {
		cfg.DatasetDir = DefaultDatasetDir
	}
	if cfg.PrefixDir == "" {
		cfg.PrefixDir = DefaultPrefixDir
	}
	if cfg.IPs.Cardinalities == nil {
		cfg.IPs.Cardinalities = DefaultCardinalities
	}
	if cfg.IPs.Universe == "" {
		cfg.IPs.Universe = DefaultUniverseSpec
	}
	if cfg.IPs.MaxRetries == 0 {
		cfg.IPs.MaxRetries = DefaultMaxRetries
	}
	if cfg.IPs.PrefixCount == 0 {
		cfg.IPs.PrefixCount = DefaultPrefixCount
	}
	if cfg.Prefixes.Count == 0 {
		cfg.Prefixes.Count = DefaultPrefixCount
	}
	if cfg.Bench.Binary == "" {
		cfg.Bench.Binary = DefaultBinary
	}
	if cfg.Bench.Algorithms == nil {
		cfg.Bench.Algorithms = DefaultAlgorithms
	}
	if cfg.Bench.Epsilons == nil {
		cfg.Bench.Epsilons = DefaultEpsilons
	}
	if cfg.Bench.OutputDir == "" {
		cfg.Bench.OutputDir = DefaultBenchOutDir
	}
	if cfg.Bench.Parallel == 0 {
		cfg.Bench.Parallel = DefaultParallel
	}
	return cfg
}

// LoadEnvFiles loads variables from the given dotenv files (".env" when
// none are named) without overriding variables already set. Missing files
// are not an error.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("can't load env file %q: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from CORPUSGEN_* environment variables.
func (cfg *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: bad %s value %q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvDatasetDir); v != "" {
		cfg.DatasetDir = v
	}
	if v := os.Getenv(EnvPrefixDir); v != "" {
		cfg.PrefixDir = v
	}
	if v := os.Getenv(EnvBinary); v != "" {
		cfg.Bench.Binary = v
	}
	return nil
}

func (cfg *Config) Validate() error {
	if err := validateCardinalities(cfg.IPs.Cardinalities); err != nil {
		return fmt.Errorf("%w: ips.cardinalities: %v", ErrInvalidConfig, err)
	}
	if err := validateCardinalities(cfg.Words.Cardinalities); err != nil {
		return fmt.Errorf("%w: words.cardinalities: %v", ErrInvalidConfig, err)
	}
	if cfg.IPs.MaxRetries < 1 {
		return fmt.Errorf("%w: ips.max_retries must be positive, got %d", ErrInvalidConfig, cfg.IPs.MaxRetries)
	}
	if cfg.IPs.PrefixCount < 1 {
		return fmt.Errorf("%w: ips.prefix_count must be positive, got %d", ErrInvalidConfig, cfg.IPs.PrefixCount)
	}
	if cfg.Prefixes.Count < 1 {
		return fmt.Errorf("%w: prefixes.count must be positive, got %d", ErrInvalidConfig, cfg.Prefixes.Count)
	}
	if len(cfg.Bench.Epsilons) == 0 {
		return fmt.Errorf("%w: bench.epsilons is empty", ErrInvalidConfig)
	}
	if len(cfg.Bench.Algorithms) == 0 {
		return fmt.Errorf("%w: bench.algorithms is empty", ErrInvalidConfig)
	}
	if cfg.Bench.Parallel < 1 {
		return fmt.Errorf("%w: bench.parallel must be positive, got %d", ErrInvalidConfig, cfg.Bench.Parallel)
	}
	return nil
}

func validateCardinalities(list []int) error {
	seen := make(map[int]bool, len(list))
	for _, n := range list {
		if n < 1 {
			return fmt.Errorf("cardinality must be positive, got %d", n)
		}
		if seen[n] {
			return fmt.Errorf("duplicate cardinality %d", n)
		}
		seen[n] = true
	}
	return nil
}
