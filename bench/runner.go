// Package bench drives the external prefix-search executable over generated
// corpora and condenses its JSON output into per-epsilon tables.
package bench

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/kballard/go-shellquote"
	"golang.org/x/sync/errgroup"

	"github.com/SenseUnit/corpusgen/logging"
	"github.com/SenseUnit/corpusgen/util"
)

var ErrBenchmarkFailed = errors.New("benchmark failed")

const (
	Subcommand = "fullbenchmark"
	// SkipDataset is left out of directory scans; it is the empty
	// placeholder corpus.
	SkipDataset = "w0.txt"
	maxStderr   = 2048
)

type Config struct {
	Binary      string
	PrefixFile  string
	Algorithms  AlgorithmList
	Epsilons    []float64
	Parallel    int
	TempDir     string
	BaseContext context.Context
}

func (cfg *Config) populateDefaults() *Config {
	newCfg := new(Config)
	*newCfg = *cfg
	cfg = newCfg
	if cfg.BaseContext == nil {
		cfg.BaseContext = context.Background()
	}
	if cfg.Binary == "" {
		cfg.Binary = "prefix-search"
	}
	if cfg.Algorithms == nil {
		cfg.Algorithms = DefaultList
	}
	if cfg.Parallel < 1 {
		cfg.Parallel = 1
	}
	return cfg
}

type Runner struct {
	cfg *Config
}

func New(cfg *Config) (*Runner, error) {
	cfg = cfg.populateDefaults()
	if cfg.PrefixFile == "" {
		return nil, errors.New("prefix file is not set")
	}
	if len(cfg.Epsilons) == 0 {
		return nil, errors.New("no epsilon values given")
	}
	return &Runner{cfg: cfg}, nil
}

// Args returns the argument list (without the binary) for one run.
func (r *Runner) Args(alg Algorithm, dataset, output string) []string {
	args := []string{
		Subcommand,
		"-a", string(alg),
		"-i", dataset,
		"-p", r.cfg.PrefixFile,
		"-o", output,
	}
	for _, e := range r.cfg.Epsilons {
		args = append(args, "-l", strconv.FormatFloat(e, 'g', -1, 64))
	}
	return args
}

// Report groups summary rows by epsilon.
type Report struct {
	Epsilons []float64
	Rows     map[float64][]Row
}

func (rep *Report) add(row Row, eps float64) {
	if _, ok := rep.Rows[eps]; !ok {
		rep.Epsilons = append(rep.Epsilons, eps)
	}
	rep.Rows[eps] = append(rep.Rows[eps], row)
}

func (rep *Report) sort(datasetOrder map[string]int, algOrder map[Algorithm]int) {
	sort.Float64s(rep.Epsilons)
	for _, rows := range rep.Rows {
		slices.SortStableFunc(rows, func(a, b Row) int {
			if d := datasetOrder[a.Dataset] - datasetOrder[b.Dataset]; d != 0 {
				return d
			}
			return algOrder[a.Algorithm] - algOrder[b.Algorithm]
		})
	}
}

// Run benchmarks every algorithm on every dataset. Runs execute in parallel
// up to the configured limit; the first failure cancels the rest.
func (r *Runner) Run(datasets []string) (*Report, error) {
	rep := &Report{Rows: make(map[float64][]Row)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(r.cfg.BaseContext)
	g.SetLimit(r.cfg.Parallel)
	for _, ds := range datasets {
		for _, alg := range r.cfg.Algorithms {
			g.Go(func() error {
				results, err := r.runOne(ctx, alg, ds)
				if err != nil {
					return err
				}
				name := filepath.Base(ds)
				mu.Lock()
				defer mu.Unlock()
				for i := range results {
					rep.add(results[i].Summarize(name, alg), results[i].Epsilon)
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	datasetOrder := make(map[string]int, len(datasets))
	for i, ds := range datasets {
		datasetOrder[filepath.Base(ds)] = i
	}
	algOrder := make(map[Algorithm]int, len(r.cfg.Algorithms))
	for i, alg := range r.cfg.Algorithms {
		algOrder[alg] = i
	}
	rep.sort(datasetOrder, algOrder)
	return rep, nil
}

func (r *Runner) runOne(ctx context.Context, alg Algorithm, dataset string) ([]Result, error) {
	out, err := os.CreateTemp(r.cfg.TempDir, "corpusgen-bench-*.json")
	if err != nil {
		return nil, fmt.Errorf("can't create result file: %w", err)
	}
	outName := out.Name()
	out.Close()
	defer os.Remove(outName)

	args := r.Args(alg, dataset, outName)
	logger := logging.With("algorithm", alg, "dataset", dataset)
	logger.Info("running benchmark", "cmd", shellquote.Join(append([]string{r.cfg.Binary}, args...)...))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.cfg.Binary, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s on %s: %v: %s", ErrBenchmarkFailed, alg, dataset, err, tail(stderr.String()))
	}

	data, err := os.ReadFile(outName)
	if err != nil {
		return nil, fmt.Errorf("can't read results of %s on %s: %w", alg, dataset, err)
	}
	var results []Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("%w: %s on %s: bad JSON output: %v", ErrBenchmarkFailed, alg, dataset, err)
	}
	logger.Debug("benchmark finished", "results", len(results))
	return results, nil
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxStderr {
		s = "..." + s[len(s)-maxStderr:]
	}
	return s
}

// ListDatasets returns the corpus files in dir, sorted by name.
func ListDatasets(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("can't list datasets: %w", err)
	}
	var res []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == SkipDataset || !strings.HasSuffix(name, ".txt") || strings.HasPrefix(name, ".") {
			continue
		}
		path, err := util.ResolveIn(dir, name)
		if err != nil {
			return nil, err
		}
		res = append(res, path)
	}
	return res, nil
}
