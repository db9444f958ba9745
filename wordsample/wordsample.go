// Package wordsample draws random word corpora (w<N>.txt) from a
// dictionary file.
package wordsample

import (
	"fmt"
	"math/bits"
	"math/rand"
	"strings"

	"github.com/SenseUnit/corpusgen/logging"
	"github.com/SenseUnit/corpusgen/util"
)

const minExponent = 3

func FileName(n int) string {
	return fmt.Sprintf("w%d.txt", n)
}

// Cardinalities lists the corpus sizes for a dictionary of total words:
// every power of two from 8 below 2^floor(log2(total)).
func Cardinalities(total int) []int {
	if total < 1 {
		return nil
	}
	top := bits.Len(uint(total)) - 1
	var res []int
	for i := minExponent; i < top; i++ {
		res = append(res, 1<<i)
	}
	return res
}

// Normalize lowercases and trims words, dropping blanks and repeats.
func Normalize(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	res := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		res = append(res, w)
	}
	return res
}

// Sample returns n distinct entries of words in random order.
func Sample(rng *rand.Rand, words []string, n int) ([]string, error) {
	if n < 0 || n > len(words) {
		return nil, fmt.Errorf("can't sample %d words from a dictionary of %d", n, len(words))
	}
	idx := sampleIndices(rng, len(words), n)
	res := make([]string, len(idx))
	for i, j := range idx {
		res[i] = words[j]
	}
	return res, nil
}

// sampleIndices picks n distinct values from [0, total) with Floyd's
// algorithm and shuffles them.
func sampleIndices(rng *rand.Rand, total, n int) []int {
	picked := make(map[int]struct{}, n)
	idx := make([]int, 0, n)
	for j := total - n; j < total; j++ {
		t := rng.Intn(j + 1)
		if _, ok := picked[t]; ok {
			t = j
		}
		picked[t] = struct{}{}
		idx = append(idx, t)
	}
	rng.Shuffle(len(idx), func(a, b int) {
		idx[a], idx[b] = idx[b], idx[a]
	})
	return idx
}

// GenerateAll writes one corpus per cardinality into dir. A nil
// cardinality list is derived from the dictionary size.
func GenerateAll(rng *rand.Rand, words []string, dir string, cardinalities []int) ([]string, error) {
	words = Normalize(words)
	if cardinalities == nil {
		cardinalities = Cardinalities(len(words))
	}
	paths := make([]string, 0, len(cardinalities))
	for _, n := range cardinalities {
		sample, err := Sample(rng, words, n)
		if err != nil {
			return paths, err
		}
		path, err := util.ResolveIn(dir, FileName(n))
		if err != nil {
			return paths, err
		}
		if err := util.WriteLines(path, sample, true); err != nil {
			return paths, fmt.Errorf("can't write corpus of %d words: %w", n, err)
		}
		logging.Info("word corpus written", "cardinality", n, "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}
