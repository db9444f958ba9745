// Package prefixgen builds the query files fed to prefix-search: random
// lowercase letter prefixes and prefixes of generated IPv4 addresses.
package prefixgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/SenseUnit/corpusgen/addrgen"
)

var ErrExhausted = errors.New("no more distinct prefixes")

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	// maxLetters keeps 26^n inside int64.
	maxLetters = 13
	// MaxLetterPrefixes bounds Letters; larger requests need prefixes of
	// seven letters and tens of millions of candidates.
	MaxLetterPrefixes = 1 << 24
	maxIPPrefixLen    = 9
)

// Label renders a count the way prefix files are named: 1000 -> "1k".
func Label(count int) string {
	if count >= 1000 && count%1000 == 0 {
		return fmt.Sprintf("%dk", count/1000)
	}
	return fmt.Sprintf("%d", count)
}

func LettersFileName(count int) string {
	return "pref" + Label(count) + ".txt"
}

func IPsFileName(count int) string {
	return "ip_pref" + Label(count) + ".txt"
}

// Letters returns count distinct lowercase prefixes. Candidates are
// gathered by length: for length n a random share 1/(2^(n+1)-1) of all
// 26^n strings is kept, so short prefixes stay rare. Gathering stops after
// the first length whose share alone reaches count; the result is a random
// subset of all gathered candidates.
func Letters(rng *rand.Rand, count int) ([]string, error) {
	if count < 1 || count > MaxLetterPrefixes {
		return nil, fmt.Errorf("letter prefix count %d out of range [1, %d]", count, MaxLetterPrefixes)
	}
	var pool []string
	space := int64(1)
	for length := 1; ; length++ {
		if length > maxLetters {
			return nil, fmt.Errorf("%w: gave up at %d letters", ErrExhausted, length)
		}
		space *= int64(len(alphabet))
		share := space / (int64(1)<<uint(length+1) - 1)
		for _, idx := range sampleDistinct(rng, space, share) {
			pool = append(pool, decodeLetters(idx, length))
		}
		if share >= int64(count) {
			break
		}
	}
	rng.Shuffle(len(pool), func(a, b int) {
		pool[a], pool[b] = pool[b], pool[a]
	})
	return pool[:count], nil
}

func decodeLetters(idx int64, length int) string {
	b := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		b[i] = alphabet[idx%int64(len(alphabet))]
		idx /= int64(len(alphabet))
	}
	return string(b)
}

// sampleDistinct picks k distinct values from [0, space) with Floyd's
// algorithm.
func sampleDistinct(rng *rand.Rand, space, k int64) []int64 {
	picked := make(map[int64]struct{}, k)
	res := make([]int64, 0, k)
	for j := space - k; j < space; j++ {
		t := rng.Int63n(j + 1)
		if _, ok := picked[t]; ok {
			t = j
		}
		picked[t] = struct{}{}
		res = append(res, t)
	}
	return res
}

// IPs returns count distinct prefixes. Each step picks a random entry of
// bases; when that entry is already taken it falls back to the first 1-9
// characters of a random address. More than maxRetries fruitless steps in a
// row fail with ErrExhausted.
func IPs(rng *rand.Rand, bases []string, count, maxRetries int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("ip prefix count must be positive, got %d", count)
	}
	taken := make(map[string]struct{}, count)
	res := make([]string, 0, count)
	misses := 0
	for len(res) < count {
		if misses > maxRetries {
			return nil, fmt.Errorf("%w: %d of %d ip prefixes after %d misses", ErrExhausted, len(res), count, misses)
		}
		var candidate string
		if len(bases) > 0 {
			candidate = bases[rng.Intn(len(bases))]
		}
		if _, ok := taken[candidate]; ok || candidate == "" {
			candidate = randomAddrPrefix(rng)
		}
		if _, ok := taken[candidate]; ok {
			misses++
			continue
		}
		taken[candidate] = struct{}{}
		res = append(res, candidate)
		misses = 0
	}
	return res, nil
}

func randomAddrPrefix(rng *rand.Rand) string {
	s := addrgen.Addr(1 + rng.Int63n(int64(addrgen.MaxAddr))).String()
	n := min(len(s), 1+rng.Intn(maxIPPrefixLen))
	return s[:n]
}
