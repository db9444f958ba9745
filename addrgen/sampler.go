package addrgen

import (
	"math/rand"
)

// Sampler draws candidate addresses and block sizes from a caller-owned
// generator.
type Sampler struct {
	rng      *rand.Rand
	universe AddrGen
}

// NewSampler returns a Sampler drawing from universe, or from every
// non-zero address when universe is nil.
func NewSampler(rng *rand.Rand, universe AddrGen) *Sampler {
	if universe == nil {
		universe = NewAddrRange(1, MaxAddr)
	}
	return &Sampler{
		rng:      rng,
		universe: universe,
	}
}

func (s *Sampler) Sample() Addr {
	return s.universe.Addr(s.rng)
}

// SampleHostBits draws a block size for a corpus of n addresses, uniform in
// [0, min(31, (n-1) mod 32)]. The bound wraps for n > 32, so corpora of 33
// or 65 addresses only get single-address blocks. This matches the corpora
// already published and is kept on purpose.
func (s *Sampler) SampleHostBits(n int) int {
	if n < 1 {
		return 0
	}
	limit := min(MaxHostBits, (n-1)%32)
	return s.rng.Intn(limit + 1)
}
