// Package randsrc creates the pseudo-random generators shared by a
// generation session. A zero seed means "pick one from crypto/rand";
// the chosen seed is returned so runs can be reproduced.
package randsrc

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

func MakeSeed() int64 {
	var seedBuf [8]byte
	if _, err := crand.Read(seedBuf[:]); err != nil {
		panic(fmt.Errorf("crypto/rand.Read failed: %w", err))
	}
	uSeed := binary.BigEndian.Uint64(seedBuf[:])
	// keep it positive so it prints and parses back the same way
	return int64(uSeed >> 1)
}

// New returns a generator for seed, drawing a fresh seed when seed is zero.
func New(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = MakeSeed()
	}
	return rand.New(rand.NewSource(seed)), seed
}
